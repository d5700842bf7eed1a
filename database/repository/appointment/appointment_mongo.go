package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"concierge/database"
	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll               *mongo.Collection
	defaultDurationMin int
}

// NewMongoAppointmentRepo creates a new AppointmentRepository backed by the
// "appointments" collection. defaultDurationMin is used when a candidate has
// no end time.
func NewMongoAppointmentRepo(defaultDurationMin int) AppointmentRepository {
	coll := database.Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll, defaultDurationMin: defaultDurationMin}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// ListByContact retrieves all non-cancelled appointments involving the contact.
func (r *MongoAppointmentRepo) ListByContact(ctx context.Context, contactID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{
		"participants.id": contactID,
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	})
}

// ListByDate retrieves all non-cancelled appointments on the given date.
func (r *MongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.AppointmentCancelled},
	})
}

func (r *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// Create inserts a new appointment document. Conflicts are re-checked right
// before the insert; the earlier pipeline check does not hold a lock.
func (r *MongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	conflicts, err := r.CheckConflicts(ctx, *appointment, "")
	if err != nil {
		return fmt.Errorf("conflict re-check failed: %w", err)
	}
	if len(conflicts) > 0 {
		return ErrConflictOnWrite
	}

	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if appointment.Status == "" {
		appointment.Status = models.AppointmentConfirmed
	}
	if appointment.DurationMinutes == 0 {
		appointment.DurationMinutes = spanMinutes(appointment.StartTime, appointment.EndTime)
	}

	if _, err := r.coll.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// Cancel marks an appointment cancelled, keeping the record.
func (r *MongoAppointmentRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.AppointmentCancelled,
		"updated_at": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to cancel appointment with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// CheckConflicts finds active appointments on the candidate's date that share
// a participant and overlap its interval.
func (r *MongoAppointmentRepo) CheckConflicts(ctx context.Context, candidate models.Appointment, excludeID string) ([]models.Conflict, error) {
	participantIDs := make([]string, 0, len(candidate.Participants))
	for _, p := range candidate.Participants {
		participantIDs = append(participantIDs, p.ID)
	}
	if len(participantIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"date":            candidate.Date,
		"participants.id": bson.M{"$in": participantIDs},
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	existing, err := r.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	s1 := parseClock(candidate.StartTime)
	e1 := parseClock(candidate.EndTime)
	if e1 < 0 {
		e1 = s1 + r.defaultDurationMin
	}

	var conflicts []models.Conflict
	for _, appt := range existing {
		s2, e2 := parseClock(appt.StartTime), parseClock(appt.EndTime)
		if e1 <= s2 || e2 <= s1 {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			Type:                  models.ConflictOverlap,
			ExistingAppointmentID: appt.ID,
			Message: fmt.Sprintf("Overlaps existing appointment %s (%s - %s)",
				appt.ID, appt.StartTime, appt.EndTime),
		})
	}
	return conflicts, nil
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "participants.id", Value: 1}}},
		{Keys: bson.D{{Key: "trace_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// parseClock parses "HH:MM" as minutes from midnight, -1 when malformed.
func parseClock(value string) int {
	var h, m int
	if _, err := fmt.Sscanf(value, "%02d:%02d", &h, &m); err != nil {
		return -1
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

func spanMinutes(start, end string) int {
	s, e := parseClock(start), parseClock(end)
	if s < 0 || e < 0 || e < s {
		return 0
	}
	return e - s
}
