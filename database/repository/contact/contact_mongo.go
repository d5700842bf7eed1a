package contactRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"concierge/database"
	appointmentRepo "concierge/database/repository/appointment"
	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SlotWindow holds the business-hours grid used for slot enumeration.
type SlotWindow struct {
	StartMinute int
	EndMinute   int
	StepMinutes int
}

// MongoContactRepo implements ContactRepository using MongoDB. Slot
// enumeration consults the appointment ledger for conflicts.
type MongoContactRepo struct {
	coll   *mongo.Collection
	ledger appointmentRepo.AppointmentRepository
	window SlotWindow
}

// NewMongoContactRepo creates a new ContactRepository backed by the
// "contacts" collection.
func NewMongoContactRepo(ledger appointmentRepo.AppointmentRepository, window SlotWindow) ContactRepository {
	coll := database.Collection("contacts")
	repo := &MongoContactRepo{coll: coll, ledger: ledger, window: window}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create contact indexes: %v\n", err)
	}
	return repo
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a contact by its unique ID.
func (r *MongoContactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var contact models.Contact
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact with id %s: %w", id, err)
	}
	return &contact, nil
}

// ListAll retrieves all contacts.
func (r *MongoContactRepo) ListAll(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	for cursor.Next(ctx) {
		var c models.Contact
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// FindByName retrieves the first contact whose name contains the fragment,
// case-insensitively.
func (r *MongoContactRepo) FindByName(ctx context.Context, name string) (*models.Contact, error) {
	if name == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": bson.M{
		"$regex":   regexp.QuoteMeta(name),
		"$options": "i",
	}}
	var contact models.Contact
	if err := r.coll.FindOne(ctx, filter).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact by name %q: %w", name, err)
	}
	return &contact, nil
}

// Create inserts a new contact document.
func (r *MongoContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update modifies an existing contact document.
func (r *MongoContactRepo) Update(ctx context.Context, contact *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	contact.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": contact.ID}, bson.M{"$set": contact})
	if err != nil {
		return fmt.Errorf("failed to update contact with id %s: %w", contact.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact with id %s not found", contact.ID)
	}
	return nil
}

// Delete removes a contact document by its ID.
func (r *MongoContactRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact with id %s not found", id)
	}
	return nil
}

// CheckAvailability verifies that the contact is active and, when a location
// is given, that it is one of the contact's locations and currently open.
func (r *MongoContactRepo) CheckAvailability(ctx context.Context, id, date, startTime, endTime, locationID string) (bool, string, error) {
	contact, err := r.GetByID(ctx, id)
	if err != nil {
		return false, "", err
	}
	if contact == nil {
		return false, fmt.Sprintf("Contact %s not found", id), nil
	}
	if !contact.Active {
		return false, fmt.Sprintf("Contact %s is inactive", contact.Name), nil
	}

	if locationID != "" {
		var location *models.Location
		for i := range contact.Locations {
			if contact.Locations[i].ID == locationID {
				location = &contact.Locations[i]
				break
			}
		}
		if location == nil {
			return false, fmt.Sprintf("Contact %s does not attend location %s", contact.Name, locationID), nil
		}
		if !location.Available {
			return false, fmt.Sprintf("Location %s is not currently available", location.Name), nil
		}
	}
	return true, "", nil
}

// GetAvailableSlots enumerates free business-hour slots for the contact over
// the next daysAhead days, skipping weekends and booked intervals.
func (r *MongoContactRepo) GetAvailableSlots(ctx context.Context, id string, daysAhead, durationMinutes int, locationID string) ([]models.Slot, error) {
	contact, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fmt.Errorf("contact with id %s not found", id)
	}
	if durationMinutes <= 0 {
		durationMinutes = r.window.StepMinutes
	}

	var slots []models.Slot
	day := time.Now()
	for offset := 0; offset < daysAhead; offset++ {
		if offset > 0 {
			day = day.AddDate(0, 0, 1)
		}
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format("2006-01-02")

		for minute := r.window.StartMinute; minute+durationMinutes <= r.window.EndMinute; minute += r.window.StepMinutes {
			start := formatClock(minute)
			end := formatClock(minute + durationMinutes)

			candidate := models.Appointment{
				Date:         date,
				StartTime:    start,
				EndTime:      end,
				LocationID:   locationID,
				Participants: []models.Participant{{ID: id}},
			}
			conflicts, err := r.ledger.CheckConflicts(ctx, candidate, "")
			if err != nil {
				return nil, fmt.Errorf("failed to check slot conflicts: %w", err)
			}
			slots = append(slots, models.Slot{
				Date:      date,
				StartTime: start,
				EndTime:   end,
				Available: len(conflicts) == 0,
			})
		}
	}
	return slots, nil
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
