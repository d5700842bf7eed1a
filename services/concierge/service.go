package concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"concierge/database/repository"
	"concierge/models"
	"concierge/services/agents"
	"concierge/utils"
)

// DefaultConciergeService implements ConciergeService.
type DefaultConciergeService struct {
	Orchestrator *agents.Orchestrator

	ContactRepo     repository.ContactRepository
	ServiceRepo     repository.ServiceRepository
	AppointmentRepo repository.AppointmentRepository
	TraceRepo       repository.TraceRepository

	// Traces go through the queue when set; otherwise they are written
	// synchronously.
	TraceQueue TraceSink

	Cache *contactCache
}

func (s *DefaultConciergeService) logger() *zap.Logger {
	return utils.GetLogger().Named("concierge")
}

// Resolve runs the agent pipeline and submits the trace for persistence. A
// trace that cannot be persisted is logged, never surfaced to the caller.
func (s *DefaultConciergeService) Resolve(ctx context.Context, prompt, timezone, userID string) (*agents.Outcome, error) {
	out := s.Orchestrator.ProcessPrompt(ctx, prompt, timezone, userID)

	if out.Trace != nil {
		s.persistTrace(ctx, out.Trace)
	}
	return &out, nil
}

func (s *DefaultConciergeService) persistTrace(ctx context.Context, trace *models.DecisionTrace) {
	if s.TraceQueue != nil {
		if err := s.TraceQueue.Enqueue(ctx, trace); err != nil {
			s.logger().Warn("failed to enqueue trace",
				zap.String("trace_id", trace.TraceID), zap.Error(err))
		}
		return
	}
	if s.TraceRepo != nil {
		if err := s.TraceRepo.Save(ctx, trace); err != nil {
			s.logger().Warn("failed to save trace",
				zap.String("trace_id", trace.TraceID), zap.Error(err))
		}
	}
}

// Book commits a resolved draft as a confirmed appointment. The ledger
// re-checks conflicts on insert; repository.ErrConflictOnWrite propagates to
// the caller when the slot was taken in the meantime.
func (s *DefaultConciergeService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	draft := req.Draft
	if draft.ContactID == "" || draft.Date == "" || draft.StartTime == "" || draft.EndTime == "" {
		return nil, fmt.Errorf("draft is missing required fields")
	}

	appointment := &models.Appointment{
		ID:         newAppointmentID(),
		Date:       draft.Date,
		StartTime:  draft.StartTime,
		EndTime:    draft.EndTime,
		Status:     models.AppointmentConfirmed,
		ServiceID:  draft.ServiceID,
		LocationID: draft.LocationID,
		Participants: []models.Participant{
			{ID: draft.ContactID, Name: draft.ContactName, Role: "provider"},
		},
		UserID:         req.UserID,
		OriginalPrompt: req.OriginalPrompt,
		TraceID:        req.TraceID,
	}

	if err := s.AppointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger().Info("appointment booked",
		zap.String("appointment_id", appointment.ID),
		zap.String("contact_id", draft.ContactID),
		zap.String("date", draft.Date),
		zap.String("start_time", draft.StartTime))
	return appointment, nil
}

// Contacts returns the directory, served from cache when warm.
func (s *DefaultConciergeService) Contacts(ctx context.Context) ([]models.Contact, error) {
	if s.Cache != nil {
		if contacts, ok := s.Cache.get(ctx); ok {
			return contacts, nil
		}
	}

	contacts, err := s.ContactRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if s.Cache != nil {
		s.Cache.set(ctx, contacts)
	}
	return contacts, nil
}

// ContactSlots enumerates bookable slots for a contact.
func (s *DefaultConciergeService) ContactSlots(ctx context.Context, contactID string, daysAhead, durationMinutes int, locationID string) ([]models.Slot, error) {
	if daysAhead <= 0 {
		daysAhead = 7
	}
	return s.ContactRepo.GetAvailableSlots(ctx, contactID, daysAhead, durationMinutes, locationID)
}

// Services returns the full service catalog.
func (s *DefaultConciergeService) Services(ctx context.Context) ([]models.Service, error) {
	return s.ServiceRepo.ListAll(ctx)
}

// Appointment retrieves one appointment by ID.
func (s *DefaultConciergeService) Appointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.AppointmentRepo.GetByID(ctx, id)
}

// AppointmentsByContact lists a contact's active appointments.
func (s *DefaultConciergeService) AppointmentsByContact(ctx context.Context, contactID string) ([]models.Appointment, error) {
	return s.AppointmentRepo.ListByContact(ctx, contactID)
}

// CancelAppointment marks an appointment cancelled.
func (s *DefaultConciergeService) CancelAppointment(ctx context.Context, id string) error {
	return s.AppointmentRepo.Cancel(ctx, id)
}

// Trace retrieves one decision trace.
func (s *DefaultConciergeService) Trace(ctx context.Context, traceID string) (*models.DecisionTrace, error) {
	return s.TraceRepo.GetByID(ctx, traceID)
}

// Traces lists recent decision traces.
func (s *DefaultConciergeService) Traces(ctx context.Context, limit int64) ([]models.DecisionTrace, error) {
	return s.TraceRepo.List(ctx, limit)
}

func newAppointmentID() string {
	return "appointment_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
