package concierge

import (
	"context"

	"concierge/models"
	"concierge/services/agents"
)

// BookingRequest carries a validated draft to be committed as an appointment.
type BookingRequest struct {
	Draft          models.ValidatedDraft `json:"draft"`
	UserID         string                `json:"user_id"`
	OriginalPrompt string                `json:"original_prompt,omitempty"`
	TraceID        string                `json:"trace_id,omitempty"`
}

// TraceSink receives decision traces for background persistence.
type TraceSink interface {
	Enqueue(ctx context.Context, trace *models.DecisionTrace) error
}

// ConciergeService is the application-facing API over the resolution
// pipeline and its stores.
type ConciergeService interface {
	// Resolve runs the agent pipeline over a free-text prompt and submits
	// the decision trace for persistence.
	Resolve(ctx context.Context, prompt, timezone, userID string) (*agents.Outcome, error)
	// Book commits a resolved draft as a confirmed appointment.
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)

	// Contacts returns the contact directory, cached.
	Contacts(ctx context.Context) ([]models.Contact, error)
	// ContactSlots enumerates bookable slots for a contact.
	ContactSlots(ctx context.Context, contactID string, daysAhead, durationMinutes int, locationID string) ([]models.Slot, error)
	// Services returns the service catalog.
	Services(ctx context.Context) ([]models.Service, error)

	// Appointment retrieves one appointment, (nil, nil) when absent.
	Appointment(ctx context.Context, id string) (*models.Appointment, error)
	// AppointmentsByContact lists a contact's active appointments.
	AppointmentsByContact(ctx context.Context, contactID string) ([]models.Appointment, error)
	// CancelAppointment marks an appointment cancelled.
	CancelAppointment(ctx context.Context, id string) error

	// Trace retrieves one decision trace, (nil, nil) when absent.
	Trace(ctx context.Context, traceID string) (*models.DecisionTrace, error)
	// Traces lists recent decision traces, newest first.
	Traces(ctx context.Context, limit int64) ([]models.DecisionTrace, error)
}
