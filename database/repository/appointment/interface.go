package appointmentRepo

import (
	"context"
	"errors"

	"concierge/models"
)

// ErrConflictOnWrite is returned by Create when a conflicting appointment
// appeared between the caller's availability check and the insert. The
// pipeline's "no conflict" verdict is advisory; the write re-validates.
var ErrConflictOnWrite = errors.New("conflicting appointment created concurrently")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID, (nil, nil) when
	// absent.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByContact retrieves all non-cancelled appointments involving the
	// given contact.
	ListByContact(ctx context.Context, contactID string) ([]models.Appointment, error)
	// ListByDate retrieves all non-cancelled appointments on the given date.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// Create inserts a new appointment after re-checking for conflicts;
	// returns ErrConflictOnWrite when the slot was taken in the meantime.
	Create(ctx context.Context, appointment *models.Appointment) error
	// Cancel marks an appointment cancelled, keeping the record.
	Cancel(ctx context.Context, id string) error
	// CheckConflicts returns overlap conflicts between the candidate and
	// existing active appointments sharing a participant. excludeID skips one
	// appointment, for reschedule checks.
	CheckConflicts(ctx context.Context, candidate models.Appointment, excludeID string) ([]models.Conflict, error)
}
