package contactRepo

import (
	"context"

	"concierge/models"
)

// ContactRepository defines methods for contact data access. Read methods
// return (nil, nil) when no contact matches; a non-nil error means the
// lookup itself failed.
type ContactRepository interface {
	// GetByID retrieves a contact by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	// ListAll retrieves all contacts.
	ListAll(ctx context.Context) ([]models.Contact, error)
	// FindByName retrieves the first contact whose name contains the given
	// fragment, case-insensitively.
	FindByName(ctx context.Context, name string) (*models.Contact, error)
	// Create inserts a new contact record.
	Create(ctx context.Context, contact *models.Contact) error
	// Update modifies an existing contact record.
	Update(ctx context.Context, contact *models.Contact) error
	// Delete removes a contact record by its ID.
	Delete(ctx context.Context, id string) error
	// CheckAvailability reports whether the contact can take an appointment
	// in the given slot, with a human-readable reason when it cannot.
	CheckAvailability(ctx context.Context, id, date, startTime, endTime, locationID string) (bool, string, error)
	// GetAvailableSlots enumerates bookable slots for the contact over the
	// next daysAhead days, weekends excluded.
	GetAvailableSlots(ctx context.Context, id string, daysAhead, durationMinutes int, locationID string) ([]models.Slot, error)
}
