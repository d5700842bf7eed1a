package agents

import (
	"context"

	"concierge/models"
)

// ContactDirectory is the read-only contact lookup the pipeline consumes.
// Implementations return (nil, nil) for an absent contact; a non-nil error
// means the lookup itself failed.
type ContactDirectory interface {
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	ListAll(ctx context.Context) ([]models.Contact, error)
	FindByName(ctx context.Context, name string) (*models.Contact, error)
	CheckAvailability(ctx context.Context, id, date, startTime, endTime, locationID string) (bool, string, error)
	GetAvailableSlots(ctx context.Context, id string, daysAhead, durationMinutes int, locationID string) ([]models.Slot, error)
}

// ServiceCatalog is the read-only service lookup the pipeline consumes.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
}

// BookingLedger answers conflict queries against existing appointments. The
// pipeline only reads from it; writes are the caller's responsibility.
type BookingLedger interface {
	CheckConflicts(ctx context.Context, candidate models.Appointment, excludeID string) ([]models.Conflict, error)
}

// Stores bundles the collaborators a pipeline run needs.
type Stores struct {
	Contacts ContactDirectory
	Services ServiceCatalog
	Ledger   BookingLedger
}
