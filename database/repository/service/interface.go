package serviceRepo

import (
	"context"

	"concierge/models"
)

// ServiceRepository defines methods for service-catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID, (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// ListAll retrieves all services.
	ListAll(ctx context.Context) ([]models.Service, error)
	// Create inserts a new service record.
	Create(ctx context.Context, service *models.Service) error
	// Update modifies an existing service record.
	Update(ctx context.Context, service *models.Service) error
	// Delete removes a service record by its ID.
	Delete(ctx context.Context, id string) error
}
