// File: database/repository/technician/interface.go
package technicianRepo

import (
	"context"

	"garagedesk/models"
)

// TechnicianRepository is the stored technician directory for one site.
type TechnicianRepository interface {
	// List returns all technicians sorted by display order.
	List(ctx context.Context) ([]models.Technician, error)
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	GetByName(ctx context.Context, name string) (*models.Technician, error)
	Create(ctx context.Context, tech *models.Technician) error
	Update(ctx context.Context, id string, tech *models.Technician) error
	Delete(ctx context.Context, id string) error
}
