// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"garagedesk/models"
)

// AppointmentRepository is the document-store surface the scheduling
// workflow runs against. One document per day-bounded appointment segment.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	GetByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error)
	GetByRolloverGroup(ctx context.Context, groupID string) ([]models.Appointment, error)
	GetByVehicleReg(ctx context.Context, reg string) ([]models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)

	Create(ctx context.Context, appt *models.Appointment) error
	Update(ctx context.Context, id string, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error

	// ReplaceJob removes the given appointment ids and inserts the new
	// segments as one transaction. verify runs inside the transaction and
	// aborts the whole write when it returns an error; the scheduling
	// service uses it to re-run the conflict check against a snapshot no
	// concurrent writer can invalidate.
	ReplaceJob(ctx context.Context, removeIDs []string, segments []models.Appointment, verify func(ctx context.Context) error) error
}
