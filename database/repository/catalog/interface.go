// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentTypeRepository manages the service catalog. Name is the
// human key bookings reference; GetByName returns (nil, nil) when no
// type matches.
type AppointmentTypeRepository interface {
	GetAll(ctx context.Context) ([]models.AppointmentType, error)
	GetByName(ctx context.Context, name string) (*models.AppointmentType, error)
	Create(ctx context.Context, t *models.AppointmentType) error
	Update(ctx context.Context, t *models.AppointmentType) error
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentTypeRepo constructs a new MongoDB AppointmentTypeRepository.
func NewMongoAppointmentTypeRepo() AppointmentTypeRepository {
	return &mongoAppointmentTypeRepo{
		coll: database.Collection("appointmentTypes"),
	}
}
