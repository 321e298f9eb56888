// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository is the booking-path view of the appointment
// store. Lookups that find nothing return (nil, nil) rather than an
// error so callers can tell "absent" from "store failure".
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error

	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	HasOverlap(ctx context.Context, date, startTime, endTime string) (bool, error)
	GetUpcomingByPhone(ctx context.Context, phone, today, timeOfDay string) ([]models.Appointment, error)
	CountBetween(ctx context.Context, startDate, endDate string) (int64, error)

	CreateCancellation(ctx context.Context, rec *models.CanceledAppointment) error
	GetCancellationsByDate(ctx context.Context, date string) ([]models.CanceledAppointment, error)
}

type mongoAppointmentRepo struct {
	coll         *mongo.Collection
	canceledColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll:         database.Collection("appointments"),
		canceledColl: database.Collection("canceledAppointments"),
	}
}
