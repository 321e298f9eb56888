package booking

import (
	"context"

	"barberbook/models"
)

// CreateRequest is a customer's booking submission. The end time is
// derived from the appointment type's duration, never client-supplied.
type CreateRequest struct {
	ID        string `json:"id"`
	Phone     string `json:"phone"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Note      string `json:"note"`
}

// BookingService owns the appointment lifecycle: create, cancel with an
// audit snapshot, and the customer's upcoming list.
type BookingService interface {
	Create(ctx context.Context, req CreateRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID, phone string) (*models.CanceledAppointment, error)
	UpcomingForPhone(ctx context.Context, phone string) ([]models.Appointment, error)
}

// AppointmentStore is the slice of the appointment repository the
// lifecycle uses.
type AppointmentStore interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	HasOverlap(ctx context.Context, date, startTime, endTime string) (bool, error)
	GetUpcomingByPhone(ctx context.Context, phone, today, timeOfDay string) ([]models.Appointment, error)
	CreateCancellation(ctx context.Context, rec *models.CanceledAppointment) error
}

// TypeSource resolves an appointment type by name; (nil, nil) when
// unknown.
type TypeSource interface {
	GetByName(ctx context.Context, name string) (*models.AppointmentType, error)
}

// UserSource looks up the customer display name for cancellation
// snapshots; (nil, nil) when unknown.
type UserSource interface {
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
}

// DateLocker serializes bookings per calendar date so two concurrent
// creates cannot both pass the overlap check.
type DateLocker interface {
	Lock(ctx context.Context, date string) (func(), error)
}

// ReminderScheduler enqueues a pre-appointment reminder. Best-effort;
// booking never fails because a reminder could not be queued.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}
