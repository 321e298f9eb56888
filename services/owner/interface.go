package owner

import (
	"context"
	"time"

	"barberbook/database/repository/appointment"
	"barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/services/sms"
)

// tokenTTL is the owner session length, shorter than customer sessions.
const tokenTTL = 24 * time.Hour

// LateCancelThreshold marks cancellations made close enough to the
// appointment to matter for the owner's no-show accounting.
const LateCancelThreshold = 2 * time.Hour

// OwnerService covers the owner account and the back-office reports.
type OwnerService interface {
	Login(ctx context.Context, username, password string) (string, error)
	RestorePassword(ctx context.Context, username, newPassword string) error

	AppointmentsByDate(ctx context.Context, date string) ([]models.AppointmentWithUser, error)
	CancellationsByDate(ctx context.Context, date string) ([]models.CanceledAppointmentReport, error)
	CountAppointments(ctx context.Context, startDate, endDate string) (int64, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error

	BroadcastMessage(ctx context.Context, body string) (int, error)
}

// MessageLogger records broadcast sends in the audit log.
type MessageLogger interface {
	LogMessage(ctx context.Context, log *models.MessageLog) error
}

// DefaultOwnerService is the production implementation.
type DefaultOwnerService struct {
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
	Sender       sms.Sender
	Messages     MessageLogger

	// Location is the business timezone used for the late-cancel flag.
	Location *time.Location
}
