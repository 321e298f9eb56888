package owner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"barberbook/models"
	"barberbook/services/availability"
	"barberbook/utils"
)

var (
	// ErrInvalidCredentials covers bad username/password pairs.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrOwnerNotFound means no owner account matches the username.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrAppointmentNotFound means the appointment id matches nothing.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// Login checks the owner password and returns a session token with the
// owner role.
func (s *DefaultOwnerService) Login(ctx context.Context, username, password string) (string, error) {
	o, err := s.Users.GetOwnerByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to fetch owner: %w", err)
	}
	if o == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(o.Username, "owner", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// RestorePassword replaces the owner password.
func (s *DefaultOwnerService) RestorePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required")
	}
	o, err := s.Users.GetOwnerByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to fetch owner: %w", err)
	}
	if o == nil {
		return ErrOwnerNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash owner password", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}
	if err := s.Users.UpdateOwnerPassword(ctx, o.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update owner password: %w", err)
	}
	return nil
}

// AppointmentsByDate returns the day's bookings joined with customer
// names. Phones without an account show as "Unknown".
func (s *DefaultOwnerService) AppointmentsByDate(ctx context.Context, date string) ([]models.AppointmentWithUser, error) {
	appts, err := s.Appointments.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	names := make(map[string]string, len(appts))
	out := make([]models.AppointmentWithUser, 0, len(appts))
	for _, a := range appts {
		name, ok := names[a.Phone]
		if !ok {
			name = "Unknown"
			u, err := s.Users.GetByPhone(ctx, a.Phone)
			if err != nil {
				utils.GetLogger().Warn("failed to resolve customer name",
					zap.String("phone", a.Phone), zap.Error(err))
			} else if u != nil {
				name = u.Name
			}
			names[a.Phone] = name
		}
		out = append(out, models.AppointmentWithUser{Appointment: a, UserName: name})
	}
	return out, nil
}

// CancellationsByDate returns the cancellation snapshots for a date,
// each flagged when the cancel landed within LateCancelThreshold of the
// appointment start.
func (s *DefaultOwnerService) CancellationsByDate(ctx context.Context, date string) ([]models.CanceledAppointmentReport, error) {
	recs, err := s.Appointments.GetCancellationsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cancellations: %w", err)
	}

	out := make([]models.CanceledAppointmentReport, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.CanceledAppointmentReport{
			CanceledAppointment:     rec,
			CanceledWithinThreshold: s.canceledLate(rec),
		})
	}
	return out, nil
}

func (s *DefaultOwnerService) canceledLate(rec models.CanceledAppointment) bool {
	start, err := time.ParseInLocation(
		availability.DateLayout+" 15:04",
		rec.Date+" "+rec.StartTime,
		s.Location,
	)
	if err != nil {
		return false
	}
	return start.Sub(rec.CanceledAt.In(s.Location)) < LateCancelThreshold
}

// CountAppointments counts bookings over an inclusive date range.
func (s *DefaultOwnerService) CountAppointments(ctx context.Context, startDate, endDate string) (int64, error) {
	n, err := s.Appointments.CountBetween(ctx, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return n, nil
}

// DeleteAppointment removes a booking on the owner's behalf. No
// cancellation snapshot is written; the owner is not the customer.
func (s *DefaultOwnerService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return ErrAppointmentNotFound
	}
	if err := s.Appointments.Delete(ctx, appointmentID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

// BroadcastMessage texts every registered customer and returns how many
// sends succeeded. Individual failures are logged and skipped so one bad
// number never aborts the batch.
func (s *DefaultOwnerService) BroadcastMessage(ctx context.Context, body string) (int, error) {
	if body == "" {
		return 0, fmt.Errorf("message body is required")
	}
	phones, err := s.Users.AllPhones(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list customer phones: %w", err)
	}

	sent := 0
	for _, phone := range phones {
		status := "sent"
		if err := s.Sender.Send(ctx, phone, body); err != nil {
			utils.GetLogger().Warn("broadcast send failed",
				zap.String("phone", phone), zap.Error(err))
			status = "failed"
		} else {
			sent++
		}
		if err := s.Messages.LogMessage(ctx, &models.MessageLog{
			ID:     uuid.New().String(),
			Phone:  phone,
			Kind:   "broadcast",
			SentAt: time.Now(),
			Status: status,
		}); err != nil {
			utils.GetLogger().Warn("failed to log broadcast message", zap.Error(err))
		}
	}
	return sent, nil
}
