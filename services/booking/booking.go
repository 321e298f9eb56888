package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barberbook/models"
	"barberbook/services/availability"
	"barberbook/utils"
)

// DefaultBookingService is the production appointment lifecycle.
type DefaultBookingService struct {
	Appointments AppointmentStore
	Types        TypeSource
	Users        UserSource
	Locker       DateLocker
	Reminders    ReminderScheduler

	// Location is the business timezone used for "upcoming" cutoffs.
	Location *time.Location

	// Now is a test hook; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.Location)
	}
	return time.Now().In(s.Location)
}

// Create books an appointment. The requested interval is re-checked
// against existing bookings while holding the per-date lock, so two
// concurrent creates for overlapping slots cannot both land.
func (s *DefaultBookingService) Create(ctx context.Context, req CreateRequest) (*models.Appointment, error) {
	existing, err := s.Appointments.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing appointment: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateID
	}

	apptType, err := s.Types.GetByName(ctx, req.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve appointment type: %w", err)
	}
	if apptType == nil {
		return nil, ErrInvalidType
	}

	endTime, err := availability.AddMinutes(req.StartTime, apptType.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", req.StartTime, err)
	}

	unlock, err := s.Locker.Lock(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	defer unlock()

	taken, err := s.Appointments.HasOverlap(ctx, req.Date, req.StartTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ID:        req.ID,
		Phone:     req.Phone,
		Type:      req.Type,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		Note:      req.Note,
		CreatedAt: s.now(),
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(appt); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// Cancel verifies ownership by phone, writes the audit snapshot and
// deletes the appointment. The snapshot and the delete are two separate
// writes: a crash between them leaves the appointment in place with no
// audit record.
func (s *DefaultBookingService) Cancel(ctx context.Context, appointmentID, phone string) (*models.CanceledAppointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	if appt.Phone != phone {
		return nil, ErrPhoneMismatch
	}

	userName := "Unknown"
	user, err := s.Users.GetByPhone(ctx, phone)
	if err != nil {
		utils.GetLogger().Warn("failed to resolve user name for cancellation",
			zap.String("phone", phone), zap.Error(err))
	} else if user != nil {
		userName = user.Name
	}

	rec := &models.CanceledAppointment{
		ID:         uuid.New().String(),
		Date:       appt.Date,
		StartTime:  appt.StartTime,
		Phone:      appt.Phone,
		Type:       appt.Type,
		CanceledAt: s.now(),
		UserName:   userName,
	}
	if err := s.Appointments.CreateCancellation(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to record cancellation: %w", err)
	}
	if err := s.Appointments.Delete(ctx, appointmentID); err != nil {
		return nil, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return rec, nil
}

// UpcomingForPhone lists the customer's appointments that have not
// started yet, soonest first.
func (s *DefaultBookingService) UpcomingForPhone(ctx context.Context, phone string) ([]models.Appointment, error) {
	now := s.now()
	today := now.Format(availability.DateLayout)
	timeOfDay := now.Format("15:04")
	appts, err := s.Appointments.GetUpcomingByPhone(ctx, phone, today, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming appointments: %w", err)
	}
	return appts, nil
}
