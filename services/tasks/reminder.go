package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"barberbook/models"
	"barberbook/services/availability"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how long before the appointment starts the
// reminder fires.
const ReminderLeadTime = 2 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues reminder tasks on the asynq queue.
type ReminderScheduler struct {
	Client   *asynq.Client
	Location *time.Location
}

// ScheduleReminder queues a reminder that fires ReminderLeadTime before
// the appointment starts. Appointments starting too soon for the lead
// time get no reminder.
func (s *ReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	start, err := time.ParseInLocation(
		availability.DateLayout+" 15:04",
		appt.Date+" "+appt.StartTime,
		s.Location,
	)
	if err != nil {
		return fmt.Errorf("invalid appointment start %s %s: %w", appt.Date, appt.StartTime, err)
	}

	fireAt := start.Add(-ReminderLeadTime)
	if !fireAt.After(time.Now().In(s.Location)) {
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		AppointmentID: appt.ID,
		Phone:         appt.Phone,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
	}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
