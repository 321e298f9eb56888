package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"barberbook/config"
	"barberbook/models"
	"barberbook/services/sms"
	"barberbook/services/tasks"
	"barberbook/utils"
)

// ReminderDeps are the collaborators the reminder worker needs.
type ReminderDeps struct {
	Appointments AppointmentSource
	Sender       sms.Sender
	Messages     MessageLogger
}

// AppointmentSource resolves an appointment by id; (nil, nil) when it no
// longer exists.
type AppointmentSource interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
}

// MessageLogger records sent reminders in the audit log.
type MessageLogger interface {
	LogMessage(ctx context.Context, log *models.MessageLog) error
}

// InitReminderWorker runs the asynq worker in the background.
func InitReminderWorker(deps ReminderDeps) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(deps))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker gave up after max attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleReminderTask(deps ReminderDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		// The appointment may have been canceled after the reminder was
		// queued. Drop the task quietly in that case.
		appt, err := deps.Appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return fmt.Errorf("failed to look up appointment %s: %w", p.AppointmentID, err)
		}
		if appt == nil {
			logger.Info("dropping reminder for canceled appointment",
				zap.String("appointmentId", p.AppointmentID))
			return nil
		}

		body := fmt.Sprintf("Reminder: your appointment is today at %s. See you soon!", p.StartTime)
		if err := deps.Sender.Send(ctx, p.Phone, body); err != nil {
			logger.Error("failed to send reminder sms",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}

		if err := deps.Messages.LogMessage(ctx, &models.MessageLog{
			ID:     uuid.New().String(),
			Phone:  p.Phone,
			Kind:   "reminder",
			SentAt: time.Now(),
			Status: "sent",
		}); err != nil {
			logger.Warn("failed to log reminder message", zap.Error(err))
		}
		return nil
	}
}
