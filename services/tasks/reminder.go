package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fittribe/config"
	"fittribe/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how long before the session the reminder fires.
const reminderLead = 24 * time.Hour

// NewReminderTask builds an asynq task for a session reminder payload.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues session reminders on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler using the configured Redis queue DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// ScheduleReminder enqueues a reminder that fires the day before the session.
// Sessions starting sooner than the lead time get the reminder immediately.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, booking models.Booking) error {
	sessionAt, err := time.ParseInLocation("2006-01-02 03:04 PM", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse session time: %w", err)
	}

	fireAt := sessionAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		ClientID:  booking.ClientID,
		Title:     "Upcoming session",
		Body: fmt.Sprintf("Your session with %s is scheduled for %s at %s",
			booking.TrainerName, booking.Date, booking.Time),
		FireDate: fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
