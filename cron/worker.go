package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fittribe/config"
	bookingRepo "fittribe/database/repository/booking"
	userRepo "fittribe/database/repository/user"
	"fittribe/models"
	"fittribe/services/booking"
	"fittribe/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// completionSweepInterval is how often past sessions are swept to completed.
const completionSweepInterval = time.Hour

// InitReminderWorker runs the async reminder worker in the background. When a
// reminder fires, a notification is appended to the client's account so the
// dashboard picks it up.
func InitReminderWorker(users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(users))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// InitCompletionSweeper periodically flips upcoming bookings whose session has
// ended to completed, so dashboard views stay accurate without a write on read.
func InitCompletionSweeper(bookings bookingRepo.BookingRepository) {
	go func() {
		ticker := time.NewTicker(completionSweepInterval)
		defer ticker.Stop()

		for {
			if n, err := booking.CompleteElapsed(bookings, time.Now()); err != nil {
				log.Printf("[CompletionSweeper] sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("[CompletionSweeper] marked %d bookings completed", n)
			}
			<-ticker.C
		}
	}()
}

func handleReminderTask(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		notification := models.Notification{
			ID:      uuid.New().String(),
			Type:    "session_reminder",
			Message: p.Body,
			Data: map[string]any{
				"bookingId": p.BookingID,
				"fireDate":  p.FireDate,
			},
			CreatedAt: time.Now(),
			Read:      false,
		}

		if err := users.AppendNotification(p.ClientID, notification); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder for booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}
