package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tidyhouse/config"
	bookingsRepo "tidyhouse/database/repository/bookings"
	"tidyhouse/models"
	"tidyhouse/services/sms"
	"tidyhouse/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(smsClient sms.Client, repo bookingsRepo.BookingRepository, businessName string) {
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
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(smsClient, repo, businessName))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(smsClient sms.Client, repo bookingsRepo.BookingRepository, businessName string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		// A booking cancelled after the task was enqueued must not text
		// the customer; the task deletion is only best effort.
		booking, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] Failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if booking.Status != models.BookingStatusConfirmed {
			log.Printf("[ReminderHandler] Skipping reminder for %s booking %s", booking.Status, booking.ID)
			return nil
		}

		body := fmt.Sprintf(
			"Hi! This is a reminder from %s. Your cleaning is scheduled for tomorrow (%s, %s). Reply CANCEL to cancel.",
			businessName, p.Date, p.TimeSlot,
		)
		if err := smsClient.Send(ctx, p.Phone, body); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder for booking %s: %v", p.BookingID, err)
			return err
		}

		log.Printf("[ReminderHandler] Reminder sent for booking %s", p.BookingID)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
