package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"arakucamp/config"
	"arakucamp/database/repository"
	"arakucamp/services/tasks"

	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the async worker that releases tents held by unpaid
// bookings once their payment hold lapses.
func InitExpiryWorker(repo repository.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingExpire, handleBookingExpire(repo))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ExpiryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingExpire(repo repository.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryHandler] Invalid payload: %v", err)
			return err
		}

		cancelled, err := repo.CancelIfUnpaid(p.BookingID)
		if err != nil {
			log.Printf("[ExpiryHandler] Failed to expire booking %s: %v", p.BookingID, err)
			return err
		}
		if cancelled {
			log.Printf("[ExpiryHandler] Cancelled unpaid booking %s, tents released", p.BookingID)
		}
		return nil
	}
}
