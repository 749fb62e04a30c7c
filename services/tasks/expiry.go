package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"arakucamp/config"

	"github.com/hibiken/asynq"
)

// TypeBookingExpire is the task that cancels an unpaid booking after its
// payment hold runs out.
const TypeBookingExpire = "booking:expire"

// BookingExpirePayload identifies the booking a deferred expiry targets.
type BookingExpirePayload struct {
	BookingID string `json:"bookingId"`
}

// AsynqExpiryScheduler enqueues deferred expiry tasks on the Redis queue.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

func NewAsynqExpiryScheduler() *AsynqExpiryScheduler {
	return &AsynqExpiryScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleExpiry queues a cancellation check for the booking after the delay.
// The handler only cancels bookings still PENDING and unpaid, so settling the
// payment makes the task a no-op.
func (s *AsynqExpiryScheduler) ScheduleExpiry(bookingID string, delay time.Duration) error {
	payload, err := json.Marshal(BookingExpirePayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingExpire, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessIn(delay), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue expiry for booking %s: %w", bookingID, err)
	}
	return nil
}

func (s *AsynqExpiryScheduler) Close() error {
	return s.client.Close()
}
