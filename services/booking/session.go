package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"arakucamp/models"

	"github.com/go-redis/redis/v8"
)

// Storage keys mirror the well-known names the web client used for its
// local copies, namespaced by session ID.
const (
	draftKeyPrefix        = "bookingData:"
	confirmationKeyPrefix = "confirmationData:"
	orderIndexKeyPrefix   = "order:"
)

// SessionStore is the persistence port for the wizard. One draft per session
// ID; a separate confirmation record once payment settles; and an order index
// so the payment callback and the poller can find the session that created a
// checkout order.
type SessionStore interface {
	SaveDraft(ctx context.Context, draft *models.BookingDraft) error
	LoadDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	DeleteDraft(ctx context.Context, sessionID string) error

	SaveConfirmation(ctx context.Context, record *models.ConfirmationRecord) error
	LoadConfirmation(ctx context.Context, sessionID string) (*models.ConfirmationRecord, error)
	DeleteConfirmation(ctx context.Context, sessionID string) error

	IndexOrder(ctx context.Context, orderID, sessionID string) error
	SessionIDByOrder(ctx context.Context, orderID string) (string, error)
}

// RedisSessionStore implements SessionStore on Redis, one JSON blob per key
// with a session TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SaveDraft(ctx context.Context, draft *models.BookingDraft) error {
	return s.setJSON(ctx, draftKeyPrefix+draft.SessionID, draft)
}

func (s *RedisSessionStore) LoadDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	var draft models.BookingDraft
	if err := s.getJSON(ctx, draftKeyPrefix+sessionID, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisSessionStore) DeleteDraft(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, draftKeyPrefix+sessionID).Err()
}

func (s *RedisSessionStore) SaveConfirmation(ctx context.Context, record *models.ConfirmationRecord) error {
	return s.setJSON(ctx, confirmationKeyPrefix+record.SessionID, record)
}

func (s *RedisSessionStore) LoadConfirmation(ctx context.Context, sessionID string) (*models.ConfirmationRecord, error) {
	var record models.ConfirmationRecord
	if err := s.getJSON(ctx, confirmationKeyPrefix+sessionID, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *RedisSessionStore) DeleteConfirmation(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, confirmationKeyPrefix+sessionID).Err()
}

func (s *RedisSessionStore) IndexOrder(ctx context.Context, orderID, sessionID string) error {
	if err := s.Client.Set(ctx, orderIndexKeyPrefix+orderID, sessionID, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to index order %s: %w", orderID, err)
	}
	return nil
}

func (s *RedisSessionStore) SessionIDByOrder(ctx context.Context, orderID string) (string, error) {
	sessionID, err := s.Client.Get(ctx, orderIndexKeyPrefix+orderID).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up order %s: %w", orderID, err)
	}
	return sessionID, nil
}

func (s *RedisSessionStore) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session blob: %w", err)
	}
	if err := s.Client.Set(ctx, key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session blob: %w", err)
	}
	return nil
}

// getJSON treats both a missing key and an unreadable blob as "no booking in
// progress": the affected view redirects to the dates step rather than crash.
func (s *RedisSessionStore) getJSON(ctx context.Context, key string, out interface{}) error {
	data, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNoSession
	}
	if err != nil {
		return fmt.Errorf("failed to read session blob: %w", err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return ErrNoSession
	}
	return nil
}
