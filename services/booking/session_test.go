package booking

import (
	"context"
	"testing"
	"time"

	"arakucamp/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client, time.Minute), mr
}

func TestSessionStoreDraftRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	draft := &models.BookingDraft{
		SessionID: "sess-1",
		CheckIn:   "2026-12-05",
		CheckOut:  "2026-12-07",
		Guests:    4,
	}
	require.NoError(t, store.SaveDraft(ctx, draft))

	loaded, err := store.LoadDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, draft.CheckIn, loaded.CheckIn)
	assert.Equal(t, draft.Guests, loaded.Guests)

	require.NoError(t, store.DeleteDraft(ctx, "sess-1"))
	_, err = store.LoadDraft(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStoreMissingDraft(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.LoadDraft(context.Background(), "never-created")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStoreCorruptBlobReadsAsNoSession(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set(draftKeyPrefix+"sess-1", "{not json")

	_, err := store.LoadDraft(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStoreDraftExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDraft(ctx, &models.BookingDraft{SessionID: "sess-1"}))
	mr.FastForward(2 * time.Minute)

	_, err := store.LoadDraft(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStoreConfirmationRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	record := &models.ConfirmationRecord{
		BookingDraft: models.BookingDraft{
			SessionID:       "sess-1",
			ReferenceNumber: "AVC-12345678",
		},
		PaymentStatus: models.PaymentAdvancePaid,
	}
	require.NoError(t, store.SaveConfirmation(ctx, record))

	loaded, err := store.LoadConfirmation(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "AVC-12345678", loaded.ReferenceNumber)
	assert.Equal(t, models.PaymentAdvancePaid, loaded.PaymentStatus)

	require.NoError(t, store.DeleteConfirmation(ctx, "sess-1"))
	_, err = store.LoadConfirmation(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStoreOrderIndex(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.IndexOrder(ctx, "order_1", "sess-1"))

	sessionID, err := store.SessionIDByOrder(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)

	_, err = store.SessionIDByOrder(ctx, "order_unknown")
	assert.ErrorIs(t, err, ErrNoSession)
}
