package booking

import (
	"testing"

	"arakucamp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUserBookingsFiltersByStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	require.NoError(t, repo.Create(&models.Booking{
		ID: "b1", FirebaseUID: "uid-1", BookingStatus: models.BookingConfirmed,
	}))
	require.NoError(t, repo.Create(&models.Booking{
		ID: "b2", FirebaseUID: "uid-1", BookingStatus: models.BookingCancelled,
	}))
	require.NoError(t, repo.Create(&models.Booking{
		ID: "b3", FirebaseUID: "uid-2", BookingStatus: models.BookingConfirmed,
	}))

	svc := &DefaultHistoryService{Repo: repo}

	all, err := svc.ListUserBookings("uid-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Status filter is case-insensitive.
	confirmed, err := svc.ListUserBookings("uid-1", "confirmed")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "b1", confirmed[0].ID)

	cancelled, err := svc.ListUserBookings("uid-1", "CANCELLED")
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "b2", cancelled[0].ID)

	none, err := svc.ListUserBookings("uid-1", "COMPLETED")
	require.NoError(t, err)
	assert.Empty(t, none)
}
