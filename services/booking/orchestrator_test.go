package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"arakucamp/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpenMonths = []int{11, 12, 1, 2}

var testInventory = Inventory{
	TotalTents:      10,
	ReservedTents:   2,
	NightlyRate:     2250,
	TaxRate:         0.18,
	AdvanceFraction: 0.5,
}

func newTestWizard(t *testing.T) (*DefaultBookingWizard, *fakeBookingRepo, *fakeGateway, *fakeAvailability) {
	t.Helper()

	mr := miniredis.RunT(t)
	store := NewRedisSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Minute)

	repo := newFakeBookingRepo()
	gateway := &fakeGateway{verifyResult: true}
	availability := &fakeAvailability{snapshot: openSnapshot(10, 5310)}

	w := NewDefaultBookingWizard(
		store, availability, repo, gateway, &fakeExpiry{},
		testInventory, testOpenMonths, "rzp_test_key", 30*time.Minute,
	)
	w.Poller.WithInterval(time.Millisecond)
	return w, repo, gateway, availability
}

// nextSeasonDates returns a future two-night stay inside the open season.
func nextSeasonDates() (string, string) {
	now := time.Now()
	checkIn := time.Date(now.Year(), time.November, 10, 0, 0, 0, 0, time.Local)
	if !checkIn.After(now) {
		checkIn = checkIn.AddDate(1, 0, 0)
	}
	return checkIn.Format(dateLayout), checkIn.AddDate(0, 0, 2).Format(dateLayout)
}

// nextOffSeasonDates returns a future stay in the monsoon closure.
func nextOffSeasonDates() (string, string) {
	now := time.Now()
	checkIn := time.Date(now.Year(), time.June, 10, 0, 0, 0, 0, time.Local)
	if !checkIn.After(now) {
		checkIn = checkIn.AddDate(1, 0, 0)
	}
	return checkIn.Format(dateLayout), checkIn.AddDate(0, 0, 2).Format(dateLayout)
}

func TestStartSessionHappyPath(t *testing.T) {
	w, _, _, availability := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, draft.SessionID)
	assert.Equal(t, checkIn, draft.CheckIn)
	assert.Equal(t, 4, draft.Guests)
	require.NotNil(t, draft.Availability)
	assert.Equal(t, 2, draft.Availability.Nights)
	assert.Equal(t, 1, availability.calls)

	loaded, err := w.GetSession(context.Background(), draft.SessionID)
	require.NoError(t, err)
	assert.Equal(t, draft.SessionID, loaded.SessionID)
}

func TestStartSessionRejectsMissingInput(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		guests   int
	}{
		{"no check-in", "", checkOut, 2},
		{"no check-out", checkIn, "", 2},
		{"no guests", checkIn, checkOut, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := w.StartSession(context.Background(), tc.checkIn, tc.checkOut, tc.guests)
			var step *StepError
			require.ErrorAs(t, err, &step)
			assert.Equal(t, "Missing Information", step.Title)
		})
	}
}

func TestStartSessionRejectsInvalidDates(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	// Check-out on or before check-in.
	_, err := w.StartSession(context.Background(), checkOut, checkIn, 2)
	var step *StepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Invalid Dates", step.Title)

	// Past check-in.
	_, err = w.StartSession(context.Background(), "2020-11-10", "2020-11-12", 2)
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Invalid Dates", step.Title)
}

func TestStartSessionAllowsSameDayStay(t *testing.T) {
	w, _, _, availability := newTestWizard(t)
	checkIn, _ := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkIn, 2)
	require.NoError(t, err)
	require.NotNil(t, draft.Availability)
	assert.Equal(t, 0, draft.Availability.Nights)
	assert.Equal(t, 1, availability.calls)

	snap, err := w.CheckAvailability(context.Background(), checkIn, checkIn)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Nights)
}

func TestStartSessionAcceptsTodayCheckIn(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	now := time.Now()
	checkIn := now.Format(dateLayout)
	checkOut := now.AddDate(0, 0, 1).Format(dateLayout)

	// A check-in dated today is never "in the past", whatever the local
	// clock reads. Outside the season the only acceptable refusal is the
	// seasonal one.
	_, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	if err != nil {
		var step *StepError
		require.ErrorAs(t, err, &step)
		assert.Equal(t, "Seasonal closure", step.Title)
	}
}

func TestStartSessionSeasonalClosure(t *testing.T) {
	w, _, _, availability := newTestWizard(t)
	checkIn, checkOut := nextOffSeasonDates()

	_, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	var step *StepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Seasonal closure", step.Title)

	// The closed season is decided locally; inventory is never consulted.
	assert.Zero(t, availability.calls)
}

func TestSelectTentsComputesPricing(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 4)
	require.NoError(t, err)

	draft, err = w.SelectTents(context.Background(), draft.SessionID, []string{"T1", "T2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, draft.SelectedTents)
	require.NotNil(t, draft.Pricing)
	assert.InDelta(t, 10620, draft.Pricing.Total, 0.01)
	assert.InDelta(t, 5310, draft.Pricing.Advance, 0.01)
	assert.InDelta(t, 5310, draft.Pricing.Balance, 0.01)
}

func TestSelectTentsMarksDraftSnapshot(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 4)
	require.NoError(t, err)

	draft, err = w.SelectTents(context.Background(), draft.SessionID, []string{"T1", "T2"})
	require.NoError(t, err)
	assert.Equal(t, models.TentBooked, draft.Availability.Tents[0].Status)
	assert.Equal(t, models.TentBooked, draft.Availability.Tents[1].Status)
	assert.Equal(t, 2, draft.Availability.BookedTents)
	assert.Equal(t, 8, draft.Availability.AvailableTents)

	// Reselecting a smaller set releases the dropped tent on the guest's map.
	draft, err = w.SelectTents(context.Background(), draft.SessionID, []string{"T2"})
	require.NoError(t, err)
	assert.Equal(t, models.TentAvailable, draft.Availability.Tents[0].Status)
	assert.Equal(t, 1, draft.Availability.BookedTents)
}

func TestSubmitDetailsTruncatesRequests(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	ctx := context.Background()
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(ctx, checkIn, checkOut, 2)
	require.NoError(t, err)
	_, err = w.SelectTents(ctx, draft.SessionID, []string{"T1"})
	require.NoError(t, err)

	long := strings.Repeat("x", 700)
	draft, err = w.SubmitDetails(ctx, draft.SessionID, models.CustomerDetails{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210",
		Requests: long, AgreeTerms: true,
	})
	require.NoError(t, err)
	assert.Len(t, draft.CustomerDetails.Requests, 500)
}

func TestSelectTentsRejectsEmptySelection(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	require.NoError(t, err)

	_, err = w.SelectTents(context.Background(), draft.SessionID, nil)
	var step *StepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "No Tents Selected", step.Title)
}

func TestSelectTentsRejectsUnavailableTent(t *testing.T) {
	w, _, _, availability := newTestWizard(t)
	availability.snapshot.Tents[2].Status = models.TentBooked
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	require.NoError(t, err)

	_, err = w.SelectTents(context.Background(), draft.SessionID, []string{"T3"})
	var step *StepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Tent Unavailable", step.Title)

	// Unknown tent numbers are rejected the same way.
	_, err = w.SelectTents(context.Background(), draft.SessionID, []string{"T99"})
	require.ErrorAs(t, err, &step)
}

func TestToggleTentAddsAndRemoves(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	require.NoError(t, err)

	draft, err = w.ToggleTent(context.Background(), draft.SessionID, "T1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, draft.SelectedTents)
	require.NotNil(t, draft.Pricing)

	draft, err = w.ToggleTent(context.Background(), draft.SessionID, "T1")
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedTents)
	assert.Nil(t, draft.Pricing)
}

func TestToggleTentIgnoresUnavailable(t *testing.T) {
	w, _, _, availability := newTestWizard(t)
	availability.snapshot.Tents[0].Status = models.TentBooked
	availability.snapshot.Tents[1].Status = models.TentReserved
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	require.NoError(t, err)

	for _, tent := range []string{"T1", "T2", "T42"} {
		draft, err = w.ToggleTent(context.Background(), draft.SessionID, tent)
		require.NoError(t, err)
		assert.Empty(t, draft.SelectedTents)
	}
}

func TestSubmitDetailsValidation(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	require.NoError(t, err)

	// No tents yet.
	_, err = w.SubmitDetails(context.Background(), draft.SessionID, models.CustomerDetails{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210", AgreeTerms: true,
	})
	var step *StepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "No Tents Selected", step.Title)

	_, err = w.SelectTents(context.Background(), draft.SessionID, []string{"T1"})
	require.NoError(t, err)

	// Missing contact fields.
	_, err = w.SubmitDetails(context.Background(), draft.SessionID, models.CustomerDetails{
		Name: "Asha", AgreeTerms: true,
	})
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Missing Information", step.Title)

	// Terms not accepted.
	_, err = w.SubmitDetails(context.Background(), draft.SessionID, models.CustomerDetails{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210",
	})
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Terms Required", step.Title)

	// Valid.
	draft, err = w.SubmitDetails(context.Background(), draft.SessionID, models.CustomerDetails{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210", AgreeTerms: true,
	})
	require.NoError(t, err)
	require.NotNil(t, draft.CustomerDetails)
	assert.Equal(t, "Asha", draft.CustomerDetails.Name)
}

func TestCancelSessionRemovesDraft(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, checkOut := nextSeasonDates()

	draft, err := w.StartSession(context.Background(), checkIn, checkOut, 2)
	require.NoError(t, err)

	require.NoError(t, w.CancelSession(context.Background(), draft.SessionID))
	_, err = w.GetSession(context.Background(), draft.SessionID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCheckAvailabilityDefaultsCheckOut(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	checkIn, _ := nextSeasonDates()

	snap, err := w.CheckAvailability(context.Background(), checkIn, "")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Nights)

	_, err = w.CheckAvailability(context.Background(), "not-a-date", "")
	var step *StepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, "Invalid Dates", step.Title)
}
