package booking

import (
	"context"
	"time"

	"arakucamp/models"
	"arakucamp/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession validates the stay dates and opens a new wizard session. The
// seasonal gate runs before any inventory lookup: out-of-season dates never
// touch the booking collection.
func (w *DefaultBookingWizard) StartSession(ctx context.Context, checkIn, checkOut string, guests int) (*models.BookingDraft, error) {
	if checkIn == "" || checkOut == "" || guests <= 0 {
		return nil, NewStepError("Missing Information", "Please select your check-in and check-out dates and the number of guests.")
	}

	start, err := ParseLocalDate(checkIn)
	if err != nil {
		return nil, NewStepError("Invalid Dates", "Please select valid check-in and check-out dates.")
	}
	end, err := ParseLocalDate(checkOut)
	if err != nil {
		return nil, NewStepError("Invalid Dates", "Please select valid check-in and check-out dates.")
	}
	if end.Before(start) {
		return nil, NewStepError("Invalid Dates", "Check-out date cannot be before the check-in date.")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if start.Before(today) {
		return nil, NewStepError("Invalid Dates", "Check-in date cannot be in the past.")
	}

	if !rangeInOpenMonths(start, end, w.OpenMonths) {
		return nil, NewStepError("Seasonal closure", "The resort is open from November to February. Please pick dates within the camping season.")
	}

	nights := NightsBetween(start, end)
	snapshot, err := w.Availability.Snapshot(checkIn, checkOut, nights)
	if err != nil {
		return nil, err
	}

	draft := &models.BookingDraft{
		SessionID:    uuid.NewString(),
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       guests,
		Availability: snapshot,
	}
	if err := w.Store.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking session started",
		zap.String("sessionId", draft.SessionID),
		zap.String("checkIn", checkIn),
		zap.String("checkOut", checkOut),
		zap.Int("guests", guests))
	return draft, nil
}

func (w *DefaultBookingWizard) GetSession(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return w.Store.LoadDraft(ctx, sessionID)
}

func (w *DefaultBookingWizard) CancelSession(ctx context.Context, sessionID string) error {
	return w.Store.DeleteDraft(ctx, sessionID)
}

// CheckAvailability serves the sessionless availability lookup. It applies the
// same date validation and seasonal gate as StartSession but stores nothing.
func (w *DefaultBookingWizard) CheckAvailability(ctx context.Context, checkIn, checkOut string) (*models.AvailabilitySnapshot, error) {
	start, err := ParseLocalDate(checkIn)
	if err != nil {
		return nil, NewStepError("Invalid Dates", "Please select valid check-in and check-out dates.")
	}
	if checkOut == "" {
		checkOut = start.AddDate(0, 0, 1).Format(dateLayout)
	}
	end, err := ParseLocalDate(checkOut)
	if err != nil || end.Before(start) {
		return nil, NewStepError("Invalid Dates", "Check-out date cannot be before the check-in date.")
	}
	if !rangeInOpenMonths(start, end, w.OpenMonths) {
		return nil, NewStepError("Seasonal closure", "The resort is open from November to February. Please pick dates within the camping season.")
	}
	return w.Availability.Snapshot(checkIn, checkOut, NightsBetween(start, end))
}

// SelectTents replaces the session's tent selection and recomputes pricing.
// Tents that are booked or held for walk-ins cannot be selected.
func (w *DefaultBookingWizard) SelectTents(ctx context.Context, sessionID string, tents []string) (*models.BookingDraft, error) {
	draft, err := w.Store.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(tents) == 0 {
		return nil, NewStepError("No Tents Selected", "Please select at least one tent to continue.")
	}
	previous := make(map[string]bool, len(draft.SelectedTents))
	for _, tent := range draft.SelectedTents {
		previous[tent] = true
	}
	for _, tent := range tents {
		if !previous[tent] && !tentSelectable(draft.Availability, tent) {
			return nil, NewStepError("Tent Unavailable", "Tent "+tent+" is not available for the selected dates.")
		}
	}

	refreshSnapshotSelection(draft.Availability, draft.SelectedTents, tents)
	draft.SelectedTents = tents
	pricing := ComputePricing(draft.Availability, len(tents), draft.CheckIn, draft.CheckOut, w.Inventory)
	draft.Pricing = &pricing
	if err := w.Store.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ToggleTent adds or removes one tent from the selection. Toggling a tent that
// is not selectable is a no-op rather than an error, matching the tent map
// interaction where unavailable tents simply do not respond.
func (w *DefaultBookingWizard) ToggleTent(ctx context.Context, sessionID, tentNumber string) (*models.BookingDraft, error) {
	draft, err := w.Store.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(draft.SelectedTents)+1)
	removed := false
	for _, tent := range draft.SelectedTents {
		if tent == tentNumber {
			removed = true
			continue
		}
		selected = append(selected, tent)
	}
	if !removed {
		// Adding a tent requires it to be open on the tent map.
		if !tentSelectable(draft.Availability, tentNumber) {
			return draft, nil
		}
		selected = append(selected, tentNumber)
	}

	refreshSnapshotSelection(draft.Availability, draft.SelectedTents, selected)
	draft.SelectedTents = selected
	if len(selected) == 0 {
		draft.Pricing = nil
	} else {
		pricing := ComputePricing(draft.Availability, len(selected), draft.CheckIn, draft.CheckOut, w.Inventory)
		draft.Pricing = &pricing
	}
	if err := w.Store.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitDetails records the guest's contact details. Terms must be accepted
// and a tent selection must already exist.
func (w *DefaultBookingWizard) SubmitDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.BookingDraft, error) {
	draft, err := w.Store.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(draft.SelectedTents) == 0 {
		return nil, NewStepError("No Tents Selected", "Please select at least one tent before entering your details.")
	}
	if details.Name == "" || details.Email == "" || details.Phone == "" {
		return nil, NewStepError("Missing Information", "Please fill in your name, email, and phone number.")
	}
	if !details.AgreeTerms {
		return nil, NewStepError("Terms Required", "Please accept the terms and conditions to continue.")
	}
	if len(details.Requests) > maxSpecialRequestLen {
		details.Requests = details.Requests[:maxSpecialRequestLen]
	}

	draft.CustomerDetails = &details
	if err := w.Store.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

const maxSpecialRequestLen = 500

// refreshSnapshotSelection updates the draft's snapshot copy so the guest's
// own picks show as booked on their tent map. The live inventory stays
// authoritative; the next availability fetch replaces this view.
func refreshSnapshotSelection(snapshot *models.AvailabilitySnapshot, previous, current []string) {
	if snapshot == nil {
		return
	}
	prev := make(map[string]bool, len(previous))
	for _, tent := range previous {
		prev[tent] = true
	}
	cur := make(map[string]bool, len(current))
	for _, tent := range current {
		cur[tent] = true
	}

	for i := range snapshot.Tents {
		tent := &snapshot.Tents[i]
		switch {
		case prev[tent.TentNumber] && !cur[tent.TentNumber] && tent.Status == models.TentBooked:
			tent.Status = models.TentAvailable
			snapshot.BookedTents--
			snapshot.AvailableTents++
		case cur[tent.TentNumber] && tent.Status == models.TentAvailable:
			tent.Status = models.TentBooked
			snapshot.AvailableTents--
			snapshot.BookedTents++
		}
	}
}

// tentSelectable reports whether the snapshot lists the tent as available.
// Unknown tent numbers are not selectable.
func tentSelectable(snapshot *models.AvailabilitySnapshot, tentNumber string) bool {
	if snapshot == nil {
		return false
	}
	for _, tent := range snapshot.Tents {
		if tent.TentNumber == tentNumber {
			return tent.Status == models.TentAvailable
		}
	}
	return false
}
