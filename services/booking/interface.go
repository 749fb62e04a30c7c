package booking

import (
	"context"
	"time"

	"arakucamp/database/repository"
	"arakucamp/models"
	"arakucamp/services/payment"
)

// BookingWizardService drives the four-step reservation flow: dates, tents,
// contact details, payment. Every step loads the draft, validates, and writes
// the draft back whole; a failed validation leaves the draft untouched.
type BookingWizardService interface {
	// Step 1: validate the stay and capture an availability snapshot.
	StartSession(ctx context.Context, checkIn, checkOut string, guests int) (*models.BookingDraft, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	CancelSession(ctx context.Context, sessionID string) error

	// CheckAvailability is the sessionless lookup behind the public
	// availability endpoint.
	CheckAvailability(ctx context.Context, checkIn, checkOut string) (*models.AvailabilitySnapshot, error)

	// Step 2: tent selection with pricing recomputed on every change.
	SelectTents(ctx context.Context, sessionID string, tents []string) (*models.BookingDraft, error)
	ToggleTent(ctx context.Context, sessionID, tentNumber string) (*models.BookingDraft, error)

	// Step 3: contact details and terms acceptance.
	SubmitDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.BookingDraft, error)

	// Step 4: create the booking record and checkout order, then settle it
	// through the callback, the poller, or both.
	InitiatePayment(ctx context.Context, sessionID, firebaseUID string) (*models.PaymentInit, error)
	VerifyPayment(ctx context.Context, proof models.PaymentProof) (*models.PaymentState, error)
	PaymentState(ctx context.Context, razorpayOrderID string) (*models.PaymentState, error)
	AwaitSettlement(ctx context.Context, razorpayOrderID string) (*models.PaymentState, error)

	Confirmation(ctx context.Context, sessionID string) (*models.ConfirmationRecord, error)
	ClearConfirmation(ctx context.Context, sessionID string) error
}

// ExpiryScheduler queues a deferred cancellation for a booking that never
// completes payment, releasing its tents.
type ExpiryScheduler interface {
	ScheduleExpiry(bookingID string, delay time.Duration) error
}

// DefaultBookingWizard implements BookingWizardService on the session store,
// the booking repository, and the payment gateway.
type DefaultBookingWizard struct {
	Store        SessionStore
	Availability AvailabilityService
	Repo         repository.BookingRepository
	Gateway      payment.Gateway
	Expiry       ExpiryScheduler
	Poller       *StatusPoller

	Inventory     Inventory
	OpenMonths    []int
	RazorpayKeyID string
	HoldDuration  time.Duration
}

// NewDefaultBookingWizard wires the wizard and its settlement poller. The
// poller shares the wizard's repository, gateway, and settlement path.
func NewDefaultBookingWizard(
	store SessionStore,
	availability AvailabilityService,
	repo repository.BookingRepository,
	gateway payment.Gateway,
	expiry ExpiryScheduler,
	inventory Inventory,
	openMonths []int,
	razorpayKeyID string,
	holdDuration time.Duration,
) *DefaultBookingWizard {
	w := &DefaultBookingWizard{
		Store:         store,
		Availability:  availability,
		Repo:          repo,
		Gateway:       gateway,
		Expiry:        expiry,
		Inventory:     inventory,
		OpenMonths:    openMonths,
		RazorpayKeyID: razorpayKeyID,
		HoldDuration:  holdDuration,
	}
	w.Poller = NewStatusPoller(
		func(orderID string) (models.PaymentState, error) {
			state, err := w.PaymentState(context.Background(), orderID)
			if err != nil {
				return models.PaymentState{}, err
			}
			return *state, nil
		},
		gateway.OrderPaid,
		func(orderID string) error { return w.SettleOrder(context.Background(), orderID) },
	)
	return w
}
