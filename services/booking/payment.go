package booking

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"arakucamp/models"
	"arakucamp/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiatePayment turns the draft into a persistent booking and opens a
// checkout order for the advance. The booking starts PENDING; its tents count
// as taken from this moment so two guests cannot pay for the same tent.
func (w *DefaultBookingWizard) InitiatePayment(ctx context.Context, sessionID, firebaseUID string) (*models.PaymentInit, error) {
	logger := utils.GetLogger()

	draft, err := w.Store.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(draft.SelectedTents) == 0 {
		return nil, NewStepError("No Tents Selected", "Please select at least one tent before paying.")
	}
	if draft.CustomerDetails == nil {
		return nil, NewStepError("Missing Information", "Please fill in your contact details before paying.")
	}

	// Stored pricing is never trusted at the payment boundary.
	pricing := ComputePricing(draft.Availability, len(draft.SelectedTents), draft.CheckIn, draft.CheckOut, w.Inventory)
	draft.Pricing = &pricing

	reference := newReferenceNumber()
	advancePaise := int64(math.Round(pricing.Advance * 100))
	orderID, err := w.Gateway.CreateOrder(advancePaise, "INR", reference, map[string]interface{}{
		"referenceNumber": reference,
		"sessionId":       sessionID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.Booking{
		ID:              uuid.NewString(),
		ReferenceNumber: reference,
		RazorpayOrderID: orderID,
		FirebaseUID:     firebaseUID,
		CustomerName:    draft.CustomerDetails.Name,
		CustomerPhone:   draft.CustomerDetails.Phone,
		CustomerEmail:   draft.CustomerDetails.Email,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		TentNumbers:     draft.SelectedTents,
		NumberOfGuests:  draft.Guests,
		TotalAmount:     pricing.Total,
		AdvanceAmount:   pricing.Advance,
		BalanceAmount:   pricing.Balance,
		BookingStatus:   models.BookingPending,
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := w.Repo.Create(record); err != nil {
		return nil, err
	}

	if w.Expiry != nil {
		if err := w.Expiry.ScheduleExpiry(record.ID, w.HoldDuration); err != nil {
			// The hold still expires with the session TTL; the tents just
			// stay blocked until someone looks at the stuck booking.
			logger.Warn("failed to schedule booking expiry",
				zap.String("bookingId", record.ID), zap.Error(err))
		}
	}

	draft.FirebaseUID = firebaseUID
	draft.ReferenceNumber = reference
	draft.RazorpayOrderID = orderID
	if err := w.Store.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}
	if err := w.Store.IndexOrder(ctx, orderID, sessionID); err != nil {
		return nil, err
	}

	logger.Info("payment initiated",
		zap.String("referenceNumber", reference),
		zap.String("razorpayOrderId", orderID),
		zap.Float64("advance", pricing.Advance))

	return &models.PaymentInit{
		ReferenceNumber: reference,
		RazorpayOrderID: orderID,
		RazorpayKeyID:   w.RazorpayKeyID,
		Amount:          advancePaise,
		Currency:        "INR",
		PrefillName:     draft.CustomerDetails.Name,
		PrefillEmail:    draft.CustomerDetails.Email,
		PrefillContact:  draft.CustomerDetails.Phone,
		TotalAmount:     pricing.Total,
	}, nil
}

// VerifyPayment checks the checkout widget's success callback. A valid
// signature settles the order; an invalid one marks the payment failed.
func (w *DefaultBookingWizard) VerifyPayment(ctx context.Context, proof models.PaymentProof) (*models.PaymentState, error) {
	if proof.RazorpayOrderID == "" || proof.RazorpayPaymentID == "" || proof.RazorpaySignature == "" {
		return nil, NewStepError("Payment Verification Failed", "The payment response was incomplete. Please contact support if you were charged.")
	}

	if !w.Gateway.VerifySignature(proof.RazorpayOrderID, proof.RazorpayPaymentID, proof.RazorpaySignature) {
		if err := w.Repo.SetPaymentState(proof.RazorpayOrderID, models.BookingPending, models.PaymentFailedStatus); err != nil {
			utils.GetLogger().Error("failed to record payment failure",
				zap.String("razorpayOrderId", proof.RazorpayOrderID), zap.Error(err))
		}
		return nil, NewStepError("Payment Verification Failed", "We could not verify your payment. Please contact support if you were charged.")
	}

	if err := w.SettleOrder(ctx, proof.RazorpayOrderID); err != nil {
		return nil, err
	}
	return &models.PaymentState{
		BookingStatus: models.BookingConfirmed,
		PaymentStatus: models.PaymentAdvancePaid,
	}, nil
}

// PaymentState reads the authoritative booking state for an order.
func (w *DefaultBookingWizard) PaymentState(ctx context.Context, razorpayOrderID string) (*models.PaymentState, error) {
	record, err := w.Repo.GetByOrderID(razorpayOrderID)
	if err != nil {
		return nil, err
	}
	return &models.PaymentState{
		BookingStatus: record.BookingStatus,
		PaymentStatus: record.PaymentStatus,
	}, nil
}

// AwaitSettlement polls until the order settles or the attempt budget runs
// out. It covers payments that capture after the checkout widget is gone,
// UPI in particular.
func (w *DefaultBookingWizard) AwaitSettlement(ctx context.Context, razorpayOrderID string) (*models.PaymentState, error) {
	settled, err := w.Poller.Await(ctx, razorpayOrderID)
	if err != nil {
		return nil, err
	}
	if !settled {
		return nil, NewStepError("Payment Verification Timeout", "We could not confirm your payment in time. Please check your bookings page or contact support.")
	}
	return &models.PaymentState{
		BookingStatus: models.BookingConfirmed,
		PaymentStatus: models.PaymentAdvancePaid,
	}, nil
}

// SettleOrder marks the booking confirmed with the advance collected and
// converts the wizard draft into a confirmation record. Settling is
// idempotent: the callback, the poller, and a webhook can all land here.
func (w *DefaultBookingWizard) SettleOrder(ctx context.Context, razorpayOrderID string) error {
	if err := w.Repo.SetPaymentState(razorpayOrderID, models.BookingConfirmed, models.PaymentAdvancePaid); err != nil {
		return err
	}

	sessionID, err := w.Store.SessionIDByOrder(ctx, razorpayOrderID)
	if errors.Is(err, ErrNoSession) {
		// Session already expired; the booking record alone is the receipt.
		return nil
	}
	if err != nil {
		return err
	}

	draft, err := w.Store.LoadDraft(ctx, sessionID)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}

	record := &models.ConfirmationRecord{
		BookingDraft:  *draft,
		PaymentStatus: models.PaymentAdvancePaid,
	}
	if err := w.Store.SaveConfirmation(ctx, record); err != nil {
		return err
	}
	if err := w.Store.DeleteDraft(ctx, sessionID); err != nil {
		return err
	}

	utils.GetLogger().Info("booking settled",
		zap.String("razorpayOrderId", razorpayOrderID),
		zap.String("referenceNumber", draft.ReferenceNumber))
	return nil
}

// Confirmation returns the settled booking for the session, if any.
func (w *DefaultBookingWizard) Confirmation(ctx context.Context, sessionID string) (*models.ConfirmationRecord, error) {
	return w.Store.LoadConfirmation(ctx, sessionID)
}

// ClearConfirmation removes everything the wizard holds for the session,
// letting the guest start a fresh booking.
func (w *DefaultBookingWizard) ClearConfirmation(ctx context.Context, sessionID string) error {
	if err := w.Store.DeleteConfirmation(ctx, sessionID); err != nil {
		return err
	}
	return w.Store.DeleteDraft(ctx, sessionID)
}

// newReferenceNumber mints a human-quotable booking reference like
// "AVC-9F2C41AB".
func newReferenceNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "AVC-" + strings.ToUpper(id[:8])
}
