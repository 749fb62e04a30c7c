package models

// ConfirmationRecord is the settled booking handed to the confirmation view.
// It replaces the draft in the session store once payment is verified and is
// cleared when the guest returns home.
type ConfirmationRecord struct {
	BookingDraft
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
