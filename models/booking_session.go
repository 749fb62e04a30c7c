package models

// CustomerDetails is the contact information captured at the details step.
type CustomerDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Requests   string `json:"requests,omitempty"`
	AgreeTerms bool   `json:"agreeTerms"`
}

// Pricing is derived from the current tent selection and availability
// snapshot. It is recomputed whenever the selection changes and never trusted
// from storage without recomputation.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Advance  float64 `json:"advance"`
	Balance  float64 `json:"balance"`
	Nights   int     `json:"nights"`
}

// BookingDraft is the in-progress reservation threaded through the four-step
// wizard. It lives in the session store under its session ID and is written
// back whole after each step.
type BookingDraft struct {
	SessionID string `json:"sessionId"`

	// Step 1: dates.
	CheckIn      string                `json:"checkIn"`
	CheckOut     string                `json:"checkOut"`
	Guests       int                   `json:"guests"`
	Availability *AvailabilitySnapshot `json:"availabilityData,omitempty"`

	// Step 2: tents.
	SelectedTents []string `json:"selectedTents,omitempty"`
	Pricing       *Pricing `json:"pricing,omitempty"`

	// Step 3: contact.
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`

	// Step 4: payment handoff.
	FirebaseUID     string `json:"firebaseUid,omitempty"`
	ReferenceNumber string `json:"referenceNumber,omitempty"`
	RazorpayOrderID string `json:"razorpayOrderId,omitempty"`
}
