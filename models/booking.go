package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// PaymentStatus tracks how much of the booking price has been collected.
type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "PENDING"
	PaymentAdvancePaid  PaymentStatus = "ADVANCE_PAID"
	PaymentFullyPaid    PaymentStatus = "PAID"
	PaymentFailedStatus PaymentStatus = "FAILED"
)

// Booking is the persistent reservation record created when the guest starts
// paying. It is the server-side authority; the wizard draft is only a staging
// area.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	ReferenceNumber string        `bson:"referenceNumber" json:"referenceNumber"`
	RazorpayOrderID string        `bson:"razorpayOrderId" json:"razorpayOrderId"`
	FirebaseUID     string        `bson:"firebaseUid" json:"firebaseUid"`
	CustomerName    string        `bson:"customerName" json:"customerName"`
	CustomerPhone   string        `bson:"customerPhone" json:"customerPhone"`
	CustomerEmail   string        `bson:"customerEmail" json:"customerEmail"`
	CheckIn         string        `bson:"checkIn" json:"checkIn"`
	CheckOut        string        `bson:"checkOut" json:"checkOut"`
	TentNumbers     []string      `bson:"tentNumbers" json:"tentNumbers"`
	NumberOfGuests  int           `bson:"numberOfGuests" json:"numberOfGuests"`
	TotalAmount     float64       `bson:"totalAmount" json:"totalAmount"`
	AdvanceAmount   float64       `bson:"advanceAmount" json:"advanceAmount"`
	BalanceAmount   float64       `bson:"balanceAmount" json:"balanceAmount"`
	BookingStatus   BookingStatus `bson:"bookingStatus" json:"bookingStatus"`
	PaymentStatus   PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// PaymentProof is the client-side callback payload from the checkout widget.
type PaymentProof struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// PaymentInit is returned when a booking record has been created server-side
// and a checkout order is ready to open.
type PaymentInit struct {
	ReferenceNumber string  `json:"referenceNumber"`
	RazorpayOrderID string  `json:"razorpayOrderId"`
	RazorpayKeyID   string  `json:"razorpayKeyId"`
	Amount          int64   `json:"amount"` // advance, in paise
	Currency        string  `json:"currency"`
	PrefillName     string  `json:"prefillName"`
	PrefillEmail    string  `json:"prefillEmail"`
	PrefillContact  string  `json:"prefillContact"`
	TotalAmount     float64 `json:"totalAmount"`
}

// PaymentState is the polling/verification view of a booking.
type PaymentState struct {
	BookingStatus BookingStatus `json:"bookingStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// Settled reports whether the advance has been collected and the booking
// confirmed, the only outcome that finalizes the wizard.
func (s PaymentState) Settled() bool {
	return s.BookingStatus == BookingConfirmed && s.PaymentStatus == PaymentAdvancePaid
}
