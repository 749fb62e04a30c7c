package models

import "time"

// SupportTicket is a guest inquiry about an existing booking.
type SupportTicket struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Subject       string    `bson:"subject" json:"subject"`
	Message       string    `bson:"message" json:"message"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	Status        string    `bson:"status" json:"status"` // "open", "resolved"
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
