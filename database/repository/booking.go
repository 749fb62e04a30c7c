// database/repository/booking.go
package repository

import (
	"arakucamp/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByOrderID(razorpayOrderID string) (*models.Booking, error)
	GetByReference(referenceNumber string) (*models.Booking, error)
	ListByUser(firebaseUID string) ([]models.Booking, error)
	// ListOverlapping returns bookings that hold tents for any day of the
	// stay [checkIn, checkOut], PENDING and CONFIRMED only.
	ListOverlapping(checkIn, checkOut string) ([]models.Booking, error)
	SetPaymentState(razorpayOrderID string, booking models.BookingStatus, payment models.PaymentStatus) error
	// CancelIfUnpaid flips a booking to CANCELLED only while it is still
	// PENDING with no payment collected. Returns true when it cancelled.
	CancelIfUnpaid(id string) (bool, error)
}
