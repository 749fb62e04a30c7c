package booking

import (
	"fmt"
	"sync"
	"time"

	"arakucamp/models"
)

// fakeBookingRepo is an in-memory BookingRepository for wizard tests.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, fmt.Errorf("booking not found: %s", id)
}

func (r *fakeBookingRepo) GetByOrderID(razorpayOrderID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.RazorpayOrderID == razorpayOrderID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("booking not found for order %s", razorpayOrderID)
}

func (r *fakeBookingRepo) GetByReference(referenceNumber string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ReferenceNumber == referenceNumber {
			copied := *b
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("booking not found for reference %s", referenceNumber)
}

func (r *fakeBookingRepo) ListByUser(firebaseUID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.FirebaseUID == firebaseUID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListOverlapping(checkIn, checkOut string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingStatus != models.BookingPending && b.BookingStatus != models.BookingConfirmed {
			continue
		}
		if b.CheckIn <= checkOut && b.CheckOut >= checkIn {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) SetPaymentState(razorpayOrderID string, booking models.BookingStatus, payment models.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.RazorpayOrderID == razorpayOrderID {
			b.BookingStatus = booking
			b.PaymentStatus = payment
			b.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("booking for order %s not found", razorpayOrderID)
}

func (r *fakeBookingRepo) CancelIfUnpaid(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, fmt.Errorf("booking not found: %s", id)
	}
	if b.BookingStatus == models.BookingPending && b.PaymentStatus == models.PaymentPending {
		b.BookingStatus = models.BookingCancelled
		return true, nil
	}
	return false, nil
}

// fakeAvailability serves a canned snapshot and counts how often it is asked.
type fakeAvailability struct {
	snapshot *models.AvailabilitySnapshot
	calls    int
}

func (f *fakeAvailability) Snapshot(checkIn, checkOut string, nights int) (*models.AvailabilitySnapshot, error) {
	f.calls++
	snap := *f.snapshot
	snap.CheckIn = checkIn
	snap.CheckOut = checkOut
	snap.Nights = nights
	return &snap, nil
}

// fakeGateway is a payment Gateway with scripted behavior.
type fakeGateway struct {
	mu           sync.Mutex
	orderSeq     int
	verifyResult bool
	paidResult   bool
	paidErr      error
	created      []int64 // amounts, in paise
}

func (g *fakeGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orderSeq++
	g.created = append(g.created, amount)
	return fmt.Sprintf("order_%d", g.orderSeq), nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.verifyResult
}

func (g *fakeGateway) OrderPaid(orderID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paidResult, g.paidErr
}

// fakeExpiry records scheduled expirations.
type fakeExpiry struct {
	mu        sync.Mutex
	scheduled []string
}

func (f *fakeExpiry) ScheduleExpiry(bookingID string, delay time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, bookingID)
	return nil
}

// openSnapshot builds a small all-available snapshot with per-tent pricing.
func openSnapshot(tents int, perTent float64) *models.AvailabilitySnapshot {
	snap := &models.AvailabilitySnapshot{
		Nights:               1,
		TotalTents:           tents,
		AvailableTents:       tents,
		TotalAmountPerTent:   perTent,
		AdvanceAmountPerTent: perTent * 0.5,
	}
	for i := 1; i <= tents; i++ {
		snap.Tents = append(snap.Tents, models.Tent{
			TentNumber: fmt.Sprintf("T%d", i),
			Status:     models.TentAvailable,
		})
	}
	return snap
}
