// File: database/repository/booking_mongo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"arakucamp/database"
	"arakucamp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository backed by MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoBookingRepo) GetByOrderID(razorpayOrderID string) (*models.Booking, error) {
	return r.findOne(bson.M{"razorpayOrderId": razorpayOrderID})
}

func (r *MongoBookingRepo) GetByReference(referenceNumber string) (*models.Booking, error) {
	return r.findOne(bson.M{"referenceNumber": referenceNumber})
}

func (r *MongoBookingRepo) findOne(filter bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// ListByUser returns all bookings made under the given Firebase UID, newest
// first.
func (r *MongoBookingRepo) ListByUser(firebaseUID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"firebaseUid": firebaseUID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", firebaseUID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListOverlapping returns PENDING and CONFIRMED bookings whose stay touches
// any day of [checkIn, checkOut]. Dates are ISO "YYYY-MM-DD" strings, so
// lexicographic comparison is date comparison.
func (r *MongoBookingRepo) ListOverlapping(checkIn, checkOut string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"bookingStatus": bson.M{"$in": []models.BookingStatus{models.BookingPending, models.BookingConfirmed}},
		"checkIn":       bson.M{"$lte": checkOut},
		"checkOut":      bson.M{"$gte": checkIn},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return bookings, nil
}

// SetPaymentState updates booking and payment status by checkout order ID.
func (r *MongoBookingRepo) SetPaymentState(razorpayOrderID string, booking models.BookingStatus, payment models.PaymentStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"bookingStatus": booking,
		"paymentStatus": payment,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"razorpayOrderId": razorpayOrderID}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking for order %s: %w", razorpayOrderID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking for order %s not found", razorpayOrderID)
	}
	return nil
}

// CancelIfUnpaid releases the tents of a booking whose advance never arrived.
func (r *MongoBookingRepo) CancelIfUnpaid(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":            id,
		"bookingStatus": models.BookingPending,
		"paymentStatus": models.PaymentPending,
	}
	update := bson.M{"$set": bson.M{
		"bookingStatus": models.BookingCancelled,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to expire booking %s: %w", id, err)
	}
	return result.ModifiedCount > 0, nil
}
