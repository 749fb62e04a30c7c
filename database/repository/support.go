// File: database/repository/support.go
package repository

import (
	"fmt"
	"time"

	"arakucamp/database"
	"arakucamp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SupportRepository defines the interface for support ticket persistence.
type SupportRepository interface {
	Create(ticket *models.SupportTicket) error
	ListByBooking(bookingID string) ([]models.SupportTicket, error)
}

// MongoSupportRepo implements SupportRepository backed by MongoDB.
type MongoSupportRepo struct {
	coll *mongo.Collection
}

func NewMongoSupportRepo() *MongoSupportRepo {
	return &MongoSupportRepo{coll: database.Collection("support_tickets")}
}

func (r *MongoSupportRepo) Create(ticket *models.SupportTicket) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ticket.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("failed to create support ticket: %w", err)
	}
	return nil
}

func (r *MongoSupportRepo) ListByBooking(bookingID string) ([]models.SupportTicket, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode support tickets: %w", err)
	}
	return tickets, nil
}
