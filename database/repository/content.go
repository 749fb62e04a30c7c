// File: database/repository/content.go
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

// ContentRepository stores marketing-site content: gallery images and
// testimonials.
type ContentRepository interface {
	ListGallery() ([]models.GalleryImage, error)
	AddGalleryImage(image *models.GalleryImage) error
	ListTestimonials() ([]models.Testimonial, error)
	AddTestimonial(testimonial *models.Testimonial) error
}

// MongoContentRepo implements ContentRepository backed by MongoDB.
type MongoContentRepo struct {
	gallery      *mongo.Collection
	testimonials *mongo.Collection
}

func NewMongoContentRepo() *MongoContentRepo {
	return &MongoContentRepo{
		gallery:      database.Collection("gallery"),
		testimonials: database.Collection("testimonials"),
	}
}

func (r *MongoContentRepo) ListGallery() ([]models.GalleryImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.gallery.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}
	return images, nil
}

func (r *MongoContentRepo) AddGalleryImage(image *models.GalleryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	image.CreatedAt = time.Now()
	if _, err := r.gallery.InsertOne(ctx, image); err != nil {
		return fmt.Errorf("failed to add gallery image: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) ListTestimonials() ([]models.Testimonial, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.testimonials.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Testimonial
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return items, nil
}

func (r *MongoContentRepo) AddTestimonial(testimonial *models.Testimonial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	testimonial.CreatedAt = time.Now()
	if _, err := r.testimonials.InsertOne(ctx, testimonial); err != nil {
		return fmt.Errorf("failed to add testimonial: %w", err)
	}
	return nil
}
