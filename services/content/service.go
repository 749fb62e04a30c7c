package content

import (
	"context"
	"fmt"
	"mime/multipart"

	"arakucamp/config"
	"arakucamp/database/repository"
	"arakucamp/models"
	"arakucamp/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService serves the marketing site: gallery, testimonials, and the
// public rate card.
type ContentService interface {
	ListGallery() ([]models.GalleryImage, error)
	UploadGalleryImage(ctx context.Context, file multipart.File, caption string) (*models.GalleryImage, error)
	ListTestimonials() ([]models.Testimonial, error)
	AddTestimonial(author, location, quote string, rating int) (*models.Testimonial, error)
	RateCard() models.RateCard
}

type DefaultContentService struct {
	Repo repository.ContentRepository
}

func (s *DefaultContentService) ListGallery() ([]models.GalleryImage, error) {
	return s.Repo.ListGallery()
}

// UploadGalleryImage pushes the file to Cloudinary under the gallery folder
// and records the hosted URL.
func (s *DefaultContentService) UploadGalleryImage(ctx context.Context, file multipart.File, caption string) (*models.GalleryImage, error) {
	cld, err := utils.Cloudinary()
	if err != nil {
		return nil, err
	}

	publicID := "gallery/" + uuid.NewString()
	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   "arakucamp",
	})
	if err != nil {
		return nil, fmt.Errorf("gallery upload failed: %w", err)
	}

	image := &models.GalleryImage{
		ID:       uuid.NewString(),
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
		Caption:  caption,
	}
	if err := s.Repo.AddGalleryImage(image); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("gallery image uploaded",
		zap.String("publicId", resp.PublicID),
		zap.String("url", resp.SecureURL))
	return image, nil
}

func (s *DefaultContentService) ListTestimonials() ([]models.Testimonial, error) {
	return s.Repo.ListTestimonials()
}

func (s *DefaultContentService) AddTestimonial(author, location, quote string, rating int) (*models.Testimonial, error) {
	if author == "" || quote == "" {
		return nil, fmt.Errorf("author and quote are required")
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	testimonial := &models.Testimonial{
		ID:       uuid.NewString(),
		Author:   author,
		Location: location,
		Quote:    quote,
		Rating:   rating,
	}
	if err := s.Repo.AddTestimonial(testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// RateCard exposes the configured pricing so the marketing pages and the
// booking wizard quote the same numbers.
func (s *DefaultContentService) RateCard() models.RateCard {
	cfg := config.AppConfig
	return models.RateCard{
		NightlyRate:     cfg.TentNightlyRate,
		TaxRate:         cfg.TaxRate,
		AdvanceFraction: cfg.AdvanceFraction,
		Currency:        "INR",
		OpenMonths:      cfg.OpenMonths,
	}
}
