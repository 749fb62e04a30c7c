package booking

import (
	"strings"

	"arakucamp/database/repository"
	"arakucamp/models"
)

// HistoryService lists a guest's past and upcoming bookings.
type HistoryService interface {
	// ListUserBookings returns the user's bookings, newest first. A non-empty
	// status filters by booking status, matched case-insensitively.
	ListUserBookings(firebaseUID, status string) ([]models.Booking, error)
}

type DefaultHistoryService struct {
	Repo repository.BookingRepository
}

func (s *DefaultHistoryService) ListUserBookings(firebaseUID, status string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(firebaseUID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return bookings, nil
	}

	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if strings.EqualFold(string(b.BookingStatus), status) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
