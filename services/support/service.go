package support

import (
	"fmt"

	"arakucamp/database/repository"
	"arakucamp/models"
	"arakucamp/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupportService files guest inquiries about existing bookings.
type SupportService interface {
	SubmitTicket(bookingID, subject, message, customerEmail string) (*models.SupportTicket, error)
	ListTickets(bookingID string) ([]models.SupportTicket, error)
}

type DefaultSupportService struct {
	Repo     repository.SupportRepository
	Bookings repository.BookingRepository
}

// SubmitTicket validates the inquiry and files it against the booking. The
// booking is looked up by reference number first, then by raw ID, since
// guests quote the reference from their confirmation.
func (s *DefaultSupportService) SubmitTicket(bookingID, subject, message, customerEmail string) (*models.SupportTicket, error) {
	if bookingID == "" || subject == "" || message == "" || customerEmail == "" {
		return nil, fmt.Errorf("bookingId, subject, message, and customerEmail are all required")
	}

	booking, err := s.Bookings.GetByReference(bookingID)
	if err != nil {
		booking, err = s.Bookings.GetByID(bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("no booking found for %q", bookingID)
	}

	ticket := &models.SupportTicket{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Subject:       subject,
		Message:       message,
		CustomerEmail: customerEmail,
		Status:        "open",
	}
	if err := s.Repo.Create(ticket); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("support ticket filed",
		zap.String("ticketId", ticket.ID),
		zap.String("bookingId", booking.ID),
		zap.String("subject", subject))
	return ticket, nil
}

func (s *DefaultSupportService) ListTickets(bookingID string) ([]models.SupportTicket, error) {
	return s.Repo.ListByBooking(bookingID)
}
