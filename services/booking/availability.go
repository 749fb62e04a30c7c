package booking

import (
	"fmt"
	"math"

	"arakucamp/database/repository"
	"arakucamp/models"
	"arakucamp/utils"

	"go.uber.org/zap"
)

// Inventory describes the fixed tent stock and rate card of the resort.
type Inventory struct {
	TotalTents      int
	ReservedTents   int // daily walk-in reserve, never bookable online
	NightlyRate     float64
	TaxRate         float64
	AdvanceFraction float64
}

// AvailabilityService builds the inventory snapshot a booking session starts
// from.
type AvailabilityService interface {
	Snapshot(checkIn, checkOut string, nights int) (*models.AvailabilitySnapshot, error)
}

// DefaultAvailabilityService derives tent statuses from the bookings that
// overlap the requested stay. The highest-numbered tents form the walk-in
// reserve.
type DefaultAvailabilityService struct {
	Repo      repository.BookingRepository
	Inventory Inventory
}

func (s *DefaultAvailabilityService) Snapshot(checkIn, checkOut string, nights int) (*models.AvailabilitySnapshot, error) {
	logger := utils.GetLogger()

	overlapping, err := s.Repo.ListOverlapping(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping bookings: %w", err)
	}

	booked := make(map[string]bool)
	for _, b := range overlapping {
		for _, tent := range b.TentNumbers {
			booked[tent] = true
		}
	}

	inv := s.Inventory
	snapshot := &models.AvailabilitySnapshot{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		TotalTents: inv.TotalTents,
		Tents:      make([]models.Tent, 0, inv.TotalTents),
	}

	reservedFrom := inv.TotalTents - inv.ReservedTents
	for i := 1; i <= inv.TotalTents; i++ {
		tent := models.Tent{TentNumber: fmt.Sprintf("T%d", i), Status: models.TentAvailable}
		switch {
		case booked[tent.TentNumber]:
			tent.Status = models.TentBooked
			snapshot.BookedTents++
		case i > reservedFrom:
			tent.Status = models.TentReserved
			snapshot.ReservedTents++
		default:
			snapshot.AvailableTents++
		}
		snapshot.Tents = append(snapshot.Tents, tent)
	}

	// Per-tent pricing hints, tax inclusive. Half the total is collected
	// online as advance.
	perTent := math.Round(inv.NightlyRate * float64(nights) * (1 + inv.TaxRate))
	advancePerTent := math.Round(perTent * inv.AdvanceFraction)
	snapshot.TotalAmountPerTent = perTent
	snapshot.AdvanceAmountPerTent = advancePerTent
	snapshot.RemainingAmountPerTent = perTent - advancePerTent
	snapshot.PricingNote = fmt.Sprintf("Price per tent for %d night(s), inclusive of taxes. Pay 50%% advance online, balance at check-in.", nights)

	logger.Debug("availability snapshot built",
		zap.String("checkIn", checkIn),
		zap.String("checkOut", checkOut),
		zap.Int("available", snapshot.AvailableTents),
		zap.Int("booked", snapshot.BookedTents),
		zap.Int("reserved", snapshot.ReservedTents))

	return snapshot, nil
}
