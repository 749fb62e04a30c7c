package booking

import (
	"arakucamp/models"
)

// ComputePricing derives the price split for a tent selection. It is a pure
// function of its inputs; callers recompute rather than trust a stored value.
//
// Three pricing sources coexist, first match wins:
//  1. per-tent amounts sent with the availability snapshot (primary),
//  2. a legacy aggregate amount on older snapshots (tax backed out at 18%),
//  3. a local rate-card fallback when the snapshot carries no pricing.
func ComputePricing(snapshot *models.AvailabilitySnapshot, selectedTents int, checkIn, checkOut string, rates Inventory) models.Pricing {
	if snapshot != nil && snapshot.TotalAmountPerTent > 0 {
		return perTentPricing(snapshot, selectedTents)
	}
	if snapshot != nil && snapshot.TotalAmount > 0 {
		return aggregatePricing(snapshot)
	}
	return fallbackPricing(selectedTents, checkIn, checkOut, rates)
}

func perTentPricing(snapshot *models.AvailabilitySnapshot, selectedTents int) models.Pricing {
	n := float64(selectedTents)
	total := snapshot.TotalAmountPerTent * n

	advancePerTent := snapshot.AdvanceAmountPerTent
	if advancePerTent <= 0 {
		advancePerTent = snapshot.TotalAmountPerTent * 0.5
	}
	advance := advancePerTent * n

	// Per-tent amounts are tax inclusive.
	return models.Pricing{
		Subtotal: total,
		Tax:      0,
		Total:    total,
		Advance:  advance,
		Balance:  total - advance,
		Nights:   snapshot.Nights,
	}
}

func aggregatePricing(snapshot *models.AvailabilitySnapshot) models.Pricing {
	total := snapshot.TotalAmount
	subtotal := total / 1.18
	return models.Pricing{
		Subtotal: subtotal,
		Tax:      total - subtotal,
		Total:    total,
		Advance:  snapshot.AdvanceAmount,
		Balance:  snapshot.RemainingAmount,
		Nights:   snapshot.Nights,
	}
}

func fallbackPricing(selectedTents int, checkIn, checkOut string, rates Inventory) models.Pricing {
	nights := 0
	start, errIn := ParseLocalDate(checkIn)
	end, errOut := ParseLocalDate(checkOut)
	if errIn == nil && errOut == nil {
		nights = NightsBetween(start, end)
	}

	subtotal := rates.NightlyRate * float64(selectedTents) * float64(nights)
	tax := subtotal * rates.TaxRate
	total := subtotal + tax
	advance := total * rates.AdvanceFraction
	return models.Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Advance:  advance,
		Balance:  total - advance,
		Nights:   nights,
	}
}
