package booking

import (
	"testing"

	"arakucamp/models"

	"github.com/stretchr/testify/assert"
)

func TestComputePricingPerTent(t *testing.T) {
	snap := &models.AvailabilitySnapshot{
		Nights:               1,
		TotalAmountPerTent:   1499,
		AdvanceAmountPerTent: 749.5,
	}

	p := ComputePricing(snap, 2, "2026-12-05", "2026-12-06", testInventory)
	assert.InDelta(t, 2998, p.Total, 0.01)
	assert.InDelta(t, 2998, p.Subtotal, 0.01)
	assert.Zero(t, p.Tax)
	assert.InDelta(t, 1499, p.Advance, 0.01)
	assert.InDelta(t, 1499, p.Balance, 0.01)
	assert.Equal(t, 1, p.Nights)
}

func TestComputePricingPerTentDefaultsAdvanceToHalf(t *testing.T) {
	snap := &models.AvailabilitySnapshot{Nights: 2, TotalAmountPerTent: 5000}

	p := ComputePricing(snap, 3, "", "", testInventory)
	assert.InDelta(t, 15000, p.Total, 0.01)
	assert.InDelta(t, 7500, p.Advance, 0.01)
	assert.InDelta(t, 7500, p.Balance, 0.01)
}

func TestComputePricingLegacyAggregate(t *testing.T) {
	snap := &models.AvailabilitySnapshot{
		Nights:          1,
		TotalAmount:     5310,
		AdvanceAmount:   2655,
		RemainingAmount: 2655,
	}

	p := ComputePricing(snap, 2, "", "", testInventory)
	assert.InDelta(t, 5310, p.Total, 0.01)
	assert.InDelta(t, 4500, p.Subtotal, 0.01)
	assert.InDelta(t, 810, p.Tax, 0.01)
	assert.InDelta(t, 2655, p.Advance, 0.01)
	assert.InDelta(t, 2655, p.Balance, 0.01)
}

func TestComputePricingFallbackRateCard(t *testing.T) {
	// No pricing on the snapshot at all: two tents for two nights at the
	// configured rate, tax on top, half down.
	p := ComputePricing(&models.AvailabilitySnapshot{}, 2, "2026-12-05", "2026-12-07", testInventory)
	assert.Equal(t, 2, p.Nights)
	assert.InDelta(t, 9000, p.Subtotal, 0.01)
	assert.InDelta(t, 1620, p.Tax, 0.01)
	assert.InDelta(t, 10620, p.Total, 0.01)
	assert.InDelta(t, 5310, p.Advance, 0.01)
	assert.InDelta(t, 5310, p.Balance, 0.01)
}

func TestComputePricingFallbackHandlesNilSnapshot(t *testing.T) {
	p := ComputePricing(nil, 1, "2026-12-05", "2026-12-06", testInventory)
	assert.Equal(t, 1, p.Nights)
	assert.InDelta(t, 2250, p.Subtotal, 0.01)
}

func TestComputePricingIsPure(t *testing.T) {
	snap := &models.AvailabilitySnapshot{Nights: 1, TotalAmountPerTent: 1499}

	first := ComputePricing(snap, 2, "", "", testInventory)
	second := ComputePricing(snap, 2, "", "", testInventory)
	assert.Equal(t, first, second)
	assert.InDelta(t, 1499, snap.TotalAmountPerTent, 0.001)
}
