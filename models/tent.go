package models

// TentStatus is the availability state of a single tent for a date range.
type TentStatus string

const (
	TentAvailable TentStatus = "AVAILABLE"
	TentBooked    TentStatus = "BOOKED"
	TentReserved  TentStatus = "RESERVED"
)

// Tent is one unit of bookable inventory, identified by a short code ("T07").
type Tent struct {
	TentNumber string     `bson:"tentNumber" json:"tentNumber"`
	Status     TentStatus `bson:"status" json:"status"`
}

// AvailabilitySnapshot is the inventory view for a stay, fetched once at the
// start of a booking session. The per-tent pricing fields are the primary
// source for price computation; the aggregate fields are a legacy form kept
// for older snapshots.
type AvailabilitySnapshot struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`

	Tents []Tent `json:"tents"`

	AvailableTents int `json:"availableTents"`
	BookedTents    int `json:"bookedTents"`
	ReservedTents  int `json:"reservedTents"`
	TotalTents     int `json:"totalTents"`

	TotalAmountPerTent     float64 `json:"totalAmountPerTent,omitempty"`
	AdvanceAmountPerTent   float64 `json:"advanceAmountPerTent,omitempty"`
	RemainingAmountPerTent float64 `json:"remainingAmountPerTent,omitempty"`

	// Legacy aggregate pricing, tax-inclusive.
	TotalAmount     float64 `json:"totalAmount,omitempty"`
	AdvanceAmount   float64 `json:"advanceAmount,omitempty"`
	RemainingAmount float64 `json:"remainingAmount,omitempty"`

	PricingNote string `json:"pricingNote,omitempty"`
}
