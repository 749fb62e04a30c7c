package models

import "time"

// GalleryImage is a marketing photo stored in Cloudinary.
type GalleryImage struct {
	ID        string    `bson:"id" json:"id"`
	PublicID  string    `bson:"publicId" json:"publicId"`
	URL       string    `bson:"url" json:"url"`
	Caption   string    `bson:"caption,omitempty" json:"caption,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Testimonial is a guest quote shown on the landing page.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"author"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Quote     string    `bson:"quote" json:"quote"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// RateCard is the public pricing block for the marketing site.
type RateCard struct {
	NightlyRate     float64 `json:"nightlyRate"`
	TaxRate         float64 `json:"taxRate"`
	AdvanceFraction float64 `json:"advanceFraction"`
	Currency        string  `json:"currency"`
	OpenMonths      []int   `json:"openMonths"`
}
