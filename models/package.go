package models

// TravelStyle classifies a package's price tier.
type TravelStyle string

const (
	StyleBudget TravelStyle = "budget"
	StyleMid    TravelStyle = "mid"
	StyleLuxury TravelStyle = "luxury"
)

// TourPackage is a purchasable multi-day tour product with a fixed itinerary
// template. Records are immutable for the lifetime of the process.
type TourPackage struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"` // Unique, URL-safe.
	Title            string         `json:"title"`
	ShortDescription string         `json:"shortDescription"`
	Description      string         `json:"description"`
	DurationDays     int            `json:"durationDays"`
	DurationNights   int            `json:"durationNights"`
	PriceFromUSD     float64        `json:"priceFromUSD"`
	Regions          []string       `json:"regions"`   // Free-text region names.
	Interests        []string       `json:"interests"` // Tag strings, e.g. "wildlife", "tea".
	Rating           float64        `json:"rating"`    // 0–5.
	ReviewCount      int            `json:"reviewCount"`
	Images           []string       `json:"images"`
	HeroImage        string         `json:"heroImage"`
	ItineraryDays    []ItineraryDay `json:"itineraryDays"`
	Inclusions       []string       `json:"inclusions"`
	Exclusions       []string       `json:"exclusions"`
	Highlights       []string       `json:"highlights"`
	TravelStyle      TravelStyle    `json:"travelStyle"`
	Featured         bool           `json:"featured"`
}

// ItineraryDay is one day's slice of a package's schedule: loosely structured
// free text plus an ordered activity list.
type ItineraryDay struct {
	Day           int      `json:"day"` // 1-based, contiguous within a package.
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Activities    []string `json:"activities"`
	Meals         []string `json:"meals"`                   // Subset of breakfast, lunch, dinner.
	Accommodation string   `json:"accommodation,omitempty"` // Empty means not set.
}
