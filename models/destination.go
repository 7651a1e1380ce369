package models

// Destination is an independent catalog entity. No referential relationship is
// enforced between Destination and TourPackage regions; matching is by string.
type Destination struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	HeroImage        string   `json:"heroImage"`
	Images           []string `json:"images"`
	BestTimeToVisit  string   `json:"bestTimeToVisit"`
	Tags             []string `json:"tags"`
	Highlights       []string `json:"highlights"`
	Region           string   `json:"region"`
}

// TravelService is an offering shown on the services page.
type TravelService struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

// Testimonial is a customer review shown on the home page carousel.
type Testimonial struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	Avatar       string  `json:"avatar"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	PackageTitle string  `json:"packageTitle"`
	Date         string  `json:"date"`
}
