package database

import (
	"lstours/models"
)

// Dataset is the fixed in-process data source. It is loaded wholesale at
// startup and read-only afterwards; no entity is created, mutated, or
// destroyed at runtime.
type Dataset struct {
	Packages     []models.TourPackage
	Destinations []models.Destination
	Services     []models.TravelService
	Testimonials []models.Testimonial
}

// Load assembles the seed dataset.
func Load() *Dataset {
	return &Dataset{
		Packages:     seedPackages(),
		Destinations: seedDestinations(),
		Services:     seedServices(),
		Testimonials: seedTestimonials(),
	}
}
