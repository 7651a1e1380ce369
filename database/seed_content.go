package database

import (
	"lstours/models"
)

func seedServices() []models.TravelService {
	return []models.TravelService{
		{
			ID:          "svc-001",
			Title:       "Private Chauffeur Tours",
			Description: "Licensed chauffeur guides and air-conditioned vehicles for island-wide circuits, from airport pickup to final drop-off.",
			Icon:        "car",
			Features:    []string{"English-speaking chauffeur guides", "Fuel and highway tolls included", "Child seats on request"},
		},
		{
			ID:          "svc-002",
			Title:       "Tailor-Made Itineraries",
			Description: "Routes built around your dates, pace and interests rather than a fixed brochure, with a planner who has driven every road on the island.",
			Icon:        "map",
			Features:    []string{"Free revision rounds", "Local-rate hotel bookings", "Seasonal routing advice"},
		},
		{
			ID:          "svc-003",
			Title:       "Safari & Wildlife Excursions",
			Description: "Park permits, experienced trackers and well-kept jeeps for Yala, Udawalawe, Wilpattu, Minneriya and the marine parks.",
			Icon:        "binoculars",
			Features:    []string{"Dawn and dusk game drives", "Naturalist guides", "Whale watching in season"},
		},
		{
			ID:          "svc-004",
			Title:       "Train & Hotel Reservations",
			Description: "Reserved seats on the hill country line and vetted stays from guesthouses to estate bungalows, booked before you land.",
			Icon:        "ticket",
			Features:    []string{"First-class observation car seats", "Curated hotel shortlist", "No booking fees"},
		},
	}
}

func seedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:           "tst-001",
			Name:         "Hannah Whitfield",
			Country:      "United Kingdom",
			Avatar:       "https://i.pravatar.cc/150?img=47",
			Rating:       5,
			Text:         "Our driver Sampath turned a good itinerary into a great one. The sunrise climb at Sigiriya was worth every step.",
			PackageTitle: "Classic Sri Lanka Highlights",
			Date:         "2025-03-18",
		},
		{
			ID:           "tst-002",
			Name:         "Marco Deluca",
			Country:      "Italy",
			Avatar:       "https://i.pravatar.cc/150?img=12",
			Rating:       5,
			Text:         "Two leopards on our first drive in Yala. The trackers knew exactly where to wait.",
			PackageTitle: "Wildlife Safari Week",
			Date:         "2025-02-02",
		},
		{
			ID:           "tst-003",
			Name:         "Aiko Tanaka",
			Country:      "Japan",
			Avatar:       "https://i.pravatar.cc/150?img=32",
			Rating:       4.5,
			Text:         "The tea estate bungalow was the highlight of our whole year of travel. Slow mornings, endless pots of tea.",
			PackageTitle: "Hill Country Tea Trails",
			Date:         "2024-12-27",
		},
		{
			ID:           "tst-004",
			Name:         "Lars Johansson",
			Country:      "Sweden",
			Avatar:       "https://i.pravatar.cc/150?img=59",
			Rating:       5,
			Text:         "Travelling with two kids under eight, the pacing was perfect. Short drives, early dinners, animals every day.",
			PackageTitle: "Family Adventure Week",
			Date:         "2025-01-15",
		},
		{
			ID:           "tst-005",
			Name:         "Priya Raman",
			Country:      "Australia",
			Avatar:       "https://i.pravatar.cc/150?img=25",
			Rating:       4.8,
			Text:         "Booked over WhatsApp on a Tuesday, on the train to Ella by Saturday. Effortless from start to finish.",
			PackageTitle: "Cultural Triangle Express",
			Date:         "2025-04-09",
		},
	}
}
