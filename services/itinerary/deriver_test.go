package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lstours/models"
)

func TestDerive_PartitionsActivitiesIntoThirds(t *testing.T) {
	day := models.ItineraryDay{
		Day:   2,
		Title: "Free Day",
		Activities: []string{
			"arrival transfer", "city walk", "lunch at the market",
			"museum visit", "tuk tuk ride", "craft shopping",
			"dinner cruise",
		},
	}

	plan := Derive(day, nil, nil, 1)

	assert.Equal(t, []string{"Arrival transfer", "City walk", "Lunch at the market"}, plan.Morning)
	assert.Equal(t, []string{"Museum visit", "Tuk tuk ride", "Craft shopping"}, plan.Afternoon)
	assert.Equal(t, []string{"Dinner cruise"}, plan.Evening)
}

func TestDerive_IsPure(t *testing.T) {
	day := models.ItineraryDay{
		Day:        1,
		Title:      "Kandy Temple Visit",
		Activities: []string{"walk the lake"},
	}
	interests := []string{"culture"}
	images := []string{"a.jpg"}

	first := Derive(day, interests, images, 0)
	second := Derive(day, interests, images, 0)
	assert.Equal(t, first, second)
}

func TestDerive_GuardSuppressesDuplicatePhrase(t *testing.T) {
	day := models.ItineraryDay{
		Day:        3,
		Title:      "Day at Sigiriya",
		Activities: []string{"climb sigiriya rock", "visit the museum"},
	}

	plan := Derive(day, nil, nil, 2)

	// The activity already mentions Sigiriya, so the stock phrase is held back.
	assert.Equal(t, []string{"Climb sigiriya rock"}, plan.Morning)
	assert.Equal(t, []string{"Visit the museum"}, plan.Afternoon)
	assert.Equal(t, []string{"Enjoy dinner at a local restaurant"}, plan.Evening)
	assert.Equal(t, "Stay at your hotel in Dambulla", plan.Overnight)
}

func TestDerive_SparseMorningGetsStockPhrase(t *testing.T) {
	day := models.ItineraryDay{
		Day:        3,
		Title:      "Day at Sigiriya",
		Activities: []string{"visit the museum"},
	}

	plan := Derive(day, nil, nil, 2)
	assert.Equal(t, []string{"Visit the museum", "Early start to beat the crowds at Sigiriya"}, plan.Morning)
}

func TestDerive_InterestsDriveEnrichment(t *testing.T) {
	day := models.ItineraryDay{
		Day:   5,
		Title: "Game drives all day",
	}

	plan := Derive(day, []string{"wildlife"}, nil, 4)

	assert.Equal(t, []string{"Early morning game drive for best wildlife sightings"}, plan.Morning)
	assert.Equal(t, []string{"Continue exploring local attractions"}, plan.Afternoon)
	assert.Equal(t, []string{"Enjoy dinner at a local restaurant"}, plan.Evening)
	assert.Equal(t, "Overnight at your hotel", plan.Overnight)
	assert.Empty(t, plan.Image)
}

func TestDerive_PeriodsTruncateAtFourEntries(t *testing.T) {
	day := models.ItineraryDay{
		Day:        4,
		Title:      "Sigiriya rock tea train to Ella",
		Activities: []string{"morning hike"},
	}

	plan := Derive(day, []string{"wildlife"}, nil, 3)

	require.Len(t, plan.Morning, 4)
	assert.Equal(t, []string{
		"Morning hike",
		"Early start to beat the crowds at Sigiriya",
		"Fresh morning mist over tea plantations",
		"Early morning game drive for best wildlife sightings",
	}, plan.Morning)
}

func TestDerive_MorningFillerUsesFirstSentence(t *testing.T) {
	t.Run("first sentence of the description", func(t *testing.T) {
		day := models.ItineraryDay{
			Day:         6,
			Title:       "Free Morning",
			Description: "Relax by the pool. Optional spa visits can be arranged.",
		}
		plan := Derive(day, nil, nil, 5)
		assert.Equal(t, []string{"Relax by the pool"}, plan.Morning)
	})

	t.Run("blank first sentence falls back", func(t *testing.T) {
		day := models.ItineraryDay{Day: 6, Title: "Free Morning", Description: ". Then onward."}
		plan := Derive(day, nil, nil, 5)
		assert.Equal(t, []string{"Begin your day with breakfast"}, plan.Morning)
	})

	t.Run("no description leaves the morning empty", func(t *testing.T) {
		day := models.ItineraryDay{Day: 6, Title: "Free Morning"}
		plan := Derive(day, nil, nil, 5)
		assert.Empty(t, plan.Morning)
	})
}

func TestDerive_OvernightLine(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		accommodation string
		want          string
	}{
		{"explicit accommodation wins", "Kandy Arrival", "Jetwing Lake Hotel", "Stay at Jetwing Lake Hotel"},
		{"destination keyword", "Galle Fort Walk", "", "Stay at your hotel in Galle"},
		{"sigiriya maps to dambulla", "Sigiriya Sunrise Climb", "", "Stay at your hotel in Dambulla"},
		{"safari lodge", "Yala National Park", "", "Stay at safari lodge"},
		{"departure day has no stay", "Airport Departure", "", ""},
		{"unknown destination gets generic line", "Morning in Mystery Town", "", "Overnight at your hotel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := models.ItineraryDay{Day: 1, Title: tt.title, Accommodation: tt.accommodation}
			assert.Equal(t, tt.want, Derive(day, nil, nil, 0).Overnight)
		})
	}
}

func TestDerive_DayImage(t *testing.T) {
	t.Run("keyword match wins", func(t *testing.T) {
		day := models.ItineraryDay{Day: 2, Title: "Yala Safari Morning"}
		plan := Derive(day, nil, []string{"a.jpg"}, 1)
		assert.Equal(t, "https://images.unsplash.com/photo-1549366021-9f761d450615?w=600", plan.Image)
	})

	t.Run("falls back to package images cyclically", func(t *testing.T) {
		day := models.ItineraryDay{Day: 5, Title: "Free Day"}
		plan := Derive(day, nil, []string{"a.jpg", "b.jpg", "c.jpg"}, 4)
		assert.Equal(t, "b.jpg", plan.Image)
	})

	t.Run("no keyword and no images means no image", func(t *testing.T) {
		day := models.ItineraryDay{Day: 5, Title: "Free Day"}
		assert.Empty(t, Derive(day, nil, nil, 4).Image)
	})
}

func TestDerivePlans_CoversEveryDay(t *testing.T) {
	pkg := models.TourPackage{
		Slug:      "two-day-sample",
		Interests: []string{"culture"},
		Images:    []string{"a.jpg", "b.jpg"},
		ItineraryDays: []models.ItineraryDay{
			{Day: 1, Title: "Quiet Start", Activities: []string{"check in", "rest"}},
			{Day: 2, Title: "Onward Journey", Activities: []string{"pack up", "transfer"}},
		},
	}

	plans := DerivePlans(pkg)
	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Day)
	assert.Equal(t, 2, plans[1].Day)
	assert.Equal(t, "a.jpg", plans[0].Image)
	assert.Equal(t, "b.jpg", plans[1].Image)
}
