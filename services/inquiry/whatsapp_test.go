package inquiry

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lstours/models"
)

const testNumber = "94781229308"

// linkText parses the deep link and returns the decoded text parameter.
func linkText(t *testing.T, rawURL string) string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestBuildQuoteLink(t *testing.T) {
	link := BuildQuoteLink(testNumber, models.QuoteRequest{
		Name:        "Asha Perera",
		Email:       "asha@example.com",
		Phone:       "+44 7700 900123",
		TravelDates: "March 2027",
		Pax:         "2",
		Message:     "Interested in the hill country",
	})

	want := "LS Tours - Quote Request\n" +
		messageSeparator + "\n" +
		"Name: Asha Perera\n" +
		"Email: asha@example.com\n" +
		"Phone/WhatsApp: +44 7700 900123\n" +
		"Travel Dates: March 2027\n" +
		"Pax: 2\n" +
		"Message: Interested in the hill country\n"

	assert.Equal(t, want, link.Message)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/94781229308?text="))
	assert.Equal(t, link.Message, linkText(t, link.URL))
}

func TestBuildQuoteLink_EmptyFieldsProduceNoLines(t *testing.T) {
	link := BuildQuoteLink(testNumber, models.QuoteRequest{Name: "Asha Perera"})

	want := "LS Tours - Quote Request\n" +
		messageSeparator + "\n" +
		"Name: Asha Perera\n"
	assert.Equal(t, want, link.Message)
	assert.NotContains(t, link.Message, "Email:")
	assert.NotContains(t, link.Message, "\n\n")
}

func TestBuildReservationLink(t *testing.T) {
	pkg := models.TourPackage{
		Title:        "Hill Country Tea Trails",
		PriceFromUSD: 1290,
		ItineraryDays: []models.ItineraryDay{
			{Day: 1, Title: "Arrival in Colombo"},
			{Day: 2, Title: "Train to Ella"},
		},
	}
	link := BuildReservationLink(testNumber, pkg, models.ReservationRequest{
		Name: "Liam Chen",
		Pax:  "4",
	})

	want := "LS Tours - Trip Reservation Request\n" +
		messageSeparator + "\n" +
		"Package: Hill Country Tea Trails\n" +
		"Price: $1290 per person\n" +
		messageSeparator + "\n" +
		"Name: Liam Chen\n" +
		"Pax: 4\n" +
		"\nItinerary Topics:\n" +
		"Day 1: Arrival in Colombo\n" +
		"Day 2: Train to Ella"

	assert.Equal(t, want, link.Message)
	assert.Equal(t, link.Message, linkText(t, link.URL))
}

func TestBuildTripRequestLink(t *testing.T) {
	link := BuildTripRequestLink(testNumber, models.TripRequest{
		PlanName:     "Family Holiday",
		FullName:     "Maya Fernando",
		Days:         "10",
		Destinations: []string{"Kandy", "Ella", "Galle"},
	})

	want := "LS Tours - Custom Trip Request\n" +
		messageSeparator + "\n" +
		"Plan Name: Family Holiday\n" +
		"Name: Maya Fernando\n" +
		"Days: 10\n" +
		"Destinations: Kandy, Ella, Galle\n"

	assert.Equal(t, want, link.Message)
}

func TestLink_EncodesMessage(t *testing.T) {
	link := BuildTripRequestLink(testNumber, models.TripRequest{PlanName: "A & B"})

	// The raw URL never carries unescaped separators or newlines.
	assert.NotContains(t, link.URL, "&")
	assert.NotContains(t, link.URL, " ")
	assert.NotContains(t, link.URL, "\n")
	assert.Contains(t, link.Message, "Plan Name: A & B")
	assert.Equal(t, link.Message, linkText(t, link.URL))
}
