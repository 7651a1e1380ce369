package inquiry

import (
	"fmt"
	"net/url"
	"strings"

	"lstours/models"
)

const messageSeparator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// field is one labeled line of an outbound message. Empty values produce no
// line at all, not a blank one.
type field struct {
	label string
	value string
}

func renderFields(b *strings.Builder, fields []field) {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(f.label)
		b.WriteString(": ")
		b.WriteString(f.value)
		b.WriteString("\n")
	}
}

// link wraps a finished message into the wa.me deep link.
func link(number, message string) models.WhatsAppLink {
	query := url.Values{"text": {message}}
	return models.WhatsAppLink{
		Message: message,
		URL:     fmt.Sprintf("https://wa.me/%s?%s", number, query.Encode()),
	}
}

// BuildQuoteLink assembles the quote-request message from the contact form.
func BuildQuoteLink(number string, req models.QuoteRequest) models.WhatsAppLink {
	var b strings.Builder
	b.WriteString("LS Tours - Quote Request\n")
	b.WriteString(messageSeparator + "\n")
	renderFields(&b, []field{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone/WhatsApp", req.Phone},
		{"Travel Dates", req.TravelDates},
		{"Pax", req.Pax},
		{"Message", req.Message},
	})
	return link(number, b.String())
}

// BuildReservationLink assembles the reservation message for a package,
// including its fixed title/price header and the itinerary topic list.
func BuildReservationLink(number string, pkg models.TourPackage, req models.ReservationRequest) models.WhatsAppLink {
	var b strings.Builder
	b.WriteString("LS Tours - Trip Reservation Request\n")
	b.WriteString(messageSeparator + "\n")
	fmt.Fprintf(&b, "Package: %s\n", pkg.Title)
	fmt.Fprintf(&b, "Price: $%g per person\n", pkg.PriceFromUSD)
	b.WriteString(messageSeparator + "\n")
	renderFields(&b, []field{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone/WhatsApp", req.Phone},
		{"Pax", req.Pax},
		{"Approx Date", req.TravelDate},
	})

	topics := make([]string, 0, len(pkg.ItineraryDays))
	for _, day := range pkg.ItineraryDays {
		topics = append(topics, fmt.Sprintf("Day %d: %s", day.Day, day.Title))
	}
	b.WriteString("\nItinerary Topics:\n")
	b.WriteString(strings.Join(topics, "\n"))

	return link(number, b.String())
}

// BuildTripRequestLink assembles the custom trip planner message.
func BuildTripRequestLink(number string, req models.TripRequest) models.WhatsAppLink {
	var b strings.Builder
	b.WriteString("LS Tours - Custom Trip Request\n")
	b.WriteString(messageSeparator + "\n")
	renderFields(&b, []field{
		{"Plan Name", req.PlanName},
		{"Name", req.FullName},
		{"Pax", req.Pax},
		{"Days", req.Days},
		{"Preferred Date", req.PreferredDate},
		{"Destinations", strings.Join(req.Destinations, ", ")},
		{"Phone/WhatsApp", req.Phone},
		{"Email", req.Email},
		{"Message", req.Message},
	})
	return link(number, b.String())
}
