package models

// Inquiry is a general trip inquiry submitted from the contact surface.
// All fields except Name and Email are optional.
type Inquiry struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Country     string   `json:"country"`
	TravelFrom  string   `json:"travelFrom"`
	TravelTo    string   `json:"travelTo"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
	Budget      string   `json:"budget"`
	Message     string   `json:"message"`
	PackageSlug string   `json:"packageSlug,omitempty"`
}

// InquiryResult is returned on successful submission.
type InquiryResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReferenceID string `json:"referenceId"`
}

// QuoteRequest carries the optional fields of the quote form. Only non-empty
// fields produce a line in the outbound message.
type QuoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TravelDates string `json:"travelDates"`
	Pax         string `json:"pax"`
	Message     string `json:"message"`
}

// ReservationRequest is a reservation for a specific package.
type ReservationRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Pax        string `json:"pax"`
	TravelDate string `json:"travelDate"`
}

// TripRequest is the custom trip planner form. Every field is optional.
type TripRequest struct {
	PlanName      string   `json:"planName"`
	FullName      string   `json:"fullName"`
	Pax           string   `json:"pax"`
	Days          string   `json:"days"`
	PreferredDate string   `json:"preferredDate"`
	Destinations  []string `json:"destinations"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Message       string   `json:"message"`
}

// WhatsAppLink is the assembled deep link for an outbound handoff.
type WhatsAppLink struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
