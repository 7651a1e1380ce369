package models

// DayPlan is the normalized three-period display model derived from one
// itinerary day. Empty Image means no representative image resolved and the
// caller must omit the image region entirely.
type DayPlan struct {
	Day       int      `json:"day"`
	Title     string   `json:"title"`
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
	Overnight string   `json:"overnight,omitempty"`
	Image     string   `json:"image,omitempty"`
}
