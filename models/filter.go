package models

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortDuration    SortKey = "duration"
	SortRating      SortKey = "rating"
)

// Duration bucket keys. Unknown keys match no package.
const (
	Bucket1To3   = "1-3"
	Bucket4To6   = "4-6"
	Bucket7To10  = "7-10"
	Bucket10Plus = "10+"
)

// DefaultPriceRange is the inclusive [min, max] bound applied when no price
// selection has been made.
var DefaultPriceRange = [2]float64{0, 5000}

// FilterState is the user's current catalog narrowing and sorting selection.
// An empty slice means the dimension imposes no constraint.
type FilterState struct {
	Duration    []string   `json:"duration"`    // Bucket keys: "1-3", "4-6", "7-10", "10+".
	Regions     []string   `json:"regions"`     // Lower-cased, space-to-hyphen region keys.
	TravelStyle []string   `json:"travelStyle"` // Subset of budget, mid, luxury.
	Interests   []string   `json:"interests"`
	PriceRange  [2]float64 `json:"priceRange"` // Inclusive [min, max]; always applied.
	SortBy      SortKey    `json:"sortBy"`
}

// DefaultFilterState returns the unconstrained filter selection.
func DefaultFilterState() FilterState {
	return FilterState{
		Duration:    []string{},
		Regions:     []string{},
		TravelStyle: []string{},
		Interests:   []string{},
		PriceRange:  DefaultPriceRange,
		SortBy:      SortRecommended,
	}
}

// FilterUpdate is a partial FilterState: nil fields leave the current value
// unchanged, mirroring a partial reducer payload.
type FilterUpdate struct {
	Duration    *[]string   `json:"duration,omitempty"`
	Regions     *[]string   `json:"regions,omitempty"`
	TravelStyle *[]string   `json:"travelStyle,omitempty"`
	Interests   *[]string   `json:"interests,omitempty"`
	PriceRange  *[2]float64 `json:"priceRange,omitempty"`
	SortBy      *SortKey    `json:"sortBy,omitempty"`
}
