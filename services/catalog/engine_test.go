package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lstours/models"
)

func enginePackages() []models.TourPackage {
	return []models.TourPackage{
		{Slug: "beach-break", DurationDays: 3, PriceFromUSD: 450, Regions: []string{"South Coast"}, Interests: []string{"beach"}, Rating: 4.5, TravelStyle: models.StyleBudget},
		{Slug: "tea-trails", DurationDays: 5, PriceFromUSD: 900, Regions: []string{"Hill Country"}, Interests: []string{"tea", "scenery"}, Rating: 4.9, TravelStyle: models.StyleMid},
		{Slug: "island-classic", DurationDays: 7, PriceFromUSD: 1200, Regions: []string{"Cultural Triangle", "Hill Country"}, Interests: []string{"culture"}, Rating: 4.7, TravelStyle: models.StyleMid, Featured: true},
		{Slug: "safari-week", DurationDays: 8, PriceFromUSD: 1600, Regions: []string{"Yala"}, Interests: []string{"wildlife"}, Rating: 4.8, TravelStyle: models.StyleLuxury},
		{Slug: "grand-tour", DurationDays: 14, PriceFromUSD: 2800, Regions: []string{"Cultural Triangle", "South Coast"}, Interests: []string{"culture", "beach"}, Rating: 4.6, TravelStyle: models.StyleLuxury, Featured: true},
	}
}

func slugs(items []models.TourPackage) []string {
	out := make([]string, 0, len(items))
	for _, pkg := range items {
		out = append(out, pkg.Slug)
	}
	return out
}

func TestApplyFilters_DefaultStateReturnsEverythingRecommended(t *testing.T) {
	out := ApplyFilters(enginePackages(), models.DefaultFilterState())

	// Featured packages lead regardless of rating; each group orders by
	// rating descending.
	assert.Equal(t, []string{"island-classic", "grand-tour", "tea-trails", "safari-week", "beach-break"}, slugs(out))
}

func TestApplyFilters_DurationBucketsAreORed(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.Duration = []string{models.Bucket1To3, models.Bucket10Plus}

	out := ApplyFilters(enginePackages(), filters)
	assert.Equal(t, []string{"grand-tour", "beach-break"}, slugs(out))
}

func TestApplyFilters_UnknownBucketKeyMatchesNothing(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.Duration = []string{"two-weeks"}

	assert.Empty(t, ApplyFilters(enginePackages(), filters))

	// A stray key alongside a valid one does not widen the selection.
	filters.Duration = []string{"two-weeks", models.Bucket4To6}
	assert.Equal(t, []string{"tea-trails"}, slugs(ApplyFilters(enginePackages(), filters)))
}

func TestApplyFilters_RegionKeysNormalize(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.Regions = []string{"hill-country"}

	out := ApplyFilters(enginePackages(), filters)
	assert.Equal(t, []string{"island-classic", "tea-trails"}, slugs(out))
}

func TestApplyFilters_TravelStyleAndInterests(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.TravelStyle = []string{string(models.StyleLuxury)}
	assert.Equal(t, []string{"grand-tour", "safari-week"}, slugs(ApplyFilters(enginePackages(), filters)))

	filters = models.DefaultFilterState()
	filters.Interests = []string{"beach"}
	assert.Equal(t, []string{"grand-tour", "beach-break"}, slugs(ApplyFilters(enginePackages(), filters)))
}

func TestApplyFilters_PriceBoundsInclusive(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.PriceRange = [2]float64{450, 1200}

	out := ApplyFilters(enginePackages(), filters)
	assert.Equal(t, []string{"island-classic", "tea-trails", "beach-break"}, slugs(out))
}

func TestApplyFilters_DimensionsConjoin(t *testing.T) {
	filters := models.DefaultFilterState()
	filters.TravelStyle = []string{string(models.StyleMid)}
	require.Len(t, ApplyFilters(enginePackages(), filters), 2)

	filters.Regions = []string{"hill-country"}
	require.Len(t, ApplyFilters(enginePackages(), filters), 2)

	filters.Interests = []string{"culture"}
	out := ApplyFilters(enginePackages(), filters)
	require.Len(t, out, 1)
	assert.Equal(t, "island-classic", out[0].Slug)
}

func TestApplyFilters_SortOrders(t *testing.T) {
	tests := []struct {
		name   string
		sortBy models.SortKey
		want   []string
	}{
		{"price low to high", models.SortPriceLow, []string{"beach-break", "tea-trails", "island-classic", "safari-week", "grand-tour"}},
		{"price high to low", models.SortPriceHigh, []string{"grand-tour", "safari-week", "island-classic", "tea-trails", "beach-break"}},
		{"duration ascending", models.SortDuration, []string{"beach-break", "tea-trails", "island-classic", "safari-week", "grand-tour"}},
		{"rating descending", models.SortRating, []string{"tea-trails", "safari-week", "island-classic", "grand-tour", "beach-break"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := models.DefaultFilterState()
			filters.SortBy = tt.sortBy
			assert.Equal(t, tt.want, slugs(ApplyFilters(enginePackages(), filters)))
		})
	}
}

func TestApplyFilters_TiesKeepInputOrder(t *testing.T) {
	items := []models.TourPackage{
		{Slug: "a", PriceFromUSD: 500, Rating: 4.0},
		{Slug: "b", PriceFromUSD: 500, Rating: 4.0},
		{Slug: "c", PriceFromUSD: 500, Rating: 4.0},
	}

	filters := models.DefaultFilterState()
	filters.SortBy = models.SortPriceLow
	assert.Equal(t, []string{"a", "b", "c"}, slugs(ApplyFilters(items, filters)))

	filters.SortBy = models.SortRating
	assert.Equal(t, []string{"a", "b", "c"}, slugs(ApplyFilters(items, filters)))
}

func TestApplyFilters_InputNotMutated(t *testing.T) {
	items := enginePackages()
	filters := models.DefaultFilterState()
	filters.SortBy = models.SortPriceHigh

	ApplyFilters(items, filters)
	assert.Equal(t, []string{"beach-break", "tea-trails", "island-classic", "safari-week", "grand-tour"}, slugs(items))
}

func TestPaginate(t *testing.T) {
	items := enginePackages()

	t.Run("first page", func(t *testing.T) {
		out := Paginate(items, 1, 2)
		assert.Equal(t, []string{"beach-break", "tea-trails"}, slugs(out))
	})

	t.Run("last page may be short", func(t *testing.T) {
		out := Paginate(items, 3, 2)
		assert.Equal(t, []string{"grand-tour"}, slugs(out))
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		assert.Equal(t, Paginate(items, 1, 2), Paginate(items, 0, 2))
	})

	t.Run("page beyond last clamps to last", func(t *testing.T) {
		assert.Equal(t, Paginate(items, 3, 2), Paginate(items, 99, 2))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Paginate(nil, 1, 6))
	})

	t.Run("non-positive per page falls back to one", func(t *testing.T) {
		out := Paginate(items, 2, 0)
		require.Len(t, out, 1)
		assert.Equal(t, "tea-trails", out[0].Slug)
	})
}
