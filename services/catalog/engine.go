// Package catalog implements the catalog query engine: filtering, sorting
// and pagination of the tour package list, plus the session-scoped view state.
package catalog

import (
	"sort"
	"strings"

	"lstours/models"
)

// durationBuckets maps bucket keys to inclusive day ranges. The "10+" bucket
// is open-ended above ten. Unknown keys match no package.
var durationBuckets = map[string][2]int{
	models.Bucket1To3:   {1, 3},
	models.Bucket4To6:   {4, 6},
	models.Bucket7To10:  {7, 10},
	models.Bucket10Plus: {11, 1 << 30},
}

// regionKey normalizes a free-text region name to its filter key form:
// lower-cased with single spaces replaced by hyphens.
func regionKey(region string) string {
	return strings.ReplaceAll(strings.ToLower(region), " ", "-")
}

// ApplyFilters narrows and orders the package list by the given filter state.
// Each dimension with an empty selection imposes no constraint; the price
// range always applies with inclusive bounds. The input slice is never
// mutated and ties keep their input order.
func ApplyFilters(items []models.TourPackage, filters models.FilterState) []models.TourPackage {
	filtered := make([]models.TourPackage, 0, len(items))
	for _, pkg := range items {
		if matchesFilters(pkg, filters) {
			filtered = append(filtered, pkg)
		}
	}
	sortPackages(filtered, filters.SortBy)
	return filtered
}

func matchesFilters(pkg models.TourPackage, filters models.FilterState) bool {
	if len(filters.Duration) > 0 && !matchesDuration(pkg.DurationDays, filters.Duration) {
		return false
	}
	if len(filters.Regions) > 0 && !matchesRegions(pkg.Regions, filters.Regions) {
		return false
	}
	if len(filters.TravelStyle) > 0 && !containsString(filters.TravelStyle, string(pkg.TravelStyle)) {
		return false
	}
	if len(filters.Interests) > 0 && !matchesInterests(pkg.Interests, filters.Interests) {
		return false
	}
	return pkg.PriceFromUSD >= filters.PriceRange[0] && pkg.PriceFromUSD <= filters.PriceRange[1]
}

// matchesDuration reports whether the duration falls in any selected bucket.
func matchesDuration(days int, selected []string) bool {
	for _, key := range selected {
		bounds, ok := durationBuckets[key]
		if !ok {
			continue
		}
		if days >= bounds[0] && days <= bounds[1] {
			return true
		}
	}
	return false
}

// matchesRegions reports whether any of the package's regions, normalized to
// key form, appears in the selected region keys.
func matchesRegions(regions []string, selected []string) bool {
	for _, region := range regions {
		if containsString(selected, regionKey(region)) {
			return true
		}
	}
	return false
}

func matchesInterests(interests []string, selected []string) bool {
	for _, interest := range interests {
		if containsString(selected, interest) {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// sortPackages orders in place, stable with respect to input order for ties.
func sortPackages(items []models.TourPackage, sortBy models.SortKey) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PriceFromUSD < items[j].PriceFromUSD
		})
	case models.SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PriceFromUSD > items[j].PriceFromUSD
		})
	case models.SortDuration:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DurationDays < items[j].DurationDays
		})
	case models.SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	default:
		// Recommended: any featured package sorts before any non-featured
		// one; within each group, descending by rating.
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Featured != items[j].Featured {
				return items[i].Featured
			}
			return items[i].Rating > items[j].Rating
		})
	}
}

// Paginate returns the page'th slice of items (1-based) with perPage items
// per page. Out-of-range pages clamp to the nearest valid page; a non-positive
// perPage falls back to 1.
func Paginate(items []models.TourPackage, page, perPage int) []models.TourPackage {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		return []models.TourPackage{}
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
