// Package itinerary derives a normalized morning/afternoon/evening display
// model from one day's loosely structured itinerary record. All lookups run
// against fixed, ordered rule tables so the priority order is explicit.
package itinerary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"lstours/models"
)

const (
	periodMorning   = "morning"
	periodAfternoon = "afternoon"
	periodEvening   = "evening"
)

const maxEntriesPerPeriod = 4

// enrichRule appends one fixed phrase when the day title contains any of its
// keywords, or the package interests contain any of its interest tags. A
// non-empty guard suppresses the phrase when that keyword already appears in
// an existing entry.
type enrichRule struct {
	keywords  []string
	interests []string
	guard     string
	phrase    string
}

// Rules are evaluated top to bottom; every matching rule appends.
var enrichRules = map[string][]enrichRule{
	periodMorning: {
		{keywords: []string{"sigiriya", "rock"}, guard: "sigiriya", phrase: "Early start to beat the crowds at Sigiriya"},
		{keywords: []string{"tea", "nuwara"}, interests: []string{"tea"}, guard: "tea", phrase: "Fresh morning mist over tea plantations"},
		{keywords: []string{"safari", "yala"}, interests: []string{"wildlife"}, phrase: "Early morning game drive for best wildlife sightings"},
		{keywords: []string{"train", "ella"}, phrase: "Scenic views of misty mountains and valleys"},
	},
	periodAfternoon: {
		{keywords: []string{"temple", "kandy"}, interests: []string{"culture"}, phrase: "Explore local temples and sacred sites"},
		{keywords: []string{"beach", "coast"}, interests: []string{"beach"}, phrase: "Relax on pristine sandy beaches"},
		{keywords: []string{"polonnaruwa", "anuradhapura"}, phrase: "Discover ancient ruins and royal palaces"},
	},
	periodEvening: {
		{keywords: []string{"kandy"}, guard: "tooth", phrase: "Witness the Temple of the Tooth evening ceremony"},
		{keywords: []string{"galle", "coast"}, phrase: "Watch the sunset over the Indian Ocean"},
	},
}

// overnightRule maps title keywords to an overnight-stay line, first match
// wins. An empty stay means no accommodation line (departure days).
type overnightRule struct {
	keywords []string
	stay     string
}

var overnightRules = []overnightRule{
	{keywords: []string{"colombo"}, stay: "Stay at your hotel in Colombo"},
	{keywords: []string{"kandy"}, stay: "Stay at your hotel in Kandy"},
	{keywords: []string{"ella"}, stay: "Stay at your resort in Ella"},
	{keywords: []string{"galle"}, stay: "Stay at your hotel in Galle"},
	{keywords: []string{"dambulla", "sigiriya"}, stay: "Stay at your hotel in Dambulla"},
	{keywords: []string{"yala", "safari"}, stay: "Stay at safari lodge"},
	{keywords: []string{"nuwara"}, stay: "Stay at your hotel in Nuwara Eliya"},
	{keywords: []string{"departure", "airport"}, stay: ""},
}

const genericOvernight = "Overnight at your hotel"

// imageRule maps a title keyword to a representative image, first match wins.
type imageRule struct {
	keyword string
	url     string
}

var imageRules = []imageRule{
	{"sigiriya", "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600"},
	{"rock", "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600"},
	{"kandy", "https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600"},
	{"temple", "https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600"},
	{"ella", "https://images.unsplash.com/photo-1566766189268-73acf97f9de7?w=600"},
	{"train", "https://images.unsplash.com/photo-1566766189268-73acf97f9de7?w=600"},
	{"tea", "https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=600"},
	{"nuwara", "https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=600"},
	{"beach", "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=600"},
	{"coast", "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=600"},
	{"galle", "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=600"},
	{"safari", "https://images.unsplash.com/photo-1549366021-9f761d450615?w=600"},
	{"yala", "https://images.unsplash.com/photo-1549366021-9f761d450615?w=600"},
	{"wildlife", "https://images.unsplash.com/photo-1564760055775-d63b17a55c44?w=600"},
	{"polonnaruwa", "https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=600"},
	{"dambulla", "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600"},
	{"colombo", "https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600"},
}

// Derive produces the three-period schedule, overnight line and
// representative image for one itinerary day. It is pure and total: absent
// or empty fields degrade to empty output, never an error.
func Derive(day models.ItineraryDay, packageInterests []string, packageImages []string, dayIndex int) models.DayPlan {
	title := strings.ToLower(day.Title)

	morning, afternoon, evening := partitionActivities(day.Activities)

	morning = enhancePeriod(morning, periodMorning, title, day.Description, packageInterests)
	afternoon = enhancePeriod(afternoon, periodAfternoon, title, day.Description, packageInterests)
	evening = enhancePeriod(evening, periodEvening, title, day.Description, packageInterests)

	return models.DayPlan{
		Day:       day.Day,
		Title:     day.Title,
		Morning:   morning,
		Afternoon: afternoon,
		Evening:   evening,
		Overnight: overnightLine(day.Accommodation, title),
		Image:     dayImage(title, packageImages, dayIndex),
	}
}

// partitionActivities splits the activity list into three nearly-equal
// contiguous slices of size ceil(n/3): morning first, afternoon next,
// evening the remainder. Entries get their first letter uppercased.
func partitionActivities(activities []string) (morning, afternoon, evening []string) {
	if len(activities) == 0 {
		return nil, nil, nil
	}
	third := (len(activities) + 2) / 3
	for i, activity := range activities {
		formatted := capitalize(activity)
		switch {
		case i < third:
			morning = append(morning, formatted)
		case i < third*2:
			afternoon = append(afternoon, formatted)
		default:
			evening = append(evening, formatted)
		}
	}
	return morning, afternoon, evening
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// enhancePeriod pads a sparse period from the enrichment rule table, then
// applies the period's generic filler if it is still empty. The result is
// stripped of empty entries and truncated to four.
func enhancePeriod(existing []string, period, title, description string, interests []string) []string {
	enhanced := append([]string(nil), existing...)

	if len(enhanced) < 2 {
		for _, rule := range enrichRules[period] {
			if !rule.matches(title, interests) {
				continue
			}
			if rule.guard != "" && containsKeyword(enhanced, rule.guard) {
				continue
			}
			enhanced = append(enhanced, rule.phrase)
		}
		if len(enhanced) < 1 {
			enhanced = append(enhanced, genericFiller(period, description)...)
		}
	}

	out := enhanced[:0]
	for _, entry := range enhanced {
		if entry != "" {
			out = append(out, entry)
		}
	}
	if len(out) > maxEntriesPerPeriod {
		out = out[:maxEntriesPerPeriod]
	}
	return out
}

func (r enrichRule) matches(title string, interests []string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	for _, tag := range r.interests {
		for _, interest := range interests {
			if interest == tag {
				return true
			}
		}
	}
	return false
}

func containsKeyword(entries []string, keyword string) bool {
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), keyword) {
			return true
		}
	}
	return false
}

// genericFiller returns the period's fallback entry. Morning prefers the
// first sentence of the description and adds nothing when the description is
// empty; afternoon and evening use fixed phrases.
func genericFiller(period, description string) []string {
	switch period {
	case periodMorning:
		if description == "" {
			return nil
		}
		first := strings.TrimSpace(strings.SplitN(description, ".", 2)[0])
		if first == "" {
			first = "Begin your day with breakfast"
		}
		return []string{first}
	case periodAfternoon:
		return []string{"Continue exploring local attractions"}
	default:
		return []string{"Enjoy dinner at a local restaurant"}
	}
}

// overnightLine resolves the overnight-stay text: explicit accommodation
// first, then the destination keyword ladder, then the generic line.
func overnightLine(accommodation, title string) string {
	if accommodation != "" {
		return "Stay at " + accommodation
	}
	for _, rule := range overnightRules {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) {
				return rule.stay
			}
		}
	}
	return genericOvernight
}

// dayImage resolves the representative image: the keyword table first, then
// a cyclic pick from the package images, then none.
func dayImage(title string, packageImages []string, dayIndex int) string {
	for _, rule := range imageRules {
		if strings.Contains(title, rule.keyword) {
			return rule.url
		}
	}
	if len(packageImages) > 0 {
		idx := dayIndex % len(packageImages)
		if idx < 0 {
			idx += len(packageImages)
		}
		return packageImages[idx]
	}
	return ""
}

// DerivePlans derives the display model for every day of a package.
func DerivePlans(pkg models.TourPackage) []models.DayPlan {
	plans := make([]models.DayPlan, 0, len(pkg.ItineraryDays))
	for i, day := range pkg.ItineraryDays {
		plans = append(plans, Derive(day, pkg.Interests, pkg.Images, i))
	}
	return plans
}
