package catalog

import (
	"sort"
	"strings"
	"time"

	model "storage-auctions/internal/models"
)

// Sentinel value that disables a categorical filter
const FilterAll = "all"

// Time filter states
const (
	TimeAll        = "all"
	TimeEndingSoon = "ending-soon" // remaining time within 24h
	TimeNew        = "new"         // remaining time beyond 3 days
)

// Sort keys accepted by Apply. An unknown key keeps the input order.
const (
	SortEnding    = "ending"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortBids      = "bids"
	SortDiscount  = "discount"
)

const (
	endingSoonWindow = 24 * time.Hour
	newListingWindow = 72 * time.Hour
)

// Query bundles the active filter predicates and sort key for one catalog view.
// Zero values pass everything through: empty strings behave like "all" and nil
// price bounds leave that end of the range open.
type Query struct {
	Search    string
	Category  string
	Condition string
	Location  string
	MinPrice  *float64
	MaxPrice  *float64
	Time      string
	SortBy    string
}

// Facets are the distinct filterable attribute values of a listing set,
// in first-seen order.
type Facets struct {
	Categories []string `json:"categories"`
	Conditions []string `json:"conditions"`
	Locations  []string `json:"locations"`
}

// Apply filters the listing set with every active predicate (logical AND) and
// sorts the survivors. The input slice is never modified; an empty result is a
// valid outcome, not an error.
func Apply(listings []model.Listing, q Query, now time.Time) []model.Listing {
	matched := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, q, now) {
			matched = append(matched, l)
		}
	}
	sortListings(matched, q.SortBy)
	return matched
}

func matches(l model.Listing, q Query, now time.Time) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(l.Title), term) &&
			!strings.Contains(strings.ToLower(l.Description), term) {
			return false
		}
	}
	if !matchesAttribute(l.Category, q.Category) ||
		!matchesAttribute(l.Condition, q.Condition) ||
		!matchesAttribute(l.Location, q.Location) {
		return false
	}

	price := l.EffectivePrice()
	if q.MinPrice != nil && price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && price > *q.MaxPrice {
		return false
	}

	switch q.Time {
	case TimeEndingSoon:
		return l.EndTime.Sub(now) <= endingSoonWindow
	case TimeNew:
		return l.EndTime.Sub(now) > newListingWindow
	}
	return true
}

func matchesAttribute(value, filter string) bool {
	return filter == "" || filter == FilterAll || value == filter
}

func sortListings(listings []model.Listing, sortBy string) {
	switch sortBy {
	case SortEnding:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].EndTime.Before(listings[j].EndTime)
		})
	case SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].EffectivePrice() < listings[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].EffectivePrice() > listings[j].EffectivePrice()
		})
	case SortBids:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].BidCount > listings[j].BidCount
		})
	case SortDiscount:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].DiscountPercent() > listings[j].DiscountPercent()
		})
	}
}

// CollectFacets gathers the distinct categories, conditions and locations of
// the full listing set so the rendering layer can build its filter controls.
func CollectFacets(listings []model.Listing) Facets {
	f := Facets{
		Categories: []string{},
		Conditions: []string{},
		Locations:  []string{},
	}
	seenCat := make(map[string]bool)
	seenCond := make(map[string]bool)
	seenLoc := make(map[string]bool)

	for _, l := range listings {
		if l.Category != "" && !seenCat[l.Category] {
			seenCat[l.Category] = true
			f.Categories = append(f.Categories, l.Category)
		}
		if l.Condition != "" && !seenCond[l.Condition] {
			seenCond[l.Condition] = true
			f.Conditions = append(f.Conditions, l.Condition)
		}
		if l.Location != "" && !seenLoc[l.Location] {
			seenLoc[l.Location] = true
			f.Locations = append(f.Locations, l.Location)
		}
	}
	return f
}
