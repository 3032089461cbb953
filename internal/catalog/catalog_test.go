package catalog

import (
	"testing"
	"time"

	model "storage-auctions/internal/models"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func sampleListings(now time.Time) []model.Listing {
	return []model.Listing{
		{
			ListingID:       "l1",
			Title:           "Premium Electronics Bundle",
			Description:     "Smart TVs and gaming consoles",
			Type:            model.ListingTypeAuction,
			CurrentBid:      445,
			OriginalPrice:   2899,
			EndTime:         now.Add(48 * time.Hour),
			MinBidIncrement: 10,
			BidCount:        23,
			Category:        "Electronics",
			Condition:       "Mixed Condition",
			Location:        "Baguio City",
		},
		{
			ListingID:       "l2",
			Title:           "Antique Furniture Collection",
			Description:     "Victorian dining set and armoire",
			Type:            model.ListingTypeAuction,
			CurrentBid:      380,
			OriginalPrice:   1650,
			EndTime:         now.Add(12 * time.Hour),
			MinBidIncrement: 15,
			BidCount:        15,
			Category:        "Furniture",
			Condition:       "Excellent",
			Location:        "Quezon City",
		},
		{
			ListingID:       "l3",
			Title:           "Kitchen Appliances Bundle",
			Description:     "Commercial-grade espresso machine and cookware",
			Type:            model.ListingTypeAuction,
			CurrentBid:      295,
			EndTime:         now.Add(96 * time.Hour),
			MinBidIncrement: 5,
			BidCount:        12,
			Category:        "Appliances",
			Condition:       "Like New",
			Location:        "Cebu City",
		},
		{
			ListingID:   "l4",
			Title:       "Moving Box Bundle",
			Description: "Double-walled boxes with packing tape",
			Type:        model.ListingTypeFixed,
			Price:       89,
			EndTime:     now.Add(30 * 24 * time.Hour),
			Category:    "Supplies",
			Condition:   "New",
			Location:    "Manila",
		},
	}
}

func ids(listings []model.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ListingID)
	}
	return out
}

func TestApply_Filters(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := sampleListings(now)

	tests := []struct {
		name    string
		query   Query
		wantIDs []string
	}{
		{
			name:    "no_filters_passes_everything",
			query:   Query{},
			wantIDs: []string{"l1", "l2", "l3", "l4"},
		},
		{
			name:    "search_matches_title_case_insensitive",
			query:   Query{Search: "ANTIQUE"},
			wantIDs: []string{"l2"},
		},
		{
			name:    "search_matches_description",
			query:   Query{Search: "espresso"},
			wantIDs: []string{"l3"},
		},
		{
			name:    "search_no_match_is_valid_empty_result",
			query:   Query{Search: "submarine"},
			wantIDs: []string{},
		},
		{
			name:    "category_exact_match",
			query:   Query{Category: "Furniture"},
			wantIDs: []string{"l2"},
		},
		{
			name:    "category_all_passes_through",
			query:   Query{Category: FilterAll},
			wantIDs: []string{"l1", "l2", "l3", "l4"},
		},
		{
			name:    "price_range_inclusive_both_ends",
			query:   Query{MinPrice: ptr(295), MaxPrice: ptr(380)},
			wantIDs: []string{"l2", "l3"},
		},
		{
			name:    "price_range_uses_sticker_price_for_fixed",
			query:   Query{MaxPrice: ptr(100)},
			wantIDs: []string{"l4"},
		},
		{
			name:    "condition_filter",
			query:   Query{Condition: "Like New"},
			wantIDs: []string{"l3"},
		},
		{
			name:    "location_filter",
			query:   Query{Location: "Baguio City"},
			wantIDs: []string{"l1"},
		},
		{
			name:    "ending_soon_within_24h",
			query:   Query{Time: TimeEndingSoon},
			wantIDs: []string{"l2"},
		},
		{
			name:    "new_listings_beyond_72h",
			query:   Query{Time: TimeNew},
			wantIDs: []string{"l3", "l4"},
		},
		{
			name:    "combined_filters_are_anded",
			query:   Query{Search: "bundle", Category: "Electronics"},
			wantIDs: []string{"l1"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(listings, tc.query, now)
			require.Equal(t, tc.wantIDs, ids(got))
		})
	}
}

// Filtering must not depend on the order predicates are applied in: one query
// carrying every predicate has to select the same set as chaining the
// predicates one at a time, in any order.
func TestApply_PredicateOrderIrrelevant(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := sampleListings(now)

	full := Query{
		Category: FilterAll,
		MinPrice: ptr(100),
		MaxPrice: ptr(500),
		Time:     TimeNew,
	}
	combined := Apply(listings, full, now)

	chains := [][]Query{
		{{MinPrice: ptr(100), MaxPrice: ptr(500)}, {Time: TimeNew}, {Category: FilterAll}},
		{{Category: FilterAll}, {Time: TimeNew}, {MinPrice: ptr(100), MaxPrice: ptr(500)}},
		{{Time: TimeNew}, {MinPrice: ptr(100), MaxPrice: ptr(500)}, {Category: FilterAll}},
	}
	for _, chain := range chains {
		stepwise := listings
		for _, q := range chain {
			stepwise = Apply(stepwise, q, now)
		}
		require.Equal(t, ids(combined), ids(stepwise))
	}
}

func TestApply_Sorting(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := sampleListings(now)

	tests := []struct {
		name    string
		sortBy  string
		wantIDs []string
	}{
		{
			name:    "ending_ascending_by_end_time",
			sortBy:  SortEnding,
			wantIDs: []string{"l2", "l1", "l3", "l4"},
		},
		{
			name:    "price_low_ascending",
			sortBy:  SortPriceLow,
			wantIDs: []string{"l4", "l3", "l2", "l1"},
		},
		{
			name:    "price_high_descending",
			sortBy:  SortPriceHigh,
			wantIDs: []string{"l1", "l2", "l3", "l4"},
		},
		{
			name:    "bids_descending",
			sortBy:  SortBids,
			wantIDs: []string{"l1", "l2", "l3", "l4"},
		},
		{
			// l1: (2899-445)/2899 = 84.7%, l2: (1650-380)/1650 = 77.0%,
			// l3 and l4 have no original price and sort as 0%
			name:    "discount_descending_missing_original_price_is_zero",
			sortBy:  SortDiscount,
			wantIDs: []string{"l1", "l2", "l3", "l4"},
		},
		{
			name:    "unknown_key_keeps_input_order",
			sortBy:  "popularity",
			wantIDs: []string{"l1", "l2", "l3", "l4"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(listings, Query{SortBy: tc.sortBy}, now)
			require.Equal(t, tc.wantIDs, ids(got))
		})
	}
}

// Sorting price-low then price-high over listings with distinct prices must
// produce exactly reversed orders.
func TestApply_PriceSortsAreReverses(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := sampleListings(now)

	low := ids(Apply(listings, Query{SortBy: SortPriceLow}, now))
	high := ids(Apply(listings, Query{SortBy: SortPriceHigh}, now))

	require.Len(t, high, len(low))
	for i := range low {
		require.Equal(t, low[i], high[len(high)-1-i])
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := sampleListings(now)
	before := ids(listings)

	Apply(listings, Query{SortBy: SortPriceLow}, now)

	require.Equal(t, before, ids(listings))
}

func TestCollectFacets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	facets := CollectFacets(sampleListings(now))

	require.Equal(t, []string{"Electronics", "Furniture", "Appliances", "Supplies"}, facets.Categories)
	require.Equal(t, []string{"Mixed Condition", "Excellent", "Like New", "New"}, facets.Conditions)
	require.Equal(t, []string{"Baguio City", "Quezon City", "Cebu City", "Manila"}, facets.Locations)
}
