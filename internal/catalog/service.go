package catalog

import (
	"fmt"
	"time"

	"storage-auctions/internal/repository"

	model "storage-auctions/internal/models"
)

// Service answers catalog reads against the listing store. Time-derived values
// are recomputed against a fresh clock sample on every call rather than held
// in any incrementally maintained structure.
type Service struct {
	repo repository.ListingDB
	now  func() time.Time
}

// NewService creates a new catalog Service instance
func NewService(repo repository.ListingDB) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Browse returns the filtered and sorted listing view for one query, the
// facets of the full listing set, and the clock sample the view was computed
// against so callers derive every countdown from the same instant.
func (s *Service) Browse(q Query) ([]model.Listing, Facets, time.Time) {
	listings := s.repo.ListListings()
	now := s.now()
	return Apply(listings, q, now), CollectFacets(listings), now
}

// Get returns a single listing with the clock sample for its countdown
func (s *Service) Get(listingID string) (model.Listing, time.Time, error) {
	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return model.Listing{}, time.Time{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, s.now(), nil
}
