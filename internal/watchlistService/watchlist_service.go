package watchlist

import (
	"fmt"

	"storage-auctions/internal/markerrors"
	"storage-auctions/internal/models"
	"storage-auctions/internal/repository"
)

// WatchlistService defines the business logic for per-user watchlists
type WatchlistService struct {
	repo repository.WatchDB
}

// NewWatchlistService creates a new WatchlistService instance
func NewWatchlistService(repo repository.WatchDB) *WatchlistService {
	return &WatchlistService{repo: repo}
}

// Toggle flips the watch state of a listing for the user: add if absent,
// remove if present. Returns true when the listing is now watched.
func (s *WatchlistService) Toggle(userID, listingID string) (bool, error) {
	if userID == "" || listingID == "" {
		return false, fmt.Errorf("service: %w - missing userID or listingID", markerrors.ErrInvalidInput)
	}

	watching, err := s.repo.ToggleWatch(userID, listingID)
	if err != nil {
		return false, fmt.Errorf("service: failed to toggle watch on listing %s: %w", listingID, err)
	}
	return watching, nil
}

// List returns the user's watched listings
func (s *WatchlistService) List(userID string) ([]models.Listing, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", markerrors.ErrInvalidInput)
	}
	return s.repo.GetWatchlist(userID), nil
}
