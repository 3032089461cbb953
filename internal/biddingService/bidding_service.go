package bidding

import (
	"fmt"
	"time"

	"storage-auctions/internal/countdown"
	"storage-auctions/internal/markerrors"
	"storage-auctions/internal/models"
	"storage-auctions/internal/repository"
	"storage-auctions/utils"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo repository.AuctionDB
	now  func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{
		repo: repo,
		now:  time.Now,
	}
}

// PlaceBid validates and records a user's bid on a listing. The amount rules
// (strictly above the current bid, at least one increment above it) are
// enforced by the repository inside its critical section; the rejection comes
// back as ErrBidTooLow or ErrBelowIncrement with the listing untouched.
func (s *BiddingService) PlaceBid(listingID, userID string, amount float64) (models.Bid, error) {
	if err := s.validateBid(listingID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on listing %s by user %s: %w", listingID, userID, err)
	}

	return bid, nil
}

// validateBid checks input validity and the auction's state before the amount
// rules are applied
func (s *BiddingService) validateBid(listingID, userID string, amount float64) error {
	if listingID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing listingID or userID", markerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", markerrors.ErrInvalidBid)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return fmt.Errorf("service: failed to load listing for bid: %w", err)
	}
	if !listing.IsAuction() {
		return fmt.Errorf("service: %w - listing %s is fixed-price", markerrors.ErrInvalidBid, listingID)
	}
	if countdown.Ended(listing.EndTime, s.now()) {
		return fmt.Errorf("service: %w - listing %s", markerrors.ErrAuctionEnded, listingID)
	}

	return nil
}

// SuggestedBid clamps a proposed amount at the minimum legal bid for the
// listing, so stepping a bid down can never go below it.
func SuggestedBid(listing models.Listing, proposed float64) float64 {
	if minimum := listing.NextBid(); proposed < minimum {
		return minimum
	}
	return proposed
}

// GetBidsForListing returns the append-only bid history of a listing
func (s *BiddingService) GetBidsForListing(listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", markerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific listing
func (s *BiddingService) GetWinningBid(listingID string) (models.Bid, error) {
	if listingID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty listing ID", markerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetWinningBid(listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for listing %s: %w", listingID, err)
	}

	return winningBid, nil
}
