package helpers

import (
	"time"

	"storage-auctions/internal/countdown"

	model "storage-auctions/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	ListingID string  `json:"listing_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ListingID string  `json:"listing_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddToCartRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

// Quantity is a pointer so an explicit zero (remove the line) survives binding
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=card cash mobile"`
}

// ListingView is a listing decorated with the display values the rendering
// layer needs: countdown state, the minimum legal next bid and the discount
// percentage. Amounts stay numeric; currency formatting is the renderer's job.
type ListingView struct {
	model.Listing
	TimeRemaining   model.TimeRemaining `json:"time_remaining"`
	NextBid         float64             `json:"next_bid,omitempty"`
	DiscountPercent float64             `json:"discount_percent"`
}

// NewListingView decorates a listing against one clock sample
func NewListingView(l model.Listing, now time.Time) ListingView {
	view := ListingView{
		Listing:         l,
		TimeRemaining:   countdown.Remaining(l.EndTime, now),
		DiscountPercent: l.DiscountPercent(),
	}
	if l.IsAuction() {
		view.NextBid = l.NextBid()
	}
	return view
}

// NewListingViews decorates a whole catalog page against the same clock sample
func NewListingViews(listings []model.Listing, now time.Time) []ListingView {
	views := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, NewListingView(l, now))
	}
	return views
}

// NewBidResponse converts a bid record for the wire
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
