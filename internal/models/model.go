package models

import "time"

// ListingType distinguishes auction lots from fixed-price stock
type ListingType string

const (
	ListingTypeAuction ListingType = "auction"
	ListingTypeFixed   ListingType = "fixed"
)

// OrderStatusProcessing is the status every freshly created order starts in
const OrderStatusProcessing = "processing"

// User represents a registered marketplace account
type User struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Listing represents an auction lot or a fixed-price item
type Listing struct {
	ListingID       string      `json:"listing_id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Type            ListingType `json:"type"`
	CurrentBid      float64     `json:"current_bid"`
	Price           float64     `json:"price,omitempty"`
	OriginalPrice   float64     `json:"original_price,omitempty"`
	EndTime         time.Time   `json:"end_time"`
	MinBidIncrement float64     `json:"min_bid_increment"`
	BidCount        int         `json:"bid_count"`
	Category        string      `json:"category"`
	Condition       string      `json:"condition"`
	Location        string      `json:"location"`
	Seller          string      `json:"seller"`
	Shipping        string      `json:"shipping"`
	ShippingCost    float64     `json:"shipping_cost"`
	Featured        bool        `json:"featured,omitempty"`
	WatchCount      int         `json:"watch_count,omitempty"`
}

// IsAuction reports whether the listing accepts bids
func (l Listing) IsAuction() bool {
	return l.Type == ListingTypeAuction
}

// EffectivePrice is the amount a buyer currently pays or bids against:
// the running bid for auctions, the sticker price for fixed-price items.
func (l Listing) EffectivePrice() float64 {
	if l.IsAuction() {
		return l.CurrentBid
	}
	return l.Price
}

// NextBid is the minimum legal bid for an auction listing
func (l Listing) NextBid() float64 {
	return l.CurrentBid + l.MinBidIncrement
}

// DiscountPercent returns the discount against the original price.
// Listings without an original price report 0, and a running bid above
// the original price is clamped to 0 rather than going negative.
func (l Listing) DiscountPercent() float64 {
	if l.OriginalPrice <= 0 {
		return 0
	}
	pct := (l.OriginalPrice - l.EffectivePrice()) / l.OriginalPrice * 100
	if pct < 0 {
		return 0
	}
	return pct
}

// Bid represents a user's accepted bid on a listing. Bid records are append-only.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ListingID string    `json:"listing_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is one fixed-price listing in a user's cart
type CartLine struct {
	ListingID    string  `json:"listing_id"`
	Title        string  `json:"title"`
	UnitPrice    float64 `json:"unit_price"`
	ShippingCost float64 `json:"shipping_cost"`
	Quantity     int     `json:"quantity"`
}

// CartTotals holds the amounts recomputed on every cart read
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Order is an immutable snapshot of a checked-out cart
type Order struct {
	OrderID         string     `json:"order_id"`
	UserID          string     `json:"user_id"`
	Lines           []CartLine `json:"lines"`
	Subtotal        float64    `json:"subtotal"`
	Shipping        float64    `json:"shipping"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	ShippingAddress string     `json:"shipping_address"`
	PaymentMethod   string     `json:"payment_method"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TimeRemaining is the countdown state of an auction listing
type TimeRemaining struct {
	Display string `json:"display"`
	Urgent  bool   `json:"urgent"`
}
