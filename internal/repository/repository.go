package repository

import (
	"fmt"
	"sync"

	"storage-auctions/internal/markerrors"
	model "storage-auctions/internal/models"
)

// ListingDB is the read surface the catalog needs
type ListingDB interface {
	GetListing(listingID string) (model.Listing, error)
	ListListings() []model.Listing
}

// AuctionDB defines the bid storage interface for the auction flow
type AuctionDB interface {
	GetListing(listingID string) (model.Listing, error)
	RecordBid(bid model.Bid) error
	GetBidsByListing(listingID string) ([]model.Bid, error)
	GetWinningBid(listingID string) (model.Bid, error)
}

// CartDB defines the storage interface for carts and orders
type CartDB interface {
	GetListing(listingID string) (model.Listing, error)
	GetCart(userID string) []model.CartLine
	AddCartLine(userID string, line model.CartLine)
	SetCartQuantity(userID, listingID string, quantity int) error
	RemoveCartLine(userID, listingID string) error
	TakeCart(userID string) ([]model.CartLine, error)
	SaveOrder(order model.Order)
	GetOrdersByUser(userID string) []model.Order
}

// WatchDB defines the storage interface for per-user watchlists
type WatchDB interface {
	ToggleWatch(userID, listingID string) (bool, error)
	GetWatchlist(userID string) []model.Listing
}

// UserDB defines the storage interface for registered accounts
type UserDB interface {
	SaveUser(user model.User) error
	GetUserByUsername(username string) (model.User, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of the storage
// interfaces. All marketplace state lives here for the lifetime of the process.
type MemoryRepo struct {
	mu           sync.RWMutex
	listings     map[string]model.Listing
	listingOrder []string                    // insertion order, keeps catalog output deterministic
	bids         map[string][]model.Bid      // key: listingID -> value: accepted bids, append-only
	carts        map[string][]model.CartLine // key: userID -> value: cart lines in insertion order
	watchlists   map[string][]string         // key: userID -> value: watched listingIDs
	orders       map[string][]model.Order    // key: userID -> value: completed orders
	users        map[string]model.User       // key: userID -> value: account
	byUsername   map[string]string           // key: username -> value: userID
	byEmail      map[string]string           // key: email -> value: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings:   make(map[string]model.Listing),
		bids:       make(map[string][]model.Bid),
		carts:      make(map[string][]model.CartLine),
		watchlists: make(map[string][]string),
		orders:     make(map[string][]model.Order),
		users:      make(map[string]model.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

// AddListing registers a listing. Used by the startup seed and by tests.
func (r *MemoryRepo) AddListing(listing model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[listing.ListingID]; !exists {
		r.listingOrder = append(r.listingOrder, listing.ListingID)
	}
	r.listings[listing.ListingID] = listing
}

// GetListing returns a single listing by id
func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, markerrors.ErrListingNotFound)
	}
	return listing, nil
}

// ListListings returns all listings in insertion order
func (r *MemoryRepo) ListListings() []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.Listing, 0, len(r.listingOrder))
	for _, id := range r.listingOrder {
		listings = append(listings, r.listings[id])
	}
	return listings
}

// RecordBid applies an accepted bid to its listing and appends the bid record.
// The amount rules are re-checked inside the critical section, so this method
// is the single authority deciding whether a bid lands; a server-authoritative
// networked version would relocate exactly this check.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[bid.ListingID]
	if !ok {
		return fmt.Errorf("record bid for listing %s: %w", bid.ListingID, markerrors.ErrListingNotFound)
	}
	if !listing.IsAuction() {
		return fmt.Errorf("record bid for listing %s: %w - listing is fixed-price", bid.ListingID, markerrors.ErrInvalidBid)
	}
	if bid.Amount <= listing.CurrentBid {
		return fmt.Errorf("record bid for listing %s: %w - current bid is %.2f", bid.ListingID, markerrors.ErrBidTooLow, listing.CurrentBid)
	}
	if bid.Amount < listing.NextBid() {
		return fmt.Errorf("record bid for listing %s: %w - minimum bid is %.2f", bid.ListingID, markerrors.ErrBelowIncrement, listing.NextBid())
	}

	listing.CurrentBid = bid.Amount
	listing.BidCount++
	r.listings[bid.ListingID] = listing
	r.bids[bid.ListingID] = append(r.bids[bid.ListingID], bid)

	return nil
}

// GetBidsByListing returns all accepted bids for a listing
func (r *MemoryRepo) GetBidsByListing(listingID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.listings[listingID]; !ok {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, markerrors.ErrListingNotFound)
	}
	return append([]model.Bid(nil), r.bids[listingID]...), nil
}

// GetWinningBid returns the highest bid for a listing, earliest wins on ties
func (r *MemoryRepo) GetWinningBid(listingID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[listingID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %s: %w", listingID, markerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// GetCart returns a copy of the user's cart lines
func (r *MemoryRepo) GetCart(userID string) []model.CartLine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.CartLine(nil), r.carts[userID]...)
}

// AddCartLine increments the quantity of an existing line or appends a new one
func (r *MemoryRepo) AddCartLine(userID string, line model.CartLine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.carts[userID] {
		if existing.ListingID == line.ListingID {
			r.carts[userID][i].Quantity += line.Quantity
			return
		}
	}
	r.carts[userID] = append(r.carts[userID], line)
}

// SetCartQuantity sets a line's quantity directly; zero or below removes the line
func (r *MemoryRepo) SetCartQuantity(userID, listingID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, line := range r.carts[userID] {
		if line.ListingID != listingID {
			continue
		}
		if quantity <= 0 {
			r.carts[userID] = append(r.carts[userID][:i], r.carts[userID][i+1:]...)
		} else {
			r.carts[userID][i].Quantity = quantity
		}
		return nil
	}
	return fmt.Errorf("set quantity for listing %s: %w", listingID, markerrors.ErrLineNotFound)
}

// RemoveCartLine deletes a line unconditionally
func (r *MemoryRepo) RemoveCartLine(userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, line := range r.carts[userID] {
		if line.ListingID == listingID {
			r.carts[userID] = append(r.carts[userID][:i], r.carts[userID][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove listing %s from cart: %w", listingID, markerrors.ErrLineNotFound)
}

// TakeCart atomically snapshots and clears the user's cart for checkout
func (r *MemoryRepo) TakeCart(userID string) ([]model.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[userID]
	if len(lines) == 0 {
		return nil, fmt.Errorf("take cart for user %s: %w", userID, markerrors.ErrEmptyCart)
	}

	snapshot := append([]model.CartLine(nil), lines...)
	delete(r.carts, userID)
	return snapshot, nil
}

// SaveOrder stores a completed order
func (r *MemoryRepo) SaveOrder(order model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.UserID] = append(r.orders[order.UserID], order)
}

// GetOrdersByUser returns the user's completed orders, oldest first
func (r *MemoryRepo) GetOrdersByUser(userID string) []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Order(nil), r.orders[userID]...)
}

// ToggleWatch flips the user's watch membership for a listing and reports the
// resulting state: true when the listing is now watched.
func (r *MemoryRepo) ToggleWatch(userID, listingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return false, fmt.Errorf("toggle watch for listing %s: %w", listingID, markerrors.ErrListingNotFound)
	}

	for i, id := range r.watchlists[userID] {
		if id == listingID {
			r.watchlists[userID] = append(r.watchlists[userID][:i], r.watchlists[userID][i+1:]...)
			if listing.WatchCount > 0 {
				listing.WatchCount--
				r.listings[listingID] = listing
			}
			return false, nil
		}
	}

	r.watchlists[userID] = append(r.watchlists[userID], listingID)
	listing.WatchCount++
	r.listings[listingID] = listing
	return true, nil
}

// GetWatchlist returns the user's watched listings in the order they were added
func (r *MemoryRepo) GetWatchlist(userID string) []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.Listing, 0, len(r.watchlists[userID]))
	for _, id := range r.watchlists[userID] {
		if listing, exists := r.listings[id]; exists {
			listings = append(listings, listing)
		}
	}
	return listings
}

// SaveUser stores a new account, rejecting duplicate usernames and emails
func (r *MemoryRepo) SaveUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return fmt.Errorf("save user %s: %w", user.Username, markerrors.ErrDuplicateUser)
	}
	if _, taken := r.byEmail[user.Email]; taken {
		return fmt.Errorf("save user %s: %w", user.Username, markerrors.ErrDuplicateUser)
	}

	r.users[user.UserID] = user
	r.byUsername[user.Username] = user.UserID
	r.byEmail[user.Email] = user.UserID
	return nil
}

// GetUserByUsername looks up an account for login
func (r *MemoryRepo) GetUserByUsername(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byUsername[username]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", username, markerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}
