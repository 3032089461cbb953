package cart

import (
	"fmt"
	"time"

	"storage-auctions/internal/markerrors"
	"storage-auctions/internal/models"
	"storage-auctions/internal/repository"
	"storage-auctions/utils"
)

// CartService defines the business logic for fixed-price carts and checkout
type CartService struct {
	repo    repository.CartDB
	taxRate float64
	now     func() time.Time
}

// NewCartService creates a new CartService instance. taxRate is a fraction,
// e.g. 0.08 for an 8% sales tax.
func NewCartService(repo repository.CartDB, taxRate float64) *CartService {
	return &CartService{
		repo:    repo,
		taxRate: taxRate,
		now:     time.Now,
	}
}

// AddToCart puts one unit of a fixed-price listing into the user's cart.
// Auction listings are not cart-eligible; bidding is the only way to buy them.
func (s *CartService) AddToCart(userID, listingID string) ([]models.CartLine, models.CartTotals, error) {
	if userID == "" || listingID == "" {
		return nil, models.CartTotals{}, fmt.Errorf("service: %w - missing userID or listingID", markerrors.ErrInvalidInput)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return nil, models.CartTotals{}, fmt.Errorf("service: failed to load listing for cart: %w", err)
	}
	if listing.IsAuction() {
		return nil, models.CartTotals{}, fmt.Errorf("service: %w - listing %s is an auction", markerrors.ErrNotPurchasable, listingID)
	}

	s.repo.AddCartLine(userID, models.CartLine{
		ListingID:    listing.ListingID,
		Title:        listing.Title,
		UnitPrice:    listing.Price,
		ShippingCost: listing.ShippingCost,
		Quantity:     1,
	})

	return s.GetCart(userID)
}

// UpdateQuantity sets a cart line's quantity directly; zero or below removes
// the line.
func (s *CartService) UpdateQuantity(userID, listingID string, quantity int) ([]models.CartLine, models.CartTotals, error) {
	if userID == "" || listingID == "" {
		return nil, models.CartTotals{}, fmt.Errorf("service: %w - missing userID or listingID", markerrors.ErrInvalidInput)
	}

	if err := s.repo.SetCartQuantity(userID, listingID, quantity); err != nil {
		return nil, models.CartTotals{}, fmt.Errorf("service: failed to update quantity: %w", err)
	}

	return s.GetCart(userID)
}

// RemoveFromCart deletes a cart line unconditionally
func (s *CartService) RemoveFromCart(userID, listingID string) ([]models.CartLine, models.CartTotals, error) {
	if userID == "" || listingID == "" {
		return nil, models.CartTotals{}, fmt.Errorf("service: %w - missing userID or listingID", markerrors.ErrInvalidInput)
	}

	if err := s.repo.RemoveCartLine(userID, listingID); err != nil {
		return nil, models.CartTotals{}, fmt.Errorf("service: failed to remove cart line: %w", err)
	}

	return s.GetCart(userID)
}

// GetCart returns the user's cart lines with totals recomputed from scratch
func (s *CartService) GetCart(userID string) ([]models.CartLine, models.CartTotals, error) {
	if userID == "" {
		return nil, models.CartTotals{}, fmt.Errorf("service: %w - empty user ID", markerrors.ErrInvalidInput)
	}

	lines := s.repo.GetCart(userID)
	return lines, s.Totals(lines), nil
}

// Totals computes subtotal, shipping, tax and total for a set of cart lines.
// Shipping is a flat per-line cost, not per unit. Totals are always derived
// fresh from the lines so repeated mutations cannot drift the sums.
func (s *CartService) Totals(lines []models.CartLine) models.CartTotals {
	var totals models.CartTotals
	for _, line := range lines {
		totals.Subtotal += line.UnitPrice * float64(line.Quantity)
		totals.Shipping += line.ShippingCost
	}
	totals.Tax = totals.Subtotal * s.taxRate
	totals.Total = totals.Subtotal + totals.Shipping + totals.Tax
	return totals
}

// Checkout snapshots the cart into an order, clears the cart and returns the
// order synchronously. There is no payment gateway behind this; the order is
// created in status "processing" and stays there.
func (s *CartService) Checkout(userID, shippingAddress, paymentMethod string) (models.Order, error) {
	if userID == "" {
		return models.Order{}, fmt.Errorf("service: %w - empty user ID", markerrors.ErrInvalidInput)
	}
	if shippingAddress == "" || paymentMethod == "" {
		return models.Order{}, fmt.Errorf("service: %w - missing shipping address or payment method", markerrors.ErrInvalidInput)
	}

	lines, err := s.repo.TakeCart(userID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to checkout for user %s: %w", userID, err)
	}

	totals := s.Totals(lines)
	order := models.Order{
		OrderID:         utils.GenerateID(),
		UserID:          userID,
		Lines:           lines,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          models.OrderStatusProcessing,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		CreatedAt:       s.now().UTC(),
	}
	s.repo.SaveOrder(order)

	return order, nil
}

// GetOrders returns the user's completed orders
func (s *CartService) GetOrders(userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", markerrors.ErrInvalidInput)
	}
	return s.repo.GetOrdersByUser(userID), nil
}
