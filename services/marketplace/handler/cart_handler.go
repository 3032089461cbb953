package handler

import (
	"fmt"
	"net/http"

	"storage-auctions/services/marketplace/helpers"
	"storage-auctions/utils"

	model "storage-auctions/internal/models"

	"github.com/gin-gonic/gin"
)

type CartServiceInterface interface {
	AddToCart(userID, listingID string) ([]model.CartLine, model.CartTotals, error)
	UpdateQuantity(userID, listingID string, quantity int) ([]model.CartLine, model.CartTotals, error)
	RemoveFromCart(userID, listingID string) ([]model.CartLine, model.CartTotals, error)
	GetCart(userID string) ([]model.CartLine, model.CartTotals, error)
	Checkout(userID, shippingAddress, paymentMethod string) (model.Order, error)
	GetOrders(userID string) ([]model.Order, error)
}

type CartHandler struct {
	service CartServiceInterface
}

func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

func cartPayload(lines []model.CartLine, totals model.CartTotals) gin.H {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return gin.H{"lines": lines, "totals": totals}
}

// GetCartHandler handles GET /cart
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	lines, totals, err := h.service.GetCart(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCartHandler: error retrieving cart", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cartPayload(lines, totals), "cart retrieved successfully")
}

// AddToCartHandler handles POST /cart
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	var req helpers.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToCartHandler", err)
		return
	}

	userID := c.GetString(ContextUserID)
	lines, totals, err := h.service.AddToCart(userID, req.ListingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddToCartHandler: failed to add listing", map[string]any{
			"user_id":    userID,
			"listing_id": req.ListingID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, cartPayload(lines, totals), "listing added to cart")
	helpers.LogSuccess("AddToCartHandler", "listing added to cart", map[string]any{
		"user_id":    userID,
		"listing_id": req.ListingID,
	})
}

// UpdateQuantityHandler handles PATCH /cart/:listing_id
func (h *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	var req helpers.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateQuantityHandler", err)
		return
	}

	userID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")
	lines, totals, err := h.service.UpdateQuantity(userID, listingID, *req.Quantity)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateQuantityHandler: failed to update quantity", map[string]any{
			"user_id":    userID,
			"listing_id": listingID,
			"quantity":   *req.Quantity,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cartPayload(lines, totals), "cart updated successfully")
}

// RemoveFromCartHandler handles DELETE /cart/:listing_id
func (h *CartHandler) RemoveFromCartHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")

	lines, totals, err := h.service.RemoveFromCart(userID, listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveFromCartHandler: failed to remove line", map[string]any{
			"user_id":    userID,
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cartPayload(lines, totals), "cart line removed")
}

// CheckoutHandler handles POST /checkout
func (h *CartHandler) CheckoutHandler(c *gin.Context) {
	var req helpers.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CheckoutHandler", err)
		return
	}

	userID := c.GetString(ContextUserID)
	order, err := h.service.Checkout(userID, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CheckoutHandler: checkout failed", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, order, "order created successfully")
	helpers.LogSuccess("CheckoutHandler", "order created successfully", map[string]any{
		"user_id":  userID,
		"order_id": order.OrderID,
		"total":    order.Total,
	})
}

// GetOrdersHandler handles GET /orders
func (h *CartHandler) GetOrdersHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	orders, err := h.service.GetOrders(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOrdersHandler: error retrieving orders", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	utils.JSONResponse(c, http.StatusOK, orders, "orders retrieved successfully")
}
