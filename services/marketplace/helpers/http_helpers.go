package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"storage-auctions/internal/markerrors"
	"storage-auctions/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, markerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, markerrors.ErrLineNotFound):
		return http.StatusNotFound, "cart line not found"
	case errors.Is(err, markerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for listing"
	case errors.Is(err, markerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, markerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, markerrors.ErrBelowIncrement):
		return http.StatusConflict, "bid below minimum increment"
	case errors.Is(err, markerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, markerrors.ErrNotPurchasable):
		return http.StatusBadRequest, "only fixed-price listings can be added to the cart"
	case errors.Is(err, markerrors.ErrEmptyCart):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, markerrors.ErrDuplicateUser):
		return http.StatusConflict, "username or email already registered"
	case errors.Is(err, markerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, markerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
