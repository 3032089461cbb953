package handler

import (
	"fmt"
	"net/http"

	"storage-auctions/services/marketplace/helpers"
	"storage-auctions/utils"

	model "storage-auctions/internal/models"

	"github.com/gin-gonic/gin"
)

type WatchlistServiceInterface interface {
	Toggle(userID, listingID string) (bool, error)
	List(userID string) ([]model.Listing, error)
}

type WatchlistHandler struct {
	service WatchlistServiceInterface
}

func NewWatchlistHandler(service WatchlistServiceInterface) *WatchlistHandler {
	return &WatchlistHandler{service: service}
}

// ToggleWatchHandler handles POST /watchlist/:listing_id
func (h *WatchlistHandler) ToggleWatchHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")

	watching, err := h.service.Toggle(userID, listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ToggleWatchHandler: failed to toggle watch", map[string]any{
			"user_id":    userID,
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "watching": watching}, "watchlist updated")
	helpers.LogSuccess("ToggleWatchHandler", "watchlist updated", map[string]any{
		"user_id":    userID,
		"listing_id": listingID,
		"watching":   watching,
	})
}

// GetWatchlistHandler handles GET /watchlist
func (h *WatchlistHandler) GetWatchlistHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	listings, err := h.service.List(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWatchlistHandler: error retrieving watchlist", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "watchlist retrieved successfully")
}
