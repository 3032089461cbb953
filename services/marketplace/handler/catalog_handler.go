package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"storage-auctions/internal/catalog"
	"storage-auctions/internal/markerrors"
	"storage-auctions/services/marketplace/helpers"
	"storage-auctions/utils"

	model "storage-auctions/internal/models"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	Browse(q catalog.Query) ([]model.Listing, catalog.Facets, time.Time)
	Get(listingID string) (model.Listing, time.Time, error)
}

type CatalogHandler struct {
	service          CatalogServiceInterface
	currencyCode     string
	countdownRefresh time.Duration
}

func NewCatalogHandler(service CatalogServiceInterface, currencyCode string, countdownRefresh time.Duration) *CatalogHandler {
	return &CatalogHandler{
		service:          service,
		currencyCode:     currencyCode,
		countdownRefresh: countdownRefresh,
	}
}

// ListListingsHandler handles GET /listings
func (h *CatalogHandler) ListListingsHandler(c *gin.Context) {
	query := catalog.Query{
		Search:    c.Query("q"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
		Location:  c.Query("location"),
		MinPrice:  parsePriceBound(c.Query("min_price")),
		MaxPrice:  parsePriceBound(c.Query("max_price")),
		Time:      c.Query("time"),
		SortBy:    c.Query("sort"),
	}

	listings, facets, now := h.service.Browse(query)

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"listings":             helpers.NewListingViews(listings, now),
		"facets":               facets,
		"count":                len(listings),
		"currency":             h.currencyCode,
		"countdown_refresh_ms": h.countdownRefresh.Milliseconds(),
	}, "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"count": len(listings),
		"sort":  query.SortBy,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *CatalogHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	listing, now, err := h.service.Get(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		if !errors.Is(err, markerrors.ErrListingNotFound) {
			utils.Warn("GetListingHandler: error retrieving listing", map[string]any{"listing_id": listingID, "error": err.Error()})
		}
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"listing":              helpers.NewListingView(listing, now),
		"currency":             h.currencyCode,
		"countdown_refresh_ms": h.countdownRefresh.Milliseconds(),
	}, "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"listing_id": listingID,
	})
}

// parsePriceBound converts a query parameter to a price bound. Anything that
// does not parse as a number fails closed to an unset bound so malformed
// input never reaches the catalog comparisons.
func parsePriceBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
