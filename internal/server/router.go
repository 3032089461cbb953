package server

import (
	auth "storage-auctions/internal/authService"
	bidding "storage-auctions/internal/biddingService"
	cart "storage-auctions/internal/cartService"
	"storage-auctions/internal/catalog"
	"storage-auctions/internal/config"
	watchlist "storage-auctions/internal/watchlistService"
	handler "storage-auctions/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router serves
type Services struct {
	Catalog   *catalog.Service
	Bidding   *bidding.BiddingService
	Cart      *cart.CartService
	Watchlist *watchlist.WatchlistService
	Auth      *auth.AuthService
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(cfg *config.Config, svcs Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	catalogHandler := handler.NewCatalogHandler(svcs.Catalog, cfg.Marketplace.CurrencyCode, cfg.Marketplace.CountdownRefresh)
	biddingHandler := handler.NewBiddingHandler(svcs.Bidding)
	cartHandler := handler.NewCartHandler(svcs.Cart)
	watchlistHandler := handler.NewWatchlistHandler(svcs.Watchlist)
	authHandler := handler.NewAuthHandler(svcs.Auth)

	authRequired := AuthRequiredMiddleware(svcs.Auth)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterHandler)
		authRoutes.POST("/login", authHandler.LoginHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", catalogHandler.ListListingsHandler)
		listings.GET("/:listing_id", catalogHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", biddingHandler.GetBidsByListingHandler)
		listings.GET("/:listing_id/winning", biddingHandler.GetWinningBidHandler)
	}

	router.POST("/bids", authRequired, biddingHandler.PlaceBidHandler)

	cartRoutes := router.Group("/cart", authRequired)
	{
		cartRoutes.GET("", cartHandler.GetCartHandler)
		cartRoutes.POST("", cartHandler.AddToCartHandler)
		cartRoutes.PATCH("/:listing_id", cartHandler.UpdateQuantityHandler)
		cartRoutes.DELETE("/:listing_id", cartHandler.RemoveFromCartHandler)
	}

	router.POST("/checkout", authRequired, cartHandler.CheckoutHandler)
	router.GET("/orders", authRequired, cartHandler.GetOrdersHandler)

	watchRoutes := router.Group("/watchlist", authRequired)
	{
		watchRoutes.GET("", watchlistHandler.GetWatchlistHandler)
		watchRoutes.POST("/:listing_id", watchlistHandler.ToggleWatchHandler)
	}

	return router
}
