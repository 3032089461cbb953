package main

import (
	"fmt"
	"os"
	"time"

	auth "storage-auctions/internal/authService"
	bidding "storage-auctions/internal/biddingService"
	cart "storage-auctions/internal/cartService"
	"storage-auctions/internal/catalog"
	"storage-auctions/internal/config"
	"storage-auctions/internal/repository"
	"storage-auctions/internal/server"
	watchlist "storage-auctions/internal/watchlistService"

	model "storage-auctions/internal/models"
)

func main() {
	cfg := config.MustLoad()

	repo := repository.NewMemoryRepo()
	prepopulateListings(repo)

	svcs := server.Services{
		Catalog:   catalog.NewService(repo),
		Bidding:   bidding.NewBiddingService(repo),
		Cart:      cart.NewCartService(repo, cfg.Marketplace.TaxRate),
		Watchlist: watchlist.NewWatchlistService(repo),
		Auth:      auth.NewAuthService(repo, cfg.JWT.Secret, cfg.JWT.TokenTTL),
	}

	router := server.SetupRouter(cfg, svcs)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.HTTPServer.Address)
	if err := router.Run(cfg.HTTPServer.Address); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateListings adds sample listings to the in-memory repo
func prepopulateListings(repo *repository.MemoryRepo) {
	now := time.Now()
	listings := []model.Listing{
		{
			ListingID:       "listing1",
			Title:           "Premium Electronics Storage Unit Clearance",
			Description:     "High-value electronics bundle including 4K Smart TVs, gaming consoles and smart home devices from storage clearance",
			Type:            model.ListingTypeAuction,
			CurrentBid:      445,
			OriginalPrice:   2899,
			EndTime:         now.Add(2 * 24 * time.Hour),
			MinBidIncrement: 10,
			BidCount:        23,
			Category:        "Electronics",
			Condition:       "Mixed Condition",
			Location:        "Baguio City",
			Seller:          "StorageMax Pro",
			Shipping:        "Free Shipping",
			ShippingCost:    0,
			Featured:        true,
			WatchCount:      89,
		},
		{
			ListingID:       "listing2",
			Title:           "Antique Furniture Estate Collection",
			Description:     "Rare vintage wooden furniture pieces from estate storage including Victorian dining set and antique armoire",
			Type:            model.ListingTypeAuction,
			CurrentBid:      380,
			OriginalPrice:   1650,
			EndTime:         now.Add(1 * 24 * time.Hour),
			MinBidIncrement: 15,
			BidCount:        15,
			Category:        "Furniture",
			Condition:       "Excellent",
			Location:        "Quezon City",
			Seller:          "Heritage Auctions",
			Shipping:        "Available",
			ShippingCost:    25,
			WatchCount:      34,
		},
		{
			ListingID:       "listing3",
			Title:           "Professional Kitchen Appliances Bundle",
			Description:     "Commercial-grade kitchen equipment including mixer, blender, espresso machine and professional cookware set",
			Type:            model.ListingTypeAuction,
			CurrentBid:      295,
			OriginalPrice:   1320,
			EndTime:         now.Add(3 * 24 * time.Hour),
			MinBidIncrement: 5,
			BidCount:        12,
			Category:        "Appliances",
			Condition:       "Like New",
			Location:        "Cebu City",
			Seller:          "CulinaryStorage",
			Shipping:        "Express Available",
			ShippingCost:    25,
			WatchCount:      56,
		},
		{
			ListingID:       "listing4",
			Title:           "Complete Home Gym Equipment Set",
			Description:     "Professional fitness equipment including adjustable dumbbells, resistance bands, yoga mats and cardio machines",
			Type:            model.ListingTypeAuction,
			CurrentBid:      225,
			OriginalPrice:   950,
			EndTime:         now.Add(4 * 24 * time.Hour),
			MinBidIncrement: 10,
			BidCount:        18,
			Category:        "Sports",
			Condition:       "Good",
			Location:        "Ilocos Norte",
			Seller:          "FitStorage",
			Shipping:        "Pickup Available",
			ShippingCost:    15,
			WatchCount:      42,
		},
		{
			ListingID:       "listing5",
			Title:           "Designer Fashion & Accessories Collection",
			Description:     "Luxury brand clothing, handbags, shoes and accessories from a high-end storage unit",
			Type:            model.ListingTypeAuction,
			CurrentBid:      720,
			OriginalPrice:   4200,
			EndTime:         now.Add(5 * 24 * time.Hour),
			MinBidIncrement: 25,
			BidCount:        31,
			Category:        "Fashion",
			Condition:       "Excellent",
			Location:        "Baguio City",
			Seller:          "LuxuryVault",
			Shipping:        "Express Available",
			ShippingCost:    25,
			Featured:        true,
			WatchCount:      127,
		},
		{
			ListingID:       "listing6",
			Title:           "Rare Books & Collectibles Archive",
			Description:     "Vintage books, first editions, comic books, vinyl records and media collectibles from estate storage clearance",
			Type:            model.ListingTypeAuction,
			CurrentBid:      165,
			OriginalPrice:   580,
			EndTime:         now.Add(6 * 24 * time.Hour),
			MinBidIncrement: 5,
			BidCount:        8,
			Category:        "Media",
			Condition:       "Very Good",
			Location:        "Manila",
			Seller:          "CollectorVault",
			Shipping:        "Available",
			ShippingCost:    10,
			WatchCount:      21,
		},
		{
			ListingID:    "listing7",
			Title:        "Heavy-Duty Moving Box Bundle (20 pcs)",
			Description:  "Double-walled cardboard boxes with packing tape and bubble wrap, unused surplus from a storage facility",
			Type:         model.ListingTypeFixed,
			Price:        89,
			EndTime:      now.Add(30 * 24 * time.Hour),
			Category:     "Supplies",
			Condition:    "New",
			Location:     "Manila",
			Seller:       "StorageMax Pro",
			Shipping:     "Flat Rate",
			ShippingCost: 8,
		},
		{
			ListingID:    "listing8",
			Title:        "Steel Shelving Unit, 5 Tier",
			Description:  "Adjustable boltless steel shelving rack rated 350kg per shelf, surplus warehouse stock",
			Type:         model.ListingTypeFixed,
			Price:        120,
			EndTime:      now.Add(30 * 24 * time.Hour),
			Category:     "Supplies",
			Condition:    "New",
			Location:     "Cebu City",
			Seller:       "StorageMax Pro",
			Shipping:     "Flat Rate",
			ShippingCost: 12,
		},
	}

	for _, listing := range listings {
		repo.AddListing(listing)
	}
}
