package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auth "storage-auctions/internal/authService"
	bidding "storage-auctions/internal/biddingService"
	cart "storage-auctions/internal/cartService"
	"storage-auctions/internal/catalog"
	"storage-auctions/internal/config"
	model "storage-auctions/internal/models"
	"storage-auctions/internal/repository"
	"storage-auctions/internal/server"
	watchlist "storage-auctions/internal/watchlistService"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: "test",
		Marketplace: config.MarketplaceConfig{
			TaxRate:          0.08,
			CurrencyCode:     "PHP",
			CountdownRefresh: time.Second,
		},
		JWT: config.JWTConfig{
			Secret:   "integration-test-secret",
			TokenTTL: time.Hour,
		},
	}
}

// SetupTestRouterWithListings initializes the router against an in-memory
// repository seeded with the given listings.
func SetupTestRouterWithListings(listings ...model.Listing) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	repo := repository.NewMemoryRepo()

	for _, listing := range listings {
		repo.AddListing(listing)
	}

	svcs := server.Services{
		Catalog:   catalog.NewService(repo),
		Bidding:   bidding.NewBiddingService(repo),
		Cart:      cart.NewCartService(repo, cfg.Marketplace.TaxRate),
		Watchlist: watchlist.NewWatchlistService(repo),
		Auth:      auth.NewAuthService(repo, cfg.JWT.Secret, cfg.JWT.TokenTTL),
	}

	return server.SetupRouter(cfg, svcs)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope. An empty token means an unauthenticated call.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// RegisterAndLogin creates an account through the API and returns a session
// token for it.
func RegisterAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "password-" + username,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", map[string]any{
		"username": username,
		"password": "password-" + username,
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}
