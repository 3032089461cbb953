package server

import (
	"strings"
	"time"

	auth "storage-auctions/internal/authService"
	handler "storage-auctions/services/marketplace/handler"
	"storage-auctions/utils"

	"github.com/gin-gonic/gin"
)

// LoginPath is where unauthenticated requests are pointed to
const LoginPath = "/auth/login"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequiredMiddleware verifies the Bearer session token and stores the
// user id in the request context. A missing or bad token is answered with the
// login location rather than a validation error.
func AuthRequiredMiddleware(authService *auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONAuthRequired(c, LoginPath)
			return
		}

		userID, err := authService.VerifyToken(token)
		if err != nil {
			utils.JSONAuthRequired(c, LoginPath)
			return
		}

		c.Set(handler.ContextUserID, userID)
		c.Next()
	}
}
