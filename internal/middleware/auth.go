package middleware

import (
	"strings"

	"charting-dashboard-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	userIDKey     = "userID"
	hospitalIDKey = "hospitalID"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set caller information in context for downstream handlers
		c.Set(userIDKey, claims.UserID)
		c.Set(hospitalIDKey, claims.HospitalID)

		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user id, if any.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetHospitalIDFromContext returns the clinic the caller's token is scoped to.
// It reports false when the request is unauthenticated or the token is not
// scoped to a clinic.
func GetHospitalIDFromContext(c *gin.Context) (string, bool) {
	id, ok := stringFromContext(c, hospitalIDKey)
	return id, ok && id != ""
}

func stringFromContext(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
