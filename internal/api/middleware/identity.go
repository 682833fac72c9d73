package middleware

import (
	"Vynce/internal/pkg/response"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware reads the caller identity the gateway injects as
// X-User-ID and rejects requests that arrive without one.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIdentity(c)
		if !ok || userID == 0 {
			response.Fail(c, response.Unauthorized, "missing or malformed X-User-ID header")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		newCtx := context.WithValue(c.Request.Context(), "user_id", userID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// IdentityOptionalMiddleware injects the identity when present and falls
// back to UID 0 for anonymous traffic.
func IdentityOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIdentity(c)
		if !ok {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		c.Set("user_id", userID)
		newCtx := context.WithValue(c.Request.Context(), "user_id", userID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

func parseIdentity(c *gin.Context) (uint64, bool) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return 0, false
	}

	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}
