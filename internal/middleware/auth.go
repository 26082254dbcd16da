package middleware

import (
	"net/http"
	"strings"

	"classbook/internal/config"
	"classbook/internal/usecase/user"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware guards protected routes. It is fail-closed: a missing,
// malformed, invalid or expired bearer token aborts the request with 401.
// Public routes simply do not mount this middleware.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, user.IdentityFromClaims(claims))

		c.Next()
	}
}

// GetIdentity returns the verified caller identity set by AuthMiddleware.
func GetIdentity(c *gin.Context) (user.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return user.Identity{}, false
	}

	identity, ok := value.(user.Identity)
	return identity, ok
}
