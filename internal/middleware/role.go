package middleware

import (
	"net/http"

	domainUser "classbook/internal/domain/user"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Identity not found in context")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if identity.Role == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware(domainUser.RoleAdmin)
}
