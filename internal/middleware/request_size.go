package middleware

import (
	"net/http"

	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimitMiddleware rejects bodies larger than maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", "Request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
