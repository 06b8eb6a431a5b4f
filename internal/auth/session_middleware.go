package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests without a valid session.
// It must be used AFTER OptionalAuthMiddleware.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
			return
		}
		c.Next()
	}
}
