package auth

import (
	"strings"

	"gamereviews/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the session's user id.
const UserIDKey = "userID"

// OptionalAuthMiddleware inspects for a session token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if userID, err := jwt.ParseToken(secret, parts[1]); err == nil {
					c.Set(UserIDKey, userID)
				}
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the session's user id, if OptionalAuthMiddleware found one.
func CurrentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(UserIDKey)
	return id, id != ""
}
