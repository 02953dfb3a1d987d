package middleware

import (
	"net/http"
	"strings"

	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the caller's user ID.
const UserIDKey = "userID"

// UserIdentityMiddleware resolves the calling user from the gateway header, or
// from the subject of a bearer token when the header is absent. Requests with
// neither are rejected with 400, as a missing user id is a malformed request.
func UserIdentityMiddleware(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := strings.TrimSpace(c.GetHeader(header)); userID != "" {
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusBadRequest, "User ID not specified", "missingUserId")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "invalidAuthorization")
			return
		}
		userID, err := utils.ExtractIDFromToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || userID == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "invalidToken")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the caller resolved by UserIdentityMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
