package middleware

import (
	"net/http"
	"strings"

	"restaurant_api/internal/response"
	"restaurant_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// AuthUserKey is the gin context key holding the authenticated user's id
	// for the duration of one request.
	AuthUserKey = "authUser"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the claim's user id is stored in the request-scoped context and trusted by
// downstream handlers without re-checking the credential store.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		parts := strings.Split(authHeader, " ")
		tokenString := parts[len(parts)-1]
		if authHeader == "" || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Access token required.")
			c.Abort()
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token.")
			c.Abort()
			return
		}

		c.Set(AuthUserKey, claims.UserID)

		c.Next()
	}
}
