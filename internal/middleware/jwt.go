package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework

	"chitrashala_backend/internal/store" // User lookup
	"chitrashala_backend/internal/utils" // JWT utility functions
)

// CurrentUserKey is the Gin context key holding the authenticated user.
const CurrentUserKey = "currentUser"

// JWTAuthMiddleware validates bearer tokens and resolves them to a stored
// user. A valid signature is not enough: the subject email must still exist,
// so tokens for deleted or unknown accounts are rejected.
func JWTAuthMiddleware(secret string, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// Resolve the token subject to a stored user
		user, err := users.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(CurrentUserKey, user) // Store the resolved user in context
		c.Next()                    // Proceed to the next handler
	}
}
