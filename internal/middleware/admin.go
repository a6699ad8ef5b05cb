package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"chitrashala_backend/internal/domain" // Importing domain models
)

// AdminOnlyMiddleware gates a route group to admin users. It runs after
// JWTAuthMiddleware and reads the already-resolved user from the context.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c) // Get authenticated user from context
		// Check if a user was resolved by the auth middleware
		if user == nil {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check if user role is admin
		if !user.IsAdmin() {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by JWTAuthMiddleware,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
