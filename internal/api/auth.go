package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"time"     // Token TTL

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"chitrashala_backend/internal/domain"     // Importing domain models
	"chitrashala_backend/internal/middleware" // Current-user lookup
	"chitrashala_backend/internal/store"      // Persistence interfaces
	"chitrashala_backend/internal/utils"      // Utility functions
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided and well-formed
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// LoginRequest carries the OAuth2 password-form fields the frontend sends;
// username is the account email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"` // Account email
	Password string `form:"password" binding:"required"` // Plain password
}

// TokenResponse is the login response
type TokenResponse struct {
	AccessToken string `json:"access_token"` // Signed bearer token
	TokenType   string `json:"token_type"`   // Always "bearer"
}

// RegisterHandler creates a new user account with the default role
func RegisterHandler(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Reject already-registered emails up front. Exact match: the email
		// is unique as stored, differently-cased addresses are distinct.
		if _, err := users.FindByEmail(c.Request.Context(), req.Email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		// Hash the password and create the user
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{Email: req.Email, HashedPassword: hash, Role: domain.RoleUser}
		// Attempt to create the user; the unique index catches a racing
		// registration of the same email
		if err := users.Insert(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		// Log registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID.Hex(), // New user id
			"email":   user.Email,    // Registered email
		}).Info("User registered")
		// Return the new user; the hash is never serialized
		c.JSON(http.StatusCreated, user)
	}
}

// LoginHandler authenticates a user and returns a bearer token
func LoginHandler(users store.UserStore, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), req.Username)
		// One generic message for both unknown email and wrong password,
		// so responses do not enumerate accounts
		if err != nil || !utils.CheckPassword(req.Password, user.HashedPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
			return
		}
		// Generate the bearer token carrying subject email and role
		token, err := utils.GenerateJWT(user.Email, user.Role, jwtSecret, tokenTTL)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// MeHandler returns the authenticated user's own record
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Resolved by the auth middleware
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
