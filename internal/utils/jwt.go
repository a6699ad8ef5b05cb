package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// JWT Claims
type Claims struct {
	Role                 string `json:"role"` // Custom claim for the user role
	jwt.RegisteredClaims        // Standard JWT claims (sub carries the email)
}

// GenerateJWT creates a signed HS256 token for the given subject email and role
func GenerateJWT(email, role, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		Role: role, // Custom claim for the role
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,                               // Subject is the user's email
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Absolute expiry = now + ttl
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string.
// Signature mismatch, malformed input, or expiry all return an error,
// never partially trusted claims.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
