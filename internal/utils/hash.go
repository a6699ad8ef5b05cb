package utils

import (
	"crypto/sha256" // Pre-hash for long passwords
	"encoding/hex"  // Hex encoding of the digest

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// bcrypt rejects inputs longer than 72 bytes; longer passwords are replaced
// by the hex SHA-256 digest of their bytes before hashing. Verification
// applies the same normalization, so both sides agree.
const bcryptMaxInput = 72

// normalizePassword applies the >72-byte pre-hash step
func normalizePassword(password string) string {
	if len(password) > bcryptMaxInput {
		sum := sha256.Sum256([]byte(password))
		return hex.EncodeToString(sum[:])
	}
	return password
}

// HashPassword returns the salted bcrypt hash of the (normalized) password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(normalizePassword(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err // Hashing failed (should not happen after normalization)
	}
	return string(hash), nil
}

// CheckPassword verifies password against a stored bcrypt hash.
// Any bcrypt error, including a malformed stored hash, reads as a mismatch.
func CheckPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(normalizePassword(password))) == nil
}
