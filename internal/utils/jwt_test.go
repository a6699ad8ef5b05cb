package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	tok, err := GenerateJWT("a@x.com", "admin", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ParseJWT(tok, secret)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.Subject != "a@x.com" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "a@x.com")
	}
	if claims.Role != "admin" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "admin")
	}
}

func TestParseJWT_ZeroTTL(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("a@x.com", "user", "secret", 0)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := ParseJWT(tok, "secret"); err == nil {
		t.Fatalf("expected zero-ttl token to be invalid immediately")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("a@x.com", "user", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := ParseJWT(tok, "secret"); err == nil {
		t.Fatalf("expected expired token to be invalid")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("a@x.com", "user", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := ParseJWT(tok, "wrong-secret"); err == nil {
		t.Fatalf("expected signature mismatch to be invalid")
	}
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseJWT("not.a.jwt", "secret"); err == nil {
		t.Fatalf("expected malformed token to be invalid")
	}
}

func TestGenerateJWT_DistinctExpiries(t *testing.T) {
	t.Parallel()

	first, err := GenerateJWT("a@x.com", "user", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // exp has second granularity
	second, err := GenerateJWT("a@x.com", "user", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if first == second {
		t.Fatalf("expected tokens issued at different instants to differ")
	}
}
