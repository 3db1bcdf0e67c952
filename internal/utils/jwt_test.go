package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewAccessTokenRoundTrip signs a token and parses it back, checking
// the subject and role claims survive.
func TestNewAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "clerk", 15)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token")
	}
	if !at.Exp.After(time.Now().UTC()) {
		t.Errorf("expiry must be in the future, got %v", at.Exp)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse failed: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("expected sub 42, got %v", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "clerk" {
		t.Errorf("expected role clerk, got %v", claims["role"])
	}
}

// TestNewAccessTokenWrongSecret must fail verification.
func TestNewAccessTokenWrongSecret(t *testing.T) {
	at, err := NewAccessToken("secret-a", 1, "admin", 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && tok.Valid {
		t.Fatal("token signed with a different secret must not validate")
	}
}

// TestNewRefreshToken checks uniqueness and the stored-hash contract.
func TestNewRefreshToken(t *testing.T) {
	a, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.Raw == b.Raw {
		t.Error("two refresh tokens must not collide")
	}
	if len(a.Raw) != 96 { // 48 random bytes hex-encoded
		t.Errorf("expected 96 hex chars, got %d", len(a.Raw))
	}
	if HashRefreshRaw(a.Raw) != HashRefreshRaw(a.Raw) {
		t.Error("hash must be deterministic")
	}
	if HashRefreshRaw(a.Raw) == HashRefreshRaw(b.Raw) {
		t.Error("different tokens must hash differently")
	}
}

// TestPasswordHashing round-trips bcrypt verification.
func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1", 4) // minimum cost keeps the test fast
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !VerifyPassword(hash, "secret1") {
		t.Error("correct password must verify")
	}
	if VerifyPassword(hash, "secret2") {
		t.Error("wrong password must not verify")
	}
}
