package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signTestToken(t *testing.T, secret, sub string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestParseAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signTestToken(t, "test-secret", "account-1", time.Hour)
	sub, err := parseAccessToken(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if sub != "account-1" {
		t.Fatalf("expected subject account-1, got %s", sub)
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signTestToken(t, "test-secret", "account-1", -time.Hour)
	if _, err := parseAccessToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signTestToken(t, "other-secret", "account-1", time.Hour)
	if _, err := parseAccessToken(token); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}

func TestParseAccessTokenRejectsMissingSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	if _, err := parseAccessToken(token); err == nil {
		t.Fatal("token without sub must be rejected")
	}
}
