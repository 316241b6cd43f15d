package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pc-store/internal/config"
	"github.com/pc-store/internal/model"
)

func testService() *TokenService {
	return NewTokenService(config.JWTConfig{
		Secret:          "test-secret",
		ExpirationHours: 6,
	})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := testService()

	in := &model.TokenClaims{UserID: "u-1", Email: "alice@example.com"}
	token, expiresAt, err := svc.Issue(in)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	// Expiry should land 6 hours out.
	lo := time.Now().Add(6*time.Hour - time.Minute).Unix()
	hi := time.Now().Add(6*time.Hour + time.Minute).Unix()
	if expiresAt < lo || expiresAt > hi {
		t.Errorf("expiresAt = %d, want within [%d, %d]", expiresAt, lo, hi)
	}

	out, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if out.Email != in.Email {
		t.Errorf("email = %q, want %q", out.Email, in.Email)
	}
	if out.UserID != in.UserID {
		t.Errorf("user_id = %q, want %q", out.UserID, in.UserID)
	}
}

func TestIssueWithoutUserID(t *testing.T) {
	svc := testService()

	token, _, err := svc.Issue(&model.TokenClaims{Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	out, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if out.UserID != "" {
		t.Errorf("user_id = %q, want empty", out.UserID)
	}
	if out.Email != "bob@example.com" {
		t.Errorf("email = %q, want bob@example.com", out.Email)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := testService()

	claims := jwt.MapClaims{
		"email": "alice@example.com",
		"iat":   time.Now().Add(-7 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(expired) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := testService()

	other := NewTokenService(config.JWTConfig{Secret: "other-secret", ExpirationHours: 6})
	token, _, err := other.Issue(&model.TokenClaims{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(wrong secret) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := testService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestVerifyMissingEmailClaim(t *testing.T) {
	svc := testService()

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(no email) = %v, want ErrInvalidToken", err)
	}
}
