package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pc-store/internal/auth"
	"github.com/pc-store/internal/config"
	"github.com/pc-store/internal/logging"
	"github.com/pc-store/internal/model"
)

type fakeUsers map[string]*model.User

func (f fakeUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f[email], nil
}

func testMiddleware(users fakeUsers) (*AuthMiddleware, *auth.TokenService) {
	tokens := auth.NewTokenService(config.JWTConfig{Secret: "test-secret", ExpirationHours: 6})
	logger := logging.NewLoggerWithWriter(slog.LevelError, "text", io.Discard)
	return NewAuthMiddleware(tokens, users, logger), tokens
}

func bearerToken(t *testing.T, tokens *auth.TokenService, email string) string {
	t.Helper()
	token, _, err := tokens.Issue(&model.TokenClaims{Email: email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestAuthenticateMissingCredential(t *testing.T) {
	m, _ := testMiddleware(fakeUsers{})

	called := false
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if called {
		t.Error("handler was reached without a credential")
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m, _ := testMiddleware(fakeUsers{})

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler was reached with an invalid token")
	}))

	for _, header := range []string{"Bearer garbage", "malformed"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Authorization=%q: status = %d, want 403", header, w.Code)
		}
	}
}

func TestAuthenticateAttachesClaims(t *testing.T) {
	m, tokens := testMiddleware(fakeUsers{})

	var got *model.TokenClaims
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens, "alice@example.com"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got == nil || got.Email != "alice@example.com" {
		t.Errorf("claims = %+v, want email alice@example.com", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	users := fakeUsers{
		"admin@example.com": {Email: "admin@example.com", Role: model.UserRoleAdmin},
		"user@example.com":  {Email: "user@example.com", Role: model.UserRoleUser},
	}
	m, tokens := testMiddleware(users)

	handler := m.Authenticate(m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	tests := []struct {
		email string
		want  int
	}{
		{"admin@example.com", http.StatusOK},
		{"user@example.com", http.StatusForbidden},
		{"ghost@example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", bearerToken(t, tokens, tt.email))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("email=%s: status = %d, want %d", tt.email, w.Code, tt.want)
		}
	}
}

func TestRequireSelf(t *testing.T) {
	m, tokens := testMiddleware(fakeUsers{})

	mux := http.NewServeMux()
	mux.Handle("GET /users/admin/{email}",
		m.Authenticate(m.RequireSelf(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))))

	// A user may only query their own email.
	req := httptest.NewRequest("GET", "/users/admin/foo@x.com", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens, "bar@x.com"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("mismatched email: status = %d, want 403", w.Code)
	}

	req = httptest.NewRequest("GET", "/users/admin/foo@x.com", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens, "foo@x.com"))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("own email: status = %d, want 200", w.Code)
	}
}

func TestGetUserFromContextEmpty(t *testing.T) {
	if claims := GetUserFromContext(context.Background()); claims != nil {
		t.Errorf("claims = %+v, want nil", claims)
	}
}
