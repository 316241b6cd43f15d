package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pc-store/internal/auth"
	"github.com/pc-store/internal/model"
)

type contextKey string

const UserContextKey contextKey = "user"

// UserFinder resolves accounts for the authorization gate.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthMiddleware guards protected routes: bearer authentication first,
// then optional role or identity checks.
type AuthMiddleware struct {
	tokens *auth.TokenService
	users  UserFinder
	logger *slog.Logger
}

func NewAuthMiddleware(tokens *auth.TokenService, users UserFinder, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// Authenticate rejects requests without a bearer credential (401) and
// requests whose token fails verification (403). Decoded claims are
// attached to the request context on success.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, `{"status": false, "error": "unauthorized access"}`, http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			http.Error(w, `{"status": false, "error": "forbidden access"}`, http.StatusForbidden)
			return
		}

		claims, err := m.tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			http.Error(w, `{"status": false, "error": "forbidden access"}`, http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows only users whose stored role is admin. The role
// is read from the user store, not from the token.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		if claims == nil {
			http.Error(w, `{"status": false, "error": "unauthorized access"}`, http.StatusUnauthorized)
			return
		}

		user, err := m.users.FindByEmail(r.Context(), claims.Email)
		if err != nil {
			m.logger.Error("admin lookup failed", "email", claims.Email, "error", err)
			http.Error(w, `{"status": false, "error": "internal server error"}`, http.StatusInternalServerError)
			return
		}
		if user == nil || !user.IsAdmin() {
			http.Error(w, `{"status": false, "error": "forbidden access"}`, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSelf allows a request only when the {email} path segment
// matches the authenticated email. Users may query their own admin
// status and nobody else's.
func (m *AuthMiddleware) RequireSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		if claims == nil {
			http.Error(w, `{"status": false, "error": "unauthorized access"}`, http.StatusUnauthorized)
			return
		}

		if r.PathValue("email") != claims.Email {
			http.Error(w, `{"status": false, "error": "forbidden access"}`, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext extracts authenticated claims from the context.
func GetUserFromContext(ctx context.Context) *model.TokenClaims {
	claims, ok := ctx.Value(UserContextKey).(*model.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}

// CORS middleware
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// JSON middleware sets JSON content type
func JSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs method, path, status and duration per request.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
