package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pc-store/internal/auth"
	"github.com/pc-store/internal/listing"
	"github.com/pc-store/internal/middleware"
	"github.com/pc-store/internal/model"
	"github.com/pc-store/internal/storage"
)

// Handler contains all API handlers
type Handler struct {
	users      *storage.UserRepository
	products   *storage.ProductRepository
	categories *storage.CategoryRepository
	orders     *storage.OrderRepository
	listing    *listing.Service
	tokens     *auth.TokenService
	logger     *slog.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	users *storage.UserRepository,
	products *storage.ProductRepository,
	categories *storage.CategoryRepository,
	orders *storage.OrderRepository,
	listingSvc *listing.Service,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		users:      users,
		products:   products,
		categories: categories,
		orders:     orders,
		listing:    listingSvc,
		tokens:     tokens,
		logger:     logger,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"status": false, "error": message})
}

// Root godoc
// @Summary Welcome message
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to PC-store server!"})
}

// Health godoc
// @Summary Health check
// @Description Check if the API is running
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Auth handlers

// IssueToken godoc
// @Summary Issue a session token
// @Description Sign the supplied identity claims into a time-limited token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.TokenRequest true "Identity claims"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Server error"
// @Router /jwt [post]
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, expiresAt, err := h.tokens.Issue(&model.TokenClaims{Email: req.Email})
	if err != nil {
		h.logger.Error("token signing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, model.TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration details"
// @Success 201 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Server error"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "email, password, and name are required")
		return
	}
	if !isValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "invalid email format")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	existing, _ := h.users.FindByEmail(r.Context(), req.Email)
	if existing != nil {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		h.logger.Error("user registration failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, expiresAt, err := h.tokens.Issue(&model.TokenClaims{UserID: user.ID, Email: user.Email})
	if err != nil {
		h.logger.Error("token signing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	respondJSON(w, http.StatusCreated, model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Server error"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil || user == nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !h.users.ValidatePassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := h.tokens.Issue(&model.TokenClaims{UserID: user.ID, Email: user.Email})
	if err != nil {
		h.logger.Error("token signing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// User handlers

// ListUsers godoc
// @Summary List all users
// @Description Get all user accounts. Admin only.
// @Tags Users
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		h.logger.Error("user listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a user account
// @Description Create a passwordless account if the email is not taken
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Account details"
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Server error"
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !isValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "invalid email format")
		return
	}

	existing, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("user lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	if existing != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":  false,
			"message": "user already exists",
		})
		return
	}

	user, err := h.users.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("user creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user account by ID. Admin only.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string "Deletion status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("user deletion failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"status": true, "message": "user deleted"})
}

// CheckAdmin godoc
// @Summary Check admin status
// @Description Report whether the authenticated user is an admin. Users may only query their own email.
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /users/admin/{email} [get]
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("user lookup failed", "email", email, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	admin := user != nil && user.IsAdmin()
	respondJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

// GetUserByEmail godoc
// @Summary Get a user profile
// @Description Look up a user profile by email
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Server error"
// @Router /user/{email} [get]
func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("user lookup failed", "email", email, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if user == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"status": false})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"status": true, "data": user})
}

// GetCurrentEmail returns the authenticated email, or "" for anonymous
// requests.
func GetCurrentEmail(r *http.Request) string {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		return ""
	}
	return claims.Email
}

// isValidEmail performs a basic email validation
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}
	if !strings.Contains(parts[1], ".") {
		return false
	}
	return true
}
