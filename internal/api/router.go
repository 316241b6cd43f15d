package api

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pc-store/internal/middleware"
)

// NewRouter creates a new HTTP router with all routes
func NewRouter(h *Handler, auth *middleware.AuthMiddleware, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Public routes
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("POST /api/v1/jwt", h.IssueToken)
	mux.HandleFunc("POST /api/v1/auth/register", h.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Login)

	// Product routes
	mux.HandleFunc("GET /api/v1/products", h.ListProducts)
	mux.HandleFunc("GET /api/v1/products/count", h.ProductsCount)
	mux.HandleFunc("GET /api/v1/products/{category}", h.ListProductsByCategory)
	mux.Handle("POST /api/v1/products",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(h.CreateProduct))))
	mux.HandleFunc("GET /api/v1/product/{id}", h.GetProduct)
	mux.Handle("DELETE /api/v1/product/{id}",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(h.DeleteProduct))))
	mux.HandleFunc("GET /api/v1/product/{id}/comments", h.GetComments)
	mux.HandleFunc("POST /api/v1/product/{id}/comments", h.AddComment)

	// Category routes
	mux.HandleFunc("GET /api/v1/categories", h.ListCategories)

	// Order routes
	mux.Handle("POST /api/v1/orders", auth.Authenticate(http.HandlerFunc(h.PlaceOrder)))
	mux.Handle("GET /api/v1/orders", auth.Authenticate(http.HandlerFunc(h.ListOrders)))

	// User routes
	mux.Handle("GET /api/v1/users",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(h.ListUsers))))
	mux.HandleFunc("POST /api/v1/users", h.CreateUser)
	mux.Handle("DELETE /api/v1/users/{id}",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(h.DeleteUser))))
	mux.Handle("GET /api/v1/users/admin/{email}",
		auth.Authenticate(auth.RequireSelf(http.HandlerFunc(h.CheckAdmin))))
	mux.HandleFunc("GET /api/v1/user/{email}", h.GetUserByEmail)

	// Admin routes
	mux.Handle("GET /api/v1/admin/products/export",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(h.ExportProducts))))

	// Apply global middleware
	handler := middleware.CORS(middleware.JSON(middleware.RequestLogger(logger)(mux)))

	return handler
}
