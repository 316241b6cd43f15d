package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pc-store/internal/api"
	"github.com/pc-store/internal/auth"
	"github.com/pc-store/internal/config"
	"github.com/pc-store/internal/listing"
	"github.com/pc-store/internal/logging"
	"github.com/pc-store/internal/middleware"
	"github.com/pc-store/internal/scheduler"
	"github.com/pc-store/internal/storage"

	_ "github.com/pc-store/docs" // swagger docs
)

// @title PC-Store API
// @version 1.0
// @description Storefront backend with token-based authentication, paginated product listings, categories, orders, and comments.

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your JWT token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)

	// Connect to database
	logger.Info("connecting to database")
	db, err := storage.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	logger.Info("running migrations")
	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := storage.NewUserRepository(db)
	productRepo := storage.NewProductRepository(db)
	categoryRepo := storage.NewCategoryRepository(db)
	orderRepo := storage.NewOrderRepository(db)

	// Create default admin user if not exists
	ctx := context.Background()
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		admin, err := userRepo.CreateAdmin(ctx, adminEmail, adminPassword, "Admin")
		if err != nil {
			logger.Warn("failed to create admin user", "error", err)
		} else {
			logger.Info("admin user ready", "email", admin.Email)
		}
	}

	// Initialize services
	tokens := auth.NewTokenService(cfg.JWT)
	listingSvc := listing.NewService(productRepo)

	// Start category stats scheduler
	statsSched := scheduler.NewStatsScheduler(categoryRepo, cfg.Stats.RefreshInterval, logger)
	if err := statsSched.Start(ctx); err != nil {
		logger.Error("failed to start stats scheduler", "error", err)
		os.Exit(1)
	}

	// Initialize auth middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo, logger)
	handler := api.NewHandler(userRepo, productRepo, categoryRepo, orderRepo, listingSvc, tokens, logger)

	// Setup router
	router := api.NewRouter(handler, authMiddleware, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	// Stop scheduler
	statsSched.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
