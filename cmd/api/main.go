// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/analytics"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/status"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.StatusCheckModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize analytics cache. Caching is optional; without REDIS_URL the
	// analytics endpoints recompute on every request.
	analyticsCache := newAnalyticsCache(cfg)

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	statusRepo := persistence.NewStatusCheckRepository(database.DB())

	// Seed default categories into an empty store
	seedUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	seeded, err := seedUseCase.Execute(seedCtx)
	seedCancel()
	if err != nil {
		slog.Error("Failed to seed default categories", "error", err)
		os.Exit(1)
	}
	if seeded.Seeded > 0 {
		slog.Info("Default categories seeded", "count", seeded.Seeded)
	}

	// Create use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, analyticsCache)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, analyticsCache)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, analyticsCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, analyticsCache)

	monthlyAnalyticsUseCase := analytics.NewGetMonthlyAnalyticsUseCase(transactionRepo, analyticsCache)
	categorySummaryUseCase := analytics.NewGetCategorySummaryUseCase(transactionRepo, analyticsCache)

	createStatusCheckUseCase := status.NewCreateStatusCheckUseCase(statusRepo)
	listStatusChecksUseCase := status.NewListStatusChecksUseCase(statusRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	analyticsController := controller.NewAnalyticsController(
		monthlyAnalyticsUseCase,
		categorySummaryUseCase,
	)
	statusController := controller.NewStatusController(
		createStatusCheckUseCase,
		listStatusChecksUseCase,
	)

	// Setup router
	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		analyticsController,
		statusController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newAnalyticsCache builds the analytics cache backend from configuration.
func newAnalyticsCache(cfg *config.Config) adapter.AnalyticsCache {
	if cfg.Redis.URL == "" {
		slog.Info("Analytics cache disabled, REDIS_URL not set")
		return cache.NewNoopAnalyticsCache()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, analytics cache disabled", "error", err)
		return cache.NewNoopAnalyticsCache()
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, analytics cache disabled", "error", err)
		return cache.NewNoopAnalyticsCache()
	}

	slog.Info("Analytics cache enabled", "ttl", cfg.Analytics.CacheTTL.String())
	return cache.NewRedisAnalyticsCache(client, cfg.Analytics.CacheTTL)
}
