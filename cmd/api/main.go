package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	cartUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/cart"
	downloadUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/download"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/pricing"
	projectUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/project"
	purchaseUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/purchase"
	reviewUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/review"
	userUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/user"

	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/analytics"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/routes"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/auth"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/database"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/database/migration"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/email"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/logger"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/ratelimit"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/repository"
	timeProvider "github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/time"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Logger, cfg.Environment == "production")
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(cfg.Database, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	projectRepo := repository.NewProjectRepository(conn.DB, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	cartRepo := repository.NewCartRepository(conn.DB, appLogger)
	wishlistRepo := repository.NewWishlistRepository(conn.DB, appLogger)
	reviewRepo := repository.NewReviewRepository(conn.DB, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Token manager
	tokenManager := auth.NewJWTManager(cfg.Auth, tp)

	// Optional integrations
	var rateLimiter integration.RateLimiter
	var redisLimiter *ratelimit.RedisLimiter
	if cfg.Redis.Addr != "" {
		redisLimiter = ratelimit.NewRedisLimiter(cfg.Redis, tp, appLogger)
		rateLimiter = redisLimiter
		defer func() { _ = redisLimiter.Close() }()
	}

	var mailSender integration.EmailSender
	if cfg.Email.Host != "" {
		mailSender = email.NewSMTPSender(cfg.Email, appLogger)
	}

	var analyticsSink integration.AnalyticsPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink := analytics.NewKafkaPublisher(cfg.Kafka, appLogger)
		analyticsSink = kafkaSink
		defer func() { _ = kafkaSink.Close() }()
	}

	// Commission rate
	commissionRate := pricing.DefaultCommissionRate
	if cfg.Marketplace.CommissionRate != "" {
		rate, err := decimal.NewFromString(cfg.Marketplace.CommissionRate)
		if err != nil {
			appLogger.Error("Invalid commission rate", map[string]any{
				"value": cfg.Marketplace.CommissionRate,
			})
			os.Exit(1)
		}
		commissionRate = rate
	}
	pricingEngine := pricing.NewEngine(commissionRate)

	// Initialize use cases
	userService := userUseCase.NewService(userRepo, tokenManager, mailSender, rateLimiter, tp, appLogger)
	projectService := projectUseCase.NewService(projectRepo, pricingEngine, tp, appLogger)
	purchaseService := purchaseUseCase.NewService(uow, projectRepo, transactionRepo, pricingEngine, tp, appLogger, analyticsSink)
	cartService := cartUseCase.NewService(cartRepo, wishlistRepo, projectRepo, tp, appLogger)
	reviewService := reviewUseCase.NewService(reviewRepo, projectRepo, tp, appLogger)
	downloadService := downloadUseCase.NewService(uow, projectRepo, tp, appLogger)

	// Seed the admin account
	if err := migration.EnsureAdminUser(context.Background(), cfg.Auth, userRepo, tp, appLogger); err != nil {
		appLogger.Error("Failed to seed admin user", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, rateLimiter)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handler.NewAuthHandler(userService, appLogger),
		Project:     handler.NewProjectHandler(projectService, appLogger),
		Transaction: handler.NewTransactionHandler(purchaseService, appLogger),
		Cart:        handler.NewCartHandler(cartService, appLogger),
		Wishlist:    handler.NewWishlistHandler(cartService, appLogger),
		Review:      handler.NewReviewHandler(reviewService, appLogger),
		Download:    handler.NewDownloadHandler(downloadService, appLogger),
	}, tokenManager)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
