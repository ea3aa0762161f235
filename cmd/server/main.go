package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/config"
	"github.com/liamwears/drcinema/internal/database"
	"github.com/liamwears/drcinema/internal/handlers"
	"github.com/liamwears/drcinema/internal/middleware"
	"github.com/liamwears/drcinema/internal/services"
	"github.com/liamwears/drcinema/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Check for migrate command
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrations(cfg, logger, len(os.Args) > 2 && os.Args[2] == "down")
		return
	}

	logger.Info("starting drcinema server",
		zap.String("env", cfg.Server.Env),
		zap.String("storage", cfg.Storage.Backend),
	)

	checks := map[string]handlers.HealthCheck{}

	// Initialize Redis connection, used for storage and rate limiting
	var redisClient *database.RedisClient
	if cfg.NeedsRedis() {
		redisClient, err = database.NewRedisClient(database.RedisConfig{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       0,
			TLS:      cfg.Redis.TLS,
		}, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		checks["redis"] = redisClient.Health
	}

	// Initialize the key-value store for favourites and reviews
	var kv database.KVStore
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		kv = database.NewRedisKV(redisClient.Client, cfg.Storage.KeyPrefix)
	case config.BackendPostgres:
		db, err := database.New(database.Config{URL: cfg.Database.URL}, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		checks["database"] = db.Health
		kv = database.NewPostgresKV(db, cfg.Storage.KeyPrefix)
	default:
		logger.Warn("using in-memory storage, favourites and reviews will not survive a restart")
		kv = database.NewMemoryKV()
	}

	// Initialize store and services
	st := store.New()
	api := services.NewKvikmyndirService(services.KvikmyndirConfig{
		BaseURL: cfg.Kvikmyndir.BaseURL,
		Token:   cfg.Kvikmyndir.Token,
		Timeout: cfg.Kvikmyndir.Timeout,
	}, logger)
	breaker := services.NewCircuitBreakerClient(api, logger)
	catalogService := services.NewCatalogService(breaker, st, logger)
	favouritesService := services.NewFavouritesService(st, kv, catalogService, logger)
	reviewsService := services.NewReviewsService(st, kv, logger)
	defer favouritesService.Close()
	defer reviewsService.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	favouritesService.Load(startupCtx)
	reviewsService.Load(startupCtx)
	if err := catalogService.Refresh(startupCtx); err != nil {
		logger.Warn("initial catalog load failed", zap.Error(err))
	}
	cancelStartup()

	// Scheduled refresh
	if cfg.Catalog.RefreshSchedule != "" {
		refresher, err := services.NewRefresher(catalogService, cfg.Catalog.RefreshSchedule, logger)
		if err != nil {
			logger.Fatal("failed to schedule catalog refresh", zap.Error(err))
		}
		refresher.Start()
		defer refresher.Stop()
	}

	// Initialize handlers
	validate := handlers.NewValidator()
	apiMux := handlers.API{
		Catalog:    handlers.NewCatalogHandler(catalogService, logger),
		Filters:    handlers.NewFilterHandler(catalogService, validate, logger),
		Favourites: handlers.NewFavouriteHandler(favouritesService, validate, logger),
		Reviews:    handlers.NewReviewHandler(reviewsService, validate, logger),
	}.Routes()

	// Rate limiting applies to the API in production only
	var apiHandler http.Handler = apiMux
	if cfg.IsProduction() && redisClient != nil {
		rateLimiter := middleware.NewRateLimiter(redisClient.Client, cfg.RateLimit.PerMinute, time.Minute, logger)
		apiHandler = rateLimiter.Limit(apiMux)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("GET /health", handlers.NewHealthHandler(checks, breaker.State))
	mux.Handle("GET /metrics", promhttp.Handler())

	// Wrap with logging middleware
	handler := middleware.Logger(logger)(mux)

	// Create HTTP server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// runMigrations applies (or with "down" rolls back one of) the postgres
// migrations
func runMigrations(cfg *config.Config, logger *zap.Logger, down bool) {
	if cfg.Database.URL == "" {
		logger.Fatal("DATABASE_URL is required to run migrations")
	}

	db, err := database.New(database.Config{URL: cfg.Database.URL}, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db.Pool, logger)

	ctx := context.Background()
	if down {
		err = migrator.Down(ctx)
	} else {
		err = migrator.Up(ctx)
	}
	if err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("migrations completed successfully")
}
