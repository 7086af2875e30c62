package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iso-evidence-gateway/config"
	"iso-evidence-gateway/internal/adapter/chain"
	httpAdapter "iso-evidence-gateway/internal/adapter/http"
	pgStorage "iso-evidence-gateway/internal/adapter/storage/postgres"
	redisStorage "iso-evidence-gateway/internal/adapter/storage/redis"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/internal/service"
	"iso-evidence-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ISO Evidence Gateway API")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	receiptRepo := pgStorage.NewReceiptRepo(pool)
	anchorRepo := pgStorage.NewChainAnchorRepo(pool)
	projectRepo := pgStorage.NewProjectRepo(pool)

	// Initialize queue, events, and core services
	jobQueue := redisStorage.NewJobQueue(rdb, log)
	eventBus := redisStorage.NewEventBus(rdb, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	chainFactory := chain.NewFactory(cfg.Anchor, &http.Client{Timeout: 30 * time.Second}, log)

	verifySvc := service.NewVerifyService(
		&http.Client{Timeout: 30 * time.Second},
		nil,
		chainFactory,
		service.DefaultChains(cfg.Anchor),
		log,
	)
	confirmSvc := service.NewConfirmService(
		receiptRepo,
		anchorRepo,
		projectRepo,
		chainFactory,
		eventBus,
		cfg,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpAdapter.SetupRouter(httpAdapter.RouterDeps{
		Receipts: receiptRepo,
		Anchors:  anchorRepo,
		Projects: projectRepo,
		Queue:    jobQueue,
		Bus:      eventBus,
		Confirm:  confirmSvc,
		Verifier: verifySvc,
		Tokens:   tokenSvc,
		Health:   []ports.HealthChecker{pgHealth, redisHealth},
		Logger:   log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
