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

	"iso-evidence-gateway/config"
	"iso-evidence-gateway/internal/adapter/chain"
	"iso-evidence-gateway/internal/adapter/storage/artifacts"
	pgStorage "iso-evidence-gateway/internal/adapter/storage/postgres"
	redisStorage "iso-evidence-gateway/internal/adapter/storage/redis"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/internal/iso"
	"iso-evidence-gateway/internal/service"
	"iso-evidence-gateway/pkg/logger"

	"github.com/rs/zerolog"
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
	log.Info().Msg("Starting ISO Evidence Gateway worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	// Repositories
	receiptRepo := pgStorage.NewReceiptRepo(pool)
	anchorRepo := pgStorage.NewChainAnchorRepo(pool)
	projectRepo := pgStorage.NewProjectRepo(pool)
	artifactRepo := pgStorage.NewArtifactRepo(pool)

	// Evidence stack
	keyring := service.NewKeyring(cfg.Signing, log)
	store := artifacts.NewLocalStore(cfg.Evidence.ArtifactsDir)
	httpClient := &http.Client{Timeout: 30 * time.Second}

	pipeline := service.NewPipelineService(service.PipelineDeps{
		Receipts:   receiptRepo,
		Anchors:    anchorRepo,
		Projects:   projectRepo,
		Artifacts:  artifactRepo,
		Compliance: service.NewComplianceService(httpClient, log),
		FX:         service.NewFXService(cfg.FX.Provider, httpClient, log),
		Messages:   iso.NewGenerator(""),
		Bundles:    service.NewBundleService(keyring, store, log),
		Creds:      service.NewCredentialService(keyring),
		Store:      store,
		Uploader:   artifacts.NoopUploader{},
		Factory:    chain.NewFactory(cfg.Anchor, httpClient, log),
		Bus:        redisStorage.NewEventBus(rdb, log),
		HTTPClient: httpClient,
	}, cfg, log)

	queue := redisStorage.NewJobQueue(rdb, log)

	log.Info().Msg("Worker consuming receipt jobs")
	for {
		job, err := queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				break
			}
			log.Error().Err(err).Msg("dequeue failed")
			time.Sleep(time.Second)
			continue
		}

		processJob(ctx, pipeline, queue, job, log)
	}

	log.Info().Msg("Worker exited")
}

func processJob(ctx context.Context, pipeline ports.ReceiptPipeline, queue ports.JobQueue, job ports.ReceiptJob, log zerolog.Logger) {
	defer func() {
		if err := queue.Ack(context.WithoutCancel(ctx), job); err != nil {
			log.Error().Err(err).Str("receipt_id", job.ReceiptID.String()).Msg("ack failed")
		}
	}()

	if err := pipeline.Process(ctx, job); err != nil {
		log.Error().Err(err).Str("receipt_id", job.ReceiptID.String()).Msg("pipeline failed")
	}
}
