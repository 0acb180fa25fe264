package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gabapcia/swapwatch/internal/config"
	"github.com/gabapcia/swapwatch/internal/handlers/cli"
	"github.com/gabapcia/swapwatch/internal/handlers/webhook"
	"github.com/gabapcia/swapwatch/internal/infra/blockchain/solana"
	"github.com/gabapcia/swapwatch/internal/infra/helius"
	"github.com/gabapcia/swapwatch/internal/infra/notifier/discord"
	"github.com/gabapcia/swapwatch/internal/infra/offchain"
	"github.com/gabapcia/swapwatch/internal/infra/storage/postgres"
	"github.com/gabapcia/swapwatch/internal/infra/storage/redis"
	"github.com/gabapcia/swapwatch/internal/ingest"
	"github.com/gabapcia/swapwatch/internal/metaresolver"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/swapwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/swapwatch/internal/pkg/transport/http"
	"github.com/gabapcia/swapwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/swapwatch/internal/swapclassifier"
	"github.com/gabapcia/swapwatch/internal/swapnotify"
	"github.com/gabapcia/swapwatch/internal/walletregistry"
)

// storage is a registry backend owning a connection. It also holds the
// transaction claims.
type storage interface {
	walletregistry.WalletStorage
	swapnotify.IdempotencyGuard
	io.Closer
}

func newStorage(ctx context.Context, cfg config.Config) (storage, error) {
	switch cfg.RegistryBackend {
	case config.BackendPostgres:
		db, err := postgres.NewClient(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}

		return db, nil
	default:
		return redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.LogLevel, logger.WithFile(cfg.LogFile)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.ServiceName, telemetry.WithEnabled(cfg.TelemetryEnabled))
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
	)

	rpc := solana.NewClient(jsonrpc.NewClient(httpClient.StandardClient(), cfg.RPCURL()))
	resolver := metaresolver.New(
		rpc,
		rpc,
		offchain.NewTokenList(httpClient, cfg.TokenListURL),
		offchain.NewDocumentFetcher(httpClient, cfg.IPFSGateway),
	)

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to %s registry: %w", cfg.RegistryBackend, err)
	}
	defer store.Close()

	registry := walletregistry.New(
		store,
		helius.NewWebhookClient(httpClient, cfg.HeliusAPIURL, cfg.HeliusAPIKey, cfg.HeliusWebhookID),
	)

	notifier, err := discord.New(
		&http.Client{Timeout: cfg.HTTPTimeout},
		retry.New(retry.WithAttempts(cfg.DeliveryAttempts)),
	)
	if err != nil {
		return fmt.Errorf("init discord notifier: %w", err)
	}

	pipeline, err := swapnotify.New(registry, swapclassifier.New(resolver), notifier,
		swapnotify.WithIdempotencyGuard(store, cfg.ClaimTTL),
	)
	if err != nil {
		return fmt.Errorf("init swap pipeline: %w", err)
	}

	in := ingest.New(pipeline,
		ingest.WithWorkers(cfg.IngestWorkers),
		ingest.WithQueueSize(cfg.IngestQueueSize),
	)

	srv := webhook.NewServer(cfg.HTTPAddr, webhook.NewHandler(in,
		webhook.WithPath(cfg.WebhookPath),
		webhook.WithAuthToken(cfg.WebhookAuthToken),
	))

	return cli.Run(ctx, registry, in, srv)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
