package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	"github.com/mobius-network/tipbot-ledger/internal/config"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/payout"
	"github.com/mobius-network/tipbot-ledger/internal/providers/stellar"
	"github.com/mobius-network/tipbot-ledger/internal/store"
	"github.com/mobius-network/tipbot-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to Redis
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		_ = redisClient.Close()
	}()

	dataStore := store.NewRedisStore(redisClient, cfg.Redis.Namespace)
	if err := dataStore.Ping(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}
	logger.InfoCtx(ctx, "Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// Initialize ledger
	gateway := stellar.NewGateway(adapter.NewHorizon(cfg.Stellar.HorizonURL, cfg.Stellar.HorizonTimeout), cfg.Stellar.Asset())
	payer := payout.NewClient(payout.Config{
		URL:    cfg.Payout.URL,
		APIKey: cfg.Payout.APIKey,
	}, adapter.NewHTTPClient(cfg.Payout.Timeout))
	userLedger := ledger.New(ledger.Config{LockDuration: cfg.Tipping.LockDuration}, dataStore, gateway, payer)

	// Initialize balance merge sweeper
	mergeSweeperConfig := &sweeper.BalanceMergeSweeperConfig{
		Interval:        cfg.BalanceMerge.Interval,
		BatchSize:       cfg.BalanceMerge.BatchSize,
		WorkerPoolSize:  cfg.BalanceMerge.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.BalanceMerge.Worker.WorkerQueueSize,
		RetryInterval:   cfg.BalanceMerge.RetryInterval,
		MaxRetryElapsed: cfg.BalanceMerge.MaxRetryElapsed,
	}
	mergeSweeper := sweeper.NewBalanceMergeSweeper(mergeSweeperConfig, dataStore, userLedger, adapter.NewClock())

	logger.InfoCtx(ctx, "Initialized balance merge sweeper",
		zap.Duration("interval", cfg.BalanceMerge.Interval),
		zap.Int64("batch_size", cfg.BalanceMerge.BatchSize),
		zap.Int("worker_pool_size", cfg.BalanceMerge.Worker.WorkerPoolSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := mergeSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to finish the in-progress cycle
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := mergeSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
