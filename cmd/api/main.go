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
	"github.com/mobius-network/tipbot-ledger/internal/api/middleware"
	"github.com/mobius-network/tipbot-ledger/internal/api/rest"
	"github.com/mobius-network/tipbot-ledger/internal/api/server"
	"github.com/mobius-network/tipbot-ledger/internal/config"
	"github.com/mobius-network/tipbot-ledger/internal/ledger"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
	"github.com/mobius-network/tipbot-ledger/internal/payout"
	"github.com/mobius-network/tipbot-ledger/internal/providers/stellar"
	"github.com/mobius-network/tipbot-ledger/internal/registration"
	"github.com/mobius-network/tipbot-ledger/internal/store"
	"github.com/mobius-network/tipbot-ledger/internal/tally"
	"github.com/mobius-network/tipbot-ledger/internal/tipping"
	"github.com/mobius-network/tipbot-ledger/internal/withdraw"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting tipbot ledger API")

	// Connect to Redis
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		_ = redisClient.Close()
	}()

	dataStore := store.NewRedisStore(redisClient, cfg.Redis.Namespace)
	if err := dataStore.Ping(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}
	logger.InfoCtx(ctx, "Connected to Redis",
		zap.String("addr", cfg.Redis.Addr),
		zap.String("namespace", cfg.Redis.Namespace),
	)

	// Initialize Stellar gateway
	horizon := adapter.NewHorizon(cfg.Stellar.HorizonURL, cfg.Stellar.HorizonTimeout)
	gateway := stellar.NewGateway(horizon, cfg.Stellar.Asset())

	// Initialize payout client
	payer := payout.NewClient(payout.Config{
		URL:    cfg.Payout.URL,
		APIKey: cfg.Payout.APIKey,
	}, adapter.NewHTTPClient(cfg.Payout.Timeout))

	// Initialize services
	userLedger := ledger.New(ledger.Config{LockDuration: cfg.Tipping.LockDuration}, dataStore, gateway, payer)
	messageTally := tally.New(dataStore)

	registrationService := registration.NewService(registration.Config{
		NetworkPassphrase: cfg.Stellar.NetworkPassphrase,
		Asset:             cfg.Stellar.Asset(),
		AppAddress:        cfg.Stellar.AppAddress,
		BaseFee:           cfg.Stellar.BaseFee,
	}, userLedger, gateway, adapter.NewKeypair())

	transferer := withdraw.NewPeerTransferer(withdraw.TransferConfig{
		NetworkPassphrase: cfg.Stellar.NetworkPassphrase,
		Asset:             cfg.Stellar.Asset(),
		BaseFee:           cfg.Stellar.BaseFee,
	}, gateway)
	withdrawService := withdraw.NewService(userLedger, payer, transferer)

	tippingService := tipping.NewService(tipping.Config{Rate: cfg.Tipping.TipRate()}, userLedger, messageTally)

	handler := rest.NewHandler(dataStore, userLedger, messageTally, registrationService, withdrawService, tippingService)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimit: middleware.RateLimitConfig{
			Enabled:           cfg.RateLimit.Enabled,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, handler, redisClient.NewRateLimiter())

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
