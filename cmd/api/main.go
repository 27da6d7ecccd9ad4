package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agentpay-gateway/config"
	httpHandler "agentpay-gateway/internal/adapter/http/handler"
	"agentpay-gateway/internal/adapter/ledger"
	memStorage "agentpay-gateway/internal/adapter/storage/memory"
	pgStorage "agentpay-gateway/internal/adapter/storage/postgres"
	redisStorage "agentpay-gateway/internal/adapter/storage/redis"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/derive"
	"agentpay-gateway/internal/service"
	"agentpay-gateway/internal/txbuild"
	"agentpay-gateway/pkg/logger"
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
		Str("rpc_url", cfg.Ledger.RPCURL).
		Msg("Starting AgentPay Gateway")

	ctx := context.Background()

	programID, err := domain.ParseAddress(cfg.Ledger.ProgramID)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid program ID")
	}
	usdcMint, err := domain.ParseAddress(cfg.Ledger.USDCMint)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid USDC mint")
	}

	// Ledger RPC client and derivation/assembly helpers
	ledgerClient := ledger.NewClient(cfg.Ledger.RPCURL, programID, cfg.Ledger.Timeout, log)
	deriver := derive.New(programID)
	builder := txbuild.NewBuilder(deriver, usdcMint)

	// Webhook registry store, selected by config. Redis and postgres survive
	// restarts; memory does not.
	healthCheckers := []ports.HealthChecker{ledger.NewHealthCheck(ledgerClient)}
	var rateLimitStore *redisStorage.RateLimitStore
	var webhookStore ports.WebhookStore

	switch cfg.Webhook.Store {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		webhookStore = redisStorage.NewWebhookStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis webhook store connected")
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		webhookStore = pgStorage.NewWebhookStore(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL webhook store connected")
	default:
		webhookStore = memStorage.NewWebhookStore()
		log.Warn().Msg("Using in-memory webhook store; registrations will not survive restarts")
	}

	// Business services
	agentSvc := service.NewAgentService(ledgerClient, deriver, builder, log)
	paymentSvc := service.NewPaymentService(ledgerClient, deriver, builder, log)
	subscriptionSvc := service.NewSubscriptionService(ledgerClient, deriver, builder, log)
	allowanceSvc := service.NewAllowanceService(ledgerClient, deriver, builder, log)
	invoiceSvc := service.NewInvoiceService(ledgerClient, deriver, builder, log)
	reputationSvc := service.NewReputationService(ledgerClient, deriver, log)
	webhookSvc := service.NewWebhookService(
		webhookStore,
		&http.Client{Timeout: cfg.Webhook.DeliveryTimeout},
		cfg.Webhook.DeliveryTimeout,
		log,
	)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AgentSvc:        agentSvc,
		PaymentSvc:      paymentSvc,
		SubscriptionSvc: subscriptionSvc,
		AllowanceSvc:    allowanceSvc,
		InvoiceSvc:      invoiceSvc,
		ReputationSvc:   reputationSvc,
		WebhookSvc:      webhookSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  healthCheckers,
		Logger:          log,
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
