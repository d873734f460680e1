package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/rollup/internal/adapter/http"
	"github.com/iho/rollup/internal/adapter/http/handler"
	"github.com/iho/rollup/internal/adapter/http/middleware"
	"github.com/iho/rollup/internal/adapter/pricing"
	postgresRepo "github.com/iho/rollup/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/rollup/internal/adapter/repository/redis"
	"github.com/iho/rollup/internal/infrastructure/config"
	"github.com/iho/rollup/internal/infrastructure/logger"
	"github.com/iho/rollup/internal/infrastructure/metrics"
	"github.com/iho/rollup/internal/infrastructure/postgres"
	"github.com/iho/rollup/internal/infrastructure/redis"
	"github.com/iho/rollup/internal/infrastructure/rounding"
	"github.com/iho/rollup/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	tolerance, err := decimal.NewFromString(cfg.Tolerance)
	if err != nil {
		log.Fatal().Err(err).Str("tolerance", cfg.Tolerance).Msg("invalid tolerance")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(log, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(log)
	subaccountRepo := postgresRepo.NewSubaccountRepository(pool, retrier)
	accountRepo := postgresRepo.NewAccountRepository(pool, retrier)
	lineRepo := postgresRepo.NewLedgerLineRepository(pool, retrier)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool, retrier)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	familyRepo := postgresRepo.NewFamilyRepository(pool, retrier)
	productRepo := postgresRepo.NewProductRepository(pool)
	variantRepo := postgresRepo.NewVariantRepository(pool, retrier)
	purchaseRepo := postgresRepo.NewPurchaseDocumentRepository(pool)
	supplierProductRepo := postgresRepo.NewSupplierProductRepository(pool, retrier)
	settingsRepo := redisRepo.NewSettingsCache(
		redisClient, postgresRepo.NewSettingsRepository(pool), cfg.SettingsCacheTTL)
	idGen := postgresRepo.NewULIDGenerator()

	// Shared collaborators
	rounder := rounding.NewFixedRounder(cfg.Decimals)
	pricingSvc := pricing.NewService(supplierProductRepo, variantRepo, rounder, log)
	m := metrics.New()
	reconcileCfg := usecase.ReconcileConfig{PageSize: cfg.PageSize, Epsilon: tolerance, Metrics: m}

	// Feed the connection gauge from live pool stats
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.DBConnections.Set(float64(pool.Stat().TotalConns()))
			}
		}
	}()

	// Dispatcher and workers
	dispatcher := usecase.NewDispatcher(log, m)
	dispatcher.Register(
		usecase.NewSubaccountRollupWorker(subaccountRepo, lineRepo, dispatcher, log, reconcileCfg),
		usecase.NewAccountRollupWorker(accountRepo, subaccountRepo, rounder, reconcileCfg),
		usecase.NewCustomerTotalsWorker(customerRepo, invoiceRepo),
		usecase.NewFamilyCountWorker(familyRepo, productRepo),
		usecase.NewSupplierPriceWorker(purchaseRepo, supplierProductRepo, settingsRepo, rounder, idGen, log),
		usecase.NewCostPriceWorker(variantRepo, pricingSvc),
	)

	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, reconcileCfg)

	// Initialize handlers
	eventHandler := handler.NewEventHandler(dispatcher)
	reconcileHandler := handler.NewReconcileHandler(dispatcher, subaccountRepo, accountRepo)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EventHandler:     eventHandler,
		ReconcileHandler: reconcileHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		Metrics:          m,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      middleware.NewLoggingMiddleware(log).Wrap(router),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
