package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/moharam/debtbook/internal/adapter/http"
	"github.com/moharam/debtbook/internal/adapter/http/handler"
	"github.com/moharam/debtbook/internal/adapter/http/middleware"
	postgresRepo "github.com/moharam/debtbook/internal/adapter/repository/postgres"
	redisRepo "github.com/moharam/debtbook/internal/adapter/repository/redis"
	"github.com/moharam/debtbook/internal/engine"
	"github.com/moharam/debtbook/internal/infrastructure/config"
	"github.com/moharam/debtbook/internal/infrastructure/goldprice"
	"github.com/moharam/debtbook/internal/infrastructure/logger"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
	"github.com/moharam/debtbook/internal/infrastructure/notify"
	"github.com/moharam/debtbook/internal/infrastructure/postgres"
	"github.com/moharam/debtbook/internal/infrastructure/redis"
	"github.com/moharam/debtbook/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, "debtbook")

	ctx := context.Background()

	// Connect to PostgreSQL and bring the schema up to date.
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool).WithMetrics(m)
	debtRepo := postgresRepo.NewDebtRepository(pool).WithMetrics(m)
	idGen := postgresRepo.NewULIDGenerator()

	// Report pool utilization while the server runs.
	stopPoolStats := make(chan struct{})
	defer close(stopPoolStats)
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.DBConnections.Set(float64(pool.Stat().TotalConns()))
			case <-stopPoolStats:
				return
			}
		}
	}()

	// Daily gold price, cached in Redis across restarts.
	priceCache := redisRepo.NewGoldPriceCache(redisClient).WithMetrics(m)
	prices := goldprice.New(goldprice.Config{
		URL:       cfg.GoldPriceURL,
		Timeout:   cfg.GoldPriceTimeout,
		CycleHour: cfg.GoldPriceCycleHour,
	}, priceCache, log, m)

	// Change events: logged, then fanned out to in-process subscribers.
	broker := notify.NewBroker(log)
	defer broker.Close()
	publisher := notify.NewLogPublisher(log, broker)

	// Use cases
	eng := engine.New(idGen)
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen, publisher).WithMetrics(m)
	debtUC := usecase.NewDebtUseCase(txManager, customerRepo, debtRepo, eng, prices, publisher, idGen, m).
		WithRetryer(postgresRepo.NewRetrier())
	reportUC := usecase.NewReportUseCase(customerRepo, prices)

	// Handlers
	customerHandler := handler.NewCustomerHandler(customerUC)
	debtHandler := handler.NewDebtHandler(debtUC)
	reportHandler := handler.NewReportHandler(reportUC)
	goldPriceHandler := handler.NewGoldPriceHandler(prices)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:  customerHandler,
		DebtHandler:      debtHandler,
		ReportHandler:    reportHandler,
		GoldPriceHandler: goldPriceHandler,
		HealthHandler:    healthHandler,
		Logging:          middleware.NewLoggingMiddleware(log),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
