package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	eventsKafka "github.com/iho/transfergate/internal/adapter/events/kafka"
	"github.com/iho/transfergate/internal/adapter/gateway"
	httpAdapter "github.com/iho/transfergate/internal/adapter/http"
	"github.com/iho/transfergate/internal/adapter/http/handler"
	postgresRepo "github.com/iho/transfergate/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/transfergate/internal/adapter/repository/redis"
	"github.com/iho/transfergate/internal/infrastructure/auth"
	"github.com/iho/transfergate/internal/infrastructure/config"
	"github.com/iho/transfergate/internal/infrastructure/logger"
	"github.com/iho/transfergate/internal/infrastructure/metrics"
	"github.com/iho/transfergate/internal/infrastructure/postgres"
	"github.com/iho/transfergate/internal/infrastructure/redis"
	"github.com/iho/transfergate/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
		Logger:      appLogger,
	})
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations", appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	m := metrics.New()

	// Downstream gateways
	accountsGateway := gateway.NewAccountsClient(cfg.AccountsServiceURL, cfg.GatewayTimeout, m, appLogger)
	railGateway := gateway.NewRailClient(cfg.RailServiceURL, cfg.GatewayTimeout, m, appLogger)

	// Ledger and idempotency storage
	ledgerRepo := postgresRepo.NewLedgerRepository(pool, m)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Event publishing is optional; without brokers the transfer flow
	// runs the same, just without the recorded events.
	var events usecase.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher := eventsKafka.NewPublisher(cfg.KafkaBrokers)
		defer publisher.Close()
		events = publisher
		appLogger.Info().Strs("brokers", cfg.KafkaBrokers).Msg("kafka event publishing enabled")
	}

	transferUC := usecase.NewTransferUseCase(accountsGateway, railGateway, ledgerRepo, idGen, events, m, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	transferHandler := handler.NewTransferHandler(transferUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransferHandler:  transferHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		Logger:           appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
