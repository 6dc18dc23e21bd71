package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "pennyledger/internal/adapter/http"
	"pennyledger/internal/adapter/http/handler"
	"pennyledger/internal/adapter/http/middleware"
	postgresRepo "pennyledger/internal/adapter/repository/postgres"
	redisRepo "pennyledger/internal/adapter/repository/redis"
	"pennyledger/internal/infrastructure/config"
	"pennyledger/internal/infrastructure/logger"
	"pennyledger/internal/infrastructure/metrics"
	"pennyledger/internal/infrastructure/postgres"
	"pennyledger/internal/infrastructure/redis"
	"pennyledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	// Run migrations before serving traffic
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// The store gateway connects lazily; a store that is down at boot
	// only fails the requests that need it.
	gateway := postgres.NewGateway(postgres.GatewayConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	defer gateway.Close()

	// Redis is optional; without it create requests are single-shot.
	var redisClient *redislib.Client
	var idempotencyStore usecase.IdempotencyStore
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	// Wire dependencies
	entryRepo := postgresRepo.NewEntryRepository(gateway)
	idGen := postgresRepo.NewULIDGenerator()
	m := metrics.New()

	entryUC := usecase.NewEntryUseCase(entryRepo, idGen, m)

	entryHandler := handler.NewEntryHandler(entryUC)
	healthHandler := handler.NewHealthHandler(gateway, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EntryHandler:     entryHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
		Logger:           &appLogger,
	})

	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// listenAddr accepts either a bare port or a full host:port address.
func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
