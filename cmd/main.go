package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nova-ads/internal/adapter/audience"
	httpadapter "nova-ads/internal/adapter/http"
	"nova-ads/internal/adapter/postgres"
	redisstore "nova-ads/internal/adapter/redis"
	"nova-ads/internal/config"
	"nova-ads/internal/core/port"
	"nova-ads/internal/db"
	"nova-ads/internal/engine"
)

// resolverOrNil avoids storing a typed nil in the interface when lookalike
// targeting is disabled.
func resolverOrNil(r *audience.Resolver) port.AudienceResolver {
	if r == nil {
		return nil
	}
	return r
}

// main is the entry point of the nova-ads service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// Redis frequency store and the audience resolver, wires the delivery
// engine and starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	redisClient, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	repo := postgres.NewAdRepository(pool)
	freq := redisstore.NewFrequencyStore(redisClient, cfg.Delivery.RecencyHorizon)

	var resolver *audience.Resolver
	if cfg.Audience.BaseURL != "" {
		resolver = audience.NewResolver(cfg.Audience.BaseURL, cfg.Audience.Timeout, logger)
	}

	delivery := engine.NewDelivery(repo, freq, resolverOrNil(resolver), logger, engine.DeliveryOptions{
		Deadline: cfg.Delivery.Deadline,
		Weights: engine.Weights{
			Bid:     cfg.Delivery.BidWeight,
			Pacing:  cfg.Delivery.PacingWeight,
			Recency: cfg.Delivery.RecencyWeight,
		},
		RecencyHorizon:  cfg.Delivery.RecencyHorizon,
		ResolverTimeout: cfg.Audience.Timeout,
	})

	handler := httpadapter.NewHandler(delivery, delivery.Recorder(), logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
