package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/ischool/courseinfo-backend/internal/database"
	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/handler"
	"github.com/ischool/courseinfo-backend/internal/logger"
	"github.com/ischool/courseinfo-backend/internal/router"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/ischool/courseinfo-backend/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("driver", cfg.DatabaseDriver).
		Str("log_level", cfg.LogLevel).
		Msg("Starting course info backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Schema ────────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.DatabaseDriver, database.DSN(cfg), log); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate schema")
		}
	}

	// ─── Connect to the database ───────────────────────────────────────
	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// ─── Change feed ───────────────────────────────────────────────────
	// Redis fans changes out across instances; without it they stay in-process.
	var (
		rdb    *redis.Client
		broker events.Broker
	)
	if cfg.RedisURL != "" {
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		broker = events.NewRedisBroker(rdb, log)
	} else {
		broker = events.NewLocalBroker()
	}
	defer broker.Close()

	// ─── Initialize Services ──────────────────────────────────────────
	services := service.NewServices(db.SQL, broker, log)
	reg, err := service.NewRegistry(services)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build entity registry")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Page:      handler.NewPageHandler(reg, services, log),
		API:       handler.NewAPIHandler(services, log),
		Admin:     handler.NewAdminHandler(services.Export, log),
		Dashboard: handler.NewDashboardHandler(services.Dashboard, reg, log),
		WS:        handler.NewWSHandler(broker, log, cfg.AllowedOrigins),
		Monitor:   handler.NewMonitorHandler(broker, log),
		System:    handler.NewSystemHandler(db.SQL, db.Dialect, rdb, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r, limiter, err := router.SetupRouter(reg, handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up router")
	}
	defer limiter.Stop()

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Change streams never finish on their own; ending the subscriptions
	// lets Shutdown drain the remaining requests.
	srv.RegisterOnShutdown(func() { broker.Close() })

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
