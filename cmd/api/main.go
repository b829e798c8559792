package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/hcm-systems/hcm-api/internal/api"
	"github.com/hcm-systems/hcm-api/internal/infrastructure/config"
	"github.com/hcm-systems/hcm-api/internal/infrastructure/db/postgres"
	redisdb "github.com/hcm-systems/hcm-api/internal/infrastructure/db/redis"
	"github.com/hcm-systems/hcm-api/pkg/logger"
)

// @title           HCM API
// @version         1.0
// @description     Human capital management service: authentication, employees, departments and workforce reports.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Salaries serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = config.InsecureDefaultSecret
		log.Warn().Msg("JWT_SECRET is not set, falling back to the built-in development secret")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Warn().Msg("JWT_SECRET is shorter than 32 characters")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}
	if err := postgres.Seed(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
