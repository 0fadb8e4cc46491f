package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pnvi/immunization-api/docs"
	"github.com/pnvi/immunization-api/internal/api"
	"github.com/pnvi/immunization-api/internal/infrastructure/config"
	"github.com/pnvi/immunization-api/internal/infrastructure/db/mysql"
	redisdb "github.com/pnvi/immunization-api/internal/infrastructure/db/redis"
	"github.com/pnvi/immunization-api/internal/infrastructure/security"
	"github.com/pnvi/immunization-api/pkg/logger"
)

// @title Immunization Program API
// @version 1.0
// @description REST backend for the child-vaccination program: children, tutors, health centers, vaccines, lots, vaccination events, appointments and national calendars.

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token obtained from /login.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger not built yet; a missing JWT_SECRET lands here.
		log.Fatalf("configuration error: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logg.Fatal().Err(err).Msg("token service configuration error")
	}

	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.MySQL.DSN()})
	if err != nil {
		logg.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	deps := api.Deps{DB: db, Tokens: tokens, Log: logg}

	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			logg.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		deps.Redis = rdb
		logg.Info().Str("addr", cfg.Redis.Addr).Msg("token revocation enabled")
	} else {
		logg.Info().Msg("REDIS_ADDR not set, token revocation disabled")
	}

	e := api.NewRouter(deps)
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("server forced to shutdown")
	}

	logg.Info().Msg("server exited")
}
