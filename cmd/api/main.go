package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahayog/membership-system/internal/api"
	"github.com/sahayog/membership-system/internal/core/service"
	"github.com/sahayog/membership-system/internal/infrastructure/config"
	mongodb "github.com/sahayog/membership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sahayog/membership-system/internal/infrastructure/db/redis"
	"github.com/sahayog/membership-system/pkg/logger"
)

// @title        Membership Registration API
// @version      1.0
// @description  Member sign-up, search, and update API with admin login.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	memberRepo := mongodb.NewMemberRepository(db)
	if err := memberRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create member indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Admin credential bootstrap ---
	if cfg.Admin.SeedUsername != "" && cfg.Admin.SeedPassword != "" {
		adminService := service.NewAdminService(mongodb.NewAdminRepository(db), cfg.AdminToken, log)
		if err := adminService.Seed(ctx, cfg.Admin.SeedUsername, cfg.Admin.SeedPassword); err != nil {
			log.Warn().Err(err).Msg("admin credential seeding failed")
		}
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
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
