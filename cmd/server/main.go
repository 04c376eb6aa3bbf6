package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medistaff/staffdir/internal/api"
	"github.com/medistaff/staffdir/internal/core/token"
	"github.com/medistaff/staffdir/internal/infrastructure/config"
	mongodb "github.com/medistaff/staffdir/internal/infrastructure/db/mongo"
	redisdb "github.com/medistaff/staffdir/internal/infrastructure/db/redis"
	"github.com/medistaff/staffdir/internal/infrastructure/queue"
	"github.com/medistaff/staffdir/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	if cfg.JWTSecret == config.InsecureDefaultSecret && !cfg.Development() {
		log.Warn().Msg("JWT_SECRET is the insecure development default; override it in deployment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	pool := queue.NewHashPool(cfg.HashWorkers, log)
	pool.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Codec:  token.NewCodec(cfg.JWTSecret),
		Hasher: pool,
		Log:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
