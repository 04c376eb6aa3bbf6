// Command seed provisions the base role catalog and, when no admin account
// exists yet, the default admin (admin@example.com / admin123). Idempotent.
package main

import (
	"context"
	"time"

	"github.com/medistaff/staffdir/internal/core/service"
	"github.com/medistaff/staffdir/internal/infrastructure/config"
	mongodb "github.com/medistaff/staffdir/internal/infrastructure/db/mongo"
	"github.com/medistaff/staffdir/internal/infrastructure/queue"
	"github.com/medistaff/staffdir/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	pool := queue.NewHashPool(1, log)
	pool.Start(ctx)

	if err := service.Seed(ctx, mongodb.NewAccountRepository(db), mongodb.NewRoleRepository(db), pool, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().Msg("seed complete")
}
