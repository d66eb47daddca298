package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logging"
	"github.com/pageza/recipebox/backend/internal/server"
	"github.com/pageza/recipebox/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recipebox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("database schema migrated")
	}

	opts := server.Options{Config: cfg, DB: db, Log: log}

	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, auth rate limiting disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			opts.Redis = rdb
		}
	}

	var images service.ImageStore
	if cfg.AWSRegion != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Warn("image storage unavailable", zap.Error(err))
		} else {
			images = s3cfg
		}
	} else {
		log.Info("AWS_REGION not set, image upload disabled")
	}
	opts.Images = images

	return server.New(opts).Run(ctx)
}
