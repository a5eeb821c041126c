package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"photobooth-pipeline/config"
	"photobooth-pipeline/core/dispatch"
	"photobooth-pipeline/core/pipeline"
	"photobooth-pipeline/core/queue"
	"photobooth-pipeline/core/repository"
	"photobooth-pipeline/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	var links pipeline.ResultLinkResolver
	if cfg.MediaEndpoint != "" {
		mediaStore, err := storage.NewMediaStore(storage.Options{
			Endpoint:  cfg.MediaEndpoint,
			AccessKey: cfg.MediaAccessKey,
			SecretKey: cfg.MediaSecretKey,
			UseSSL:    cfg.MediaUseSSL,
			Region:    cfg.MediaRegion,
			Bucket:    cfg.MediaBucket,
		})
		if err != nil {
			log.Fatalf("Failed to connect to media storage: %v", err)
		}
		links = mediaStore
	}

	worker := dispatch.NewWorker(
		rdb,
		repository.NewJobRepository(db),
		repository.NewSessionRepository(db),
		queue.NewClient(rdb),
		links,
		logger,
		cfg.QueuePollTimeout,
	)

	logger.Info("starting dispatcher", "queue", queue.KeyExportDispatch)
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("dispatcher stopped with error", "error", err)
	}
}
