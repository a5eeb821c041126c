package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"photobooth-pipeline/api/rest/routes"
	"photobooth-pipeline/config"
	"photobooth-pipeline/core/pipeline"
	"photobooth-pipeline/core/queue"
	"photobooth-pipeline/core/repository"
	"photobooth-pipeline/storage"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
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

	// Initialize document store
	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	logger.Info("database connected")

	// Initialize task queue
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	taskQueue := queue.NewClient(rdb)

	// Result media storage is optional; without it email payloads fall back
	// to the URL stored on the session.
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

	service := pipeline.NewService(
		repository.NewSessionRepository(db),
		repository.NewExperienceRepository(db),
		repository.NewProjectRepository(db),
		repository.NewJobRepository(db),
		taskQueue,
		links,
		logger,
		cfg.LocalDevelopment(),
	)

	r := mux.NewRouter()
	routes.SetupRoutes(r, service, cfg.APIToken)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	handler := gorillahandlers.RecoveryHandler()(
		gorillahandlers.CORS(
			gorillahandlers.AllowedOrigins([]string{"*"}),
			gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
			gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Guest-ID"}),
		)(r),
	)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler,
	}

	// Graceful shutdown
	go func() {
		logger.Info("starting server", "port", cfg.ServerPort, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("server exited")
}
