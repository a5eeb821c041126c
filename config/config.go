package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Server
	Environment string `yaml:"environment"`
	ServerPort  string `yaml:"server_port"`
	APIToken    string `yaml:"api_token"`

	// Document store
	DatabaseURL string `yaml:"database_url"`

	// Task queue
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// Result media storage
	MediaEndpoint  string `yaml:"media_endpoint"`
	MediaAccessKey string `yaml:"media_access_key"`
	MediaSecretKey string `yaml:"media_secret_key"`
	MediaBucket    string `yaml:"media_bucket"`
	MediaUseSSL    bool   `yaml:"media_use_ssl"`
	MediaRegion    string `yaml:"media_region"`

	// Dispatcher
	QueuePollTimeout time.Duration `yaml:"queue_poll_timeout"`
}

// LocalDevelopment reports whether unauthenticated callers are allowed
func (c *Config) LocalDevelopment() bool {
	return c.Environment == "development"
}

// Load builds the configuration: defaults, then the optional YAML file named
// by CONFIG_FILE, then environment variable overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:      "production",
		ServerPort:       "8080",
		DatabaseURL:      "postgres://localhost/photobooth?sslmode=disable",
		RedisAddr:        "localhost:6379",
		MediaBucket:      "results",
		QueuePollTimeout: 5 * time.Second,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.APIToken = getEnv("API_TOKEN", cfg.APIToken)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.MediaEndpoint = getEnv("MEDIA_ENDPOINT", cfg.MediaEndpoint)
	cfg.MediaAccessKey = getEnv("MEDIA_ACCESS_KEY", cfg.MediaAccessKey)
	cfg.MediaSecretKey = getEnv("MEDIA_SECRET_KEY", cfg.MediaSecretKey)
	cfg.MediaBucket = getEnv("MEDIA_BUCKET", cfg.MediaBucket)
	cfg.MediaUseSSL = getEnvBool("MEDIA_USE_SSL", cfg.MediaUseSSL)
	cfg.MediaRegion = getEnv("MEDIA_REGION", cfg.MediaRegion)
	cfg.QueuePollTimeout = getEnvDuration("QUEUE_POLL_TIMEOUT", cfg.QueuePollTimeout)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
