package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadDefaults checks the out-of-the-box configuration.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Fatalf("ServerPort = %s", cfg.ServerPort)
	}
	if cfg.LocalDevelopment() {
		t.Fatal("default environment must not be local development")
	}
	if cfg.QueuePollTimeout != 5*time.Second {
		t.Fatalf("QueuePollTimeout = %s", cfg.QueuePollTimeout)
	}
}

// TestLoadFileThenEnv verifies precedence: YAML file overrides defaults,
// environment overrides the file.
func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("environment: development\nserver_port: \"9000\"\nredis_addr: file-redis:6379\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("REDIS_ADDR", "env-redis:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.LocalDevelopment() {
		t.Fatal("file environment not applied")
	}
	if cfg.ServerPort != "9000" {
		t.Fatalf("ServerPort = %s, want file value", cfg.ServerPort)
	}
	if cfg.RedisAddr != "env-redis:6379" {
		t.Fatalf("RedisAddr = %s, want env override", cfg.RedisAddr)
	}
}
