package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr     = ":8080"
	defaultDBPath         = "leadbook.db"
	defaultAccessTokenTTL = "24h"
)

// Config holds server runtime configuration, read from the environment
// with an optional .env file on top.
type Config struct {
	ListenAddr     string
	DBPath         string
	JWTSecret      string
	AccessTokenTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win over it.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional
		logger.Debug("no .env file loaded", slog.Any("error", err))
	}

	cfg := &Config{
		ListenAddr: getEnv("LEADBOOK_LISTEN_ADDR", defaultListenAddr),
		DBPath:     getEnv("LEADBOOK_DB_PATH", defaultDBPath),
		JWTSecret:  os.Getenv("LEADBOOK_JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("LEADBOOK_JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getEnv("LEADBOOK_ACCESS_TOKEN_TTL", defaultAccessTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid LEADBOOK_ACCESS_TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("LEADBOOK_ACCESS_TOKEN_TTL must be > 0")
	}
	cfg.AccessTokenTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
