package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"leadbook/internal/server/config"
	"leadbook/internal/server/handlers"
	"leadbook/internal/server/middleware"
	"leadbook/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx := context.Background()

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	leadsHandler := handlers.NewLeadsHandler(logger, store)
	countriesHandler := handlers.NewCountriesHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMW := middleware.AuthMiddleware(logger, jwtConfig)
	// Auth endpoints get a tight per-IP limit to slow down guessing
	authLimit := middleware.RateLimitMiddleware(10, time.Minute, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/register", authLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/signin", authLimit(http.HandlerFunc(authHandler.Signin)))
	mux.Handle("GET /api/v1/leads", authMW(http.HandlerFunc(leadsHandler.List)))
	mux.Handle("POST /api/v1/leads", authMW(http.HandlerFunc(leadsHandler.Create)))
	mux.Handle("PUT /api/v1/leads/{id}", authMW(http.HandlerFunc(leadsHandler.Update)))
	mux.Handle("DELETE /api/v1/leads/{id}", authMW(http.HandlerFunc(leadsHandler.Delete)))
	mux.Handle("POST /api/v1/countries", authMW(http.HandlerFunc(countriesHandler.Save)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(mux),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("leadbook server starting",
		slog.String("addr", cfg.ListenAddr),
		slog.String("version", Version))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

func printVersion() {
	fmt.Printf("Leadbook Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
