package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"leadbook/internal/client/api"
	"leadbook/internal/client/cli"
	"leadbook/internal/client/form"
	"leadbook/internal/client/iocli"
	"leadbook/internal/client/leads"
	"leadbook/internal/client/session"
	"leadbook/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	countriesURL := flag.String("countries-url", "http://localhost:8081", "Country directory URL")
	dbPath := flag.String("db", "leadbook-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()

	stdio := iocli.NewStdio()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	countryClient := api.NewCountryClient(*countriesURL)

	sess := session.New(boltStorage)
	formSession := form.New()
	cache := leads.NewCache(logger, apiClient, boltStorage)
	controller := leads.NewController(
		logger, apiClient, cache, formSession,
		iocli.NewConfirmer(stdio), apiClient, countryClient,
		leads.DefaultConfig(),
	)
	defer controller.Wait()

	c := cli.New(stdio, apiClient, sess, cache, controller, formSession)

	if len(args) == 0 {
		c.PrintUsage()
		os.Exit(1)
	}

	c.Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("Leadbook Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
