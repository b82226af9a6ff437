package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/servicehub/servicehub/internal/config"
	"github.com/servicehub/servicehub/internal/events"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/metrics"
	"github.com/servicehub/servicehub/internal/repository"
	"github.com/servicehub/servicehub/internal/router"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	logger.Info("API service starting...",
		"app", cfg.App.Name, "api_version", cfg.App.Version,
		"version", Version, "commit", GitCommit, "build time", BuildTime)

	// Metrics
	collector := metrics.NewCollector(cfg.Metrics.Namespace)
	registry, err := metrics.NewRegistry(collector)
	if err != nil {
		logger.Fatal("Failed to register metrics", "error", err)
	}

	// One repository for the whole process
	repo := repository.NewMemoryServiceRepository(logger, collector)

	// Lifecycle events (configurable backend)
	logger.Info("Connecting events backend", "type", cfg.Events.Type, "url", cfg.Events.URL)
	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		logger.Fatal("Failed to connect events backend", "error", err)
	}
	defer func() { _ = publisher.Close() }()

	if np, ok := publisher.(*events.NATSPublisher); ok {
		if err := np.EnsureStream("SERVICEHUB"); err != nil {
			logger.Warn("Failed to ensure JetStream stream", "error", err)
		}
	}

	// Initialize router
	app := router.New(logger, router.Deps{
		Repository: repo,
		Collector:  collector,
		Registry:   registry,
		Events:     publisher,
	}, *cfg)

	// Start server in goroutine
	go func() {
		addr := cfg.ServerAddress()
		logger.Info("Server listening", "address", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited", "services", repo.Count())
}
