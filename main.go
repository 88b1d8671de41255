package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cachefront/backend/internal/config"
	"github.com/cachefront/backend/internal/logger"
)

func main() {
	ctx := context.Background()

	// Initialize logger for bootstrapping
	bootstrapLogger, err := logger.NewService(&logger.Config{Level: logger.InfoLevel})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Load configuration
	configService := config.NewConfigService(bootstrapLogger)
	cfg, err := configService.Load(".")
	if err != nil {
		bootstrapLogger.LogFatal(err, "Failed to load configuration")
	}

	// Re-initialize the logger with the configured settings
	appLogger, err := logger.NewService(&cfg.Logging)
	if err != nil {
		bootstrapLogger.LogFatal(err, "Failed to initialize application logger")
	}

	// Create a context that will be canceled on interrupt
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.LogInfo("Received shutdown signal", nil)
		cancel()
	}()

	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.LogFatal(err, "Failed to initialize application")
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
	}()

	select {
	case err := <-runErr:
		if err != nil {
			appLogger.LogError(err, "Application error")
		}
	case <-ctx.Done():
	}

	if err := app.Shutdown(); err != nil {
		appLogger.LogError(err, "Error during shutdown")
		os.Exit(1)
	}
}
