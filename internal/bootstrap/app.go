// Package bootstrap handles application initialization and lifecycle for
// the resource-enhancer service.
package bootstrap

import (
	"fmt"

	"github.com/learnflow/resource-enhancer/internal/logger"
)

const version = "dev"

// Start initializes and runs the resource-enhancer application.
func Start() error {
	// Phase 1: config and logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: optional milestone progress store
	store := SetupProgressStore(cfg, log)

	// Phase 3: HTTP server
	server := SetupHTTPServer(cfg, store, log)

	log.Info("Starting HTTP server",
		logger.String("host", cfg.Server.Host),
		logger.Int("port", cfg.Server.Port),
		logger.String("backend", cfg.Backend.BaseURL),
	)

	if runErr := server.Run(); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
