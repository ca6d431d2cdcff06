package bootstrap

import (
	"github.com/learnflow/resource-enhancer/internal/api"
	"github.com/learnflow/resource-enhancer/internal/config"
	"github.com/learnflow/resource-enhancer/internal/enhance"
	"github.com/learnflow/resource-enhancer/internal/handlers"
	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/progress"
	"github.com/learnflow/resource-enhancer/internal/projects"
)

// SetupHTTPServer wires the pipeline, clients, and handlers into the HTTP
// server.
func SetupHTTPServer(cfg *config.Config, store *progress.Store, log logger.Logger) *api.Server {
	metrics := enhance.NewMetrics()
	enhancer := enhance.NewService(cfg.Backend.BaseURL, cfg.Backend.Timeout, log, metrics)
	generator := projects.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	h := api.Handlers{
		Enhance:  handlers.NewEnhanceHandler(enhancer, log),
		Projects: handlers.NewProjectHandler(generator, log),
		Progress: handlers.NewProgressHandler(store, log),
	}

	router := api.NewRouter(cfg, h, metrics.Registry, version, log)
	return api.NewServer(cfg, router, log)
}
