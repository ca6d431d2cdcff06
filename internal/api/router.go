// Package api assembles the gin router and HTTP server for the
// resource-enhancer service.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/learnflow/resource-enhancer/internal/config"
	"github.com/learnflow/resource-enhancer/internal/handlers"
	"github.com/learnflow/resource-enhancer/internal/logger"
)

const corsMaxAgeHours = 12

// Handlers groups the route handlers wired into the router.
type Handlers struct {
	Enhance  *handlers.EnhanceHandler
	Projects *handlers.ProjectHandler
	Progress *handlers.ProgressHandler
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg *config.Config, h Handlers, registry *prometheus.Registry, version string, log logger.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// CORS must run before anything that can short-circuit the request.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeHours * time.Hour,
	}))

	router.Use(requestLogger(log))
	router.Use(gin.Recovery())

	router.GET("/health", handlers.Health(version))
	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	v1.POST("/resources/enhance", h.Enhance.Enhance)
	v1.POST("/projects/generate", h.Projects.Generate)
	v1.PUT("/projects/:id/milestones/:milestoneId", h.Progress.SetMilestone)
	v1.GET("/projects/:id/milestones", h.Progress.ListMilestones)

	return router
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Info("HTTP request",
			logger.String("request_id", requestID),
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status_code", c.Writer.Status()),
			logger.String("client_ip", c.ClientIP()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}
