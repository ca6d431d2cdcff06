// Package handlers contains the gin HTTP handlers for the
// resource-enhancer API.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/models"
)

// Enhancer is the enhancement pipeline entry point.
type Enhancer interface {
	ProcessResources(ctx context.Context, urls []string, projectContext any, projectID string) models.ProcessResult
}

// EnhanceHandler serves resource enhancement requests.
type EnhanceHandler struct {
	enhancer Enhancer
	logger   logger.Logger
}

// NewEnhanceHandler creates an EnhanceHandler.
func NewEnhanceHandler(enhancer Enhancer, log logger.Logger) *EnhanceHandler {
	return &EnhanceHandler{
		enhancer: enhancer,
		logger:   log,
	}
}

type enhanceRequest struct {
	URLs           []string `json:"urls"           binding:"required,min=1"`
	ProjectContext any      `json:"projectContext"`
	ProjectID      string   `json:"projectId"`
}

// Enhance runs the pipeline for a batch of URLs. The pipeline is total, so
// this endpoint always answers 200 with one record per requested URL; the
// result's success flag is the only failure signal.
func (h *EnhanceHandler) Enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid enhancement request",
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result := h.enhancer.ProcessResources(c.Request.Context(), req.URLs, req.ProjectContext, req.ProjectID)

	h.logger.Info("Enhancement batch completed",
		logger.String("project_id", req.ProjectID),
		logger.Int("count", result.Count),
		logger.Bool("success", result.Success),
	)

	c.JSON(http.StatusOK, result)
}
