package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/projects"
)

// Generator produces project plans for learning goals.
type Generator interface {
	Generate(ctx context.Context, req projects.GenerateRequest) (*projects.GeneratedProject, error)
}

// ProjectHandler serves project plan generation requests.
type ProjectHandler struct {
	generator Generator
	logger    logger.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(generator Generator, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		generator: generator,
		logger:    log,
	}
}

type generateRequest struct {
	Goal            string `json:"goal" binding:"required"`
	ExperienceLevel string `json:"experienceLevel"`
	HoursPerWeek    int    `json:"hoursPerWeek"`
}

// Generate forwards the learner's goal to the generation backend.
func (h *ProjectHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.generator.Generate(c.Request.Context(), projects.GenerateRequest{
		Goal:            req.Goal,
		ExperienceLevel: req.ExperienceLevel,
		HoursPerWeek:    req.HoursPerWeek,
	})
	if err != nil {
		h.logger.Error("Project generation failed",
			logger.String("goal", req.Goal),
			logger.Error(err),
		)
		status := http.StatusInternalServerError
		if errors.Is(err, projects.ErrBackendUnavailable) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": "Failed to generate project"})
		return
	}

	h.logger.Info("Project generated",
		logger.String("project_id", project.ProjectID),
		logger.String("goal", req.Goal),
	)

	c.JSON(http.StatusOK, project)
}
