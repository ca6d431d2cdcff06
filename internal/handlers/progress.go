package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/progress"
)

// ProgressHandler serves milestone completion reads and writes.
type ProgressHandler struct {
	store  *progress.Store
	logger logger.Logger
}

// NewProgressHandler creates a ProgressHandler. A nil store disables
// persistence; the endpoints then answer 503.
func NewProgressHandler(store *progress.Store, log logger.Logger) *ProgressHandler {
	return &ProgressHandler{
		store:  store,
		logger: log,
	}
}

type completionRequest struct {
	Completed bool `json:"completed"`
}

// SetMilestone marks one milestone completed or not.
func (h *ProgressHandler) SetMilestone(c *gin.Context) {
	if !h.store.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Progress persistence is disabled"})
		return
	}

	projectID := c.Param("id")
	milestoneID := c.Param("milestoneId")

	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.store.SetCompletion(c.Request.Context(), projectID, milestoneID, req.Completed); err != nil {
		h.logger.Error("Failed to update milestone",
			logger.String("project_id", projectID),
			logger.String("milestone_id", milestoneID),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projectId":   projectID,
		"milestoneId": milestoneID,
		"completed":   req.Completed,
	})
}

// ListMilestones returns all recorded completions for a project.
func (h *ProgressHandler) ListMilestones(c *gin.Context) {
	if !h.store.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Progress persistence is disabled"})
		return
	}

	projectID := c.Param("id")

	completions, err := h.store.Completions(c.Request.Context(), projectID)
	if err != nil {
		h.logger.Error("Failed to list milestones",
			logger.String("project_id", projectID),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list milestones"})
		return
	}

	formatted := make(map[string]string, len(completions))
	for milestoneID, at := range completions {
		formatted[milestoneID] = at.UTC().Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, gin.H{
		"projectId":   projectID,
		"completions": formatted,
		"count":       len(formatted),
	})
}
