// Package projects provides the client for the AI backend's project plan
// generation endpoint. Unlike the enhancement pipeline this is a plain
// request/response call: errors are surfaced to the caller, with transient
// network failures retried.
package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/learnflow/resource-enhancer/internal/retry"
)

// generateEndpoint is the backend route that generates a project plan.
const generateEndpoint = "/api/generate-project"

const defaultTimeout = 60 * time.Second

// ErrBackendUnavailable indicates the generation backend did not answer.
var ErrBackendUnavailable = errors.New("project generation backend unavailable")

// GenerateRequest describes the learner's goal.
type GenerateRequest struct {
	Goal            string `json:"goal"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	HoursPerWeek    int    `json:"hoursPerWeek,omitempty"`
}

// Milestone is one step of a generated project plan.
type Milestone struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EstimatedHours int      `json:"estimatedHours"`
	ResourceURLs   []string `json:"resourceUrls"`
}

// GeneratedProject is the backend's project plan for a learning goal.
type GeneratedProject struct {
	ProjectID    string          `json:"projectId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Milestones   []Milestone     `json:"milestones"`
	ResourceURLs []string        `json:"resourceUrls"`
	ConceptMap   json.RawMessage `json:"conceptMap,omitempty"`
}

// Client calls the project generation endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.DefaultConfig(),
	}
}

// Generate asks the backend for a project plan.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GeneratedProject, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var project GeneratedProject
	err = retry.Do(ctx, c.retryCfg, func() error {
		return c.post(ctx, payload, &project)
	})
	if err != nil {
		return nil, fmt.Errorf("generate project: %w", err)
	}
	return &project, nil
}

func (c *Client) post(ctx context.Context, payload []byte, out *GeneratedProject) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
