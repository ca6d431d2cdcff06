package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/models"
)

// processEndpoint is the backend route that enhances a batch of resources.
const processEndpoint = "/api/process-resources"

// Service orchestrates resource enhancement: one backend call per batch,
// then normalization of the outcome into exactly one EnhancedResource per
// requested URL. It never returns an error; success=false on the result is
// the only failure signal. No retries are attempted here — retry policy
// belongs to the caller.
type Service struct {
	baseURL string
	client  *http.Client
	log     logger.Logger
	metrics *Metrics
}

// NewService creates a Service talking to the backend at baseURL. A zero
// timeout falls back to the client default of 60s.
func NewService(baseURL string, timeout time.Duration, log logger.Logger, metrics *Metrics) *Service {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
		metrics: metrics,
	}
}

// processRequest is the backend request body.
type processRequest struct {
	URLs           []string `json:"urls"`
	ProjectContext any      `json:"projectContext"`
	ProjectID      string   `json:"projectId,omitempty"`
}

// ProcessResources enhances urls against projectContext. The result always
// holds len(urls) records in request order, regardless of backend behavior.
func (s *Service) ProcessResources(ctx context.Context, urls []string, projectContext any, projectID string) models.ProcessResult {
	s.log.Info("Enhancing resources",
		logger.Int("url_count", len(urls)),
		logger.String("project_id", projectID),
	)

	body, status, err := s.callBackend(ctx, urls, projectContext, projectID)
	if err != nil {
		s.metrics.IncRequest("network_error")
		return s.fullBatchFallback(urls, "network", err.Error())
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		s.metrics.IncRequest("http_error")
		return s.fullBatchFallback(urls, "http_status", fmt.Sprintf("Backend error: %d", status))
	}

	env, classification := classifyResponse(body)
	if classification != WellFormed {
		s.metrics.IncRequest(classification.String())
		s.log.Warn("Backend response rejected",
			logger.String("classification", classification.String()),
		)
		return s.fullBatchFallback(urls, classification.String(), classification.Cause())
	}

	s.metrics.IncRequest("ok")
	resources := s.reconcile(urls, env.records)

	return models.ProcessResult{
		Success:           env.Success(),
		EnhancedResources: resources,
		Count:             len(resources),
	}
}

// callBackend performs the single outbound POST. A non-nil error means the
// request never completed.
func (s *Service) callBackend(ctx context.Context, urls []string, projectContext any, projectID string) ([]byte, int, error) {
	payload, err := json.Marshal(processRequest{
		URLs:           urls,
		ProjectContext: projectContext,
		ProjectID:      projectID,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+processEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.metrics.ObserveBackendDuration(time.Since(start))
	if err != nil {
		return nil, 0, fmt.Errorf("backend request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// fullBatchFallback degrades the whole batch: the failure is not
// attributable to individual resources, so every URL gets a fallback record
// carrying the same cause.
func (s *Service) fullBatchFallback(urls []string, causeLabel, cause string) models.ProcessResult {
	s.log.Warn("Full-batch fallback",
		logger.String("cause", cause),
		logger.Int("url_count", len(urls)),
	)
	s.metrics.IncFallbacks(causeLabel, len(urls))

	resources := make([]models.EnhancedResource, 0, len(urls))
	for _, u := range urls {
		resources = append(resources, FallbackResource(u, cause))
	}
	return models.ProcessResult{
		Success:           false,
		EnhancedResources: resources,
		Count:             len(resources),
	}
}

// reconcile maps backend records onto the requested URL list, preserving the
// one-record-per-URL invariant even when the backend returns a list of a
// different length. Records are matched by their url field when present,
// else by position; unmatched backend records are dropped and unmatched
// URLs get per-URL fallback records.
func (s *Service) reconcile(urls []string, records []json.RawMessage) []models.EnhancedResource {
	decoded := make([]map[string]any, len(records))
	byURL := make(map[string]int, len(records))
	for i, rec := range records {
		var m map[string]any
		if err := json.Unmarshal(rec, &m); err != nil || m == nil {
			continue
		}
		decoded[i] = m
		if u, ok := m["url"].(string); ok && u != "" {
			if _, dup := byURL[u]; !dup {
				byURL[u] = i
			}
		}
	}

	used := make([]bool, len(records))
	out := make([]models.EnhancedResource, 0, len(urls))
	for i, u := range urls {
		idx := -1
		if j, ok := byURL[u]; ok && !used[j] {
			idx = j
		} else if i < len(decoded) && !used[i] && positionalCandidate(decoded[i]) {
			idx = i
		}

		if idx < 0 {
			s.log.Debug("No backend record for URL", logger.String("url", u))
			s.metrics.IncFallbacks("missing_record", 1)
			out = append(out, FallbackResource(u, "no backend data for this URL"))
			continue
		}

		used[idx] = true
		if decoded[idx] == nil {
			s.metrics.IncFallbacks("record_mapping", 1)
			out = append(out, FallbackResource(u, "mapping failure: resource record is not an object"))
			continue
		}

		res := MapRecord(decoded[idx], u)
		if res.Status == models.StatusFallback {
			s.metrics.IncFallbacks("record_mapping", 1)
		}
		out = append(out, res)
	}
	return out
}

// positionalCandidate reports whether a record with no usable url field may
// be matched to the input URL at the same position. Records that name a
// different URL are never matched positionally.
func positionalCandidate(rec map[string]any) bool {
	if rec == nil {
		// Still claimed positionally so its defect degrades this slot
		// instead of a sibling's.
		return true
	}
	u, ok := rec["url"].(string)
	return !ok || u == ""
}
