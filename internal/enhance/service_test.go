package enhance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnflow/resource-enhancer/internal/logger"
	"github.com/learnflow/resource-enhancer/internal/models"
)

func newTestService(baseURL string) *Service {
	return NewService(baseURL, 5*time.Second, logger.NewNop(), NewMetrics())
}

func backendStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != processEndpoint {
			t.Errorf("expected %s, got %s", processEndpoint, r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestProcessResources_BackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com"}, nil, "")

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.EnhancedResources, 1)

	res := result.EnhancedResources[0]
	assert.Equal(t, models.StatusFallback, res.Status)
	assert.Equal(t, "https://a.com", res.OriginalData.URL)
	assert.Equal(t, "Resource from a.com", res.Enhanced.Title)
}

func TestProcessResources_BackendStatus500(t *testing.T) {
	server := backendStub(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	defer server.Close()

	svc := newTestService(server.URL)
	urls := []string{"https://a.com", "https://b.com"}
	result := svc.ProcessResources(context.Background(), urls, nil, "proj-1")

	assert.False(t, result.Success)
	require.Len(t, result.EnhancedResources, 2)
	for i, res := range result.EnhancedResources {
		assert.Equal(t, models.StatusFallback, res.Status)
		assert.Equal(t, urls[i], res.OriginalData.URL)
		assert.Contains(t, res.MentorContext.MentorGuidance, "Backend error: 500")
	}
}

func TestProcessResources_NonJSONBody(t *testing.T) {
	server := backendStub(t, http.StatusOK, `<html>ok</html>`)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com"}, nil, "")

	assert.False(t, result.Success)
	require.Len(t, result.EnhancedResources, 1)
	assert.Contains(t, result.EnhancedResources[0].MentorContext.MentorGuidance, "JSON parse error")
}

func TestProcessResources_UnexpectedShape(t *testing.T) {
	server := backendStub(t, http.StatusOK, `{"success":true,"enhanced_resources":"oops"}`)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com", "https://b.com"}, nil, "")

	assert.False(t, result.Success)
	require.Len(t, result.EnhancedResources, 2)
	for _, res := range result.EnhancedResources {
		assert.Contains(t, res.MentorContext.MentorGuidance, "Unexpected response structure")
	}
}

func TestProcessResources_NullResourceList(t *testing.T) {
	server := backendStub(t, http.StatusOK, `{"success":true,"enhanced_resources":null}`)
	defer server.Close()

	svc := newTestService(server.URL)
	urls := []string{"https://a.com", "https://b.com"}
	result := svc.ProcessResources(context.Background(), urls, nil, "")

	assert.False(t, result.Success)
	require.Len(t, result.EnhancedResources, 2)
	for _, res := range result.EnhancedResources {
		assert.Equal(t, models.StatusFallback, res.Status)
		assert.Contains(t, res.MentorContext.MentorGuidance, "Unexpected response structure")
	}
}

func TestProcessResources_WellFormed(t *testing.T) {
	body := `{"enhanced_resources":[{"url":"https://a.com","title":"A","summary":"S"}]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com"}, map[string]any{"goal": "learn go"}, "proj-1")

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.EnhancedResources, 1)

	res := result.EnhancedResources[0]
	assert.Equal(t, models.StatusEnhanced, res.Status)
	assert.Equal(t, "S", res.Enhanced.Overview)
	assert.Equal(t, defaultObjectives("https://a.com"), res.Enhanced.LearningObjectives)
	assert.Equal(t, models.DifficultyBeginner, res.Enhanced.DifficultyLevel)
}

func TestProcessResources_RequestBodyCarriesContext(t *testing.T) {
	var got processRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"enhanced_resources":[]}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	svc.ProcessResources(context.Background(), []string{"https://a.com"}, map[string]any{"goal": "learn go"}, "proj-9")

	assert.Equal(t, []string{"https://a.com"}, got.URLs)
	assert.Equal(t, "proj-9", got.ProjectID)
	assert.Equal(t, map[string]any{"goal": "learn go"}, got.ProjectContext)
}

func TestProcessResources_MalformedRecordDegradesAlone(t *testing.T) {
	body := `{"success":true,"enhanced_resources":[
		{"url":"https://a.com","title":"A","summary":"SA"},
		{"url":"https://b.com","title":"B","enhanced_content":{"key_concepts":"bad"}},
		{"url":"https://c.com","title":"C","summary":"SC"}
	]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	urls := []string{"https://a.com", "https://b.com", "https://c.com"}
	result := svc.ProcessResources(context.Background(), urls, nil, "")

	assert.True(t, result.Success)
	require.Len(t, result.EnhancedResources, 3)

	assert.Equal(t, models.StatusEnhanced, result.EnhancedResources[0].Status)
	assert.Equal(t, "SA", result.EnhancedResources[0].Enhanced.Overview)

	assert.Equal(t, models.StatusFallback, result.EnhancedResources[1].Status)
	assert.Contains(t, result.EnhancedResources[1].MentorContext.MentorGuidance, "mapping failure")

	assert.Equal(t, models.StatusEnhanced, result.EnhancedResources[2].Status)
	assert.Equal(t, "SC", result.EnhancedResources[2].Enhanced.Overview)
}

func TestProcessResources_ShortBackendListIsPadded(t *testing.T) {
	body := `{"enhanced_resources":[{"url":"https://b.com","title":"B","summary":"SB"}]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	urls := []string{"https://a.com", "https://b.com"}
	result := svc.ProcessResources(context.Background(), urls, nil, "")

	require.Len(t, result.EnhancedResources, 2)
	assert.Equal(t, models.StatusFallback, result.EnhancedResources[0].Status)
	assert.Equal(t, "https://a.com", result.EnhancedResources[0].OriginalData.URL)
	assert.Contains(t, result.EnhancedResources[0].MentorContext.MentorGuidance, "no backend data for this URL")

	assert.Equal(t, models.StatusEnhanced, result.EnhancedResources[1].Status)
	assert.Equal(t, "SB", result.EnhancedResources[1].Enhanced.Overview)
}

func TestProcessResources_ExtraBackendRecordsDropped(t *testing.T) {
	body := `{"enhanced_resources":[
		{"url":"https://a.com","title":"A","summary":"SA"},
		{"url":"https://x.com","title":"X","summary":"SX"}
	]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com"}, nil, "")

	require.Len(t, result.EnhancedResources, 1)
	assert.Equal(t, "https://a.com", result.EnhancedResources[0].OriginalData.URL)
	assert.Equal(t, "SA", result.EnhancedResources[0].Enhanced.Overview)
}

func TestProcessResources_PositionalMatchWithoutURLField(t *testing.T) {
	body := `{"enhanced_resources":[{"title":"A","summary":"SA"}]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com"}, nil, "")

	require.Len(t, result.EnhancedResources, 1)
	res := result.EnhancedResources[0]
	assert.Equal(t, models.StatusEnhanced, res.Status)
	assert.Equal(t, "https://a.com", res.OriginalData.URL)
	assert.Equal(t, "SA", res.Enhanced.Overview)
}

func TestProcessResources_NonObjectRecordDegradesItsSlot(t *testing.T) {
	body := `{"enhanced_resources":["garbage",{"url":"https://b.com","summary":"SB"}]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com", "https://b.com"}, nil, "")

	require.Len(t, result.EnhancedResources, 2)
	assert.Equal(t, models.StatusFallback, result.EnhancedResources[0].Status)
	assert.Equal(t, models.StatusEnhanced, result.EnhancedResources[1].Status)
}

func TestProcessResources_DeclaredFailureFlagPreserved(t *testing.T) {
	body := `{"success":false,"enhanced_resources":[{"url":"https://a.com","summary":"S"}]}`
	server := backendStub(t, http.StatusOK, body)
	defer server.Close()

	svc := newTestService(server.URL)
	result := svc.ProcessResources(context.Background(), []string{"https://a.com"}, nil, "")

	assert.False(t, result.Success)
	require.Len(t, result.EnhancedResources, 1)
	assert.Equal(t, models.StatusEnhanced, result.EnhancedResources[0].Status)
}

func TestProcessResources_CardinalityUnderAnyBehavior(t *testing.T) {
	behaviors := map[string]struct {
		status int
		body   string
	}{
		"500":             {status: http.StatusInternalServerError, body: ``},
		"teapot":          {status: http.StatusTeapot, body: `{}`},
		"empty body":      {status: http.StatusOK, body: ``},
		"not json":        {status: http.StatusOK, body: `plain text`},
		"null":            {status: http.StatusOK, body: `null`},
		"missing list":    {status: http.StatusOK, body: `{"success":true}`},
		"null list":       {status: http.StatusOK, body: `{"enhanced_resources":null}`},
		"empty list":      {status: http.StatusOK, body: `{"enhanced_resources":[]}`},
		"oversized list":  {status: http.StatusOK, body: `{"enhanced_resources":[{},{},{},{},{}]}`},
		"undersized list": {status: http.StatusOK, body: `{"enhanced_resources":[{}]}`},
	}

	urls := []string{"https://a.com", "https://b.com", "https://c.com"}
	for name, behavior := range behaviors {
		t.Run(name, func(t *testing.T) {
			server := backendStub(t, behavior.status, behavior.body)
			defer server.Close()

			svc := newTestService(server.URL)
			result := svc.ProcessResources(context.Background(), urls, nil, "")

			require.Len(t, result.EnhancedResources, len(urls))
			assert.Equal(t, len(urls), result.Count)
			for i, res := range result.EnhancedResources {
				assert.Equal(t, urls[i], res.OriginalData.URL, "order must match input")
			}
		})
	}
}
