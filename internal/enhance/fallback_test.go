package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnflow/resource-enhancer/internal/models"
)

func TestFallbackResource_Complete(t *testing.T) {
	res := FallbackResource("https://a.com/article", "connection refused")

	assert.Equal(t, models.StatusFallback, res.Status)
	assert.Equal(t, "Resource from a.com", res.Enhanced.Title)
	assert.Equal(t, "https://a.com/article", res.OriginalData.URL)
	assert.Equal(t, "https://a.com/article", res.Enhanced.OriginalURL)
	assert.Equal(t, models.DifficultyBeginner, res.Enhanced.DifficultyLevel)
	assert.Equal(t, defaultReadingTime, res.Enhanced.EstimatedReadingTime)

	// Every sequence the contract requires to be non-empty is non-empty.
	assert.NotEmpty(t, res.Enhanced.LearningObjectives)
	assert.NotEmpty(t, res.Enhanced.PracticalApplications)
	assert.NotEmpty(t, res.Enhanced.NextSteps)
	require.Len(t, res.Enhanced.CommonPitfalls, 1)
	require.Len(t, res.MentorContext.SampleQuestions, 3)

	// Empty sequences are present, not nil, so consumers can range freely.
	assert.NotNil(t, res.Enhanced.KeyConcepts)
	assert.NotNil(t, res.OriginalData.Sections)
	assert.NotNil(t, res.MentorContext.KeyTopics)

	assert.NotZero(t, res.ProcessedAt)
	assert.NotEmpty(t, res.ID)
}

func TestFallbackResource_CauseIsInspectable(t *testing.T) {
	res := FallbackResource("https://a.com", "Backend error: 500")

	// The triggering cause must appear verbatim in the mentor guidance and
	// the original content.
	assert.Contains(t, res.MentorContext.MentorGuidance, "Backend error: 500")
	assert.Contains(t, res.OriginalData.Content, "Backend error: 500")
	assert.Contains(t, res.MentorContext.MentorGuidance, "https://a.com")
}

func TestFallbackResource_MalformedURL(t *testing.T) {
	res := FallbackResource("not a url", "timeout")

	assert.Equal(t, "Resource from unknown", res.Enhanced.Title)
	assert.Equal(t, "not a url", res.OriginalData.URL)
}

func TestFallbackResource_UniqueIDs(t *testing.T) {
	a := FallbackResource("https://a.com", "x")
	b := FallbackResource("https://a.com", "x")
	assert.NotEqual(t, a.ID, b.ID)
}
