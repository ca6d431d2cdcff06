package enhance

import (
	"time"

	"github.com/learnflow/resource-enhancer/internal/models"
)

// FallbackResource synthesizes a complete EnhancedResource for a URL that
// could not be enhanced. errDesc names the cause and is embedded verbatim in
// the original content and the mentor guidance so it stays inspectable.
// The record instructs the user to follow the URL directly.
func FallbackResource(rawURL, errDesc string) models.EnhancedResource {
	now := time.Now()
	title := "Resource from " + HostnameFromURL(rawURL)

	return models.EnhancedResource{
		ID:     newResourceID(now),
		Status: models.StatusFallback,
		OriginalData: models.OriginalData{
			URL:         rawURL,
			Title:       title,
			Description: fallbackDescription,
			Content:     "Resource processing failed: " + errDesc,
			Sections:    []string{},
			WordCount:   0,
			ScrapedAt:   now.UTC().Format(time.RFC3339),
		},
		Enhanced: models.EnhancedContent{
			Title:                 title,
			Overview:              "This resource is currently inaccessible to automated processing. Open the original link to review its content.",
			LearningObjectives:    defaultObjectives(rawURL),
			KeyConcepts:           []models.KeyConcept{},
			PracticalApplications: []string{"Open the original resource and work through its material directly"},
			CommonPitfalls:        []models.Pitfall{pitfallProcessingError()},
			NextSteps:             []string{"Visit " + rawURL + " to access this resource"},
			DifficultyLevel:       models.DifficultyBeginner,
			EstimatedReadingTime:  defaultReadingTime,
			OriginalURL:           rawURL,
			SourceTitle:           title,
			WordCount:             0,
		},
		MentorContext: models.MentorContext{
			ResourceSummary: "The resource at " + rawURL + " could not be summarized automatically.",
			KeyTopics:       []string{},
			SampleQuestions: defaultSampleQuestions(title),
			KeyConcepts:     []string{},
			MentorGuidance:  "This resource could not be enhanced (" + errDesc + "). Point the learner at " + rawURL + " directly.",
			ResourceTitle:   title,
			ResourceURL:     rawURL,
		},
		ProcessedAt: now.UnixMilli(),
	}
}
