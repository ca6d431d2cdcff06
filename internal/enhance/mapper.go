package enhance

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/learnflow/resource-enhancer/internal/models"
)

// errConceptsNotAList is returned when key_concepts is present but is not an
// ordered sequence.
var errConceptsNotAList = errors.New("key_concepts is not a list")

// MapRecord converts one loosely-typed backend record into a complete
// EnhancedResource. Every optional field is defaulted independently, so a
// missing field never blocks the rest of the record. MapRecord never fails:
// an internal mapping error degrades the record to a fallback record whose
// guidance names the failure.
//
// sourceURL is the requested URL this record was reconciled to; it wins over
// the record's own url field when the latter is absent.
func MapRecord(raw map[string]any, sourceURL string) models.EnhancedResource {
	res, err := mapRecord(raw, sourceURL)
	if err != nil {
		return FallbackResource(sourceURL, "mapping failure: "+err.Error())
	}
	return res
}

func mapRecord(raw map[string]any, sourceURL string) (res models.EnhancedResource, err error) {
	// The backend payload is untrusted; a surprise shape must degrade the
	// record, not take down the batch.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while mapping record: %v", r)
		}
	}()

	now := time.Now()

	rawURL := stringField(raw, "url")
	if rawURL == "" {
		rawURL = sourceURL
	}

	enhanced, _ := raw["enhanced_content"].(map[string]any)

	title := firstNonEmpty(
		stringField(enhanced, "enhanced_title"),
		stringField(raw, "title"),
		defaultTitle,
	)
	overview := firstNonEmpty(
		stringField(raw, "summary"),
		stringField(enhanced, "summary"),
		defaultOverview,
	)

	objectives := stringListField(enhanced, "learning_objectives")
	if len(objectives) == 0 {
		objectives = defaultObjectives(rawURL)
	}

	concepts, err := mapKeyConcepts(enhanced)
	if err != nil {
		return models.EnhancedResource{}, err
	}

	applications := stringListField(enhanced, "practical_applications")
	if len(applications) == 0 {
		applications = defaultApplications()
	}

	nextSteps := stringListField(enhanced, "key_takeaways")
	if len(nextSteps) == 0 {
		nextSteps = defaultNextSteps()
	}

	questions := stringListField(enhanced, "follow_up_questions")
	if len(questions) == 0 {
		questions = defaultSampleQuestions(title)
	}

	difficulty, _ := models.ParseDifficulty(stringField(enhanced, "difficulty_assessment"))

	guidance := stringField(enhanced, "ai_mentor_note")
	if guidance == "" {
		guidance = defaultMentorGuidance(title)
	}

	// Exactly one pitfall entry per record, synthesized from the record's
	// error indicator. Backend pitfall data, if any, is not passed through.
	pitfall := pitfallNoneIdentified()
	if hasErrorIndicator(raw) {
		pitfall = pitfallProcessingError()
	}

	processedAt := now.UnixMilli()
	scrapedAt := now.UTC().Format(time.RFC3339)
	if secs, ok := numberField(raw, "processed_at"); ok {
		processedAt = int64(secs) * 1000
		scrapedAt = time.Unix(int64(secs), 0).UTC().Format(time.RFC3339)
	}

	return models.EnhancedResource{
		ID:     newResourceID(now),
		Status: models.StatusEnhanced,
		OriginalData: models.OriginalData{
			URL:         rawURL,
			Title:       firstNonEmpty(stringField(raw, "title"), title),
			Description: stringField(raw, "description"),
			Content:     stringField(raw, "content"),
			Sections:    stringListField(raw, "sections"),
			WordCount:   intField(raw, "word_count"),
			ScrapedAt:   scrapedAt,
		},
		Enhanced: models.EnhancedContent{
			Title:                 title,
			Overview:              overview,
			LearningObjectives:    objectives,
			KeyConcepts:           concepts,
			PracticalApplications: applications,
			CommonPitfalls:        []models.Pitfall{pitfall},
			NextSteps:             nextSteps,
			DifficultyLevel:       difficulty,
			EstimatedReadingTime:  readingTimeField(enhanced),
			OriginalURL:           rawURL,
			SourceTitle:           firstNonEmpty(stringField(raw, "title"), title),
			WordCount:             intField(raw, "word_count"),
		},
		MentorContext: models.MentorContext{
			ResourceSummary: overview,
			KeyTopics:       objectives,
			SampleQuestions: questions,
			KeyConcepts:     conceptNames(concepts),
			MentorGuidance:  guidance,
			ResourceTitle:   title,
			ResourceURL:     rawURL,
		},
		ProcessedAt: processedAt,
	}, nil
}

// mapKeyConcepts normalizes the key_concepts field. Entries may be bare
// strings or structured objects; bare strings are expanded into structured
// entries with templated explanation text. An absent or empty field yields
// an empty sequence, the only sequence allowed to stay empty. A present
// field that is not a list is a mapping error.
func mapKeyConcepts(enhanced map[string]any) ([]models.KeyConcept, error) {
	val, ok := enhanced["key_concepts"]
	if !ok || val == nil {
		return []models.KeyConcept{}, nil
	}

	list, ok := val.([]any)
	if !ok {
		return nil, errConceptsNotAList
	}

	concepts := make([]models.KeyConcept, 0, len(list))
	for _, entry := range list {
		switch v := entry.(type) {
		case string:
			concepts = append(concepts, models.KeyConcept{
				Concept:     v,
				Explanation: "A key concept covered by this resource: " + v,
				Example:     "See the resource for examples of " + v,
			})
		case map[string]any:
			concepts = append(concepts, models.KeyConcept{
				Concept:     stringField(v, "concept"),
				Explanation: stringField(v, "explanation"),
				Example:     stringField(v, "example"),
			})
		}
	}
	return concepts, nil
}

func conceptNames(concepts []models.KeyConcept) []string {
	names := make([]string, 0, len(concepts))
	for _, c := range concepts {
		names = append(names, c.Concept)
	}
	return names
}

func hasErrorIndicator(raw map[string]any) bool {
	switch v := raw["error"].(type) {
	case string:
		return v != ""
	case bool:
		return v
	default:
		return false
	}
}

// readingTimeField tolerates both string ("12 min") and numeric (12)
// backend values for estimated_read_time.
func readingTimeField(enhanced map[string]any) string {
	switch v := enhanced["estimated_read_time"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64) + " min"
	}
	return defaultReadingTime
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// stringListField returns the string elements of a list field. Non-string
// elements are skipped; an absent or wrong-typed field yields an empty
// slice, letting the caller apply its default.
func stringListField(m map[string]any, key string) []string {
	if m == nil {
		return []string{}
	}
	list, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func numberField(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	f, ok := m[key].(float64)
	return f, ok
}

func intField(m map[string]any, key string) int {
	f, ok := numberField(m, key)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
