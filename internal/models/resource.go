// Package models defines the canonical enhanced-resource records returned
// by the enhancement pipeline and consumed by the learning-plan frontend.
package models

import "strings"

// Difficulty is the three-value difficulty rating attached to a resource.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ParseDifficulty constrains an arbitrary backend assessment to the
// difficulty enum. The second return reports whether the input was one of
// the known values.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, true
	case "intermediate":
		return DifficultyIntermediate, true
	case "advanced":
		return DifficultyAdvanced, true
	default:
		return DifficultyBeginner, false
	}
}

// ResourceStatus records the provenance of an enhanced resource.
type ResourceStatus string

const (
	// StatusEnhanced marks a record mapped from real backend data.
	StatusEnhanced ResourceStatus = "enhanced"
	// StatusFallback marks a record synthesized because backend data was
	// unavailable or invalid.
	StatusFallback ResourceStatus = "fallback"
)

// OriginalData describes the source document as scraped by the backend.
type OriginalData struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Sections    []string `json:"sections"`
	WordCount   int      `json:"wordCount"`
	ScrapedAt   string   `json:"scrapedAt"`
}

// KeyConcept is one concept extracted from a resource.
type KeyConcept struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Pitfall is one common mistake plus its remedy.
type Pitfall struct {
	Pitfall  string `json:"pitfall"`
	Solution string `json:"solution"`
}

// EnhancedContent is the AI-generated pedagogical framing of a resource.
// Every field is always populated; consumers may dereference any field
// unconditionally.
type EnhancedContent struct {
	Title                 string       `json:"title"`
	Overview              string       `json:"overview"`
	LearningObjectives    []string     `json:"learningObjectives"`
	KeyConcepts           []KeyConcept `json:"keyConcepts"`
	PracticalApplications []string     `json:"practicalApplications"`
	CommonPitfalls        []Pitfall    `json:"commonPitfalls"`
	NextSteps             []string     `json:"nextSteps"`
	DifficultyLevel       Difficulty   `json:"difficultyLevel"`
	EstimatedReadingTime  string       `json:"estimatedReadingTime"`
	OriginalURL           string       `json:"originalUrl"`
	SourceTitle           string       `json:"sourceTitle"`
	WordCount             int          `json:"wordCount"`
}

// MentorContext seeds the AI mentor chat with a resource's summary and
// suggested questions.
type MentorContext struct {
	ResourceSummary string   `json:"resourceSummary"`
	KeyTopics       []string `json:"keyTopics"`
	SampleQuestions []string `json:"sampleQuestions"`
	KeyConcepts     []string `json:"keyConcepts"`
	MentorGuidance  string   `json:"mentorGuidance"`
	ResourceTitle   string   `json:"resourceTitle"`
	ResourceURL     string   `json:"resourceUrl"`
}

// EnhancedResource is the canonical per-URL output record. Records are
// immutable once built; retries produce new records.
type EnhancedResource struct {
	ID            string          `json:"id"`
	Status        ResourceStatus  `json:"status"`
	OriginalData  OriginalData    `json:"originalData"`
	Enhanced      EnhancedContent `json:"enhancedResource"`
	MentorContext MentorContext   `json:"mentorContext"`
	ProcessedAt   int64           `json:"processedAt"` // milliseconds since epoch
}

// ProcessResult is the pipeline's result envelope. It always carries exactly
// one EnhancedResource per requested URL, in request order.
type ProcessResult struct {
	Success           bool               `json:"success"`
	EnhancedResources []EnhancedResource `json:"enhancedResources"`
	Count             int                `json:"count"`
}
