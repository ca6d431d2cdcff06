package enhance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/learnflow/resource-enhancer/internal/models"
)

// Defaults for every optional backend field. Each one is named here so the
// mapper and the fallback synthesizer share a single definition.
const (
	defaultTitle       = "Unknown Resource"
	defaultOverview    = "No summary available"
	defaultReadingTime = "Unknown"

	fallbackDescription = "This resource could not be processed automatically."
)

// resourceIDSuffixLen is the number of random hex characters appended to
// resource identifiers.
const resourceIDSuffixLen = 8

// newResourceID returns a process-unique identifier. Uniqueness is
// best-effort (timestamp plus random suffix), not cryptographic.
func newResourceID(now time.Time) string {
	return fmt.Sprintf("res_%d_%s", now.UnixMilli(), uuid.NewString()[:resourceIDSuffixLen])
}

func defaultObjectives(rawURL string) []string {
	return []string{"Review the resource directly at " + rawURL + " to identify its learning objectives"}
}

func defaultApplications() []string {
	return []string{"Apply the concepts from this resource to your current project"}
}

func defaultNextSteps() []string {
	return []string{"Continue with the next resource in your learning path"}
}

// defaultSampleQuestions is the three-question template used whenever the
// backend supplies no follow-up questions.
func defaultSampleQuestions(title string) []string {
	return []string{
		fmt.Sprintf("What is %q about?", title),
		"How can I access this resource?",
		"Is there an alternative resource I could use instead?",
	}
}

func pitfallProcessingError() models.Pitfall {
	return models.Pitfall{
		Pitfall:  "This resource could not be processed automatically",
		Solution: "Visit the source URL directly to review its content",
	}
}

func pitfallNoneIdentified() models.Pitfall {
	return models.Pitfall{
		Pitfall:  "No specific pitfalls identified for this resource",
		Solution: "Follow the resource's own guidance and established best practices",
	}
}

func defaultMentorGuidance(title string) string {
	return "Help the learner work through " + title + " and relate it to their project goals."
}
