package studygen

import (
	"encoding/json"
	"strings"
)

// stripFences removes a leading/trailing markdown code fence if present.
// Models occasionally wrap JSON output in ```json fences despite being
// told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseQuiz interprets a model reply as a quiz document. The document must
// be a JSON object with a "multiple_choice" array; anything else is a
// MalformedResponseError. Individual questions are not validated beyond
// their JSON shape: missing options or a mismatched answer pass through and
// surface at grading time, not here.
func ParseQuiz(content string) ([]MCQuestion, error) {
	var doc struct {
		MultipleChoice *[]MCQuestion `json:"multiple_choice"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &doc); err != nil {
		return nil, &MalformedResponseError{Reason: "quiz is not valid JSON", Err: err}
	}
	if doc.MultipleChoice == nil {
		return nil, &MalformedResponseError{Reason: `quiz document has no "multiple_choice" field`}
	}
	return *doc.MultipleChoice, nil
}

// ParsePracticeTest interprets a model reply as a practice-test document:
// a JSON object with a "practice_test" array of typed items. Items keep
// whatever type tag they arrived with; unknown tags are preserved and
// simply never graded.
func ParsePracticeTest(content string) ([]PracticeItem, error) {
	var doc struct {
		PracticeTest *[]PracticeItem `json:"practice_test"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &doc); err != nil {
		return nil, &MalformedResponseError{Reason: "practice test is not valid JSON", Err: err}
	}
	if doc.PracticeTest == nil {
		return nil, &MalformedResponseError{Reason: `practice test document has no "practice_test" field`}
	}
	return *doc.PracticeTest, nil
}
