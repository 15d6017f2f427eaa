package studygen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studyowl/studyowl/internal/llm"
)

// Service turns study notes into study material through a single LLM
// provider. Each method performs exactly one Generate call.
type Service struct {
	provider llm.Provider
}

// NewService wires a Service to a provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// ErrEmptyNotes is returned when a generation method is called with blank
// notes. The UI disables generation for empty input, so hitting this means
// a caller skipped that check.
var ErrEmptyNotes = errors.New("notes are empty")

func (s *Service) generate(ctx context.Context, purpose, system, notes string, schema *llm.Schema) (string, error) {
	if strings.TrimSpace(notes) == "" {
		return "", ErrEmptyNotes
	}
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Notes:\n" + notes},
		},
		Schema:      schema,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("%s generation: %w", purpose, err)
	}
	return string(resp.Content), nil
}

// GenerateQuiz produces a multiple-choice quiz from the notes.
func (s *Service) GenerateQuiz(ctx context.Context, notes string) ([]MCQuestion, error) {
	content, err := s.generate(ctx, "quiz", quizPrompt, notes, QuizSchema)
	if err != nil {
		return nil, err
	}
	return ParseQuiz(content)
}

// GeneratePracticeTest produces a mixed practice test from the notes.
func (s *Service) GeneratePracticeTest(ctx context.Context, notes string) ([]PracticeItem, error) {
	content, err := s.generate(ctx, "practice-test", practiceTestPrompt, notes, PracticeTestSchema)
	if err != nil {
		return nil, err
	}
	return ParsePracticeTest(content)
}

// Explain produces a Feynman-style plain-language explanation of the notes.
func (s *Service) Explain(ctx context.Context, notes string) (string, error) {
	return s.generate(ctx, "feynman", feynmanPrompt, notes, nil)
}

// Summarize produces a short prose summary of the notes.
func (s *Service) Summarize(ctx context.Context, notes string) (string, error) {
	return s.generate(ctx, "summary", summaryPrompt, notes, nil)
}
