package studygen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studyowl/studyowl/internal/llm"
)

func TestServiceGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"multiple_choice": [{"question": "q", "options": ["a","b","c","d"], "answer": "a"}]}`),
	})
	svc := NewService(mock)

	questions, err := svc.GenerateQuiz(context.Background(), "photosynthesis notes")
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected one Generate call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != quizPrompt {
		t.Error("request did not carry the quiz instruction template")
	}
	if req.Schema == nil || req.Schema.Name != "quiz" {
		t.Errorf("request schema = %+v, want quiz", req.Schema)
	}
	if len(req.Messages) != 1 || !strings.HasPrefix(req.Messages[0].Content, "Notes:\n") {
		t.Errorf("messages = %+v, want single prefixed user message", req.Messages)
	}
}

func TestServiceGeneratePracticeTest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"practice_test": [{"type": "true_false", "question": "q", "answer": true}]}`),
	})
	svc := NewService(mock)

	items, err := svc.GeneratePracticeTest(context.Background(), "some notes")
	if err != nil {
		t.Fatalf("GeneratePracticeTest: %v", err)
	}
	if len(items) != 1 || items[0].Answer.Kind != AnswerBool {
		t.Fatalf("items = %+v", items)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "practice-test" {
		t.Errorf("schema = %+v, want practice-test", mock.Calls[0].Schema)
	}
}

func TestServiceProseModes(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Gravity is like a big trampoline.`)},
		llm.MockResponse{Content: json.RawMessage(`The notes cover gravity.`)},
	)
	svc := NewService(mock)

	explanation, err := svc.Explain(context.Background(), "gravity notes")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if explanation == "" {
		t.Fatal("empty explanation")
	}

	summary, err := svc.Summarize(context.Background(), "gravity notes")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary == "" {
		t.Fatal("empty summary")
	}

	for _, req := range mock.Calls {
		if req.Schema != nil {
			t.Error("prose modes must not carry a schema")
		}
	}
}

func TestServiceEmptyNotes(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	_, err := svc.GenerateQuiz(context.Background(), "   \n\t ")
	if !errors.Is(err, ErrEmptyNotes) {
		t.Fatalf("err = %v, want ErrEmptyNotes", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("empty notes must not reach the provider")
	}
}

func TestServiceMalformedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Sure! Here is your quiz: ...`),
	})
	svc := NewService(mock)

	_, err := svc.GenerateQuiz(context.Background(), "notes")
	var merr *MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want MalformedResponseError", err)
	}
}

func TestServiceProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})
	svc := NewService(mock)

	_, err := svc.GenerateQuiz(context.Background(), "notes")
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want wrapped ErrRateLimit", err)
	}
}
