package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/studyowl/studyowl/internal/store"
)

type fakeEventRepo struct {
	events []store.LLMEventData
}

func (f *fakeEventRepo) AppendLLMEvent(_ context.Context, data store.LLMEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) UsageByPurpose(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"practice_test":[]}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 20},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "summary")
	_, err := p.Generate(ctx, Request{
		System:   "instruction",
		Messages: []Message{{Role: RoleUser, Content: "Notes:\nabc"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success {
		t.Error("event should record success")
	}
	if e.Purpose != "summary" {
		t.Errorf("purpose = %q, want summary", e.Purpose)
	}
	if e.InputTokens != 100 || e.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 100/20", e.InputTokens, e.OutputTokens)
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("request and response bodies should be captured")
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from inner provider")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("event should record failure")
	}
	if e.ErrorMessage == "" {
		t.Error("error message should be captured")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown for unlabeled context", e.Purpose)
	}
}
