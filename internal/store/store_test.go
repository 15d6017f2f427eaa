package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMEventData{
		Provider:     "openrouter",
		Model:        "deepseek/deepseek-chat-v3.1:free",
		Purpose:      "quiz",
		InputTokens:  321,
		OutputTokens: 87,
		LatencyMs:    1500,
		Success:      true,
		RequestBody:  "[system]\ninstruction",
		ResponseBody: `{"multiple_choice":[]}`,
	}
	if err := repo.AppendLLMEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Purpose != "quiz" || e.InputTokens != 321 || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}

	full, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if full == nil || full.ResponseBody != data.ResponseBody {
		t.Errorf("full event = %+v", full)
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)

	e, err := s.EventRepo().GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing event, got %+v", e)
	}
}

func TestQueryLLMEventsPurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz", "summary", "quiz"} {
		if err := repo.AppendLLMEvent(ctx, LLMEventData{Purpose: purpose, Success: true}); err != nil {
			t.Fatal(err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 quiz events, got %d", len(events))
	}
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMEventData{
		{Purpose: "quiz", InputTokens: 100, OutputTokens: 10, Success: true},
		{Purpose: "quiz", InputTokens: 200, OutputTokens: 20, Success: true},
		{Purpose: "feynman", InputTokens: 50, OutputTokens: 5, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMEvent(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(stats))
	}

	byPurpose := map[string]UsageStat{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	quiz := byPurpose["quiz"]
	if quiz.Requests != 2 || quiz.InputTokens != 300 || quiz.OutputTokens != 30 {
		t.Errorf("quiz stat = %+v", quiz)
	}
}

func TestAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attempts := []Attempt{
		{SessionID: "s1", Kind: "quiz", Correct: 3, Total: 5},
		{SessionID: "s1", Kind: "practice-test", Correct: 4, Total: 4},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(got))
	}
	// Newest first.
	if got[0].Kind != "practice-test" || got[1].Kind != "quiz" {
		t.Errorf("order = %s, %s", got[0].Kind, got[1].Kind)
	}
	if got[1].Correct != 3 || got[1].Total != 5 {
		t.Errorf("attempt = %+v", got[1])
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}
