package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`first`)},
		MockResponse{Content: json.RawMessage(`second`)},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != "first" {
		t.Fatalf("expected first response, got %q", resp.Content)
	}

	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != "second" {
		t.Fatalf("expected second response, got %q", resp.Content)
	}

	if _, err := mock.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error on exhausted queue")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", mock.CallCount())
	}
}

func TestMockProviderCannedError(t *testing.T) {
	wantErr := &ErrRateLimit{}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected canned ErrRateLimit, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "practice-test")
	if got := PurposeFrom(ctx); got != "practice-test" {
		t.Fatalf("purpose = %q, want practice-test", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Fatalf("purpose = %q, want unknown for unlabeled context", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("default config without API key must not validate")
	}

	cfg.OpenRouter.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider must not validate")
	}
}

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want mock", p.ModelID())
	}
}
