package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted step for a MockProvider: either a canned
// response body or a canned error.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays a fixed script of responses in order and records
// every request it receives. Safe for concurrent use.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	next   int

	// Calls holds every request passed to Generate, in order.
	Calls []Request
}

// NewMockProvider builds a provider that will serve the given script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

// Generate serves the next scripted step. Once the script runs out it
// fails with ErrTransport.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.script) {
		return nil, &ErrTransport{Err: errors.New("mock script exhausted")}
	}
	step := m.script[m.next]
	m.next++

	if step.Err != nil {
		return nil, step.Err
	}
	return &Response{
		Content:    step.Content,
		Usage:      step.Usage,
		Model:      m.ModelID(),
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many times Generate has been invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
