package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction over chat-completion backends.
// Every study mode performs exactly one Generate call per user action.
type Provider interface {
	// Generate sends one two-message exchange (system instruction, user
	// notes) and returns the assistant's reply. When the request carries a
	// Schema, providers that support structured output constrain generation
	// to it and the returned Content is the validated JSON document.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single completion exchange.
type Request struct {
	// System is the fixed instruction template for the study mode.
	System string

	// Messages is the conversation. StudyOwl always sends exactly one user
	// message containing the notes text.
	Messages []Message

	// Schema, when set, is the JSON Schema the reply must conform to.
	// Nil for the free-prose modes (Feynman, summary).
	Schema *Schema

	// MaxTokens caps the reply length. 0 lets the provider decide.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero value means deterministic.
	Temperature float64
}

// Message is one entry of the exchange.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON document expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz" or "practice-test".
	Name string

	// Description tells the model what the document represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's reply.
type Response struct {
	// Content is the reply body. With a Schema it is the validated JSON
	// document; without one it is the raw prose.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
