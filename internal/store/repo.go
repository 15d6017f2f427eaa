package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = default of 50)
	Purpose string // filter by purpose label ("" = all)
}

// LLMEventData captures the data for a single completion call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored completion call event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// UsageStat aggregates token usage per purpose label.
type UsageStat struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries completion call events.
type EventRepo interface {
	// AppendLLMEvent records one completion call.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)
}

// Attempt is one graded quiz or practice-test submission.
type Attempt struct {
	ID        int
	Timestamp time.Time
	SessionID string
	Kind      string // "quiz" or "practice-test"
	Correct   int
	Total     int
}

// AttemptRepo records and queries graded submissions.
type AttemptRepo interface {
	// AppendAttempt records one graded submission.
	AppendAttempt(ctx context.Context, a Attempt) error

	// RecentAttempts returns up to limit attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]Attempt, error)
}
