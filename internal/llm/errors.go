package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrTransport indicates the completion call itself failed: network error,
// non-2xx status, or an unusable provider reply. The user action fails as a
// whole and is not retried.
type ErrTransport struct {
	Status int // HTTP status when known, 0 otherwise
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion request failed (HTTP %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model replied, but the content does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
