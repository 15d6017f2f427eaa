package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/studyowl/studyowl/internal/store"
)

// loggedProvider decorates a Provider so that every completion call lands
// in the event store, successes and failures alike.
type loggedProvider struct {
	next Provider
	repo store.EventRepo
}

// WithLogging wraps p so each Generate call is recorded through repo.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggedProvider{next: p, repo: repo}
}

func (p *loggedProvider) ModelID() string { return p.next.ModelID() }

func (p *loggedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	began := time.Now()
	resp, err := p.next.Generate(ctx, req)

	ev := store.LLMEventData{
		Provider:    p.next.ModelID(),
		Model:       p.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(began).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// A broken event log must not take the completion down with it.
	if logErr := p.repo.AppendLLMEvent(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: recording llm event: %v\n", logErr)
	}

	return resp, err
}

// renderRequest flattens a request into the readable transcript stored with
// the event: system block, then each message, then the schema if any.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
