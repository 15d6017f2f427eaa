package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// PurposeUnknown labels requests whose context carries no study-mode tag.
const PurposeUnknown = "unknown"

// WithPurpose tags ctx with the study mode behind a request ("quiz",
// "feynman", "practice-test", "summary"). The logging decorator copies the
// tag onto every recorded event so usage can be broken down per mode.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reports the study-mode tag on ctx, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
