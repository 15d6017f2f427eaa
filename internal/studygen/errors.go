package studygen

import "fmt"

// MalformedResponseError indicates the model's reply could not be parsed as
// the expected structured shape, or a required field was absent. The
// generation action fails as a whole; no partial question set is produced.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed model response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
