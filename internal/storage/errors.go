package storage

import "errors"

// Campaign creation failures reported back to the caller. The messages are
// part of the tool contract; clients match on them.
var (
	ErrGoalNotPositive = errors.New("goal must be > 0")
	ErrIdeaNotFound    = errors.New("idea_id not found")
)

// InvalidInputError reports an idea submission that failed validation.
// CreateIdea panics with this type; the tool layer recovers it and fails the
// whole request, mirroring how a rejected submission aborts instead of
// returning a value.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}
