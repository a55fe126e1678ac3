package nlp

import (
	"errors"
	"fmt"
)

// ErrEmptyVocabulary is returned when the documents being compared contain
// no terms after stop word removal.
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// ComputationError reports a similarity computation that could not produce
// a score.
type ComputationError struct {
	Message string
	Cause   error
}

func (e *ComputationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("similarity: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("similarity: %s", e.Message)
}

func (e *ComputationError) Unwrap() error {
	return e.Cause
}
