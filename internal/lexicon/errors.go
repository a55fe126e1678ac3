package lexicon

import "fmt"

// LoadError is returned when a lexicon document cannot be read or does not
// satisfy the lexicon schema.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
