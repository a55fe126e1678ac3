package types

import "fmt"

// InvariantError reports a value that could not be constructed because one of
// its field invariants does not hold.
type InvariantError struct {
	Type    string
	Field   string
	Message string
	Cause   error
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("invalid %s", e.Type)
	if e.Field != "" {
		msg += fmt.Sprintf(" field %s", e.Field)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}
