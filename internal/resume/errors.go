package resume

import "fmt"

// InputError is returned when a resume document cannot be read.
type InputError struct {
	Path    string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// RulesError reports section rules that do not compile.
type RulesError struct {
	Field   string
	Message string
	Cause   error
}

func (e *RulesError) Error() string {
	msg := fmt.Sprintf("invalid section rule %s", e.Field)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *RulesError) Unwrap() error {
	return e.Cause
}
