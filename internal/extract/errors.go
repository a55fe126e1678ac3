package extract

import "fmt"

// Error describes why a document could not be read.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
