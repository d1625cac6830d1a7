// Package validation checks showcase entries for shape, content, and
// sensitive-looking strings before any artifact is written.
package validation

import "fmt"

// Error represents a validation failure on a showcase entry.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
