// Package output allocates filenames and writes the run's artifacts to disk.
package output

import "fmt"

// Error represents a failure writing run artifacts. Output errors are fatal
// for the whole run; there is no per-file retry or skip.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("output error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
