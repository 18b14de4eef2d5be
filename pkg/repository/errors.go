package repository

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned by Delete when no task matches the id.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports a rejected field in a create request. It is
// the caller's fault and retrying the same input will not succeed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
