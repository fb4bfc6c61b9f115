package domain

import "strings"

// ValidationError carries the full list of field errors so callers can render
// every problem at once instead of the first one found.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func NewValidationError(errors ...string) *ValidationError {
	return &ValidationError{Errors: errors}
}
