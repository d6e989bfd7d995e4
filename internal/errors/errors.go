// Package errors defines the error type shared across services and
// handlers: a validation rejection carrying the full list of violation
// messages. Everything else is a per-package sentinel.
package errors

import "strings"

// ValidationError is a structured rejection of a write: every violated rule
// contributes one human-readable message, in rule order. It is never fatal;
// handlers map it to a client error.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidation builds a ValidationError from one or more messages.
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
