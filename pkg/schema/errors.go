package schema

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// ValidationError describes the first structural check a definition failed.
type ValidationError struct {
	Field  string // Definition field (see domain.RequiredKeys)
	Reason string // Human-readable reason for failure
	Value  any    // The offending value, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (%v)", e.Field, e.Reason, e.Value)
}

// Unwrap lets errors.Is match domain.ErrInvalidAutomaton.
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidAutomaton
}

// AggregateError represents multiple document shape failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
