package domain

import "errors"

// ErrInvalidAutomaton is returned when an operation requires a well-formed DFA and receives one
// that fails validation.
var ErrInvalidAutomaton = errors.New("invalid automaton")
