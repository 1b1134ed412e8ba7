package schema

import (
	"github.com/aretw0/automata/pkg/domain"
)

// Check runs the structural checks on def in order and returns the first failure as a
// *ValidationError, or nil when def is well formed. It never modifies def.
func Check(def domain.Definition) error {
	if err := checkPresent(def); err != nil {
		return err
	}

	states := make(map[string]struct{}, len(def.States))
	for _, s := range def.States {
		if _, dup := states[s]; dup {
			return &ValidationError{Field: domain.KeyStates, Reason: "duplicate state", Value: s}
		}
		states[s] = struct{}{}
	}

	symbols := make(map[string]struct{}, len(def.Alphabet))
	for _, a := range def.Alphabet {
		if _, dup := symbols[a]; dup {
			return &ValidationError{Field: domain.KeyAlphabet, Reason: "duplicate symbol", Value: a}
		}
		symbols[a] = struct{}{}
	}

	for _, s := range def.States {
		row, ok := def.Transitions[s]
		if !ok || row == nil {
			return &ValidationError{Field: domain.KeyTransitions, Reason: "no transitions for state", Value: s}
		}
		for _, a := range def.Alphabet {
			target, ok := row[a]
			if !ok {
				return &ValidationError{Field: domain.KeyTransitions, Reason: "missing transition", Value: s + "/" + a}
			}
			if _, known := states[target]; !known {
				return &ValidationError{Field: domain.KeyTransitions, Reason: "target is not a state", Value: target}
			}
		}
	}

	if _, ok := states[def.StartState]; !ok {
		return &ValidationError{Field: domain.KeyStartState, Reason: "not a state", Value: def.StartState}
	}

	for _, s := range def.AcceptStates {
		if _, ok := states[s]; !ok {
			return &ValidationError{Field: domain.KeyAcceptStates, Reason: "not a state", Value: s}
		}
	}

	return nil
}

// Validate reports whether def passes every structural check.
func Validate(def domain.Definition) bool {
	return Check(def) == nil
}

// ValidateInt is the 0/1 form of Validate.
func ValidateInt(def domain.Definition) int {
	if Validate(def) {
		return 1
	}
	return 0
}

func checkPresent(def domain.Definition) error {
	missing := ""
	switch {
	case def.States == nil:
		missing = domain.KeyStates
	case def.Alphabet == nil:
		missing = domain.KeyAlphabet
	case def.Transitions == nil:
		missing = domain.KeyTransitions
	case def.StartState == "":
		missing = domain.KeyStartState
	case def.AcceptStates == nil:
		missing = domain.KeyAcceptStates
	}
	if missing != "" {
		return &ValidationError{Field: missing, Reason: "required"}
	}
	return nil
}
