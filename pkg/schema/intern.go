package schema

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Intern validates def and converts it into a DFA over integer indices.
// The returned error wraps domain.ErrInvalidAutomaton when def is malformed.
func Intern(def domain.Definition) (*domain.DFA, error) {
	if err := Check(def); err != nil {
		return nil, fmt.Errorf("intern: %w", err)
	}

	stateIdx := make(map[string]int, len(def.States))
	for i, s := range def.States {
		stateIdx[s] = i
	}

	dfa := &domain.DFA{
		States:   append([]string(nil), def.States...),
		Alphabet: append([]string(nil), def.Alphabet...),
		Delta:    make([]int, len(def.States)*len(def.Alphabet)),
		Start:    stateIdx[def.StartState],
		Accept:   make([]bool, len(def.States)),
	}

	// Check guarantees every lookup below succeeds.
	width := len(def.Alphabet)
	for s, name := range def.States {
		row := def.Transitions[name]
		for a, sym := range def.Alphabet {
			dfa.Delta[s*width+a] = stateIdx[row[sym]]
		}
	}
	for _, s := range def.AcceptStates {
		dfa.Accept[stateIdx[s]] = true
	}

	return dfa, nil
}
