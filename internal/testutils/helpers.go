package testutils

import (
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/require"
)

// EvenA accepts words over {a, b} with an even number of a's.
func EvenA() domain.Definition {
	return domain.Definition{
		States:   []string{"q0", "q1"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string]string{
			"q0": {"a": "q1", "b": "q0"},
			"q1": {"a": "q0", "b": "q1"},
		},
		StartState:   "q0",
		AcceptStates: []string{"q0"},
	}
}

// ThreeState has a sink q2 and accepts exactly the words reaching q1.
func ThreeState() domain.Definition {
	return domain.Definition{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string]string{
			"q0": {"a": "q1", "b": "q2"},
			"q1": {"a": "q0", "b": "q2"},
			"q2": {"a": "q2", "b": "q2"},
		},
		StartState:   "q0",
		AcceptStates: []string{"q1"},
	}
}

// UnreachableAccept has its only accept state on an isolated self-loop.
func UnreachableAccept() domain.Definition {
	return domain.Definition{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string]string{
			"q0": {"a": "q0", "b": "q0"},
			"q1": {"a": "q1", "b": "q1"},
			"q2": {"a": "q2", "b": "q2"},
		},
		StartState:   "q0",
		AcceptStates: []string{"q2"},
	}
}

// MustIntern interns def and fails the test immediately on error.
func MustIntern(t *testing.T, def domain.Definition) *domain.DFA {
	t.Helper()

	dfa, err := schema.Intern(def)
	require.NoError(t, err, "Failed to intern definition")
	return dfa
}
