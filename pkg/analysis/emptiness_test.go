package analysis_test

import (
	"testing"

	"github.com/aretw0/automata/internal/testutils"
	"github.com/aretw0/automata/pkg/analysis"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/enumerate"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	reachable := domain.Definition{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string]string{
			"q0": {"a": "q1", "b": "q0"},
			"q1": {"a": "q1", "b": "q1"},
			"q2": {"a": "q2", "b": "q2"},
		},
		StartState:   "q0",
		AcceptStates: []string{"q1"},
	}

	noAccept := testutils.EvenA()
	noAccept.AcceptStates = []string{}

	tests := []struct {
		name  string
		def   domain.Definition
		empty bool
	}{
		{"Reachable Accept State", reachable, false},
		{"Unreachable Accept State", testutils.UnreachableAccept(), true},
		{"No Accept States", noAccept, true},
		{"Start Is Accept", testutils.EvenA(), false},
		{"Accept Behind Sink", testutils.ThreeState(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.def.Clone()

			first, err := analysis.IsEmpty(tt.def)
			require.NoError(t, err)
			second, err := analysis.IsEmpty(tt.def)
			require.NoError(t, err)

			assert.Equal(t, tt.empty, first)
			assert.Equal(t, first, second)
			assert.Equal(t, before, tt.def)
		})
	}
}

func TestIsEmpty_Invalid(t *testing.T) {
	def := testutils.EvenA()
	def.AcceptStates = []string{"ghost"}

	_, err := analysis.IsEmpty(def)
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
}

func TestReachable(t *testing.T) {
	dfa := testutils.MustIntern(t, testutils.ThreeState())
	assert.Equal(t, []int{0, 1, 2}, analysis.Reachable(dfa))

	dfa = testutils.MustIntern(t, testutils.UnreachableAccept())
	assert.Equal(t, []int{0}, analysis.Reachable(dfa))
}

func TestWitness(t *testing.T) {
	word, ok := analysis.Witness(testutils.MustIntern(t, testutils.EvenA()))
	require.True(t, ok)
	assert.Equal(t, []string{}, word)

	word, ok = analysis.Witness(testutils.MustIntern(t, testutils.ThreeState()))
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, word)

	_, ok = analysis.Witness(testutils.MustIntern(t, testutils.UnreachableAccept()))
	assert.False(t, ok)
}

func TestWitness_Shortest(t *testing.T) {
	// q0 -b-> q1 -b-> q2 (accept); a loops back to q0.
	def := domain.Definition{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string]string{
			"q0": {"a": "q0", "b": "q1"},
			"q1": {"a": "q0", "b": "q2"},
			"q2": {"a": "q2", "b": "q2"},
		},
		StartState:   "q0",
		AcceptStates: []string{"q2"},
	}
	dfa := testutils.MustIntern(t, def)

	word, ok := analysis.Witness(dfa)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "b"}, word)
	assert.True(t, dfa.Accepts(word))
}

func TestEmpty_AgreesWithWitness(t *testing.T) {
	alphabet := []string{"a", "b"}
	dfas := enumerate.Enumerate(alphabet, 2, int(enumerate.Size(alphabet)))

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("empty iff no witness, and witnesses are accepted", prop.ForAll(
		func(index int) bool {
			dfa, err := schema.Intern(dfas[index])
			if err != nil {
				return false
			}
			word, ok := analysis.Witness(dfa)
			if ok && !dfa.Accepts(word) {
				return false
			}
			return analysis.Empty(dfa) == !ok
		},
		gen.IntRange(0, len(dfas)-1),
	))

	properties.TestingRun(t)
}
