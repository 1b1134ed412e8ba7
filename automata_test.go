package automata_test

import (
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Scenarios(t *testing.T) {
	assert.True(t, automata.ValidateDFA(evenA()))

	tm, err := automata.ConvertDFAtoTM(evenA())
	require.NoError(t, err)

	assert.True(t, automata.SimulateTM(tm, "aab").Accepted)
	assert.True(t, automata.SimulateTM(tm, "aa").Accepted)
	assert.False(t, automata.SimulateTM(tm, "a").Accepted)

	missing := evenA()
	delete(missing.Transitions["q1"], "a")
	assert.False(t, automata.ValidateDFA(missing))

	_, err = automata.ConvertDFAtoTM(missing)
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)

	noAccept := evenA()
	noAccept.AcceptStates = []string{}
	empty, err := automata.RecognizesEmptyLanguage(noAccept)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestFacade_Enumerate(t *testing.T) {
	dfas := automata.EnumerateDFAs([]string{"a", "b"}, 5, 70)
	assert.Len(t, dfas, 64)
	for _, d := range dfas {
		assert.Equal(t, []string{"q0", "q1"}, d.States)
		assert.True(t, automata.ValidateDFA(d))
	}
}
