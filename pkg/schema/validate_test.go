package schema_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/internal/testutils"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *domain.Definition)
		wantField string
	}{
		{"Valid", func(d *domain.Definition) {}, ""},
		{"Missing States", func(d *domain.Definition) { d.States = nil }, domain.KeyStates},
		{"Missing Alphabet", func(d *domain.Definition) { d.Alphabet = nil }, domain.KeyAlphabet},
		{"Missing Transitions", func(d *domain.Definition) { d.Transitions = nil }, domain.KeyTransitions},
		{"Missing Start", func(d *domain.Definition) { d.StartState = "" }, domain.KeyStartState},
		{"Missing Accept", func(d *domain.Definition) { d.AcceptStates = nil }, domain.KeyAcceptStates},
		{"Duplicate State", func(d *domain.Definition) { d.States = []string{"q0", "q1", "q0"} }, domain.KeyStates},
		{"Duplicate Symbol", func(d *domain.Definition) { d.Alphabet = []string{"a", "b", "a"} }, domain.KeyAlphabet},
		{"Missing Row", func(d *domain.Definition) { delete(d.Transitions, "q1") }, domain.KeyTransitions},
		{"Missing Entry", func(d *domain.Definition) { delete(d.Transitions["q1"], "b") }, domain.KeyTransitions},
		{"Unknown Target", func(d *domain.Definition) { d.Transitions["q1"]["a"] = "q2" }, domain.KeyTransitions},
		{"Unknown Start", func(d *domain.Definition) { d.StartState = "q2" }, domain.KeyStartState},
		{"Unknown Accept", func(d *domain.Definition) { d.AcceptStates = []string{"q0", "q9"} }, domain.KeyAcceptStates},
		{"Duplicate Accept Tolerated", func(d *domain.Definition) { d.AcceptStates = []string{"q0", "q0"} }, ""},
		{"Empty Accept Set", func(d *domain.Definition) { d.AcceptStates = []string{} }, ""},
		{"Extra Symbols Ignored", func(d *domain.Definition) { d.Transitions["q0"]["c"] = "q1" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testutils.EvenA()
			tt.mutate(&def)

			err := schema.Check(def)
			if tt.wantField == "" {
				assert.NoError(t, err)
				assert.True(t, schema.Validate(def))
				assert.Equal(t, 1, schema.ValidateInt(def))
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
			var verr *schema.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.False(t, schema.Validate(def))
			assert.Equal(t, 0, schema.ValidateInt(def))
		})
	}
}

func TestCheck_ShortCircuitsInOrder(t *testing.T) {
	def := testutils.EvenA()
	def.States = []string{"q0", "q0"}
	def.StartState = "nowhere"

	var verr *schema.ValidationError
	require.True(t, errors.As(schema.Check(def), &verr))
	assert.Equal(t, domain.KeyStates, verr.Field)
}

func TestCheck_DoesNotMutate(t *testing.T) {
	def := testutils.ThreeState()
	before := def.Clone()

	schema.Validate(def)
	_, err := schema.Intern(def)
	require.NoError(t, err)

	assert.Equal(t, before, def)
}

func TestIntern(t *testing.T) {
	dfa, err := schema.Intern(testutils.ThreeState())
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1", "q2"}, dfa.States)
	assert.Equal(t, 0, dfa.Start)
	assert.Equal(t, []bool{false, true, false}, dfa.Accept)
	assert.Equal(t, 1, dfa.Next(0, dfa.SymbolIndex("a")))
	assert.Equal(t, 2, dfa.Next(0, dfa.SymbolIndex("b")))
	assert.Equal(t, 2, dfa.Next(2, dfa.SymbolIndex("a")))
	assert.Len(t, dfa.Delta, 6)
}

func TestIntern_Invalid(t *testing.T) {
	def := testutils.EvenA()
	delete(def.Transitions["q0"], "a")

	dfa, err := schema.Intern(def)
	assert.Nil(t, dfa)
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
}
