package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationString(t *testing.T) {
	tests := []struct {
		name string
		conf Configuration
		want string
	}{
		{"Head Inside", Configuration{Tape: []string{"a", "a", "b"}, Head: 1}, "a [a] b"},
		{"Head Past End", Configuration{Tape: []string{"a", "b"}, Head: 2}, "a b"},
		{"Head Before Start", Configuration{Tape: []string{"a"}, Head: -1}, "a"},
		{"Single Blank", Configuration{Tape: []string{"_"}, Head: 0}, "[_]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.conf.String())
		})
	}
}

func TestMoveOffset(t *testing.T) {
	assert.Equal(t, -1, MoveLeft.Offset())
	assert.Equal(t, 0, MoveStay.Offset())
	assert.Equal(t, 1, MoveRight.Offset())
}

func TestDefinitionClone(t *testing.T) {
	def := Definition{
		States:       []string{"q0"},
		Alphabet:     []string{"a"},
		Transitions:  map[string]map[string]string{"q0": {"a": "q0"}},
		StartState:   "q0",
		AcceptStates: []string{},
	}
	clone := def.Clone()
	assert.Equal(t, def, clone)

	clone.States[0] = "x"
	clone.Transitions["q0"]["a"] = "x"
	assert.Equal(t, "q0", def.States[0])
	assert.Equal(t, "q0", def.Transitions["q0"]["a"])

	absent := Definition{}.Clone()
	assert.Nil(t, absent.States)
	assert.Nil(t, absent.Transitions)
	assert.Nil(t, absent.AcceptStates)
}

func TestDFA(t *testing.T) {
	// Even number of a's over {a, b}.
	dfa := &DFA{
		States:   []string{"q0", "q1"},
		Alphabet: []string{"a", "b"},
		Delta:    []int{1, 0, 0, 1},
		Start:    0,
		Accept:   []bool{true, false},
	}

	assert.True(t, dfa.Accepts([]string{"a", "b", "a"}))
	assert.False(t, dfa.Accepts([]string{"a"}))
	assert.False(t, dfa.Accepts([]string{"c"}))
	assert.Equal(t, -1, dfa.StateIndex("q9"))
	assert.True(t, dfa.HasAccept())

	def := dfa.Definition()
	assert.Equal(t, map[string]map[string]string{
		"q0": {"a": "q1", "b": "q0"},
		"q1": {"a": "q0", "b": "q1"},
	}, def.Transitions)
	assert.Equal(t, "q0", def.StartState)
	assert.Equal(t, []string{"q0"}, def.AcceptStates)
}
