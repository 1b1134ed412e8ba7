package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/testutils"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	dfa := testutils.MustIntern(t, testutils.ThreeState())
	out := graph.GenerateMermaid(dfa, nil)

	expected := []string{
		"graph LR",
		`s0_q0(("q0"))`,
		`s1_q1((("q1")))`,
		`s2_q2["q2"]`,
		"start_marker[ ] --> s0_q0",
		`s0_q0 -- "a" --> s1_q1`,
		`s0_q0 -- "b" --> s2_q2`,
		`s2_q2 -- "a, b" --> s2_q2`,
	}
	for _, want := range expected {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Overlay")
}

func TestGenerateMermaid_Sanitizes(t *testing.T) {
	def := testutils.EvenA()
	def.States = []string{"even-a", "odd/a"}
	def.Transitions = map[string]map[string]string{
		"even-a": {"a": "odd/a", "b": "even-a"},
		"odd/a":  {"a": "even-a", "b": "odd/a"},
	}
	def.StartState = "even-a"
	def.AcceptStates = []string{"even-a"}

	out := graph.GenerateMermaid(testutils.MustIntern(t, def), nil)
	assert.Contains(t, out, `s0_even_a((("even-a")))`)
	assert.Contains(t, out, `s1_odd_a["odd/a"]`)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	dfa := testutils.MustIntern(t, testutils.EvenA())
	trace := []domain.Configuration{
		{State: "q0"}, {State: "q1"}, {State: "q0"}, {State: "q_accept"},
	}

	overlay := graph.OverlayFromTrace(trace)
	assert.Equal(t, "q_accept", overlay.CurrentState)

	out := graph.GenerateMermaid(dfa, overlay)
	assert.Equal(t, 1, strings.Count(out, "class s0_q0 visited;"))
	assert.Contains(t, out, "class s1_q1 visited;")
	assert.NotContains(t, out, "current;")

	out = graph.GenerateMermaid(dfa, &graph.GraphOverlay{CurrentState: "q1"})
	assert.Contains(t, out, "class s1_q1 current;")

	assert.Nil(t, graph.OverlayFromTrace(nil))
}
