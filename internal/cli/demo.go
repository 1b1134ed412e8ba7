package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/analysis"
	"github.com/aretw0/automata/pkg/compiler"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/enumerate"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/automata/pkg/simulator"
)

// Sample is a named definition used by the demo.
type Sample struct {
	Title string
	Def   domain.Definition
}

func table(rows ...string) map[string]map[string]string {
	// Each row is "state a->x b->y".
	t := make(map[string]map[string]string, len(rows))
	for _, row := range rows {
		fields := strings.Fields(row)
		entries := make(map[string]string, len(fields)-1)
		for _, f := range fields[1:] {
			sym, target, _ := strings.Cut(f, "->")
			entries[sym] = target
		}
		t[fields[0]] = entries
	}
	return t
}

func ab(states []string, start string, accept []string, rows ...string) domain.Definition {
	return domain.Definition{
		States:       states,
		Alphabet:     []string{"a", "b"},
		Transitions:  table(rows...),
		StartState:   start,
		AcceptStates: accept,
	}
}

// ValidationSamples returns one valid definition and the three classic invalid ones.
func ValidationSamples() []Sample {
	q012 := []string{"q0", "q1", "q2"}
	q01 := []string{"q0", "q1"}
	return []Sample{
		{"Valid DFA", ab(q012, "q0", []string{"q1"}, "q0 a->q1 b->q2", "q1 a->q0 b->q2", "q2 a->q2 b->q2")},
		{"Missing transitions", ab(q01, "q0", []string{"q1"}, "q0 a->q1 b->q0")},
		{"Invalid transition target", ab(q01, "q0", []string{"q1"}, "q0 a->q1 b->q0", "q1 a->q2 b->q0")},
		{"Invalid start state", ab(q01, "q2", []string{"q1"}, "q0 a->q1 b->q0", "q1 a->q0 b->q1")},
	}
}

// EvenASample accepts strings with an even number of a's.
func EvenASample() Sample {
	return Sample{"Even number of a's", ab([]string{"q0", "q1"}, "q0", []string{"q0"}, "q0 a->q1 b->q0", "q1 a->q0 b->q1")}
}

// EmptinessSamples covers a reachable, an unreachable, a missing and a starting accept state.
func EmptinessSamples() []Sample {
	q012 := []string{"q0", "q1", "q2"}
	q01 := []string{"q0", "q1"}
	return []Sample{
		{"Reachable accept state", ab(q012, "q0", []string{"q1"}, "q0 a->q1 b->q0", "q1 a->q1 b->q1", "q2 a->q2 b->q2")},
		{"Unreachable accept state", ab(q012, "q0", []string{"q2"}, "q0 a->q0 b->q0", "q1 a->q1 b->q1", "q2 a->q2 b->q2")},
		{"No accept states", ab(q01, "q0", []string{}, "q0 a->q1 b->q0", "q1 a->q0 b->q1")},
		{"Start state is accept state", ab(q01, "q0", []string{"q0"}, "q0 a->q1 b->q0", "q1 a->q1 b->q1")},
	}
}

// Demo runs the four toolkit programs on built-in samples.
func (a *App) Demo(count int, inputs []string) error {
	a.header("PROGRAM 1: ENUMERATE DFAs")
	defs := enumerate.Enumerate([]string{"a", "b"}, 2, count)
	a.metrics.ObserveEnumerated(len(defs))
	var sb strings.Builder
	for i, def := range defs {
		dfa, err := schema.Intern(def)
		if err != nil {
			return err
		}
		sb.WriteString(tui.DFAMarkdown(fmt.Sprintf("DFA #%d", i+1), dfa))
		sb.WriteString("\n")
	}
	if err := a.markdown(sb.String()); err != nil {
		return err
	}

	a.header("PROGRAM 2: VALIDATE DFA")
	for _, s := range ValidationSamples() {
		valid := schema.ValidateInt(s.Def)
		a.metrics.ObserveValidation(valid == 1)
		fmt.Fprintf(a.out, "%s: Validation Result: %d\n", s.Title, valid)
	}

	a.header("PROGRAM 3: CONVERT DFA TO TM DECIDER AND SIMULATE")
	sample := EvenASample()
	tm, err := compiler.Compile(sample.Def)
	if err != nil {
		return err
	}
	if err := a.markdown(tui.TMMarkdown("Decider for: "+sample.Title, tm)); err != nil {
		return err
	}
	for _, input := range inputs {
		res := simulator.Run(tm, input, simulator.WithLogger(a.logger))
		a.metrics.ObserveSimulation(res)
		if err := a.markdown(tui.TraceMarkdown(input, res)); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Result: %s\n", a.verdict(res))
	}

	a.header("PROGRAM 4: DETERMINE IF DFA RECOGNIZES EMPTY LANGUAGE")
	for _, s := range EmptinessSamples() {
		empty, err := analysis.IsEmpty(s.Def)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Title, err)
		}
		fmt.Fprintf(a.out, "%s: Recognizes Empty Language: %t\n", s.Title, empty)
	}
	return nil
}
