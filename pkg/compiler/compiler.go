// Package compiler builds decider Turing machines from DFAs.
//
// The machine replays the DFA one tape cell at a time: on every input symbol it rewrites the
// symbol unchanged, moves right and follows the DFA transition. The blank after the input
// decides: states that accept in the DFA move to the accept state, all others to reject.
// Every transition moves right, so the machine halts after exactly len(input)+1 steps.
package compiler

import (
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
)

type config struct {
	acceptName string
	rejectName string
	blank      string
}

// Option configures the names the compiler gives to the designated TM states and symbol.
type Option func(*config)

// WithBlank sets the preferred blank symbol (default "_").
func WithBlank(symbol string) Option {
	return func(c *config) {
		c.blank = symbol
	}
}

// WithHaltNames sets the preferred names of the accept and reject states.
func WithHaltNames(accept, reject string) Option {
	return func(c *config) {
		c.acceptName = accept
		c.rejectName = reject
	}
}

// Compile validates def and returns the equivalent decider TM.
// The error wraps domain.ErrInvalidAutomaton when def is malformed.
func Compile(def domain.Definition, opts ...Option) (*domain.TM, error) {
	dfa, err := schema.Intern(def)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return FromDFA(dfa, opts...), nil
}

// FromDFA builds the decider TM for an already interned DFA.
//
// TM state indices 0..n-1 are the DFA states, n is accept and n+1 is reject. Symbol indices
// 0..k-1 are the DFA alphabet and k is blank. Names that collide with DFA names are made fresh
// by appending a prime.
func FromDFA(dfa *domain.DFA, opts ...Option) *domain.TM {
	cfg := config{
		acceptName: domain.DefaultAcceptName,
		rejectName: domain.DefaultRejectName,
		blank:      domain.DefaultBlank,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	n, k := len(dfa.States), len(dfa.Alphabet)

	states := make([]string, 0, n+2)
	states = append(states, dfa.States...)
	acceptName := fresh(cfg.acceptName, states)
	states = append(states, acceptName)
	states = append(states, fresh(cfg.rejectName, states))

	alphabet := make([]string, 0, k+1)
	alphabet = append(alphabet, dfa.Alphabet...)
	alphabet = append(alphabet, fresh(cfg.blank, alphabet))

	tm := &domain.TM{
		States:   states,
		Alphabet: alphabet,
		Delta:    make([][]*domain.Action, n+2),
		Start:    dfa.Start,
		Accept:   n,
		Reject:   n + 1,
		Blank:    k,
	}

	for s := 0; s < n; s++ {
		row := make([]*domain.Action, k+1)
		for a := 0; a < k; a++ {
			row[a] = &domain.Action{Next: dfa.Next(s, a), Write: a, Move: domain.MoveRight}
		}
		halt := tm.Reject
		if dfa.IsAccept(s) {
			halt = tm.Accept
		}
		row[k] = &domain.Action{Next: halt, Write: tm.Blank, Move: domain.MoveRight}
		tm.Delta[s] = row
	}

	return tm
}

func fresh(name string, taken []string) string {
	for slices.Contains(taken, name) {
		name += "'"
	}
	return name
}
