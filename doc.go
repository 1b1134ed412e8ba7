/*
Package automata is a small computational-theory toolkit for deterministic finite automata.

It validates DFA definitions, enumerates every two-state DFA over an alphabet, compiles a DFA
into an equivalent decider Turing machine, simulates that machine with a full tape trace, and
decides whether a DFA's language is empty.

# Concept

A DFA is written with names (domain.Definition) and interned into integers (domain.DFA) once it
passes validation. Every other operation works on the interned form, so a malformed definition
is rejected exactly once, at the boundary, with an error matching domain.ErrInvalidAutomaton.

# Usage

	def := domain.Definition{
		States:   []string{"q0", "q1"},
		Alphabet: []string{"a", "b"},
		Transitions: map[string]map[string]string{
			"q0": {"a": "q1", "b": "q0"},
			"q1": {"a": "q0", "b": "q1"},
		},
		StartState:   "q0",
		AcceptStates: []string{"q0"},
	}

	tm, err := automata.ConvertDFAtoTM(def)
	if err != nil {
		log.Fatal(err)
	}
	res := automata.SimulateTM(tm, "aab")
	fmt.Println(res.Accepted) // true

The packages under pkg/ expose the same operations with more options: schema (validation and
interning), enumerate, compiler, simulator, analysis and loader (YAML/JSON documents).
*/
package automata
