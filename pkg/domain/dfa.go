package domain

// DFA is the interned form of a validated Definition.
//
// States and symbols are identified by their index in States and Alphabet; the names are kept
// for display only. Delta is total: Delta[s*len(Alphabet)+a] is the successor of state s on
// symbol a. Values are only built by schema.Intern and must not be modified afterwards.
type DFA struct {
	States   []string
	Alphabet []string
	Delta    []int
	Start    int
	Accept   []bool
}

// Next returns the successor of state on symbol.
func (d *DFA) Next(state, symbol int) int {
	return d.Delta[state*len(d.Alphabet)+symbol]
}

// IsAccept reports whether state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.Accept[state]
}

// HasAccept reports whether at least one state accepts.
func (d *DFA) HasAccept() bool {
	for _, ok := range d.Accept {
		if ok {
			return true
		}
	}
	return false
}

// StateIndex returns the index of the named state, or -1.
func (d *DFA) StateIndex(name string) int {
	return indexOf(d.States, name)
}

// SymbolIndex returns the index of the named symbol, or -1.
func (d *DFA) SymbolIndex(name string) int {
	return indexOf(d.Alphabet, name)
}

// Accepts runs the transition function over symbols from the start state.
// A symbol outside the alphabet rejects the word.
func (d *DFA) Accepts(symbols []string) bool {
	state := d.Start
	for _, sym := range symbols {
		a := d.SymbolIndex(sym)
		if a < 0 {
			return false
		}
		state = d.Next(state, a)
	}
	return d.IsAccept(state)
}

// Definition converts the DFA back to its name-based form.
func (d *DFA) Definition() Definition {
	def := Definition{
		States:       cloneStrings(d.States),
		Alphabet:     cloneStrings(d.Alphabet),
		Transitions:  make(map[string]map[string]string, len(d.States)),
		StartState:   d.States[d.Start],
		AcceptStates: []string{},
	}
	for s, name := range d.States {
		row := make(map[string]string, len(d.Alphabet))
		for a, sym := range d.Alphabet {
			row[sym] = d.States[d.Next(s, a)]
		}
		def.Transitions[name] = row
		if d.Accept[s] {
			def.AcceptStates = append(def.AcceptStates, name)
		}
	}
	return def
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
