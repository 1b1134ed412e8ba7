package domain

// Move is the head movement of a TM transition.
type Move string

const (
	MoveLeft  Move = "L"
	MoveStay  Move = "S"
	MoveRight Move = "R"
)

// Offset returns the head displacement for m: -1, 0 or +1.
func (m Move) Offset() int {
	switch m {
	case MoveLeft:
		return -1
	case MoveRight:
		return 1
	default:
		return 0
	}
}

// Action is the right-hand side of a TM transition.
type Action struct {
	Next  int  `json:"next_state"`
	Write int  `json:"write_symbol"`
	Move  Move `json:"move"`
}

// TM is a decider Turing machine over interned states and symbols.
//
// Delta[s][a] is the action taken in state s reading symbol a, or nil when none is defined.
// The Accept and Reject states are terminal and have no row.
type TM struct {
	States   []string
	Alphabet []string
	Delta    [][]*Action
	Start    int
	Accept   int
	Reject   int
	Blank    int
}

// Rule returns the action for (state, symbol).
// Out-of-range indices and terminal states report false.
func (m *TM) Rule(state, symbol int) (Action, bool) {
	if state < 0 || state >= len(m.Delta) {
		return Action{}, false
	}
	row := m.Delta[state]
	if symbol < 0 || symbol >= len(row) || row[symbol] == nil {
		return Action{}, false
	}
	return *row[symbol], true
}

// IsTerminal reports whether state is the accept or the reject state.
func (m *TM) IsTerminal(state int) bool {
	return state == m.Accept || state == m.Reject
}

// NamedAction is the display form of an Action.
type NamedAction struct {
	Next  string `json:"next_state" yaml:"next_state"`
	Write string `json:"write_symbol" yaml:"write_symbol"`
	Move  Move   `json:"move" yaml:"move"`
}

// Table returns the transition function keyed by state and symbol names.
func (m *TM) Table() map[string]map[string]NamedAction {
	table := make(map[string]map[string]NamedAction, len(m.Delta))
	for s, row := range m.Delta {
		if row == nil {
			continue
		}
		named := make(map[string]NamedAction, len(row))
		for a, act := range row {
			if act == nil {
				continue
			}
			named[m.Alphabet[a]] = NamedAction{
				Next:  m.States[act.Next],
				Write: m.Alphabet[act.Write],
				Move:  act.Move,
			}
		}
		table[m.States[s]] = named
	}
	return table
}
