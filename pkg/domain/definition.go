package domain

// Definition is the name-based description of a DFA.
// A nil slice or map (or an empty StartState) means the field is absent; an empty accept set must
// be a non-nil empty slice to count as present.
type Definition struct {
	States       []string                     `json:"states" yaml:"states" mapstructure:"states"`
	Alphabet     []string                     `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	Transitions  map[string]map[string]string `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
	StartState   string                       `json:"start_state" yaml:"start_state" mapstructure:"start_state"`
	AcceptStates []string                     `json:"accept_states" yaml:"accept_states" mapstructure:"accept_states"`
}

// Clone returns a deep copy that shares no slices or maps with d.
// Absent fields stay absent.
func (d Definition) Clone() Definition {
	out := Definition{
		States:       cloneStrings(d.States),
		Alphabet:     cloneStrings(d.Alphabet),
		StartState:   d.StartState,
		AcceptStates: cloneStrings(d.AcceptStates),
	}
	if d.Transitions != nil {
		out.Transitions = make(map[string]map[string]string, len(d.Transitions))
		for state, row := range d.Transitions {
			if row == nil {
				out.Transitions[state] = nil
				continue
			}
			copied := make(map[string]string, len(row))
			for symbol, target := range row {
				copied[symbol] = target
			}
			out.Transitions[state] = copied
		}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
