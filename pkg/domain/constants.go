package domain

// Field names used by Definition documents (JSON, YAML and mapstructure tags).
const (
	KeyStates       = "states"
	KeyAlphabet     = "alphabet"
	KeyTransitions  = "transitions"
	KeyStartState   = "start_state"
	KeyAcceptStates = "accept_states"
)

// RequiredKeys lists the Definition fields in the order validation checks them.
var RequiredKeys = []string{KeyStates, KeyAlphabet, KeyTransitions, KeyStartState, KeyAcceptStates}

// Default names for the designated TM states and the blank symbol.
const (
	DefaultAcceptName = "q_accept"
	DefaultRejectName = "q_reject"
	DefaultBlank      = "_"
)
