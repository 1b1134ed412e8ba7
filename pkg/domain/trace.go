package domain

import "strings"

// Configuration is a snapshot of the machine after one step.
// Head may be -1 or len(Tape) when the last move left the visited window; the simulator extends
// the tape lazily before the next read.
type Configuration struct {
	State string   `json:"state"`
	Tape  []string `json:"tape"`
	Head  int      `json:"head"`
}

// String renders the tape with the head cell in brackets, e.g. "a [a] b".
func (c Configuration) String() string {
	cells := make([]string, len(c.Tape))
	for i, sym := range c.Tape {
		if i == c.Head {
			cells[i] = "[" + sym + "]"
		} else {
			cells[i] = sym
		}
	}
	return strings.Join(cells, " ")
}

// Halt describes why a simulation stopped.
type Halt string

const (
	HaltAccept    Halt = "accept"
	HaltReject    Halt = "reject"
	HaltStepLimit Halt = "step_limit"
)

// Result is the outcome of running a TM on one input.
// Accepted is true only for HaltAccept; hitting the step limit is not an acceptance.
type Result struct {
	Accepted       bool            `json:"accepted"`
	Halt           Halt            `json:"halt"`
	Steps          int             `json:"steps"`
	Configurations []Configuration `json:"configurations"`
}
