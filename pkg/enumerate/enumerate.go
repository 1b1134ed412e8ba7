// Package enumerate generates every two-state DFA over an alphabet in a fixed order.
//
// A transition table is read as a base-2 numeral with one digit per (state, symbol) pair,
// least significant digit first, states outer and symbols inner. Accept sets are bitmasks
// over the states. Tables form the outer loop and accept sets the inner one, so the first
// four DFAs share the all-q0 table and differ only in their accept set.
package enumerate

import (
	"iter"
	"math"

	"github.com/aretw0/automata/pkg/domain"
)

// NumStates is the fixed number of states of every enumerated DFA.
const NumStates = 2

// States returns the state names used by enumerated DFAs: q0, q1.
func States() []string {
	return []string{"q0", "q1"}
}

// Enumerate returns up to count DFAs over alphabet in enumeration order.
// maxStates is accepted for interface compatibility and ignored: every DFA has NumStates states.
func Enumerate(alphabet []string, maxStates, count int) []domain.Definition {
	if count <= 0 {
		return []domain.Definition{}
	}

	capacity := count
	if size := Size(alphabet); size < uint64(count) {
		capacity = int(size)
	}
	out := make([]domain.Definition, 0, capacity)
	for def := range All(alphabet) {
		out = append(out, def)
		if len(out) >= count {
			break
		}
	}
	return out
}

// Size returns the number of DFAs All yields for alphabet: 2^(2|Σ|) tables times 4 accept sets.
// It saturates at math.MaxUint64.
func Size(alphabet []string) uint64 {
	digits := NumStates * len(alphabet)
	if digits+NumStates >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << uint(digits+NumStates)
}

// All yields every DFA over alphabet. Each yielded Definition is independent of the others.
func All(alphabet []string) iter.Seq[domain.Definition] {
	return func(yield func(domain.Definition) bool) {
		states := States()
		digits := NumStates * len(alphabet)
		acceptSets := acceptStateSets(states)

		for table := range tables(digits) {
			transitions := decode(table, states, alphabet)
			for _, accept := range acceptSets {
				def := domain.Definition{
					States:       States(),
					Alphabet:     append([]string{}, alphabet...),
					Transitions:  transitions,
					StartState:   states[0],
					AcceptStates: append([]string{}, accept...),
				}
				if !yield(def.Clone()) {
					return
				}
			}
		}
	}
}

// tables yields the transition table numbers 0 .. 2^digits - 1. Tables wider than 64 digits
// are numbered by their low 64 bits only; the stream is cut long before they matter.
func tables(digits int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		last := uint64(math.MaxUint64)
		if digits < 64 {
			last = uint64(1)<<uint(digits) - 1
		}
		for i := uint64(0); ; i++ {
			if !yield(i) || i == last {
				return
			}
		}
	}
}

// decode expands table into a transition map. Digit k selects states[bit k of table].
func decode(table uint64, states, alphabet []string) map[string]map[string]string {
	transitions := make(map[string]map[string]string, len(states))
	digit := 0
	for _, s := range states {
		row := make(map[string]string, len(alphabet))
		for _, a := range alphabet {
			bit := 0
			if digit < 64 {
				bit = int(table>>uint(digit)) & 1
			}
			row[a] = states[bit]
			digit++
		}
		transitions[s] = row
	}
	return transitions
}

func acceptStateSets(states []string) [][]string {
	n := 1 << len(states)
	sets := make([][]string, 0, n)
	for mask := 0; mask < n; mask++ {
		set := []string{}
		for j, s := range states {
			if mask&(1<<j) != 0 {
				set = append(set, s)
			}
		}
		sets = append(sets, set)
	}
	return sets
}
