package automata

import (
	"github.com/aretw0/automata/pkg/analysis"
	"github.com/aretw0/automata/pkg/compiler"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/enumerate"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/automata/pkg/simulator"
)

// ValidateDFA reports whether def is a well-formed DFA. It never fails.
func ValidateDFA(def domain.Definition) bool {
	return schema.Validate(def)
}

// EnumerateDFAs returns up to count two-state DFAs over alphabet in enumeration order.
// maxStates is accepted for compatibility and does not change the number of states.
func EnumerateDFAs(alphabet []string, maxStates, count int) []domain.Definition {
	return enumerate.Enumerate(alphabet, maxStates, count)
}

// ConvertDFAtoTM compiles def into a decider TM.
// The error wraps domain.ErrInvalidAutomaton when def is malformed.
func ConvertDFAtoTM(def domain.Definition) (*domain.TM, error) {
	return compiler.Compile(def)
}

// SimulateTM runs tm on input with the default step bound.
func SimulateTM(tm *domain.TM, input string) domain.Result {
	return simulator.Run(tm, input)
}

// RecognizesEmptyLanguage reports whether def accepts no word.
// The error wraps domain.ErrInvalidAutomaton when def is malformed.
func RecognizesEmptyLanguage(def domain.Definition) (bool, error) {
	return analysis.IsEmpty(def)
}
