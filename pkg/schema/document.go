package schema

import (
	"github.com/aretw0/automata/pkg/domain"
)

// Schema maps document keys to their expected types.
type Schema map[string]Type

// DefinitionSchema is the expected shape of a DFA document before decoding.
var DefinitionSchema = Schema{
	domain.KeyStates:       Slice(Scalar()),
	domain.KeyAlphabet:     Slice(Scalar()),
	domain.KeyTransitions:  Map(Map(Scalar())),
	domain.KeyStartState:   Scalar(),
	domain.KeyAcceptStates: Slice(Scalar()),
}

// CheckDocument validates the shape of a loosely typed DFA document against DefinitionSchema.
// Keys are visited in domain.RequiredKeys order and every failure is reported.
func CheckDocument(doc map[string]any) error {
	var errs []error
	for _, key := range domain.RequiredKeys {
		value, exists := doc[key]
		if !exists || value == nil {
			errs = append(errs, &ValidationError{Field: key, Reason: "required"})
			continue
		}
		if err := DefinitionSchema[key].Validate(value); err != nil {
			errs = append(errs, &ValidationError{Field: key, Reason: err.Error()})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
