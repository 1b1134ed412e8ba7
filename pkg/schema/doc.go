// Package schema checks DFA definitions for structural well-formedness and interns them.
//
// Check runs the structural checks in a fixed order and stops at the first failure:
//
//  1. all five fields (states, alphabet, transitions, start_state, accept_states) are present;
//  2. states has no duplicates;
//  3. alphabet has no duplicates;
//  4. transitions defines a target for every (state, symbol) pair, and every target is a state;
//  5. start_state is a state;
//  6. every accept state is a state (duplicates are tolerated).
//
// Validate is the boolean form and never fails. Intern turns a valid Definition into a
// domain.DFA whose states and symbols are small integers:
//
//	dfa, err := schema.Intern(def)
//	if errors.Is(err, domain.ErrInvalidAutomaton) {
//	    // Handle the malformed definition
//	}
//
// CheckDocument applies the same idea one level earlier, on loosely typed documents decoded
// from YAML or JSON, before they are turned into a Definition.
package schema
