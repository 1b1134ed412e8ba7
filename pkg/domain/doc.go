/*
Package domain contains the core models shared by every automata package.

It defines the two machines of the toolkit and the values produced when running them.
This package is kept pure: no I/O, no logging, no validation logic. Validation and
interning live in package schema, which is the only way to obtain a DFA from a Definition.

# Key Entities

  - Definition: the name-based boundary form of a DFA, as written by humans or decoded from YAML/JSON.
  - DFA: the interned form, where states and symbols are small integers and the transition
    function is a flat table indexed by (state, symbol).
  - TM: a decider Turing machine with designated accept, reject and blank indices.
  - Configuration: one snapshot of (state, tape, head) recorded by the simulator.
  - Result: the verdict of a simulation together with its full trace.
*/
package domain
