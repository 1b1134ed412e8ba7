package automata

// Version is the release of the toolkit reported by the CLI.
const Version = "0.3.0"
