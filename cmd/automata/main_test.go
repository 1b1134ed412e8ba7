package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--plain"))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "automata version")
}

func TestSimulateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "even.yaml")
	doc := `
states: [q0, q1]
alphabet: [a, b]
transitions:
  q0: {a: q1, b: q0}
  q1: {a: q0, b: q1}
start_state: q0
accept_states: [q0]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "simulate", path, "aab", "a")
	require.NoError(t, err)
	assert.Contains(t, out, `#0 "aab": ACCEPTED`)
	assert.Contains(t, out, `#0 "a": REJECTED`)
}

func TestEnumerateCommand_BadOutput(t *testing.T) {
	_, err := execute(t, "enumerate", "--output", "xml")
	assert.Error(t, err)
}
