package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// DFAMarkdown describes a DFA as a markdown transition table.
// Start states are marked with an arrow and accept states with an asterisk.
func DFAMarkdown(title string, dfa *domain.DFA) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)

	sb.WriteString("| state |")
	for _, sym := range dfa.Alphabet {
		fmt.Fprintf(&sb, " %s |", escapeCell(sym))
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(dfa.Alphabet)))
	sb.WriteString("\n")

	for s, name := range dfa.States {
		marker := ""
		if s == dfa.Start {
			marker += "→ "
		}
		if dfa.IsAccept(s) {
			marker += "* "
		}
		fmt.Fprintf(&sb, "| %s%s |", marker, escapeCell(name))
		for a := range dfa.Alphabet {
			fmt.Fprintf(&sb, " %s |", escapeCell(dfa.States[dfa.Next(s, a)]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// TMMarkdown describes a TM as a markdown table of (state, symbol) → (next, write, move).
func TMMarkdown(title string, tm *domain.TM) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	fmt.Fprintf(&sb, "start `%s`, accept `%s`, reject `%s`, blank `%s`\n\n",
		tm.States[tm.Start], tm.States[tm.Accept], tm.States[tm.Reject], tm.Alphabet[tm.Blank])

	sb.WriteString("| state | read | next | write | move |\n|---|---|---|---|---|\n")
	for s, row := range tm.Delta {
		for a, act := range row {
			if act == nil {
				continue
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
				escapeCell(tm.States[s]), escapeCell(tm.Alphabet[a]),
				escapeCell(tm.States[act.Next]), escapeCell(tm.Alphabet[act.Write]), act.Move)
		}
	}
	return sb.String()
}

// TraceMarkdown lists every configuration of a run, one per line.
func TraceMarkdown(input string, res domain.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Trace for %q\n\n", input)
	sb.WriteString("```\n")
	for i, c := range res.Configurations {
		fmt.Fprintf(&sb, "Step %d: State=%s, Tape: %s\n", i, c.State, c)
	}
	sb.WriteString("```\n")
	return sb.String()
}

func escapeCell(s string) string {
	if s == "" {
		return "` `"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
