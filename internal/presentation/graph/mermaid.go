package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GraphOverlay contains run data to highlight on the diagram.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromTrace highlights every state in trace and marks the last one as current.
// Designated TM states that are not DFA states are skipped by GenerateMermaid.
func OverlayFromTrace(trace []domain.Configuration) *GraphOverlay {
	if len(trace) == 0 {
		return nil
	}
	overlay := &GraphOverlay{}
	for _, c := range trace {
		overlay.VisitedStates = append(overlay.VisitedStates, c.State)
	}
	overlay.CurrentState = trace[len(trace)-1].State
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of a DFA.
// It applies semantic styling:
// - Start: ((Circle))
// - Accept: (((Double circle)))
// - Default: [Rectangle]
// Parallel edges are merged into one arrow labelled with every symbol, in alphabet order.
func GenerateMermaid(dfa *domain.DFA, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make([]string, len(dfa.States))
	for s, name := range dfa.States {
		ids[s] = fmt.Sprintf("s%d_%s", s, sanitizeMermaidID(name))
	}

	for s, name := range dfa.States {
		opener, closer := "[", "]"
		switch {
		case dfa.IsAccept(s):
			opener, closer = "(((", ")))"
		case s == dfa.Start:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[s], opener, escapeLabel(name), closer))
	}

	sb.WriteString(fmt.Sprintf("    start_marker[ ] --> %s\n", ids[dfa.Start]))
	sb.WriteString("    style start_marker fill:none,stroke:none\n")

	for s := range dfa.States {
		var targets []int
		labels := make(map[int][]string)
		for a, sym := range dfa.Alphabet {
			next := dfa.Next(s, a)
			if _, ok := labels[next]; !ok {
				targets = append(targets, next)
			}
			labels[next] = append(labels[next], escapeLabel(sym))
		}
		for _, next := range targets {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[s], strings.Join(labels[next], ", "), ids[next]))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[int]bool)
		for _, name := range overlay.VisitedStates {
			s := dfa.StateIndex(name)
			if s >= 0 && !visited[s] {
				visited[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", ids[s]))
			}
		}

		if s := dfa.StateIndex(overlay.CurrentState); s >= 0 {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", ids[s]))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
