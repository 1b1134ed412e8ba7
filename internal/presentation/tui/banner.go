package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Verdict returns ACCEPTED or REJECTED, colored for the terminal profile.
// A step-limit halt is reported separately since it is not a rejection by the machine.
func Verdict(accepted, stepLimit bool) string {
	p := termenv.ColorProfile()
	switch {
	case accepted:
		return termenv.String("ACCEPTED").Foreground(p.Color("#22c55e")).Bold().String()
	case stepLimit:
		return termenv.String("STEP LIMIT REACHED").Foreground(p.Color("#f59e0b")).Bold().String()
	default:
		return termenv.String("REJECTED").Foreground(p.Color("#ef4444")).Bold().String()
	}
}

// PrintHeader writes a section header framed by rules of '='.
func PrintHeader(w io.Writer, title string) {
	p := termenv.ColorProfile()
	rule := termenv.String("================================================================================").Foreground(p.Color("#818cf8"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, termenv.String(title).Foreground(p.Color("#c084fc")).Bold())
	fmt.Fprintln(w, rule)
}
