package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/analysis"
	"github.com/aretw0/automata/pkg/compiler"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/enumerate"
	"github.com/aretw0/automata/pkg/loader"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/automata/pkg/simulator"
	"gopkg.in/yaml.v3"
)

// TMDocument is the name-based form of a compiled TM, used for JSON and YAML output.
type TMDocument struct {
	States      []string                                 `json:"states" yaml:"states"`
	Alphabet    []string                                 `json:"alphabet" yaml:"alphabet"`
	Transitions map[string]map[string]domain.NamedAction `json:"transitions" yaml:"transitions"`
	StartState  string                                   `json:"start_state" yaml:"start_state"`
	AcceptState string                                   `json:"accept_state" yaml:"accept_state"`
	RejectState string                                   `json:"reject_state" yaml:"reject_state"`
	BlankSymbol string                                   `json:"blank_symbol" yaml:"blank_symbol"`
}

// NewTMDocument converts tm to its document form.
func NewTMDocument(tm *domain.TM) TMDocument {
	return TMDocument{
		States:      tm.States,
		Alphabet:    tm.Alphabet,
		Transitions: tm.Table(),
		StartState:  tm.States[tm.Start],
		AcceptState: tm.States[tm.Accept],
		RejectState: tm.States[tm.Reject],
		BlankSymbol: tm.Alphabet[tm.Blank],
	}
}

// ValidationReport is the structured output of Validate.
type ValidationReport struct {
	Index int    `json:"index" yaml:"index"`
	Valid int    `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// EmptinessReport is the structured output of Empty.
type EmptinessReport struct {
	Index   int      `json:"index" yaml:"index"`
	Empty   bool     `json:"empty" yaml:"empty"`
	Witness []string `json:"witness,omitempty" yaml:"witness,omitempty"`
}

// SimulationReport is the structured output of Simulate.
type SimulationReport struct {
	Index         int    `json:"index" yaml:"index"`
	Input         string `json:"input" yaml:"input"`
	domain.Result `yaml:",inline"`
}

func (a *App) encode(v any) error {
	switch a.output {
	case OutputJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Enumerate prints up to count two-state DFAs over alphabet.
func (a *App) Enumerate(alphabet []string, maxStates, count int) error {
	defs := enumerate.Enumerate(alphabet, maxStates, count)
	a.metrics.ObserveEnumerated(len(defs))
	a.logger.Info("enumerated DFAs",
		"alphabet", strings.Join(alphabet, ","),
		"count", len(defs),
		"space", enumerate.Size(alphabet),
	)

	switch a.output {
	case OutputJSON:
		return loader.Encode(a.out, defs, loader.FormatJSON)
	case OutputYAML:
		return loader.Encode(a.out, defs, loader.FormatYAML)
	}

	var sb strings.Builder
	for i, def := range defs {
		dfa, err := schema.Intern(def)
		if err != nil {
			return err
		}
		sb.WriteString(tui.DFAMarkdown(fmt.Sprintf("DFA #%d", i+1), dfa))
		sb.WriteString("\n")
	}
	return a.markdown(sb.String())
}

// Validate checks every definition in path and prints 1 or 0 for each.
// It returns ErrInvalidFound when any definition fails.
func (a *App) Validate(path string) error {
	defs, err := loader.LoadFile(path)
	if err != nil {
		// Shape errors make the whole document invalid rather than unreadable.
		if errors.Is(err, domain.ErrInvalidAutomaton) {
			a.metrics.ObserveValidation(false)
			return a.printValidation([]ValidationReport{{Index: 0, Valid: 0, Error: err.Error()}})
		}
		return err
	}

	reports := make([]ValidationReport, 0, len(defs))
	for i, def := range defs {
		report := ValidationReport{Index: i, Valid: schema.ValidateInt(def)}
		if err := schema.Check(def); err != nil {
			report.Error = err.Error()
			a.logger.Warn("invalid definition", "path", path, "index", i, "error", err)
		}
		a.metrics.ObserveValidation(report.Valid == 1)
		reports = append(reports, report)
	}
	return a.printValidation(reports)
}

func (a *App) printValidation(reports []ValidationReport) error {
	if a.output == OutputText {
		for _, r := range reports {
			line := fmt.Sprintf("#%d Validation Result: %d", r.Index, r.Valid)
			if r.Error != "" {
				line += " (" + r.Error + ")"
			}
			fmt.Fprintln(a.out, line)
		}
	} else if err := a.encode(reports); err != nil {
		return err
	}

	for _, r := range reports {
		if r.Valid == 0 {
			return ErrInvalidFound
		}
	}
	return nil
}

// Compile prints the decider TM of every definition in path.
func (a *App) Compile(path string) error {
	defs, err := a.load(path)
	if err != nil {
		return err
	}

	docs := make([]TMDocument, 0, len(defs))
	var sb strings.Builder
	for i, def := range defs {
		tm, err := compiler.Compile(def)
		if err != nil {
			return fmt.Errorf("definition %d: %w", i, err)
		}
		docs = append(docs, NewTMDocument(tm))
		sb.WriteString(tui.TMMarkdown(fmt.Sprintf("Decider #%d", i), tm))
		sb.WriteString("\n")
	}

	if a.output != OutputText {
		return a.encode(docs)
	}
	return a.markdown(sb.String())
}

// SimulateOptions configures Simulate.
type SimulateOptions struct {
	Inputs   []string
	MaxSteps int
	Trace    bool
}

// Simulate compiles every definition in path and runs the TM on each input.
func (a *App) Simulate(path string, opts SimulateOptions) error {
	defs, err := a.load(path)
	if err != nil {
		return err
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = simulator.DefaultMaxSteps
	}

	var reports []SimulationReport
	for i, def := range defs {
		tm, err := compiler.Compile(def)
		if err != nil {
			return fmt.Errorf("definition %d: %w", i, err)
		}

		for _, input := range opts.Inputs {
			res := simulator.Run(tm, input,
				simulator.WithMaxSteps(opts.MaxSteps),
				simulator.WithLogger(a.logger),
			)
			a.metrics.ObserveSimulation(res)
			a.logger.Info("simulated", "index", i, "input", input, "halt", res.Halt, "steps", res.Steps)

			if a.output != OutputText {
				if !opts.Trace {
					res.Configurations = nil
				}
				reports = append(reports, SimulationReport{Index: i, Input: input, Result: res})
				continue
			}

			if opts.Trace {
				if err := a.markdown(tui.TraceMarkdown(input, res)); err != nil {
					return err
				}
			}
			fmt.Fprintf(a.out, "#%d %q: %s\n", i, input, a.verdict(res))
		}
	}

	if a.output != OutputText {
		return a.encode(reports)
	}
	return nil
}

// Empty decides emptiness for every definition in path and prints a witness when there is one.
func (a *App) Empty(path string) error {
	defs, err := a.load(path)
	if err != nil {
		return err
	}

	reports := make([]EmptinessReport, 0, len(defs))
	for i, def := range defs {
		empty, err := analysis.IsEmpty(def)
		if err != nil {
			return fmt.Errorf("definition %d: %w", i, err)
		}
		report := EmptinessReport{Index: i, Empty: empty}
		if !empty {
			dfa, err := schema.Intern(def)
			if err != nil {
				return err
			}
			report.Witness, _ = analysis.Witness(dfa)
		}
		reports = append(reports, report)
	}

	if a.output != OutputText {
		return a.encode(reports)
	}
	for _, r := range reports {
		line := fmt.Sprintf("#%d Recognizes Empty Language: %t", r.Index, r.Empty)
		if !r.Empty {
			line += fmt.Sprintf(" (shortest word: %q)", strings.Join(r.Witness, ""))
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Graph prints a Mermaid diagram of the definition at index in path.
// When input is set, the states visited while simulating it are highlighted.
func (a *App) Graph(path string, index int, input *string) error {
	defs, err := a.load(path)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(defs) {
		return fmt.Errorf("definition %d out of range (file has %d)", index, len(defs))
	}

	dfa, err := schema.Intern(defs[index])
	if err != nil {
		return fmt.Errorf("definition %d: %w", index, err)
	}

	var overlay *graph.GraphOverlay
	if input != nil {
		res := simulator.Run(compiler.FromDFA(dfa), *input)
		a.metrics.ObserveSimulation(res)
		overlay = graph.OverlayFromTrace(res.Configurations)
	}

	_, err = fmt.Fprint(a.out, graph.GenerateMermaid(dfa, overlay))
	return err
}
