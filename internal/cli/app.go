package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/metrics"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/loader"
)

// Output selects how commands print their results.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// ParseOutput validates an --output flag value.
func ParseOutput(s string) (Output, error) {
	switch Output(s) {
	case OutputText, OutputJSON, OutputYAML:
		return Output(s), nil
	default:
		return "", fmt.Errorf("unknown output %q (want text, json or yaml)", s)
	}
}

// Options contains the configuration shared by every command.
type Options struct {
	Out     io.Writer
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Output  Output
	// Plain disables markdown rendering and colors, e.g. when Out is not a terminal.
	Plain bool
}

// App executes CLI commands against the toolkit packages.
type App struct {
	out     io.Writer
	logger  *slog.Logger
	metrics *metrics.Recorder
	output  Output
	plain   bool
	render  func(string) (string, error)
}

// New creates an App, filling unset options with quiet defaults.
func New(opts Options) *App {
	app := &App{
		out:     opts.Out,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		output:  opts.Output,
		plain:   opts.Plain,
	}
	if app.out == nil {
		app.out = io.Discard
	}
	if app.logger == nil {
		app.logger = logging.NewNop()
	}
	if app.metrics == nil {
		app.metrics = metrics.New()
	}
	if app.output == "" {
		app.output = OutputText
	}
	app.render = tui.NewRenderer(app.plain)
	return app
}

// ErrInvalidFound is returned by Validate when at least one definition is malformed.
var ErrInvalidFound = errors.New("invalid definitions found")

func (a *App) load(path string) ([]domain.Definition, error) {
	defs, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded definitions", "path", path, "count", len(defs))
	return defs, nil
}

func (a *App) markdown(md string) error {
	out, err := a.render(md)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	_, err = fmt.Fprint(a.out, out)
	return err
}

func (a *App) verdict(res domain.Result) string {
	if a.plain {
		switch res.Halt {
		case domain.HaltAccept:
			return "ACCEPTED"
		case domain.HaltStepLimit:
			return "STEP LIMIT REACHED"
		default:
			return "REJECTED"
		}
	}
	return tui.Verdict(res.Accepted, res.Halt == domain.HaltStepLimit)
}

func (a *App) header(title string) {
	if a.plain {
		fmt.Fprintf(a.out, "%s\n%s\n", title, "--------------------------------------------------------------------------------")
		return
	}
	tui.PrintHeader(a.out, title)
}
