// Package simulator runs decider Turing machines and records every configuration they pass through.
package simulator

import (
	"log/slog"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// Run executes tm on input, one tape cell per character.
func Run(tm *domain.TM, input string, opts ...Option) domain.Result {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return RunSymbols(tm, symbols, opts...)
}

// RunSymbols executes tm on a tape holding symbols.
//
// Symbols outside the TM alphabet are written as fresh tape symbols with no transitions, so
// reading one rejects. The loop stops on the accept or reject state, or when the step bound
// is reached; in the latter case Halt is HaltStepLimit and Accepted is false.
func RunSymbols(tm *domain.TM, symbols []string, opts ...Option) domain.Result {
	cfg := config{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	names := slices.Clone(tm.Alphabet)
	input := make([]int, len(symbols))
	for i, sym := range symbols {
		idx := slices.Index(names, sym)
		if idx < 0 {
			idx = len(names)
			names = append(names, sym)
		}
		input[i] = idx
	}

	tp := newTape(input, tm.Blank)
	head := 0
	state := tm.Start
	steps := 0

	var trace []domain.Configuration
	record := func() {
		c := domain.Configuration{
			State: tm.States[state],
			Tape:  tp.snapshot(names),
			Head:  head + tp.offset(),
		}
		trace = append(trace, c)
		if cfg.observer != nil {
			cfg.observer(c)
		}
	}
	record()

	for !tm.IsTerminal(state) && steps < cfg.maxSteps {
		tp.extend(head)
		read := tp.read(head)

		act, ok := tm.Rule(state, read)
		if !ok {
			if cfg.logger != nil {
				cfg.logger.Debug("no transition, rejecting",
					"state", tm.States[state],
					"symbol", names[read],
				)
			}
			state = tm.Reject
			break
		}

		tp.write(head, act.Write)
		state = act.Next
		head += act.Move.Offset()
		steps++
		record()

		if cfg.logger != nil {
			cfg.logger.Debug("step",
				slog.Int("step", steps),
				slog.String("read", names[read]),
				slog.String("state", tm.States[state]),
				slog.String("move", string(act.Move)),
			)
		}
	}

	halt := domain.HaltStepLimit
	switch state {
	case tm.Accept:
		halt = domain.HaltAccept
	case tm.Reject:
		halt = domain.HaltReject
	}

	return domain.Result{
		Accepted:       halt == domain.HaltAccept,
		Halt:           halt,
		Steps:          steps,
		Configurations: trace,
	}
}
