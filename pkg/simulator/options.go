package simulator

import (
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// DefaultMaxSteps bounds a simulation when no WithMaxSteps option is given.
const DefaultMaxSteps = 1000

// Option configures a simulation run.
type Option func(*config)

type config struct {
	maxSteps int
	logger   *slog.Logger
	observer func(domain.Configuration)
}

// WithMaxSteps overrides the step bound. Non-positive values disable stepping entirely,
// leaving only the initial configuration.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
	}
}

// WithLogger logs every executed step at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithObserver registers a callback invoked with every recorded configuration,
// including the initial one.
func WithObserver(fn func(domain.Configuration)) Option {
	return func(c *config) {
		c.observer = fn
	}
}
