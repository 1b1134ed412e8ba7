// Package metrics counts toolkit operations with Prometheus collectors.
//
// The CLI runs once and exits, so nothing is served over HTTP: the registry is flushed to a
// node-exporter textfile when requested.
package metrics

import (
	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry and the collectors registered on it.
type Recorder struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	steps       prometheus.Histogram
	validations *prometheus.CounterVec
	enumerated  prometheus.Counter
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_simulations_total",
				Help: "Total number of TM simulations by halt reason",
			},
			[]string{"outcome"},
		),
		steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automata_simulation_steps",
				Help:    "Steps executed per TM simulation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 11),
			},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_validations_total",
				Help: "Total number of DFA validations by result",
			},
			[]string{"result"},
		),
		enumerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "automata_enumerated_total",
				Help: "Total number of DFAs produced by the enumerator",
			},
		),
	}
	r.registry.MustRegister(r.simulations, r.steps, r.validations, r.enumerated)
	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveSimulation records the halt reason and step count of one run.
func (r *Recorder) ObserveSimulation(res domain.Result) {
	r.simulations.WithLabelValues(string(res.Halt)).Inc()
	r.steps.Observe(float64(res.Steps))
}

// ObserveValidation records one validation result.
func (r *Recorder) ObserveValidation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	r.validations.WithLabelValues(result).Inc()
}

// ObserveEnumerated adds n enumerated DFAs.
func (r *Recorder) ObserveEnumerated(n int) {
	r.enumerated.Add(float64(n))
}

// WriteFile writes every collected metric to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
