package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New()

	r.ObserveSimulation(domain.Result{Halt: domain.HaltAccept, Steps: 4})
	r.ObserveSimulation(domain.Result{Halt: domain.HaltAccept, Steps: 2})
	r.ObserveSimulation(domain.Result{Halt: domain.HaltStepLimit, Steps: 1000})
	r.ObserveValidation(true)
	r.ObserveValidation(false)
	r.ObserveValidation(false)
	r.ObserveEnumerated(20)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.simulations.WithLabelValues("accept")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.simulations.WithLabelValues("step_limit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.validations.WithLabelValues("invalid")))
	assert.Equal(t, 20.0, testutil.ToFloat64(r.enumerated))
	assert.Equal(t, 1, testutil.CollectAndCount(r.steps))
}

func TestRecorder_WriteFile(t *testing.T) {
	r := New()
	r.ObserveValidation(true)

	path := filepath.Join(t.TempDir(), "automata.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `automata_validations_total{result="valid"} 1`)
}
