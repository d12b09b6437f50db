package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveOptimization(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := New(reg)
	require.NoError(t, err)

	r.ObserveOptimization("single", 12, []string{"warn-a", "warn-b"})
	r.ObserveOptimization("batch", 3, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.optimizations.WithLabelValues("single")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.optimizations.WithLabelValues("batch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.recommendations.WithLabelValues("warn-a")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.rosterSize))
}

func TestRecorder_ObserveAllocation(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := New(reg)
	require.NoError(t, err)

	r.ObserveAllocation(3, 2)
	r.ObserveAllocation(1, 0)

	assert.Equal(t, 4.0, testutil.ToFloat64(r.allocations.WithLabelValues("selected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.allocations.WithLabelValues("waitlisted")))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.ObserveAllocation(1, 0)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.allocations.WithLabelValues("selected")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveOptimization("single", 1, []string{"x"})
		r.ObserveAllocation(1, 1)
	})
}
