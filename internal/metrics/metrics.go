// Package metrics records optimizer activity in Prometheus collectors.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the load organizer's Prometheus collectors.
type Recorder struct {
	optimizations   *prometheus.CounterVec
	rosterSize      prometheus.Histogram
	recommendations *prometheus.CounterVec
	allocations     *prometheus.CounterVec
}

// New registers the collectors on reg. If reg is nil, the default registerer is used.
// Collectors that are already registered are reused.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	optimizations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "load_optimizations_total",
		Help: "Total number of exit-order computations",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	rosterSize, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "load_roster_size",
		Help:    "Number of jumpers per optimized roster",
		Buckets: prometheus.LinearBuckets(0, 5, 11),
	}))
	if err != nil {
		return nil, err
	}
	recommendations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "load_recommendations_total",
		Help: "Safety and operational recommendations issued",
	}, []string{"message"}))
	if err != nil {
		return nil, err
	}
	allocations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "capacity_allocations_total",
		Help: "Capacity allocation decisions by outcome",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		optimizations:   optimizations,
		rosterSize:      rosterSize,
		recommendations: recommendations,
		allocations:     allocations,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveOptimization records one exit-order computation.
// kind distinguishes single requests from batch members.
func (r *Recorder) ObserveOptimization(kind string, rosterSize int, recommendations []string) {
	if r == nil {
		return
	}
	r.optimizations.WithLabelValues(kind).Inc()
	r.rosterSize.Observe(float64(rosterSize))
	for _, msg := range recommendations {
		r.recommendations.WithLabelValues(msg).Inc()
	}
}

// ObserveAllocation records how many candidates were admitted and waitlisted.
func (r *Recorder) ObserveAllocation(selected, waiting int) {
	if r == nil {
		return
	}
	r.allocations.WithLabelValues("selected").Add(float64(selected))
	r.allocations.WithLabelValues("waitlisted").Add(float64(waiting))
}
