// Package metrics instruments a single solve run with a private
// Prometheus registry. flowcut is a one-shot CLI with no server to
// scrape it, so when requested, the registry is instead rendered as a
// Prometheus text exposition to a file after Solve returns (see
// WriteTo).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters, gauges, and histogram this CLI records for
// a single invocation.
type Metrics struct {
	registry *prometheus.Registry

	SolveDuration  prometheus.Histogram
	BFSPhasesTotal prometheus.Counter
	AugmentsTotal  prometheus.Counter
	MaxFlow        prometheus.Gauge
	CutEdges       prometheus.Gauge
}

// New constructs a fresh, privately-registered Metrics instance — never
// the global default registry, since a CLI process computes exactly one
// solve and must not accumulate state across invocations.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flowcut",
			Name:      "solve_duration_seconds",
			Help:      "Duration of the max-flow solve.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 60},
		}),
		BFSPhasesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flowcut",
			Name:      "bfs_phases_total",
			Help:      "Number of level-graph BFS phases executed.",
		}),
		AugmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flowcut",
			Name:      "augmentations_total",
			Help:      "Number of edges whose flow was updated by an augmenting push.",
		}),
		MaxFlow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flowcut",
			Name:      "max_flow",
			Help:      "The computed maximum flow value.",
		}),
		CutEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flowcut",
			Name:      "cut_edges",
			Help:      "Number of edges in the emitted minimum cut.",
		}),
	}

	registry.MustRegister(m.SolveDuration, m.BFSPhasesTotal, m.AugmentsTotal, m.MaxFlow, m.CutEdges)
	return m
}

// ObserveSolve records the wall-clock duration of a solve call.
func (m *Metrics) ObserveSolve(d time.Duration) {
	m.SolveDuration.Observe(d.Seconds())
}

// AddSolveCounts records the BFS phase and augmentation counts a solve
// took, as reported by dinic.Result.
func (m *Metrics) AddSolveCounts(bfsPhases, augmentations int64) {
	m.BFSPhasesTotal.Add(float64(bfsPhases))
	m.AugmentsTotal.Add(float64(augmentations))
}
