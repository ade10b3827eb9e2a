// Package metrics exposes sweep telemetry as Prometheus metrics on a private
// registry. A Registry satisfies tolerance.Recorder.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "netresil"

// Registry holds all metrics of one netresil process.
type Registry struct {
	SweepsTotal   *prometheus.CounterVec
	LevelsTotal   *prometheus.CounterVec
	LevelDuration *prometheus.HistogramVec
	RunsTotal     prometheus.Counter
	RunDuration   prometheus.Histogram
	GraphNodes    *prometheus.GaugeVec
	GraphEdges    *prometheus.GaugeVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.initSweepMetrics()
	r.initGraphMetrics()
	reg.MustRegister(collectors.NewGoCollector())

	return r
}

func (r *Registry) initSweepMetrics() {
	r.SweepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Completed removal sweeps",
		},
		[]string{"kind"},
	)

	r.LevelsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_total",
			Help:      "Removal levels evaluated",
		},
		[]string{"kind"},
	)

	r.LevelDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "level_duration_seconds",
			Help:      "Time spent removing vertices and evaluating one level",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"kind"},
	)

	r.RunsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sir_runs_total",
			Help:      "Completed SIR simulations",
		},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sir_run_duration_seconds",
			Help:      "Duration of one SIR simulation",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Vertices of the analysed network",
		},
		[]string{"network"},
	)

	r.GraphEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges of the analysed network",
		},
		[]string{"network"},
	)
}

// LevelEvaluated records one removal level.
func (r *Registry) LevelEvaluated(kind string, elapsed time.Duration) {
	r.LevelsTotal.WithLabelValues(kind).Inc()
	r.LevelDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// RunCompleted records one SIR simulation.
func (r *Registry) RunCompleted(elapsed time.Duration) {
	r.RunsTotal.Inc()
	r.RunDuration.Observe(elapsed.Seconds())
}

// SweepCompleted records one finished sweep.
func (r *Registry) SweepCompleted(kind string, _ int) {
	r.SweepsTotal.WithLabelValues(kind).Inc()
}

// SetGraph records the size of a network.
func (r *Registry) SetGraph(network string, nodes, edges int) {
	r.GraphNodes.WithLabelValues(network).Set(float64(nodes))
	r.GraphEdges.WithLabelValues(network).Set(float64(edges))
}

// WriteTextfile writes every metric to path in the Prometheus text format,
// ready for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
