// SPDX-License-Identifier: MIT

// Package metrics exposes build and query counters as Prometheus collectors.
//
// Collectors are registered on a caller-supplied registry; nothing touches the
// global default registry. The CLI writes the registry to a text file on exit
// (WriteFile), the format node_exporter's textfile collector reads.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/bacon/bfs"
	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/core"
)

const namespace = "bacon"

// Metrics groups every collector. It implements bfs.Observer.
type Metrics struct {
	reg prometheus.Gatherer

	recordsTotal   *prometheus.CounterVec
	graphSize      *prometheus.GaugeVec
	buildDuration  *prometheus.HistogramVec
	queriesTotal   *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	queryVisited   prometheus.Histogram
	cacheHitsTotal prometheus.Counter
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,

		// Labels: status (credit, duplicate, malformed)
		recordsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "records_total",
			Help:      "Input records by ingest status",
		}, []string{"status"}),

		// Labels: kind (actors, movies, edges, isolated)
		graphSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "size",
			Help:      "Size of the built co-appearance graph",
		}, []string{"kind"}),

		// Labels: phase (ingest, edges)
		buildDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "duration_seconds",
			Help:      "Time spent building the graph, per phase",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"phase"}),

		// Labels: strategy, outcome (found, not_found, limit, error)
		queriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "total",
			Help:      "Path queries by strategy and outcome",
		}, []string{"strategy", "outcome"}),

		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "duration_seconds",
			Help:      "Path query latency in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"strategy"}),

		queryVisited: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "visited_actors",
			Help:      "Actors expanded per uncached query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),

		cacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "cache_hits_total",
			Help:      "Queries answered from the result cache",
		}),
	}
}

// ObserveIngest records one Ingest call.
func (m *Metrics) ObserveIngest(st builder.IngestStats) {
	m.recordsTotal.WithLabelValues("credit").Add(float64(st.Credits))
	m.recordsTotal.WithLabelValues("duplicate").Add(float64(st.Duplicates))
	m.recordsTotal.WithLabelValues("malformed").Add(float64(st.Malformed))
	m.buildDuration.WithLabelValues("ingest").Observe(st.Elapsed.Seconds())
}

// ObserveGraph records the size of a built graph and the edge phase duration.
func (m *Metrics) ObserveGraph(s core.GraphStats, edgesSeconds float64) {
	m.graphSize.WithLabelValues("actors").Set(float64(s.Actors))
	m.graphSize.WithLabelValues("movies").Set(float64(s.Movies))
	m.graphSize.WithLabelValues("edges").Set(float64(s.Edges))
	m.graphSize.WithLabelValues("isolated").Set(float64(s.Isolated))
	m.buildDuration.WithLabelValues("edges").Observe(edgesSeconds)
}

// ObserveQuery implements bfs.Observer.
func (m *Metrics) ObserveQuery(ev bfs.QueryEvent) {
	strategy := ev.Strategy.String()
	m.queriesTotal.WithLabelValues(strategy, string(ev.Outcome)).Inc()
	m.queryDuration.WithLabelValues(strategy).Observe(ev.Duration.Seconds())
	if ev.Cached {
		m.cacheHitsTotal.Inc()
		return
	}
	if ev.Outcome == bfs.OutcomeFound || ev.Outcome == bfs.OutcomeNotFound {
		m.queryVisited.Observe(float64(ev.Visited))
	}
}

// WriteFile writes every registered metric to path in the text exposition
// format. The file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

var _ bfs.Observer = (*Metrics)(nil)
