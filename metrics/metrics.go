// SPDX-License-Identifier: MIT
// Package metrics exports route-query statistics to Prometheus.
//
// A Collector implements dijkstra.Observer; pass it with
// dijkstra.WithObserver to record every FindPath call.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// Collector holds the route-query metrics registered on one registry.
type Collector struct {
	queries  *prometheus.CounterVec
	settled  prometheus.Histogram
	pushes   prometheus.Histogram
	stale    prometheus.Histogram
	duration prometheus.Histogram
}

// NewCollector registers the query metrics on reg. A nil reg registers on
// prometheus.DefaultRegisterer. Registering twice on the same registry
// panics, as promauto does.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		// Counts queries by how they ended: found, no_path, unknown_endpoint, error.
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvroute_queries_total",
			Help: "Total number of route queries, labeled by outcome",
		}, []string{"outcome"}),

		settled: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvroute_query_settled_nodes",
			Help:    "Nodes settled per route query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),

		pushes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvroute_query_frontier_pushes",
			Help:    "Frontier insertions per route query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		stale: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvroute_query_stale_entries",
			Help:    "Superseded frontier entries discarded per route query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvroute_query_duration_seconds",
			Help:    "Duration of route queries in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// ObserveQuery records one query. It satisfies dijkstra.Observer and is
// safe for concurrent use.
func (c *Collector) ObserveQuery(s dijkstra.QueryStats) {
	c.queries.WithLabelValues(string(s.Outcome)).Inc()
	c.settled.Observe(float64(s.Settled))
	c.pushes.Observe(float64(s.Pushes))
	c.stale.Observe(float64(s.Stale))
	c.duration.Observe(s.Duration.Seconds())
}

var _ dijkstra.Observer = (*Collector)(nil)
