// Package metrics holds the Prometheus instruments for the collector.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the ingestion pipeline.
type Metrics struct {
	registry         *prometheus.Registry
	fetchesTotal     *prometheus.CounterVec
	matchesTotal     prometheus.Counter
	rowsFlushedTotal prometheus.Counter
	flushesTotal     prometheus.Counter
	intervalSeconds  prometheus.Gauge
}

// New creates and registers Prometheus metrics for the collector.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	fetchesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "herodex_fetches_total",
		Help: "Total number of feed fetches by outcome (ok, short, transient, decode)",
	}, []string{"outcome"})
	matchesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "herodex_matches_total",
		Help: "Total number of matches collected from the feed",
	})
	rowsFlushedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "herodex_rows_flushed_total",
		Help: "Total number of index rows flushed to the store",
	})
	flushesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "herodex_flushes_total",
		Help: "Total number of completed index flushes",
	})
	intervalSeconds := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "herodex_request_interval_seconds",
		Help: "Current rate-governor interval between paced requests",
	})

	registry.MustRegister(
		fetchesTotal,
		matchesTotal,
		rowsFlushedTotal,
		flushesTotal,
		intervalSeconds,
	)

	return &Metrics{
		registry:         registry,
		fetchesTotal:     fetchesTotal,
		matchesTotal:     matchesTotal,
		rowsFlushedTotal: rowsFlushedTotal,
		flushesTotal:     flushesTotal,
		intervalSeconds:  intervalSeconds,
	}
}

// IncFetch increments the fetch counter for the given outcome.
func (m *Metrics) IncFetch(outcome string) {
	m.fetchesTotal.WithLabelValues(outcome).Inc()
}

// AddMatches adds to the collected-matches counter.
func (m *Metrics) AddMatches(n int) {
	m.matchesTotal.Add(float64(n))
}

// AddRowsFlushed adds to the flushed-rows counter.
func (m *Metrics) AddRowsFlushed(n int) {
	m.rowsFlushedTotal.Add(float64(n))
}

// IncFlushes increments the completed-flush counter.
func (m *Metrics) IncFlushes() {
	m.flushesTotal.Inc()
}

// SetInterval records the governor's current interval.
func (m *Metrics) SetInterval(d time.Duration) {
	m.intervalSeconds.Set(d.Seconds())
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
