package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry            *prometheus.Registry
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SearchQueriesTotal  *prometheus.CounterVec
	SearchResultsCount  *prometheus.HistogramVec
	SnapshotDocuments   prometheus.Gauge
	SnapshotReloads     *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry, so several
// servers can live in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ristorante_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ristorante_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ristorante_search_queries_total",
				Help: "Search queries by mode and result type (hit, zero_result, error).",
			},
			[]string{"mode", "result_type"},
		),
		SearchResultsCount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ristorante_search_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
			},
			[]string{"mode"},
		),
		SnapshotDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ristorante_snapshot_documents",
				Help: "Number of documents in the live snapshot.",
			},
		),
		SnapshotReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ristorante_snapshot_reloads_total",
				Help: "Snapshot reloads by outcome.",
			},
			[]string{"result"},
		),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchQueriesTotal,
		m.SearchResultsCount,
		m.SnapshotDocuments,
		m.SnapshotReloads,
	)
	return m
}

func (m *Metrics) observeSearch(mode string, results int, err error) {
	switch {
	case err != nil:
		m.SearchQueriesTotal.WithLabelValues(mode, "error").Inc()
		return
	case results == 0:
		m.SearchQueriesTotal.WithLabelValues(mode, "zero_result").Inc()
	default:
		m.SearchQueriesTotal.WithLabelValues(mode, "hit").Inc()
	}
	m.SearchResultsCount.WithLabelValues(mode).Observe(float64(results))
}
