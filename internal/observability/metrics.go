package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the lookup API.
type Metrics struct {
	// labels: outcome={success,missing_coordinates,unresolved,not_found}
	LookupRequests *prometheus.CounterVec

	// Reverse geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={match,no_match,error}
	GeocodeAPIDuration prometheus.Histogram

	// Code table metrics, set once at startup.
	CodeTableEntries prometheus.Gauge
	CodeTableRows    *prometheus.CounterVec // labels: result={kept,aggregate,unmapped,malformed}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.LookupRequests,
		m.GeocodeRequests,
		m.GeocodeAPIDuration,
		m.CodeTableEntries,
		m.CodeTableRows,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jma_area",
			Name:      "lookup_requests_total",
			Help:      "Area lookup requests by outcome.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jma_area",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoder calls by outcome.",
		}, []string{"outcome"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jma_area",
			Name:      "geocode_api_duration_seconds",
			Help:      "Reverse geocoder request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CodeTableEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "jma_area",
			Name:      "code_table_entries",
			Help:      "Number of municipalities in the loaded code table.",
		}),
		CodeTableRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jma_area",
			Name:      "code_table_rows_total",
			Help:      "Spreadsheet rows processed while building the code table, by result.",
		}, []string{"result"}),
	}
}
