package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type PrometheusMetrics struct {
	quotesSaved       *prometheus.CounterVec
	quotesEdited      prometheus.Counter
	quotesDeleted     prometheus.Counter
	statusChanges     *prometheus.CounterVec
	catalogSearches   prometheus.Counter
	snapshotRefreshes *prometheus.CounterVec
	cleanupApplied    *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	snapshotSize      prometheus.Gauge
	quoteTotal        prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		quotesSaved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotes_saved_total",
				Help: "Total number of quotes persisted",
			},
			[]string{"status"},
		),
		quotesEdited: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "quotes_edited_total",
				Help: "Total number of full quote edits",
			},
		),
		quotesDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "quotes_deleted_total",
				Help: "Total number of quotes deleted",
			},
		),
		statusChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_status_changes_total",
				Help: "Total number of quote status transitions",
			},
			[]string{"to"},
		),
		catalogSearches: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_searches_total",
				Help: "Total number of catalog browse/search requests",
			},
		),
		snapshotRefreshes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_snapshot_refreshes_total",
				Help: "Total number of catalog snapshot rebuilds",
			},
			[]string{"status"},
		),
		cleanupApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cleanup_corrections_total",
				Help: "Total number of bulk field corrections applied",
			},
			[]string{"field"},
		),
		operationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "operation_duration_milliseconds",
				Help:    "Operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		snapshotSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_snapshot_rows",
				Help: "Number of rows in the current catalog snapshot",
			},
		),
		quoteTotal: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quote_total_amount",
				Help:    "Distribution of saved quote totals",
				Buckets: prometheus.ExponentialBuckets(50, 2, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, labels map[string]string) {
	switch name {
	case "quote_saved":
		m.quotesSaved.With(prometheus.Labels{"status": labels["status"]}).Inc()
	case "quote_edited":
		m.quotesEdited.Inc()
	case "quote_deleted":
		m.quotesDeleted.Inc()
	case "quote_status_change":
		m.statusChanges.With(prometheus.Labels{"to": labels["to"]}).Inc()
	case "catalog_search":
		m.catalogSearches.Inc()
	case "snapshot_refresh":
		m.snapshotRefreshes.With(prometheus.Labels{"status": labels["status"]}).Inc()
	case "cleanup_applied":
		m.cleanupApplied.With(prometheus.Labels{"field": labels["field"]}).Inc()
	}
}

func (m *PrometheusMetrics) RecordDuration(operation string, duration time.Duration) {
	m.operationDuration.With(prometheus.Labels{"operation": operation}).
		Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) SetGauge(name string, value float64) {
	if name == "snapshot_rows" {
		m.snapshotSize.Set(value)
	}
}

func (m *PrometheusMetrics) ObserveQuoteTotal(total decimal.Decimal) {
	f, _ := total.Float64()
	m.quoteTotal.Observe(f)
}

// noopMetrics is used in tests to avoid duplicate prometheus registration.
type noopMetrics struct{}

// NewNoopMetrics returns a metrics recorder that records nothing.
func NewNoopMetrics() MetricsRecorderInterface { return noopMetrics{} }

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordDuration(string, time.Duration)       {}
func (noopMetrics) SetGauge(string, float64)                   {}
func (noopMetrics) ObserveQuoteTotal(decimal.Decimal)          {}
