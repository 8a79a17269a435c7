package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	scansTotal          *prometheus.CounterVec
	scanDuration        prometheus.Histogram
	scanMessages        prometheus.Histogram
	detectedVendors     *prometheus.CounterVec
	directoryLoads      *prometheus.CounterVec
	directoryOptions    prometheus.Gauge
	directorySearches   prometheus.Counter
	transitionsTotal    *prometheus.CounterVec
	staleWritesTotal    *prometheus.CounterVec
	debouncedTotal      *prometheus.CounterVec
	generationsTotal    *prometheus.CounterVec
	generationDuration  prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	signInsTotal        *prometheus.CounterVec
	conciergeTotal      prometheus.Counter
}

// NewPrometheusMetrics registers the collectors with reg. Production passes
// prometheus.DefaultRegisterer; tests pass a fresh registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		scansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inbox_scans_total",
				Help: "Total number of inbox scans by outcome",
			},
			[]string{"status"},
		),
		scanDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inbox_scan_duration_milliseconds",
				Help:    "Inbox scan duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(50, 2, 10),
			},
		),
		scanMessages: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inbox_scan_messages",
				Help:    "Number of candidate messages read per scan",
				Buckets: []float64{0, 10, 25, 50, 100, 200, 400},
			},
		),
		detectedVendors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detected_vendors_total",
				Help: "Total number of vendors detected in inbox scans",
			},
			[]string{"vendor"},
		),
		directoryLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directory_loads_total",
				Help: "Total number of cancellation directory loads by outcome",
			},
			[]string{"status"},
		),
		directoryOptions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "directory_options",
				Help: "Number of canonical options in the last directory snapshot",
			},
		),
		directorySearches: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "directory_searches_total",
				Help: "Total number of directory searches",
			},
		),
		transitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscription_transitions_total",
				Help: "Total number of subscription state transitions",
			},
			[]string{"transition", "backend"},
		),
		staleWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "state_stale_writes_total",
				Help: "Total number of state writes rejected for a version mismatch",
			},
			[]string{"kind"},
		),
		debouncedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debounced_requests_total",
				Help: "Total number of requests dropped by a debounce window",
			},
			[]string{"action"},
		),
		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "text_generations_total",
				Help: "Total number of text generation calls by purpose and outcome",
			},
			[]string{"purpose", "status"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "text_generation_duration_seconds",
				Help:    "Text generation call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		signInsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "google_sign_ins_total",
				Help: "Total number of Google sign-in attempts by outcome",
			},
			[]string{"status"},
		),
		conciergeTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "concierge_requests_total",
				Help: "Total number of new concierge requests",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "scan.completed":
		m.scansTotal.WithLabelValues("success").Inc()
	case "scan.failed":
		m.scansTotal.WithLabelValues("failed_" + tags["reason"]).Inc()
	case "scan.vendor_detected":
		if vendor := tags["vendor"]; vendor != "" {
			m.detectedVendors.WithLabelValues(vendor).Inc()
		}
	case "directory.loaded":
		m.directoryLoads.WithLabelValues("success").Inc()
	case "directory.load_failed":
		m.directoryLoads.WithLabelValues("failed").Inc()
	case "directory.search":
		m.directorySearches.Inc()
	case "subscription.transition":
		if transition := tags["transition"]; transition != "" {
			m.transitionsTotal.WithLabelValues(transition, tags["backend"]).Inc()
		}
	case "state.stale_write":
		m.staleWritesTotal.WithLabelValues(tags["kind"]).Inc()
	case "request.debounced":
		m.debouncedTotal.WithLabelValues(tags["action"]).Inc()
	case "generation":
		if status != "" {
			m.generationsTotal.WithLabelValues(tags["purpose"], status).Inc()
		}
	case "auth.sign_in":
		if status != "" {
			m.signInsTotal.WithLabelValues(status).Inc()
		}
	case "concierge.requested":
		m.conciergeTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "scan":
		m.scanDuration.Observe(float64(duration.Milliseconds()))
	case "generation":
		m.generationDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "scan.messages":
		m.scanMessages.Observe(value)
	case "directory.options":
		m.directoryOptions.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
