// Package metrics provides Prometheus metrics export for the assistant API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bwassist/bwassist/ai/llm"
)

// Exporter exports assistant metrics in Prometheus format.
type Exporter struct {
	registry *prometheus.Registry

	// Generation metrics
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	active   prometheus.Gauge

	// LLM token metrics
	tokensUsed *prometheus.CounterVec
}

// Config configures the Prometheus exporter.
type Config struct {
	// Registry to use (if nil, creates a new one)
	Registry *prometheus.Registry

	// Buckets for latency histograms (in seconds)
	LatencyBuckets []float64
}

// DefaultConfig returns default Prometheus configuration.
func DefaultConfig() Config {
	return Config{
		LatencyBuckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}
}

// NewExporter creates a new Prometheus metrics exporter.
func NewExporter(cfg Config) *Exporter {
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = DefaultConfig().LatencyBuckets
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	e := &Exporter{registry: registry}

	e.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bwassist",
			Subsystem: "ai",
			Name:      "generation_requests_total",
			Help:      "Total number of generation requests",
		},
		[]string{"tool", "status"},
	)

	e.latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bwassist",
			Subsystem: "ai",
			Name:      "generation_latency_seconds",
			Help:      "Generation request latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"tool"},
	)

	e.active = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "bwassist",
			Subsystem: "ai",
			Name:      "generations_active",
			Help:      "Number of in-flight generation requests",
		},
	)

	e.tokensUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bwassist",
			Subsystem: "ai",
			Name:      "llm_tokens_total",
			Help:      "Total LLM tokens consumed",
		},
		[]string{"tool", "type"},
	)

	registry.MustRegister(e.requests, e.latency, e.active, e.tokensUsed)
	return e
}

// GenerationStarted marks a generation as in flight.
func (e *Exporter) GenerationStarted() {
	e.active.Inc()
}

// GenerationFinished records the outcome of a generation request.
func (e *Exporter) GenerationFinished(tool, status string, duration time.Duration, stats *llm.CallStats) {
	e.active.Dec()
	e.requests.WithLabelValues(tool, status).Inc()
	e.latency.WithLabelValues(tool).Observe(duration.Seconds())
	if stats != nil {
		e.tokensUsed.WithLabelValues(tool, "prompt").Add(float64(stats.PromptTokens))
		e.tokensUsed.WithLabelValues(tool, "completion").Add(float64(stats.CompletionTokens))
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
