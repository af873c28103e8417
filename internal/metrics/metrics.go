package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Upstream provider metrics
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Synthesis metrics
	SynthesisTotal    *prometheus.CounterVec
	SynthesisAudioLen prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textnow_gateway_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "textnow_gateway_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "textnow_gateway_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		UpstreamRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textnow_gateway_upstream_requests_total",
				Help: "Total calls to the messaging provider by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		UpstreamRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "textnow_gateway_upstream_request_duration_seconds",
				Help:    "Duration of provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		SynthesisTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textnow_gateway_synthesis_total",
				Help: "Voice synthesis attempts by outcome",
			},
			[]string{"outcome"},
		),
		SynthesisAudioLen: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "textnow_gateway_synthesis_audio_bytes",
				Help:    "Size of synthesized audio payloads in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordUpstreamRequest(operation, outcome string, duration time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) RecordSynthesis(outcome string, audioBytes int) {
	m.SynthesisTotal.WithLabelValues(outcome).Inc()
	if audioBytes > 0 {
		m.SynthesisAudioLen.Observe(float64(audioBytes))
	}
}
