package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for GenerationsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeTooLarge = "too_large"
	OutcomeError    = "error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_generations_total",
			Help: "QR generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	ValidationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_validation_errors_total",
			Help: "Validation errors by field",
		},
		[]string{"field"},
	)

	PayloadBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qr_payload_bytes",
			Help:    "Size of serialized payloads embedded in QR symbols",
			Buckets: prometheus.ExponentialBuckets(64, 2, 7),
		},
	)

	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qr_generation_duration_seconds",
			Help:    "Duration of validate, build and encode",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(GenerationsTotal)
		prometheus.MustRegister(ValidationErrorsTotal)
		prometheus.MustRegister(PayloadBytes)
		prometheus.MustRegister(GenerationDuration)
	})
}
