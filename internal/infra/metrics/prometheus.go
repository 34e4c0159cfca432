// Package metrics exposes storefront counters and HTTP latency through prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "storefront"

// Recorder owns a private registry so tests and multiple apps never collide on the default one.
type Recorder struct {
	registry *prometheus.Registry

	orderOperations     *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder registers the storefront collectors plus the Go runtime and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		orderOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_operations_total",
				Help:      "Total number of order operations",
			},
			[]string{"operation", "status"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of notification delivery attempts",
			},
			[]string{"channel", "kind", "result"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
	}
}

// RecordOrderOperation implements service.MetricsRecorder.
func (r *Recorder) RecordOrderOperation(operation, status string) {
	r.orderOperations.WithLabelValues(operation, status).Inc()
}

// RecordNotification implements service.MetricsRecorder.
func (r *Recorder) RecordNotification(channel, kind, result string) {
	r.notifications.WithLabelValues(channel, kind, result).Inc()
}

// ObserveHTTPRequest records one request. path is the route pattern, not the raw URL.
func (r *Recorder) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	r.httpRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.MetricsRecorder { return r },
	),
)
