package middleware

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/hoist/internal/errors"
	"github.com/vango-dev/hoist/pkg/render"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hoist").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hoist",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the page metrics. Every series is labeled by render mode
// (html, css, js), since one page URL serves all three.
type Metrics struct {
	requestsTotal  *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	responseBytes  *prometheus.HistogramVec
	hoistedStyles  prometheus.Histogram
	boundScripts   prometheus.Histogram
}

// NewMetrics registers the page metrics with the configured registry.
//
// Metrics collected:
//   - hoist_requests_total: Counter of page requests by mode and status
//   - hoist_render_duration_seconds: Histogram of handling time by mode
//   - hoist_render_errors_total: Counter of render errors by mode and code
//   - hoist_response_bytes: Histogram of payload size by mode
//   - hoist_hoisted_styles: Histogram of distinct classes per document
//   - hoist_bound_scripts: Histogram of event bindings per document
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of page requests",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Page handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"mode"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of render errors",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "code"}),

		responseBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "response_bytes",
			Help:        "Size of page payloads in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}, []string{"mode"}),

		hoistedStyles: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "hoisted_styles",
			Help:        "Distinct generated classes per rendered document",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),

		boundScripts: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bound_scripts",
			Help:        "Event bindings per rendered document",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}
}

// Middleware records request count, duration and payload size.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := render.ModeFromRequest(r).String()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.renderDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
		m.responseBytes.WithLabelValues(mode).Observe(float64(ww.BytesWritten()))
		m.requestsTotal.WithLabelValues(mode, strconv.Itoa(status)).Inc()
	})
}

// RecordError counts a failed render.
func (m *Metrics) RecordError(mode render.Mode, err error) {
	m.renderErrors.WithLabelValues(mode.String(), errorCode(err)).Inc()
}

// RecordDocument records the asset counts of a rendered document.
func (m *Metrics) RecordDocument(styles, scripts int) {
	m.hoistedStyles.Observe(float64(styles))
	m.boundScripts.Observe(float64(scripts))
}

// errorCode returns the structured error code, keeping label cardinality
// bounded.
func errorCode(err error) string {
	var he *errors.HoistError
	if stderrors.As(err, &he) && he.Code != "" {
		return he.Code
	}
	return "internal"
}
