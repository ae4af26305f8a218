// Package middleware provides net/http middleware for hoist pages: request
// ids, OpenTelemetry tracing and Prometheus metrics. All of it is
// compatible with chi's Use.
//
// # Prometheus Metrics
//
// Metrics are labeled by render mode, since the document, its stylesheet
// and its script are served by the same route:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("album"))
//	r.Use(m.Middleware)
//	r.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Handlers reach the span through the request context:
//
//	trace.SpanFromContext(r.Context()).SetAttributes(attribute.Int("items", n))
package middleware
