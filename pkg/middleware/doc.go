// Package middleware provides the HTTP middleware of the displaycard server.
//
// This package includes:
//   - OpenTelemetry request tracing with trace context propagation
//   - Prometheus request metrics labelled by chi route pattern
//   - Structured access logging with the chi request ID
//
// All three are plain func(http.Handler) http.Handler values for chi:
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.Logger(logger))
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("displaycard"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//	r.Use(middleware.NewHTTPMetrics(middleware.WithRegistry(reg)).Handler)
//
// # Route labels
//
// Metrics and span names use the matched chi route pattern, not the raw
// path, so unknown URLs cannot grow label cardinality. Requests that match
// no route are labelled "unmatched".
package middleware
