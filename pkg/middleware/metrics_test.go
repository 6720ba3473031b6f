package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func newRouter(m *HTTPMetrics) chi.Router {
	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func TestHTTPMetrics_LabelsByRoutePattern(t *testing.T) {
	m := NewHTTPMetrics(WithRegistry(prometheus.NewRegistry()))
	r := newRouter(m)

	for _, path := range []string{"/products/1", "/products/2", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/products/{id}", "GET", "2xx")); got != 2 {
		t.Fatalf("http_requests_total(products, 2xx)=%v, want 2", got)
	}
	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/boom", "GET", "5xx")); got != 1 {
		t.Fatalf("http_requests_total(boom, 5xx)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("/products/{id}")); got != 2 {
		t.Fatalf("http_request_duration_seconds count=%v, want 2", got)
	}
	if got := metricGaugeValue(t, m.inFlight); got != 0 {
		t.Fatalf("http_requests_in_flight=%v, want 0", got)
	}
}

func TestHTTPMetrics_UnmatchedRoute(t *testing.T) {
	m := NewHTTPMetrics(WithRegistry(prometheus.NewRegistry()))
	r := newRouter(m)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/2", nil))

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues(UnmatchedRoute, "GET", "4xx")); got != 2 {
		t.Fatalf("http_requests_total(unmatched)=%v, want 2", got)
	}
}

func TestHTTPMetrics_InFlightDuringRequest(t *testing.T) {
	m := NewHTTPMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	var during float64
	h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = metricGaugeValue(t, m.inFlight)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if during != 1 {
		t.Fatalf("in flight during request=%v, want 1", during)
	}
	if got := metricGaugeValue(t, m.inFlight); got != 0 {
		t.Fatalf("in flight after request=%v, want 0", got)
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{
		0:   "none",
		101: "1xx",
		200: "2xx",
		304: "3xx",
		404: "4xx",
		503: "5xx",
	}
	for code, want := range tests {
		if got := statusClass(code); got != want {
			t.Errorf("statusClass(%d)=%q, want %q", code, got, want)
		}
	}
}
