package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "displaycard"

// Metrics holds the Prometheus collectors of the live runtime.
type Metrics struct {
	PagesRendered   prometheus.Counter
	EventsTotal     *prometheus.CounterVec
	EventDuration   prometheus.Histogram
	PatchesSent     prometheus.Counter
	ActiveSessions  prometheus.Gauge
	SessionsEvicted prometheus.Counter
}

// NewMetrics registers the runtime collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		PagesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "pages_rendered_total",
			Help:      "Total number of pages rendered",
		}),

		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "events_total",
			Help:      "Total number of client events handled",
		}, []string{"event", "status"}),

		EventDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      "event_duration_seconds",
			Help:      "Event handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		PatchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "patches_sent_total",
			Help:      "Total number of patches sent to clients",
		}),

		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "active_sessions",
			Help:      "Number of live sessions",
		}),

		SessionsEvicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "sessions_evicted_total",
			Help:      "Sessions dropped because the client never attached",
		}),
	}
}
