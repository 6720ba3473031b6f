package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records catalog fetches.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewMetrics registers the catalog collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "displaycard",
			Name:      "catalog_requests_total",
			Help:      "Total number of product catalog requests",
		}, []string{"status"}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "displaycard",
			Name:      "catalog_request_duration_seconds",
			Help:      "Product catalog request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
