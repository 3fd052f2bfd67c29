package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// fetch outcomes.
const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	fetchTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "catalog_fetch_total",
			Help: "Number of catalog fetches, by collection and result.",
		},
		[]string{"collection", "result"},
	)

	fetchDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Name:    "catalog_fetch_duration_seconds",
			Help:    "Duration of catalog fetches.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)
)

func observe(collection string, start time.Time, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}

	fetchTotal.WithLabelValues(collection, result).Inc()
	fetchDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
}
