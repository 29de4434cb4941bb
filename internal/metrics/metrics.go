package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agenda",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agenda",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	directoryOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agenda",
			Subsystem: "directory",
			Name:      "operations_total",
			Help:      "Directory operations by outcome.",
		},
		[]string{"op", "outcome"},
	)
	directorySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "agenda",
			Subsystem: "directory",
			Name:      "contacts",
			Help:      "Number of contacts currently stored.",
		},
	)
	phoneChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agenda",
			Subsystem: "phone",
			Name:      "classifications_total",
			Help:      "Phone classifications by class.",
		},
		[]string{"class"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, directoryOps, directorySize, phoneChecks)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDirectoryOp counts one directory call and the resulting number of contacts.
func RecordDirectoryOp(op, outcome string, size int) {
	RegisterMetrics()
	directoryOps.WithLabelValues(op, outcome).Inc()
	directorySize.Set(float64(size))
}

func RecordPhoneCheck(class string) {
	RegisterMetrics()
	phoneChecks.WithLabelValues(class).Inc()
}
