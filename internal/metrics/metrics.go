// internal/metrics/metrics.go

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector manages the Prometheus metrics for the analytics service. Each
// collector owns its registry, so the scrape endpoint only exposes service
// metrics and tests can construct collectors freely.
type Collector struct {
	registry *prometheus.Registry

	analyzeRequestsTotal *prometheus.CounterVec
	analyzeDuration      prometheus.Histogram
	recordsIngested      prometheus.Counter
}

// NewCollector creates and registers the service metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		analyzeRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scrollmark_analyze_requests_total",
				Help: "Total number of analyze requests",
			},
			[]string{"status"},
		),
		analyzeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scrollmark_analyze_duration_seconds",
				Help:    "Analyze request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		recordsIngested: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "scrollmark_records_ingested_total",
				Help: "Total number of CSV rows ingested",
			},
		),
	}

	c.registry.MustRegister(c.analyzeRequestsTotal)
	c.registry.MustRegister(c.analyzeDuration)
	c.registry.MustRegister(c.recordsIngested)

	return c
}

// ObserveAnalyze records one completed analyze request.
func (c *Collector) ObserveAnalyze(status int, duration time.Duration) {
	c.analyzeRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	c.analyzeDuration.Observe(duration.Seconds())
}

// AddRecordsIngested counts normalized CSV rows.
func (c *Collector) AddRecordsIngested(n int) {
	c.recordsIngested.Add(float64(n))
}

// Handler returns the Prometheus scrape handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
