// Package metrics registers the Prometheus collectors of the CRM backend.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	scanCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_scan_cycles_total",
			Help: "Delayed-action scan cycles by outcome",
		},
		[]string{"result"},
	)

	notificationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_notifications_created_total",
			Help: "Delayed-client notifications created",
		},
	)

	bulkDeleteAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_bulk_delete_attempts_total",
			Help: "Bulk delete attempts by outcome",
		},
		[]string{"result"},
	)

	clientsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_clients_imported_total",
			Help: "Clients created through spreadsheet import",
		},
	)
)

// Middleware records request count, latency and in-flight requests.
// The route template is used as the path label to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordScanCycle(result string) {
	scanCycles.WithLabelValues(result).Inc()
}

func RecordNotificationCreated() {
	notificationsCreated.Inc()
}

func RecordBulkDeleteAttempt(result string) {
	bulkDeleteAttempts.WithLabelValues(result).Inc()
}

func RecordClientsImported(n int) {
	clientsImported.Add(float64(n))
}
