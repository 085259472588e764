package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Analytics metrics
	AnalyticsQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_queries_total",
			Help: "Total number of catalog queries executed",
		},
		[]string{"engine", "query", "status"},
	)

	AnalyticsQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_query_duration_seconds",
			Help:    "Catalog query duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"engine", "query"},
	)

	DashboardRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_dashboard_renders_total",
			Help: "Total number of dashboard recomputations",
		},
		[]string{"surface"},
	)

	FilteredRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_filtered_rows",
			Help:    "Number of bookings left after applying dashboard filters",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_dataset_rows",
			Help: "Number of bookings loaded from the dataset",
		},
	)

	WebSocketSessionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_websocket_sessions",
			Help: "Current number of active dashboard WebSocket sessions",
		},
	)

	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	RabbitMQMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rabbitmq_messages_published_total",
			Help: "Total number of messages published to RabbitMQ",
		},
		[]string{"exchange", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordQuery records a catalog query execution
func RecordQuery(engine, query string, err error, duration time.Duration) {
	AnalyticsQueriesTotal.WithLabelValues(engine, query, statusOf(err)).Inc()
	AnalyticsQueryDuration.WithLabelValues(engine, query).Observe(duration.Seconds())
}

// RecordDashboard records one dashboard recomputation and the size of its working set
func RecordDashboard(surface string, rows int) {
	DashboardRenders.WithLabelValues(surface).Inc()
	FilteredRows.Observe(float64(rows))
}

// RecordDatabaseQuery records database query metrics
func RecordDatabaseQuery(operation string, err error, duration time.Duration) {
	DatabaseQueriesTotal.WithLabelValues(operation, statusOf(err)).Inc()
	DatabaseQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRabbitMQPublish records RabbitMQ publish metrics
func RecordRabbitMQPublish(exchange string, err error) {
	RabbitMQMessagesPublished.WithLabelValues(exchange, statusOf(err)).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
