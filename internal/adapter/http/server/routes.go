package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Temutjin2k/ride-analytics/docs"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	mux, routes := a.mux, a.routes

	// System Health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	mux.HandleFunc("GET /queries", routes.analytics.ListQueries)       // Query menu
	mux.HandleFunc("GET /queries/{name}", routes.analytics.RunQuery)   // Run one catalog query
	mux.HandleFunc("GET /overview", routes.analytics.Overview)         // KPI tiles over the full dataset
	mux.HandleFunc("GET /insights", routes.analytics.Insights)         // Static business commentary
	mux.HandleFunc("GET /dashboard", routes.dashboard.Get)             // Filtered dashboard from query params
	mux.HandleFunc("POST /dashboard", routes.dashboard.Post)           // Filtered dashboard from a JSON filter
	mux.HandleFunc("GET /dashboard/filters", routes.dashboard.Filters) // Default filter options
	mux.HandleFunc("GET /ws/dashboard", routes.ws.HandleWS)            // WebSocket dashboard session

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)
}

// setupSwaggerRoutes serves the Swagger UI for the analytics API
func setupSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger/", httpSwagger.Handler(httpSwagger.InstanceName(docs.InstanceName)))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
