package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/ride-analytics/config"
	"github.com/Temutjin2k/ride-analytics/internal/adapter/http/handler"
	"github.com/Temutjin2k/ride-analytics/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/ride-analytics/pkg/wsHub"
)

const (
	serverIPAddress = "%s:%s"
	serviceName     = "analytics"
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr            string
	shutdownTimeout time.Duration
	log             logger.Logger
}

type handlers struct {
	health    *handler.Health
	analytics *handler.Analytics
	dashboard *handler.Dashboard
	ws        *handler.DashboardWS
}

func New(cfg config.ServerConfig, service handler.AnalyticsService, hub *ws.ConnectionHub, log logger.Logger) (*API, error) {
	if service == nil {
		return nil, errors.New("analytics service is required")
	}
	if hub == nil {
		return nil, errors.New("websocket hub is required")
	}

	api := &API{
		mux: http.NewServeMux(),
		routes: &handlers{
			health:    handler.NewHealth(serviceName, service, log),
			analytics: handler.NewAnalytics(service, log),
			dashboard: handler.NewDashboard(service, log),
			ws:        handler.NewDashboardWS(service, hub, log),
		},
		m:               middleware.NewMiddleware(log),
		addr:            fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Port),
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             log,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.withMiddleware(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	timeout := a.shutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler exposes the full middleware chain.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(serviceName)(a.mux))))
}
