package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/ride-analytics/config"
	"github.com/Temutjin2k/ride-analytics/internal/adapter/http/server"
	"github.com/Temutjin2k/ride-analytics/internal/service/analytics"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	"github.com/Temutjin2k/ride-analytics/pkg/postgres"
	ws "github.com/Temutjin2k/ride-analytics/pkg/wsHub"
)

// DashboardService serves the analytics API until SIGINT or SIGTERM.
type DashboardService struct {
	postgresDB *postgres.PostgreDB
	httpServer *server.API
	hub        *ws.ConnectionHub
	cfg        config.Config
	log        logger.Logger
}

func NewDashboard(ctx context.Context, cfg config.Config, log logger.Logger) (*DashboardService, error) {
	table, err := loadDataset(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	engine, postgresDB, err := newEngine(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	service := analytics.New(table, engine, log)
	hub := ws.NewConnHub(log)

	httpServer, err := server.New(cfg.Server, service, hub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		closeDB(postgresDB)
		return nil, err
	}

	return &DashboardService{
		postgresDB: postgresDB,
		httpServer: httpServer,
		hub:        hub,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *DashboardService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "dashboard service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "Dashboard service has been started", "engine", s.cfg.Analytics.Engine)

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *DashboardService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.hub != nil {
		s.hub.Close()
	}

	closeDB(s.postgresDB)
}
