package microservices

import (
	"context"

	"github.com/Temutjin2k/ride-analytics/config"
	"github.com/Temutjin2k/ride-analytics/internal/adapter/file"
	rabbitadapter "github.com/Temutjin2k/ride-analytics/internal/adapter/rabbit"
	"github.com/Temutjin2k/ride-analytics/internal/service/analytics"
	"github.com/Temutjin2k/ride-analytics/internal/service/report"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	"github.com/Temutjin2k/ride-analytics/pkg/postgres"
	"github.com/Temutjin2k/ride-analytics/pkg/rabbit"
)

// ReportService runs the full catalog once and hands the results to RabbitMQ or a JSON file.
type ReportService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	report     *report.Service
	cfg        config.Config
	log        logger.Logger
}

func NewReport(ctx context.Context, cfg config.Config, log logger.Logger) (*ReportService, error) {
	table, err := loadDataset(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	engine, postgresDB, err := newEngine(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	s := &ReportService{
		postgresDB: postgresDB,
		cfg:        cfg,
		log:        log,
	}

	var publisher report.Publisher
	if cfg.Report.Publish {
		s.rabbitMQ, err = rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "Failed to connect to rabbitMQ", err)
			s.close(ctx)
			return nil, err
		}
		publisher = rabbitadapter.NewReportProducer(s.rabbitMQ, cfg.RabbitMQ.Exchange, log)
	} else {
		publisher = file.NewReportWriter(cfg.Report.Output, log)
	}

	s.report = report.New(analytics.New(table, engine, log), publisher, log)
	return s, nil
}

func (s *ReportService) Start(ctx context.Context) error {
	defer s.close(ctx)

	if err := s.report.Run(ctx); err != nil {
		s.log.Error(ctx, "report failed", err)
		return err
	}

	s.log.Info(ctx, "report published", "rabbitmq", s.cfg.Report.Publish, "output", s.cfg.Report.Output)
	return nil
}

func (s *ReportService) close(ctx context.Context) {
	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitMQ connection", "error", err.Error())
		}
	}

	closeDB(s.postgresDB)
}
