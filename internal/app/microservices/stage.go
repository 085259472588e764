package microservices

import (
	"context"

	"github.com/Temutjin2k/ride-analytics/config"
	repo "github.com/Temutjin2k/ride-analytics/internal/adapter/postgres"
	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/service/staging"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	"github.com/Temutjin2k/ride-analytics/pkg/postgres"
	"github.com/Temutjin2k/ride-analytics/pkg/trm"
)

// StageService copies the dataset into PostgreSQL once.
type StageService struct {
	postgresDB *postgres.PostgreDB
	table      *models.Table
	staging    *staging.Service
	log        logger.Logger
}

func NewStage(ctx context.Context, cfg config.Config, log logger.Logger) (*StageService, error) {
	table, err := loadDataset(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	bookingRepo := repo.NewBookingRepo(postgresDB.Pool)

	return &StageService{
		postgresDB: postgresDB,
		table:      table,
		staging:    staging.New(bookingRepo, trm.New(postgresDB.Pool), log),
		log:        log,
	}, nil
}

func (s *StageService) Start(ctx context.Context) error {
	defer closeDB(s.postgresDB)

	summary, err := s.staging.Stage(ctx, s.table)
	if err != nil {
		s.log.Error(ctx, "staging failed", err)
		return err
	}

	s.log.Info(ctx, "dataset staged",
		"rows", summary.Rows,
		"columns", summary.Columns,
		"checksum", summary.Checksum,
		"duration", summary.Duration.String(),
	)
	return nil
}
