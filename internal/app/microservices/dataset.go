package microservices

import (
	"context"

	"github.com/Temutjin2k/ride-analytics/config"
	"github.com/Temutjin2k/ride-analytics/internal/adapter/dataset"
	repo "github.com/Temutjin2k/ride-analytics/internal/adapter/postgres"
	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/internal/service/analytics"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	"github.com/Temutjin2k/ride-analytics/pkg/postgres"
	"github.com/Temutjin2k/ride-analytics/pkg/trm"
)

// loadDataset reads the configured file once. A failure here is fatal for every mode.
func loadDataset(ctx context.Context, cfg config.Config, log logger.Logger) (*models.Table, error) {
	t, err := dataset.NewLoader(log).Load(ctx, cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		log.Error(ctx, "Failed to load dataset", err, "path", cfg.Dataset.Path)
		return nil, err
	}
	return t, nil
}

// newEngine picks the query backend. The sql engine also returns the pool it owns.
func newEngine(ctx context.Context, cfg config.Config, log logger.Logger) (analytics.QueryEngine, *postgres.PostgreDB, error) {
	if cfg.Analytics.Engine != types.SQLEngine {
		return analytics.NewMemoryEngine(), nil, nil
	}

	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, nil, err
	}

	bookingRepo := repo.NewBookingRepo(postgresDB.Pool)
	return analytics.NewSQLEngine(bookingRepo, trm.New(postgresDB.Pool)), postgresDB, nil
}

func closeDB(db *postgres.PostgreDB) {
	if db != nil && db.Pool != nil {
		db.Close()
	}
}
