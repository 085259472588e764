package analytics

import (
	"context"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// QueryEngine answers catalog queries.
type QueryEngine interface {
	Name() types.Engine
	Run(ctx context.Context, kind types.QueryKind, t *models.Table) (models.QueryResult, error)
}

// StagedBookings runs menu queries against the relational copy of the dataset.
type StagedBookings interface {
	Run(ctx context.Context, kind types.QueryKind) (models.QueryResult, error)
}
