package analytics

import (
	"context"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/internal/service/aggregate"
	"github.com/Temutjin2k/ride-analytics/pkg/trm"
)

// MemoryEngine computes queries over the in-memory table.
type MemoryEngine struct{}

func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{}
}

func (e *MemoryEngine) Name() types.Engine {
	return types.MemoryEngine
}

func (e *MemoryEngine) Run(_ context.Context, kind types.QueryKind, t *models.Table) (models.QueryResult, error) {
	return aggregate.Run(kind, t)
}

// SQLEngine answers menu queries from the staged bookings table.
type SQLEngine struct {
	repo StagedBookings
	trm  trm.TxManager
}

func NewSQLEngine(repo StagedBookings, tm trm.TxManager) *SQLEngine {
	return &SQLEngine{repo: repo, trm: tm}
}

func (e *SQLEngine) Name() types.Engine {
	return types.SQLEngine
}

// Run ignores the rows of t apart from reporting its size; the staged copy is queried instead.
func (e *SQLEngine) Run(ctx context.Context, kind types.QueryKind, t *models.Table) (models.QueryResult, error) {
	var payload models.QueryResult
	err := e.trm.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		payload, err = e.repo.Run(ctx, kind)
		return err
	})
	if err != nil {
		return models.QueryResult{}, err
	}

	header := aggregate.Header(kind)
	payload.Query, payload.Title, payload.Chart = header.Query, header.Title, header.Chart
	payload.InputRows = t.Len()
	return payload, nil
}
