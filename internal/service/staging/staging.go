package staging

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/trm"
)

// BookingWriter rebuilds the relational copy of the dataset.
type BookingWriter interface {
	Recreate(ctx context.Context, columns []models.Column) error
	Copy(ctx context.Context, t *models.Table) (int64, error)
}

// Summary describes a finished staging run.
type Summary struct {
	Rows     int64         `json:"rows"`
	Columns  int           `json:"columns"`
	Checksum string        `json:"checksum"`
	Duration time.Duration `json:"duration"`
}

type Service struct {
	repo BookingWriter
	trm  trm.TxManager
	l    logger.Logger
}

func New(repo BookingWriter, tm trm.TxManager, l logger.Logger) *Service {
	return &Service{repo: repo, trm: tm, l: l}
}

// Stage replaces the staged bookings with the rows of t inside one transaction.
func (s *Service) Stage(ctx context.Context, t *models.Table) (Summary, error) {
	const op = "staging.Stage"
	ctx = wrap.WithAction(ctx, types.ActionDatasetStaged)

	start := time.Now()
	columns := t.Columns()

	var copied int64
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.Recreate(ctx, columns); err != nil {
			return err
		}
		n, err := s.repo.Copy(ctx, t)
		if err != nil {
			return err
		}
		if n != int64(t.Len()) {
			return fmt.Errorf("copied %d of %d rows", n, t.Len())
		}
		copied = n
		return nil
	})
	if err != nil {
		return Summary{}, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	sum := Summary{
		Rows:     copied,
		Columns:  len(columns),
		Checksum: t.Source().Checksum,
		Duration: time.Since(start),
	}
	s.l.Info(ctx, "dataset staged",
		"rows", sum.Rows,
		"columns", sum.Columns,
		"checksum", sum.Checksum,
		"duration_ms", sum.Duration.Milliseconds(),
	)
	return sum, nil
}
