package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/hasher"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/metrics"
)

// Loader reads a booking dataset file into an immutable table.
type Loader struct {
	l   logger.Logger
	now func() time.Time
}

func NewLoader(l logger.Logger) *Loader {
	return &Loader{l: l, now: time.Now}
}

// Load reads the CSV or XLSX file at path. For workbooks sheet selects the
// sheet, the first one is used when empty.
func (ld *Loader) Load(ctx context.Context, path, sheet string) (*models.Table, error) {
	const op = "Loader.Load"
	ctx = wrap.WithAction(ctx, types.ActionDatasetLoaded)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: %w: %s", op, types.ErrDatasetNotFound, path))
		}
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, sheet, err = readXLSX(path, sheet)
	default:
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w: %s", op, types.ErrUnsupportedFile, filepath.Ext(path)))
	}
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	bookings, columns, err := parse(rows)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %s: %w", op, path, err))
	}

	checksum, err := hasher.SumFile(path)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	table := models.NewTable(bookings, columns, models.Source{
		Path:     path,
		Sheet:    sheet,
		Checksum: checksum,
		LoadedAt: ld.now().UTC(),
	})
	metrics.DatasetRows.Set(float64(table.Len()))

	ld.l.Info(ctx, "dataset loaded",
		"path", path,
		"sheet", sheet,
		"rows", table.Len(),
		"columns", len(columns),
		"checksum", checksum,
	)
	return table, nil
}
