package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
)

// ReportWriter encodes a report as one JSON document, to a file or to stdout.
type ReportWriter struct {
	path   string
	stdout io.Writer
	l      logger.Logger
}

// NewReportWriter writes to path, or to stdout when path is empty.
func NewReportWriter(path string, l logger.Logger) *ReportWriter {
	return &ReportWriter{path: path, stdout: os.Stdout, l: l}
}

func (w *ReportWriter) Publish(ctx context.Context, report *models.Report) (err error) {
	const op = "ReportWriter.Publish"

	out, target := w.stdout, "stdout"
	if w.path != "" {
		f, ferr := os.Create(w.path)
		if ferr != nil {
			return wrap.Error(ctx, fmt.Errorf("%s: %w", op, ferr))
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = wrap.Error(ctx, fmt.Errorf("%s: close: %w", op, cerr))
			}
		}()
		out, target = f, w.path
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "\t")
	if err = enc.Encode(report); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: encode: %w", op, err))
	}

	w.l.Info(wrap.WithAction(ctx, types.ActionReportDone), "report written",
		"target", target,
		"queries", len(report.Queries),
		"checksum", report.Dataset.Checksum,
	)
	return nil
}
