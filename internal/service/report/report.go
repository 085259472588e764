package report

import (
	"context"
	"fmt"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
)

// Builder computes the full report.
type Builder interface {
	Report(ctx context.Context) (*models.Report, error)
}

// Publisher delivers a finished report.
type Publisher interface {
	Publish(ctx context.Context, report *models.Report) error
}

type Service struct {
	builder Builder
	pub     Publisher
	l       logger.Logger
}

func New(builder Builder, pub Publisher, l logger.Logger) *Service {
	return &Service{builder: builder, pub: pub, l: l}
}

// Run builds the report once and hands it to the publisher.
func (s *Service) Run(ctx context.Context) error {
	const op = "report.Run"
	ctx = wrap.WithAction(ctx, types.ActionReportDone)

	r, err := s.builder.Report(ctx)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: build: %w", op, err))
	}
	if err := s.pub.Publish(ctx, r); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: publish: %w", op, err))
	}

	s.l.Debug(ctx, "report finished", "queries", len(r.Queries), "panels", len(r.Dashboard.Panels))
	return nil
}
