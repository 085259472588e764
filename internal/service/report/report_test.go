package report

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
)

type fakeBuilder struct {
	report *models.Report
	err    error
}

func (b fakeBuilder) Report(context.Context) (*models.Report, error) { return b.report, b.err }

type fakePublisher struct {
	got *models.Report
	err error
}

func (p *fakePublisher) Publish(_ context.Context, r *models.Report) error {
	p.got = r
	return p.err
}

func newService(b Builder, p Publisher) *Service {
	return New(b, p, logger.New(io.Discard, "test", logger.LevelError))
}

func TestRun(t *testing.T) {
	r := &models.Report{Queries: make([]models.QueryResult, 10)}
	pub := &fakePublisher{}
	require.NoError(t, newService(fakeBuilder{report: r}, pub).Run(context.Background()))
	assert.Same(t, r, pub.got)
}

func TestRun_Errors(t *testing.T) {
	boom := errors.New("boom")

	pub := &fakePublisher{}
	err := newService(fakeBuilder{err: boom}, pub).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, pub.got)

	err = newService(fakeBuilder{report: &models.Report{}}, &fakePublisher{err: boom}).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "publish")
}
