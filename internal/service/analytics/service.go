package analytics

import (
	"context"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/internal/service/aggregate"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/metrics"
)

// Service serves the query menu, dashboard, overview and insights from one loaded table.
type Service struct {
	table  *models.Table
	engine QueryEngine
	l      logger.Logger
	now    func() time.Time
}

func New(table *models.Table, engine QueryEngine, l logger.Logger) *Service {
	return &Service{
		table:  table,
		engine: engine,
		l:      l,
		now:    time.Now,
	}
}

func (s *Service) Engine() types.Engine {
	return s.engine.Name()
}

// Dataset describes the loaded table.
func (s *Service) Dataset() models.DatasetInfo {
	return aggregate.Describe(s.table)
}

// Menu lists the canned queries in menu order.
func (s *Service) Menu() []models.MenuItem {
	kinds := types.MenuQueries()
	items := make([]models.MenuItem, 0, len(kinds))
	for _, k := range kinds {
		items = append(items, models.MenuItem{Query: k, Title: k.Title()})
	}
	return items
}

// Run executes one catalog query over the full table.
func (s *Service) Run(ctx context.Context, kind types.QueryKind) (models.QueryResult, error) {
	ctx = wrap.WithLogCtx(ctx, wrap.LogCtx{Action: types.ActionQueryExecuted, Query: kind.String()})

	start := time.Now()
	res, err := s.engine.Run(ctx, kind, s.table)
	metrics.RecordQuery(string(s.engine.Name()), kind.String(), err, time.Since(start))
	if err != nil {
		return models.QueryResult{}, wrap.Error(ctx, err)
	}

	s.l.Debug(ctx, "query executed",
		"engine", s.engine.Name(),
		"rows", res.RowCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Dashboard recomputes the KPI row and every panel over the filtered subset.
func (s *Service) Dashboard(ctx context.Context, surface string, cfg models.FilterConfig) (models.Dashboard, error) {
	ctx = wrap.WithAction(ctx, types.ActionDashboardBuilt)

	d, err := aggregate.Dashboard(s.table, cfg, s.now().UTC())
	if err != nil {
		return models.Dashboard{}, wrap.Error(ctx, err)
	}
	metrics.RecordDashboard(surface, d.KPIs.TotalRides)

	s.l.Debug(ctx, "dashboard built", "surface", surface, "rows", d.KPIs.TotalRides)
	return d, nil
}

// DefaultDashboard is the dashboard with every filter left at its default.
func (s *Service) DefaultDashboard(ctx context.Context, surface string) (models.Dashboard, error) {
	return s.Dashboard(ctx, surface, aggregate.DefaultFilter(s.table))
}

// Overview returns the KPI tiles over the full table.
func (s *Service) Overview(ctx context.Context) (models.Overview, error) {
	kpis, err := aggregate.KPIs(s.table)
	if err != nil {
		return models.Overview{}, wrap.Error(ctx, err)
	}
	return models.Overview{
		Dataset:     s.Dataset(),
		KPIs:        kpis,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// FilterOptions lists the values offered by the dashboard filters.
func (s *Service) FilterOptions() models.FilterOptions {
	return aggregate.Options(s.table)
}

func (s *Service) Insights() models.Insights {
	return businessInsights()
}

// Report runs every menu query and the default dashboard.
func (s *Service) Report(ctx context.Context) (*models.Report, error) {
	menu := types.MenuQueries()
	queries := make([]models.QueryResult, 0, len(menu))
	for _, kind := range menu {
		res, err := s.Run(ctx, kind)
		if err != nil {
			return nil, err
		}
		queries = append(queries, res)
	}

	dashboard, err := s.DefaultDashboard(ctx, types.SurfaceReport)
	if err != nil {
		return nil, err
	}

	return &models.Report{
		Dataset:     s.Dataset(),
		Queries:     queries,
		Dashboard:   dashboard,
		GeneratedAt: s.now().UTC(),
	}, nil
}
