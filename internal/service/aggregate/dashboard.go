package aggregate

import (
	"fmt"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// DashboardPanels is the panel order of the dashboard page.
var DashboardPanels = []types.QueryKind{
	types.QueryRidesPerDay,
	types.QueryStatusBreakdown,
	types.QueryTopVehiclesByDistance,
	types.QueryAvgCustomerRatingByVehicle,
	types.QueryCancellationDistribution,
	types.QueryRevenueByPayment,
	types.QueryTopCustomersByValue,
	types.QueryDistancePerDay,
	types.QueryDriverRatingDistribution,
	types.QueryRatingScatter,
}

// Dashboard filters t with cfg and computes the KPI row and every panel over the subset.
func Dashboard(t *models.Table, cfg models.FilterConfig, now time.Time) (models.Dashboard, error) {
	sub := Apply(t, cfg)

	kpis, err := KPIs(sub)
	if err != nil {
		return models.Dashboard{}, err
	}

	panels := make([]models.QueryResult, 0, len(DashboardPanels))
	for _, kind := range DashboardPanels {
		res, err := Run(kind, sub)
		if err != nil {
			return models.Dashboard{}, fmt.Errorf("aggregate.Dashboard: %w", err)
		}
		panels = append(panels, res)
	}

	return models.Dashboard{
		Filter:      cfg,
		KPIs:        kpis,
		Panels:      panels,
		GeneratedAt: now,
	}, nil
}

// Describe summarises the table and where it came from.
func Describe(t *models.Table) models.DatasetInfo {
	from, to := t.DateRange()
	return models.DatasetInfo{
		Source:  t.Source(),
		Rows:    t.Len(),
		Columns: t.Columns(),
		From:    from,
		To:      to,
	}
}
