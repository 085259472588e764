package aggregate

import (
	"fmt"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// computation is one catalog entry: the columns it reads and the function producing its payload.
type computation struct {
	columns []models.Column
	chart   models.ChartKind
	run     func(t *models.Table, res *models.QueryResult)
}

var catalog = map[types.QueryKind]computation{
	types.QuerySuccessfulBookings: {
		columns: cols(models.ColBookingStatus),
		chart:   models.ChartPie,
		run: func(t *models.Table, res *models.QueryResult) {
			setRecords(res, SuccessfulBookings(t).Rows())
		},
	},
	types.QueryAvgDistanceByVehicle: {
		columns: cols(models.ColVehicleType, models.ColRideDistance),
		chart:   models.ChartHorizontalBar,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, AvgDistanceByVehicle(t))
		},
	},
	types.QueryCustomerCancellations: {
		columns: cols(models.ColBookingStatus),
		chart:   models.ChartIndicator,
		run: func(t *models.Table, res *models.QueryResult) {
			setScalar(res, float64(CustomerCancellations(t)))
		},
	},
	types.QueryTopCustomers: {
		columns: cols(models.ColCustomerID),
		chart:   models.ChartHorizontalBar,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, TopCustomers(t, TopLimit))
		},
	},
	types.QueryDriverPersonalCarCancellations: {
		columns: cols(models.ColBookingStatus, models.ColDriverReason),
		chart:   models.ChartIndicator,
		run: func(t *models.Table, res *models.QueryResult) {
			setScalar(res, float64(DriverIssueCancellations(t)))
		},
	},
	types.QueryPrimeSedanDriverRatings: {
		columns: cols(models.ColVehicleType, models.ColDriverRatings),
		chart:   models.ChartGroupedBar,
		run: func(t *models.Table, res *models.QueryResult) {
			r := PrimeSedanDriverRatings(t)
			res.Kind, res.Range, res.RowCount = models.KindRange, &r, 1
		},
	},
	types.QueryUPIBookings: {
		columns: cols(models.ColPaymentMethod),
		chart:   models.ChartPie,
		run: func(t *models.Table, res *models.QueryResult) {
			setRecords(res, UPIBookings(t).Rows())
		},
	},
	types.QueryAvgCustomerRatingByVehicle: {
		columns: cols(models.ColVehicleType, models.ColCustomerRating),
		chart:   models.ChartBar,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, AvgCustomerRatingByVehicle(t))
		},
	},
	types.QuerySuccessRevenue: {
		columns: cols(models.ColBookingStatus, models.ColBookingValue),
		chart:   models.ChartIndicator,
		run: func(t *models.Table, res *models.QueryResult) {
			setScalar(res, SuccessRevenue(t))
		},
	},
	types.QueryCancellationReasons: {
		columns: cols(models.ColBookingID, models.ColBookingStatus, models.ColCustomerReason, models.ColDriverReason),
		chart:   models.ChartHistogram,
		run: func(t *models.Table, res *models.QueryResult) {
			recs := CancellationReasons(t)
			res.Kind, res.Cancellations, res.RowCount = models.KindCancellations, recs, len(recs)
		},
	},
	types.QueryRidesPerDay: {
		columns: cols(models.ColDate),
		chart:   models.ChartLine,
		run: func(t *models.Table, res *models.QueryResult) {
			setSeries(res, RidesPerDay(t))
		},
	},
	types.QueryDistancePerDay: {
		columns: cols(models.ColDate, models.ColRideDistance),
		chart:   models.ChartLine,
		run: func(t *models.Table, res *models.QueryResult) {
			setSeries(res, DistancePerDay(t))
		},
	},
	types.QueryTopVehiclesByDistance: {
		columns: cols(models.ColVehicleType, models.ColRideDistance),
		chart:   models.ChartBar,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, TopVehiclesByDistance(t, TopLimit))
		},
	},
	types.QueryTopCustomersByValue: {
		columns: cols(models.ColCustomerID, models.ColBookingValue),
		chart:   models.ChartBar,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, TopCustomersByValue(t, TopLimit))
		},
	},
	types.QueryRevenueByPayment: {
		columns: cols(models.ColBookingStatus, models.ColPaymentMethod, models.ColBookingValue),
		chart:   models.ChartBar,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, RevenueByPayment(t))
		},
	},
	types.QueryCancellationDistribution: {
		columns: cols(models.ColCustomerReason, models.ColDriverReason),
		chart:   models.ChartBar,
		run: func(t *models.Table, res *models.QueryResult) {
			s := CancellationDistribution(t)
			res.Kind, res.Split, res.RowCount = models.KindSplit, &s, 1
		},
	},
	types.QueryStatusBreakdown: {
		columns: cols(models.ColBookingStatus),
		chart:   models.ChartPie,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, StatusBreakdown(t))
		},
	},
	types.QueryPaymentMethodCounts: {
		columns: cols(models.ColPaymentMethod),
		chart:   models.ChartPie,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, PaymentMethodCounts(t))
		},
	},
	types.QueryDriverRatingDistribution: {
		columns: cols(models.ColDriverRatings),
		chart:   models.ChartHistogram,
		run: func(t *models.Table, res *models.QueryResult) {
			setGroups(res, DriverRatingDistribution(t))
		},
	},
	types.QueryRatingScatter: {
		columns: cols(models.ColCustomerRating, models.ColDriverRatings),
		chart:   models.ChartScatter,
		run: func(t *models.Table, res *models.QueryResult) {
			pts := RatingScatter(t)
			res.Kind, res.Points, res.RowCount = models.KindPoints, pts, len(pts)
		},
	},
}

// kpiColumns are read by ComputeKPIs.
var kpiColumns = cols(models.ColBookingStatus, models.ColBookingValue, models.ColDriverRatings)

// Run executes one catalog query over t.
func Run(kind types.QueryKind, t *models.Table) (models.QueryResult, error) {
	const op = "aggregate.Run"

	c, ok := catalog[kind]
	if !ok {
		return models.QueryResult{}, fmt.Errorf("%s: %w: %s", op, types.ErrUnknownQuery, kind)
	}
	if err := RequireColumns(t, c.columns...); err != nil {
		return models.QueryResult{}, fmt.Errorf("%s: %s: %w", op, kind, err)
	}

	res := Header(kind)
	res.InputRows = t.Len()
	c.run(t, &res)
	return res, nil
}

// Header returns the identifying part of a result for kind, without a payload.
func Header(kind types.QueryKind) models.QueryResult {
	return models.QueryResult{
		Query: kind,
		Title: kind.Title(),
		Chart: catalog[kind].chart,
	}
}

// Columns returns the source columns kind reads.
func Columns(kind types.QueryKind) []models.Column {
	return catalog[kind].columns
}

// RequireColumns fails with ErrMissingColumn naming every column t lacks.
func RequireColumns(t *models.Table, columns ...models.Column) error {
	if missing := t.Missing(columns...); len(missing) > 0 {
		return fmt.Errorf("%w: %v", types.ErrMissingColumn, missing)
	}
	return nil
}

// KPIs computes the metric tiles, checking the columns first.
func KPIs(t *models.Table) (models.KPIs, error) {
	if err := RequireColumns(t, kpiColumns...); err != nil {
		return models.KPIs{}, fmt.Errorf("aggregate.KPIs: %w", err)
	}
	return ComputeKPIs(t), nil
}

func cols(c ...models.Column) []models.Column { return c }

func setScalar(res *models.QueryResult, v float64) {
	res.Kind, res.Scalar, res.RowCount = models.KindScalar, &models.Scalar{Value: v}, 1
}

func setGroups(res *models.QueryResult, g []models.GroupStat) {
	res.Kind, res.Groups, res.RowCount = models.KindGroups, g, len(g)
}

func setRecords(res *models.QueryResult, r []models.Booking) {
	res.Kind, res.Records, res.RowCount = models.KindRecords, r, len(r)
}

func setSeries(res *models.QueryResult, s []models.DailyStat) {
	res.Kind, res.Series, res.RowCount = models.KindSeries, s, len(s)
}
