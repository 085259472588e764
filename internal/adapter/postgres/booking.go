package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	pg "github.com/Temutjin2k/ride-analytics/pkg/postgres"
	"github.com/Temutjin2k/ride-analytics/pkg/metrics"
)

// BookingRepo stages the dataset into the bookings table and answers the menu queries in SQL.
type BookingRepo struct {
	db Querier
}

func NewBookingRepo(db Querier) *BookingRepo {
	return &BookingRepo{db: db}
}

// Recreate drops the bookings table and creates it for the given dataset columns.
func (r *BookingRepo) Recreate(ctx context.Context, columns []models.Column) (err error) {
	const op = "BookingRepo.Recreate"
	defer r.observe("recreate", time.Now(), &err)

	q := TxorDB(ctx, r.db)
	if _, err = q.Exec(ctx, "DROP TABLE IF EXISTS "+bookingsTable); err != nil {
		return fmt.Errorf("%s: drop: %w", op, err)
	}
	if _, err = q.Exec(ctx, createTableSQL(columns)); err != nil {
		return fmt.Errorf("%s: create: %w", op, err)
	}
	return nil
}

// Copy bulk loads every row of t and returns the number of rows written.
func (r *BookingRepo) Copy(ctx context.Context, t *models.Table) (n int64, err error) {
	const op = "BookingRepo.Copy"
	defer r.observe("copy", time.Now(), &err)

	n, err = TxorDB(ctx, r.db).CopyFrom(ctx, pgx.Identifier{bookingsTable}, copyColumns(t.Columns()), copySource(t))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Count returns the number of staged rows.
func (r *BookingRepo) Count(ctx context.Context) (n int, err error) {
	const op = "BookingRepo.Count"
	defer r.observe("count", time.Now(), &err)

	if err = TxorDB(ctx, r.db).QueryRow(ctx, "SELECT COUNT(*) FROM "+bookingsTable).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return n, nil
}

// Run answers a menu query from the staged table. The returned result carries
// the payload only.
func (r *BookingRepo) Run(ctx context.Context, kind types.QueryKind) (res models.QueryResult, err error) {
	const op = "BookingRepo.Run"
	defer r.observe(kind.String(), time.Now(), &err)

	switch kind {
	case types.QuerySuccessfulBookings:
		err = r.records(ctx, &res, "booking_status = $1", string(types.StatusSuccess))
	case types.QueryAvgDistanceByVehicle:
		err = r.avgByVehicle(ctx, &res, "ride_distance")
	case types.QueryCustomerCancellations:
		err = r.scalar(ctx, &res, `SELECT COUNT(*)::float8 FROM bookings WHERE booking_status = $1`,
			string(types.StatusCanceledByCustomer))
	case types.QueryTopCustomers:
		err = r.groups(ctx, &res, `
			SELECT customer_id, COUNT(*) AS rides, NULL::float8
			FROM bookings
			WHERE trim(customer_id) <> ''
			GROUP BY customer_id
			ORDER BY rides DESC, MIN(row_no)
			LIMIT 5`)
	case types.QueryDriverPersonalCarCancellations:
		err = r.scalar(ctx, &res, `
			SELECT COUNT(*)::float8
			FROM bookings
			WHERE booking_status = $1
			AND (canceled_rides_by_driver LIKE '%Personal%' OR canceled_rides_by_driver LIKE '%Car%')`,
			string(types.StatusCanceledByDriver))
	case types.QueryPrimeSedanDriverRatings:
		err = r.ratingRange(ctx, &res)
	case types.QueryUPIBookings:
		err = r.records(ctx, &res, "payment_method = $1", types.PaymentUPI)
	case types.QueryAvgCustomerRatingByVehicle:
		err = r.avgByVehicle(ctx, &res, "customer_rating")
	case types.QuerySuccessRevenue:
		err = r.scalar(ctx, &res, `SELECT COALESCE(SUM(booking_value), 0) FROM bookings WHERE booking_status = $1`,
			string(types.StatusSuccess))
	case types.QueryCancellationReasons:
		err = r.cancellations(ctx, &res)
	default:
		return res, fmt.Errorf("%s: %w: %s", op, types.ErrUnsupportedQuery, kind)
	}
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("%s: %s: %w", op, kind, mapError(err))
	}
	return res, nil
}

// StagedColumns lists the bookings table columns in table order.
func (r *BookingRepo) StagedColumns(ctx context.Context) ([]string, error) {
	rows, err := TxorDB(ctx, r.db).Query(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`, bookingsTable)
	if err != nil {
		return nil, err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, types.ErrNotStaged
	}
	return names, nil
}

func (r *BookingRepo) records(ctx context.Context, res *models.QueryResult, where string, args ...any) error {
	names, err := r.StagedColumns(ctx)
	if err != nil {
		return err
	}
	selected := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := byName[n]; ok {
			selected = append(selected, n)
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s",
		strings.Join(selected, ", "), bookingsTable, where, rowNoColumn)
	rows, err := TxorDB(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	out := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(scanTargets(&b, selected)...); err != nil {
			return err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	res.Kind, res.Records, res.RowCount = models.KindRecords, out, len(out)
	return nil
}

func (r *BookingRepo) avgByVehicle(ctx context.Context, res *models.QueryResult, measure string) error {
	return r.groups(ctx, res, fmt.Sprintf(`
		SELECT vehicle_type, COUNT(*), AVG(%s)
		FROM bookings
		WHERE trim(vehicle_type) <> ''
		GROUP BY vehicle_type
		ORDER BY vehicle_type COLLATE "C"`, measure))
}

func (r *BookingRepo) groups(ctx context.Context, res *models.QueryResult, query string, args ...any) error {
	rows, err := TxorDB(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return err
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GroupStat, error) {
		var g models.GroupStat
		err := row.Scan(&g.Key, &g.Count, &g.Value)
		return g, err
	})
	if err != nil {
		return err
	}
	res.Kind, res.Groups, res.RowCount = models.KindGroups, groups, len(groups)
	return nil
}

func (r *BookingRepo) scalar(ctx context.Context, res *models.QueryResult, query string, args ...any) error {
	var v float64
	if err := TxorDB(ctx, r.db).QueryRow(ctx, query, args...).Scan(&v); err != nil {
		return err
	}
	res.Kind, res.Scalar, res.RowCount = models.KindScalar, &models.Scalar{Value: v}, 1
	return nil
}

func (r *BookingRepo) ratingRange(ctx context.Context, res *models.QueryResult) error {
	var rr models.RatingRange
	err := TxorDB(ctx, r.db).QueryRow(ctx, `
		SELECT MIN(driver_ratings), MAX(driver_ratings), COUNT(driver_ratings)
		FROM bookings
		WHERE vehicle_type = $1`, types.VehiclePrimeSedan).Scan(&rr.Min, &rr.Max, &rr.Count)
	if err != nil {
		return err
	}
	res.Kind, res.Range, res.RowCount = models.KindRange, &rr, 1
	return nil
}

func (r *BookingRepo) cancellations(ctx context.Context, res *models.QueryResult) error {
	rows, err := TxorDB(ctx, r.db).Query(ctx, `
		SELECT booking_id, booking_status, COALESCE(canceled_rides_by_customer, canceled_rides_by_driver)
		FROM bookings
		WHERE booking_status <> $1
		ORDER BY row_no`, string(types.StatusSuccess))
	if err != nil {
		return err
	}
	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CancellationRecord, error) {
		var c models.CancellationRecord
		err := row.Scan(&c.BookingID, (*string)(&c.Status), &c.Reason)
		return c, err
	})
	if err != nil {
		return err
	}
	res.Kind, res.Cancellations, res.RowCount = models.KindCancellations, recs, len(recs)
	return nil
}

func (r *BookingRepo) observe(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(operation, *err, time.Since(start))
}

// mapError turns missing schema objects into domain errors.
func mapError(err error) error {
	switch {
	case pg.IsUndefinedColumn(err):
		return fmt.Errorf("%w: %w", types.ErrMissingColumn, err)
	case pg.IsUndefinedTable(err):
		return fmt.Errorf("%w: %w", types.ErrNotStaged, err)
	}
	return err
}
