package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/internal/service/aggregate"
	pg "github.com/Temutjin2k/ride-analytics/pkg/postgres"
	"github.com/Temutjin2k/ride-analytics/pkg/trm"
)

func f(v float64) *float64 { return &v }
func s(v string) *string    { return &v }

func fixture(columns []models.Column) *models.Table {
	day := func(d int) time.Time { return time.Date(2024, time.July, d, 0, 0, 0, 0, time.UTC) }
	rows := []models.Booking{
		{Date: day(1), BookingID: "B1", Status: types.StatusSuccess, CustomerID: "C1", VehicleType: "Prime Sedan", PaymentMethod: "UPI",
			BookingValue: f(100), RideDistance: f(10), DriverRating: f(4.5), CustomerRating: f(4.0)},
		{Date: day(1), BookingID: "B2", Status: types.StatusCanceledByCustomer, CustomerID: "C2", VehicleType: "Auto", PaymentMethod: "Cash",
			CustomerReason: s("Change of plans")},
		{Date: day(2), BookingID: "B3", Status: types.StatusCanceledByDriver, CustomerID: "C1", VehicleType: "Prime Sedan", PaymentMethod: "UPI",
			DriverReason: s("Personal & Car related issue")},
		{Date: day(3), BookingID: "B4", Status: types.StatusSuccess, CustomerID: "C3", VehicleType: "Auto", PaymentMethod: "Card",
			BookingValue: f(80), RideDistance: f(6), DriverRating: f(3.5), CustomerRating: f(5.0)},
	}
	return models.NewTable(rows, columns, models.Source{Path: "fixture.csv"})
}

func TestCreateTableSQL(t *testing.T) {
	ddl := createTableSQL([]models.Column{models.ColDate, models.ColBookingStatus, models.ColRideDistance})
	assert.Contains(t, ddl, "CREATE TABLE bookings")
	assert.Contains(t, ddl, "row_no INTEGER NOT NULL")
	assert.Contains(t, ddl, "booking_date DATE NOT NULL")
	assert.Contains(t, ddl, "ride_distance DOUBLE PRECISION")
	assert.NotContains(t, ddl, "booking_value")
}

func TestCopySource(t *testing.T) {
	tbl := fixture([]models.Column{models.ColBookingID, models.ColBookingValue})
	assert.Equal(t, []string{"row_no", "booking_id", "booking_value"}, copyColumns(tbl.Columns()))

	src := copySource(tbl)
	var got [][]any
	for src.Next() {
		values, err := src.Values()
		require.NoError(t, err)
		got = append(got, values)
	}
	require.NoError(t, src.Err())
	require.Len(t, got, tbl.Len())
	assert.Equal(t, 0, got[0][0])
	assert.Equal(t, "B1", got[0][1])
	assert.Equal(t, f(100), got[0][2])
	assert.Nil(t, got[1][2].(*float64))
}

func TestScanTargets(t *testing.T) {
	var b models.Booking
	targets := scanTargets(&b, []string{"booking_id", "booking_status", "unknown", "driver_ratings"})
	require.Len(t, targets, 3)

	*targets[0].(*string) = "B9"
	*targets[1].(*string) = "Success"
	*targets[2].(**float64) = f(4.9)
	assert.Equal(t, "B9", b.BookingID)
	assert.Equal(t, types.StatusSuccess, b.Status)
	assert.Equal(t, 4.9, *b.DriverRating)
}

func TestMapError(t *testing.T) {
	err := mapError(fmt.Errorf("query: %w", &pgconn.PgError{Code: pg.CodeUndefinedColumn}))
	assert.ErrorIs(t, err, types.ErrMissingColumn)

	err = mapError(&pgconn.PgError{Code: pg.CodeUndefinedTable})
	assert.ErrorIs(t, err, types.ErrNotStaged)

	boom := fmt.Errorf("boom")
	assert.Same(t, boom, mapError(boom))
}

func TestRun_UnsupportedQuery(t *testing.T) {
	_, err := NewBookingRepo(nil).Run(context.Background(), types.QueryRatingScatter)
	require.ErrorIs(t, err, types.ErrUnsupportedQuery)
}

type dsnConfig string

func (c dsnConfig) GetDSN() string      { return string(c) }
func (c dsnConfig) GetMaxConns() int32 { return 2 }

// TestStagedQueriesMatchMemory runs only against a real server.
func TestStagedQueriesMatchMemory(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	ctx := context.Background()

	db, err := pg.New(ctx, dsnConfig(dsn))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	repo := NewBookingRepo(db.Pool)
	tm := trm.New(db.Pool)

	tbl := fixture(models.AllColumns)
	require.NoError(t, tm.Do(ctx, func(ctx context.Context) error {
		if err := repo.Recreate(ctx, tbl.Columns()); err != nil {
			return err
		}
		_, err := repo.Copy(ctx, tbl)
		return err
	}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, tbl.Len(), n)

	for _, kind := range types.MenuQueries() {
		want, err := aggregate.Run(kind, tbl)
		require.NoError(t, err)

		var got models.QueryResult
		require.NoError(t, tm.DoReadOnly(ctx, func(ctx context.Context) error {
			got, err = repo.Run(ctx, kind)
			return err
		}), kind.String())

		assert.Equal(t, want.Kind, got.Kind, kind.String())
		assert.Equal(t, want.RowCount, got.RowCount, kind.String())
		assert.Equal(t, want.Payload(), got.Payload(), kind.String())
	}

	// a dataset without ride distance cannot answer the distance query
	narrow := fixture(models.RequiredColumns)
	require.NoError(t, tm.Do(ctx, func(ctx context.Context) error {
		if err := repo.Recreate(ctx, narrow.Columns()); err != nil {
			return err
		}
		_, err := repo.Copy(ctx, narrow)
		return err
	}))
	_, err = repo.Run(ctx, types.QueryAvgDistanceByVehicle)
	require.ErrorIs(t, err, types.ErrMissingColumn)
}
