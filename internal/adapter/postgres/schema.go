package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
)

const (
	bookingsTable = "bookings"
	rowNoColumn   = "row_no"
)

type sqlColumn struct {
	name    string
	sqlType string
	value   func(*models.Booking) any
	target  func(*models.Booking) any
}

// sqlColumns maps dataset columns onto the staging table. Only columns present
// in the dataset are created, so queries over absent ones fail with 42703.
var sqlColumns = map[models.Column]sqlColumn{
	models.ColDate: {"booking_date", "DATE NOT NULL",
		func(b *models.Booking) any { return b.Date }, func(b *models.Booking) any { return &b.Date }},
	models.ColTime: {"booking_time", "TEXT",
		func(b *models.Booking) any { return b.Time }, func(b *models.Booking) any { return &b.Time }},
	models.ColBookingID: {"booking_id", "TEXT NOT NULL",
		func(b *models.Booking) any { return b.BookingID }, func(b *models.Booking) any { return &b.BookingID }},
	models.ColBookingStatus: {"booking_status", "TEXT NOT NULL",
		func(b *models.Booking) any { return string(b.Status) }, func(b *models.Booking) any { return (*string)(&b.Status) }},
	models.ColCustomerID: {"customer_id", "TEXT NOT NULL",
		func(b *models.Booking) any { return b.CustomerID }, func(b *models.Booking) any { return &b.CustomerID }},
	models.ColVehicleType: {"vehicle_type", "TEXT NOT NULL",
		func(b *models.Booking) any { return b.VehicleType }, func(b *models.Booking) any { return &b.VehicleType }},
	models.ColPickupLocation: {"pickup_location", "TEXT",
		func(b *models.Booking) any { return b.PickupLocation }, func(b *models.Booking) any { return &b.PickupLocation }},
	models.ColDropLocation: {"drop_location", "TEXT",
		func(b *models.Booking) any { return b.DropLocation }, func(b *models.Booking) any { return &b.DropLocation }},
	models.ColVTAT: {"v_tat", "DOUBLE PRECISION",
		func(b *models.Booking) any { return b.VTAT }, func(b *models.Booking) any { return &b.VTAT }},
	models.ColCTAT: {"c_tat", "DOUBLE PRECISION",
		func(b *models.Booking) any { return b.CTAT }, func(b *models.Booking) any { return &b.CTAT }},
	models.ColCustomerReason: {"canceled_rides_by_customer", "TEXT",
		func(b *models.Booking) any { return b.CustomerReason }, func(b *models.Booking) any { return &b.CustomerReason }},
	models.ColDriverReason: {"canceled_rides_by_driver", "TEXT",
		func(b *models.Booking) any { return b.DriverReason }, func(b *models.Booking) any { return &b.DriverReason }},
	models.ColIncomplete: {"incomplete_rides", "TEXT",
		func(b *models.Booking) any { return b.Incomplete }, func(b *models.Booking) any { return &b.Incomplete }},
	models.ColIncompleteReason: {"incomplete_rides_reason", "TEXT",
		func(b *models.Booking) any { return b.IncompleteReason }, func(b *models.Booking) any { return &b.IncompleteReason }},
	models.ColBookingValue: {"booking_value", "DOUBLE PRECISION",
		func(b *models.Booking) any { return b.BookingValue }, func(b *models.Booking) any { return &b.BookingValue }},
	models.ColPaymentMethod: {"payment_method", "TEXT NOT NULL",
		func(b *models.Booking) any { return b.PaymentMethod }, func(b *models.Booking) any { return &b.PaymentMethod }},
	models.ColRideDistance: {"ride_distance", "DOUBLE PRECISION",
		func(b *models.Booking) any { return b.RideDistance }, func(b *models.Booking) any { return &b.RideDistance }},
	models.ColDriverRatings: {"driver_ratings", "DOUBLE PRECISION",
		func(b *models.Booking) any { return b.DriverRating }, func(b *models.Booking) any { return &b.DriverRating }},
	models.ColCustomerRating: {"customer_rating", "DOUBLE PRECISION",
		func(b *models.Booking) any { return b.CustomerRating }, func(b *models.Booking) any { return &b.CustomerRating }},
}

var byName = func() map[string]sqlColumn {
	m := make(map[string]sqlColumn, len(sqlColumns))
	for _, c := range sqlColumns {
		m[c.name] = c
	}
	return m
}()

// createTableSQL builds the DDL for the given dataset columns plus the row order column.
func createTableSQL(columns []models.Column) string {
	defs := []string{rowNoColumn + " INTEGER NOT NULL"}
	for _, c := range columns {
		if sc, ok := sqlColumns[c]; ok {
			defs = append(defs, sc.name+" "+sc.sqlType)
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", bookingsTable, strings.Join(defs, ",\n\t"))
}

// copyColumns returns the COPY column list matching copySource.
func copyColumns(columns []models.Column) []string {
	names := []string{rowNoColumn}
	for _, c := range columns {
		if sc, ok := sqlColumns[c]; ok {
			names = append(names, sc.name)
		}
	}
	return names
}

// copySource streams the table rows in file order.
func copySource(t *models.Table) pgx.CopyFromSource {
	columns := t.Columns()
	i := -1
	return pgx.CopyFromFunc(func() ([]any, error) {
		i++
		if i >= t.Len() {
			return nil, nil
		}
		b := t.At(i)
		values := []any{i}
		for _, c := range columns {
			if sc, ok := sqlColumns[c]; ok {
				values = append(values, sc.value(b))
			}
		}
		return values, nil
	})
}

// scanTargets returns pointers into b for each staged column name, in order.
func scanTargets(b *models.Booking, names []string) []any {
	targets := make([]any, 0, len(names))
	for _, n := range names {
		if sc, ok := byName[n]; ok {
			targets = append(targets, sc.target(b))
		}
	}
	return targets
}
