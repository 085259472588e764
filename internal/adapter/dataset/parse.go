package dataset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// absent lists the cell values treated as a missing value.
var absent = map[string]struct{}{
	"":     {},
	"null": {},
	"NULL": {},
	"NaN":  {},
	"NA":   {},
	"N/A":  {},
	"None": {},
}

var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"1/2/2006",
	"01-02-06",
	"02-01-2006",
}

// Excel serial day numbers accepted for dates, up to 9999-12-31.
const maxExcelSerial = 2958465

var separators = regexp.MustCompile(`[\s\-]+`)

// NormalizeHeader trims a header cell and joins inner runs of spaces and hyphens with '_'.
func NormalizeHeader(h string) string {
	return separators.ReplaceAllString(strings.TrimSpace(h), "_")
}

// row reads the cells of one data line by canonical column.
type row struct {
	cells []string
	index map[models.Column]int
	line  int
}

func (r row) text(c models.Column) *string {
	i, ok := r.index[c]
	if !ok || i >= len(r.cells) {
		return nil
	}
	v := strings.TrimSpace(r.cells[i])
	if _, ok := absent[v]; ok {
		return nil
	}
	return &v
}

func (r row) str(c models.Column) string {
	if v := r.text(c); v != nil {
		return *v
	}
	return ""
}

func (r row) number(c models.Column) (*float64, error) {
	v := r.text(c)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: column %s: %q is not a number", types.ErrMalformedDataset, r.line, c, *v)
	}
	return &n, nil
}

func (r row) date() (time.Time, error) {
	v := r.text(models.ColDate)
	if v == nil {
		return time.Time{}, fmt.Errorf("%w: row %d: missing date", types.ErrMalformedDataset, r.line)
	}
	d, ok := ParseDate(*v)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: row %d: unparsable date %q", types.ErrMalformedDataset, r.line, *v)
	}
	return d, nil
}

// ParseDate accepts the known date layouts and Excel serial day numbers.
// The result is truncated to midnight UTC.
func ParseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return midnight(t), true
		}
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 && serial <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return midnight(t), true
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parse maps the header onto canonical columns and converts every data line.
func parse(rows [][]string) ([]models.Booking, []models.Column, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no header row", types.ErrMalformedDataset)
	}

	index := make(map[models.Column]int)
	columns := make([]models.Column, 0, len(rows[0]))
	for i, h := range rows[0] {
		c, ok := models.LookupColumn(NormalizeHeader(h))
		if !ok {
			continue
		}
		if _, dup := index[c]; dup {
			continue
		}
		index[c] = i
		columns = append(columns, c)
	}

	var missing []models.Column
	for _, c := range models.RequiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %w: %v", types.ErrMalformedDataset, types.ErrMissingColumn, missing)
	}

	bookings := make([]models.Booking, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		b, err := toBooking(row{cells: cells, index: index, line: i + 2})
		if err != nil {
			return nil, nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, columns, nil
}

func toBooking(r row) (models.Booking, error) {
	date, err := r.date()
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		Date:             date,
		Time:             r.text(models.ColTime),
		BookingID:        r.str(models.ColBookingID),
		Status:           types.BookingStatus(r.str(models.ColBookingStatus)),
		CustomerID:       r.str(models.ColCustomerID),
		VehicleType:      r.str(models.ColVehicleType),
		PickupLocation:   r.text(models.ColPickupLocation),
		DropLocation:     r.text(models.ColDropLocation),
		CustomerReason:   r.text(models.ColCustomerReason),
		DriverReason:     r.text(models.ColDriverReason),
		Incomplete:       r.text(models.ColIncomplete),
		IncompleteReason: r.text(models.ColIncompleteReason),
		PaymentMethod:    r.str(models.ColPaymentMethod),
	}

	numbers := []struct {
		col models.Column
		dst **float64
	}{
		{models.ColVTAT, &b.VTAT},
		{models.ColCTAT, &b.CTAT},
		{models.ColBookingValue, &b.BookingValue},
		{models.ColRideDistance, &b.RideDistance},
		{models.ColDriverRatings, &b.DriverRating},
		{models.ColCustomerRating, &b.CustomerRating},
	}
	for _, n := range numbers {
		v, err := r.number(n.col)
		if err != nil {
			return models.Booking{}, err
		}
		*n.dst = v
	}
	return b, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
