package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

const (
	TopLimit = 5

	ratingBucketWidth = 0.5
	ratingMin         = 1.0
	ratingMax         = 5.0
)

// driverIssueMarkers are matched against the driver cancellation reason.
var driverIssueMarkers = []string{"Personal", "Car"}

func isSuccess(b *models.Booking) bool { return b.IsSuccess() }

// SuccessfulBookings returns the Success subset of t.
func SuccessfulBookings(t *models.Table) *models.Table {
	return t.Where(isSuccess)
}

// AvgDistanceByVehicle is the mean ride distance per vehicle type, sorted by vehicle type.
func AvgDistanceByVehicle(t *models.Table) []models.GroupStat {
	groups := groupBy(t, vehicleKey, rideDistance)
	sortByKey(groups)
	return stats(groups, (*group).mean)
}

func CustomerCancellations(t *models.Table) int {
	return count(t, func(b *models.Booking) bool { return b.Status == types.StatusCanceledByCustomer })
}

// TopCustomers ranks customers by ride count.
func TopCustomers(t *models.Table, n int) []models.GroupStat {
	return stats(topN(groupBy(t, customerKey, nil), n, byCount), nil)
}

// DriverIssueCancellations counts driver cancellations whose reason mentions a personal or car issue.
func DriverIssueCancellations(t *models.Table) int {
	return count(t, func(b *models.Booking) bool {
		if b.Status != types.StatusCanceledByDriver || b.DriverReason == nil {
			return false
		}
		for _, marker := range driverIssueMarkers {
			if strings.Contains(*b.DriverReason, marker) {
				return true
			}
		}
		return false
	})
}

// PrimeSedanDriverRatings is the driver rating range over Prime Sedan bookings.
func PrimeSedanDriverRatings(t *models.Table) models.RatingRange {
	var r models.RatingRange
	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		if b.VehicleType != types.VehiclePrimeSedan || b.DriverRating == nil {
			continue
		}
		v := *b.DriverRating
		if r.Min == nil || v < *r.Min {
			r.Min = ptr(v)
		}
		if r.Max == nil || v > *r.Max {
			r.Max = ptr(v)
		}
		r.Count++
	}
	return r
}

func UPIBookings(t *models.Table) *models.Table {
	return t.Where(func(b *models.Booking) bool { return b.PaymentMethod == types.PaymentUPI })
}

// AvgCustomerRatingByVehicle is the mean customer rating per vehicle type, sorted by vehicle type.
func AvgCustomerRatingByVehicle(t *models.Table) []models.GroupStat {
	groups := groupBy(t, vehicleKey, customerRating)
	sortByKey(groups)
	return stats(groups, (*group).mean)
}

// SuccessRevenue sums booking value over successful rides.
func SuccessRevenue(t *models.Table) float64 {
	var total float64
	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		if b.IsSuccess() && b.BookingValue != nil {
			total += *b.BookingValue
		}
	}
	return total
}

// CancellationReasons lists every non-successful booking with the customer
// reason, falling back to the driver reason.
func CancellationReasons(t *models.Table) []models.CancellationRecord {
	out := make([]models.CancellationRecord, 0)
	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		if b.IsSuccess() {
			continue
		}
		reason := b.CustomerReason
		if reason == nil {
			reason = b.DriverReason
		}
		out = append(out, models.CancellationRecord{BookingID: b.BookingID, Status: b.Status, Reason: reason})
	}
	return out
}

// RidesPerDay counts bookings per date, oldest first.
func RidesPerDay(t *models.Table) []models.DailyStat {
	return daily(t, func(g *group) float64 { return float64(g.count) }, nil)
}

// DistancePerDay sums ride distance per date, oldest first.
func DistancePerDay(t *models.Table) []models.DailyStat {
	return daily(t, bySum, rideDistance)
}

func daily(t *models.Table, value func(*group) float64, measure measureFunc) []models.DailyStat {
	groups := groupBy(t, dateKey, measure)
	sortByKey(groups)
	out := make([]models.DailyStat, 0, len(groups))
	for _, g := range groups {
		d, err := time.Parse(dateLayout, g.key)
		if err != nil {
			continue
		}
		out = append(out, models.DailyStat{Date: d, Value: value(g)})
	}
	return out
}

// TopVehiclesByDistance ranks vehicle types by summed ride distance.
func TopVehiclesByDistance(t *models.Table, n int) []models.GroupStat {
	return stats(topN(groupBy(t, vehicleKey, rideDistance), n, bySum), (*group).total)
}

// TopCustomersByValue ranks customers by summed booking value.
func TopCustomersByValue(t *models.Table, n int) []models.GroupStat {
	return stats(topN(groupBy(t, customerKey, bookingValue), n, bySum), (*group).total)
}

// RevenueByPayment sums successful booking value per payment method.
func RevenueByPayment(t *models.Table) []models.GroupStat {
	groups := groupBy(t.Where(isSuccess), paymentKey, bookingValue)
	sortByKey(groups)
	return stats(groups, (*group).total)
}

// CancellationDistribution counts present customer and driver reasons independently.
func CancellationDistribution(t *models.Table) models.CancellationSplit {
	var s models.CancellationSplit
	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		if b.CustomerReason != nil {
			s.Customer++
		}
		if b.DriverReason != nil {
			s.Driver++
		}
	}
	return s
}

func StatusBreakdown(t *models.Table) []models.GroupStat {
	groups := groupBy(t, statusKey, nil)
	sortByKey(groups)
	return stats(groups, nil)
}

func PaymentMethodCounts(t *models.Table) []models.GroupStat {
	groups := groupBy(t, paymentKey, nil)
	sortByKey(groups)
	return stats(groups, nil)
}

// DriverRatingDistribution buckets driver ratings into half-point bins on [1, 5].
// The last bin is closed. Ratings outside the scale are not counted.
func DriverRatingDistribution(t *models.Table) []models.GroupStat {
	n := int((ratingMax - ratingMin) / ratingBucketWidth)
	out := make([]models.GroupStat, n)
	for i := range out {
		lo := ratingMin + float64(i)*ratingBucketWidth
		out[i].Key = fmt.Sprintf("%.1f-%.1f", lo, lo+ratingBucketWidth)
	}
	for i := 0; i < t.Len(); i++ {
		r := t.At(i).DriverRating
		if r == nil || *r < ratingMin || *r > ratingMax {
			continue
		}
		idx := min(int((*r-ratingMin)/ratingBucketWidth), n-1)
		out[idx].Count++
	}
	return out
}

// RatingScatter pairs customer and driver ratings of rows carrying both.
func RatingScatter(t *models.Table) []models.RatingPoint {
	out := make([]models.RatingPoint, 0)
	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		if b.CustomerRating == nil || b.DriverRating == nil {
			continue
		}
		out = append(out, models.RatingPoint{CustomerRating: *b.CustomerRating, DriverRating: *b.DriverRating})
	}
	return out
}

// ComputeKPIs builds the metric tiles for t. Cancelled rides are every non-successful booking.
func ComputeKPIs(t *models.Table) models.KPIs {
	k := models.KPIs{TotalRides: t.Len()}
	var ratingSum float64
	var ratings int
	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		if b.IsSuccess() {
			k.SuccessfulRides++
			if b.BookingValue != nil {
				k.Revenue += *b.BookingValue
			}
		}
		if b.DriverRating != nil {
			ratingSum += *b.DriverRating
			ratings++
		}
	}
	k.CancelledRides = k.TotalRides - k.SuccessfulRides
	if ratings > 0 {
		k.AvgDriverRating = ptr(ratingSum / float64(ratings))
	}
	return k
}

func count(t *models.Table, pred func(*models.Booking) bool) int {
	n := 0
	for i := 0; i < t.Len(); i++ {
		if pred(t.At(i)) {
			n++
		}
	}
	return n
}

func ptr[T any](v T) *T { return &v }

