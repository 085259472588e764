package aggregate

import (
	"sort"
	"strings"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
)

type keyFunc func(*models.Booking) (string, bool)
type measureFunc func(*models.Booking) *float64

// group holds the rows of one key together with the running measure.
type group struct {
	key   string
	count int
	sum   float64
	seen  int // rows with a defined measure
}

// groupBy buckets the table by key in first-appearance order. Rows whose key is
// absent are skipped. A nil measure only counts rows.
func groupBy(t *models.Table, key keyFunc, measure measureFunc) []*group {
	byKey := make(map[string]*group)
	order := make([]*group, 0)

	for i := 0; i < t.Len(); i++ {
		b := t.At(i)
		k, ok := key(b)
		if !ok {
			continue
		}
		g, exists := byKey[k]
		if !exists {
			g = &group{key: k}
			byKey[k] = g
			order = append(order, g)
		}
		g.count++
		if measure == nil {
			continue
		}
		if v := measure(b); v != nil {
			g.sum += *v
			g.seen++
		}
	}
	return order
}

func (g *group) mean() *float64 {
	if g.seen == 0 {
		return nil
	}
	m := g.sum / float64(g.seen)
	return &m
}

func (g *group) total() *float64 {
	s := g.sum
	return &s
}

// stats converts groups into result rows, using value for the measure column.
func stats(groups []*group, value func(*group) *float64) []models.GroupStat {
	out := make([]models.GroupStat, 0, len(groups))
	for _, g := range groups {
		var v *float64
		if value != nil {
			v = value(g)
		}
		out = append(out, models.GroupStat{Key: g.key, Count: g.count, Value: v})
	}
	return out
}

func sortByKey(groups []*group) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
}

// topN orders groups by rank descending and keeps at most n. Ties keep first-appearance order.
func topN(groups []*group, n int, rank func(*group) float64) []*group {
	sort.SliceStable(groups, func(i, j int) bool { return rank(groups[i]) > rank(groups[j]) })
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

func byCount(g *group) float64 { return float64(g.count) }
func bySum(g *group) float64   { return g.sum }

// Key extractors. String columns treat the empty value as absent.

func present(s string) (string, bool) {
	return s, strings.TrimSpace(s) != ""
}

func vehicleKey(b *models.Booking) (string, bool)  { return present(b.VehicleType) }
func customerKey(b *models.Booking) (string, bool) { return present(b.CustomerID) }
func paymentKey(b *models.Booking) (string, bool)  { return present(b.PaymentMethod) }
func statusKey(b *models.Booking) (string, bool)   { return present(string(b.Status)) }

func dateKey(b *models.Booking) (string, bool) {
	if b.Date.IsZero() {
		return "", false
	}
	return b.Date.Format(dateLayout), true
}

func rideDistance(b *models.Booking) *float64   { return b.RideDistance }
func bookingValue(b *models.Booking) *float64   { return b.BookingValue }
func customerRating(b *models.Booking) *float64 { return b.CustomerRating }
func driverRating(b *models.Booking) *float64   { return b.DriverRating }
