package aggregate

import (
	"slices"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

const dateLayout = time.DateOnly

// Apply returns the rows of t satisfying every constraint of cfg. When nothing
// is excluded the input table itself is returned.
func Apply(t *models.Table, cfg models.FilterConfig) *models.Table {
	if isOpen(cfg) {
		return t
	}

	from, to := startOfDay(cfg.From), startOfDay(cfg.To)
	vehicles := toSet(cfg.VehicleTypes)
	statuses := toSet(cfg.Statuses)
	payments := toSet(cfg.PaymentMethods)

	sub := t.Where(func(b *models.Booking) bool {
		if !from.IsZero() && b.Date.Before(from) {
			return false
		}
		if !to.IsZero() && b.Date.After(to) {
			return false
		}
		return allows(vehicles, b.VehicleType) &&
			allows(statuses, b.Status) &&
			allows(payments, b.PaymentMethod)
	})
	if sub.Len() == t.Len() {
		return t
	}
	return sub
}

// Options lists the full date range and every observed category value of t.
// Blank values are listed too, as "", so the options select every row.
func Options(t *models.Table) models.FilterOptions {
	from, to := t.DateRange()
	statuses := observed(t, func(b *models.Booking) string { return string(b.Status) })
	st := make([]types.BookingStatus, len(statuses))
	for i, s := range statuses {
		st[i] = types.BookingStatus(s)
	}
	return models.FilterOptions{
		From:           from,
		To:             to,
		VehicleTypes:   observed(t, func(b *models.Booking) string { return b.VehicleType }),
		Statuses:       st,
		PaymentMethods: observed(t, func(b *models.Booking) string { return b.PaymentMethod }),
	}
}

// observed returns the sorted distinct values of field, blanks included.
func observed(t *models.Table, field func(*models.Booking) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := 0; i < t.Len(); i++ {
		v := field(t.At(i))
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// DefaultFilter selects everything in t, like an untouched filter sidebar.
func DefaultFilter(t *models.Table) models.FilterConfig {
	return Options(t).Filter()
}

func isOpen(cfg models.FilterConfig) bool {
	return cfg.From.IsZero() && cfg.To.IsZero() &&
		cfg.VehicleTypes == nil && cfg.Statuses == nil && cfg.PaymentMethods == nil
}

func startOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// toSet keeps the nil/empty distinction: nil means unconstrained.
func toSet[T comparable](values []T) map[T]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func allows[T comparable](set map[T]struct{}, v T) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
