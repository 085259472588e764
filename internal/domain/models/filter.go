package models

import (
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// FilterConfig selects the dashboard's working subset. Zero From/To leave that end of the
// date interval open. A nil set accepts every value, a non-nil empty set accepts none.
type FilterConfig struct {
	From           time.Time             `json:"from,omitzero"`
	To             time.Time             `json:"to,omitzero"`
	VehicleTypes   []string              `json:"vehicle_types"`
	Statuses       []types.BookingStatus `json:"statuses"`
	PaymentMethods []string              `json:"payment_methods"`
}

// FilterOptions lists the values a filter can choose from, taken from the full table.
type FilterOptions struct {
	From           time.Time             `json:"from,omitzero"`
	To             time.Time             `json:"to,omitzero"`
	VehicleTypes   []string              `json:"vehicle_types"`
	Statuses       []types.BookingStatus `json:"statuses"`
	PaymentMethods []string              `json:"payment_methods"`
}

// Filter builds the config that selects everything the options offer.
func (o FilterOptions) Filter() FilterConfig {
	return FilterConfig(o)
}
