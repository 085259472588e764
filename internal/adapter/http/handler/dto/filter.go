package dto

import (
	"net/url"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/validator"
)

const dateLayout = time.DateOnly

// FilterRequest is the dashboard filter as sent by clients. A nil list selects every value,
// an empty list selects none.
type FilterRequest struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	VehicleTypes   []string `json:"vehicle_types"`
	Statuses       []string `json:"statuses"`
	PaymentMethods []string `json:"payment_methods"`
}

// FilterFromQuery reads from, to and the repeated vehicle_type, status and payment_method params.
func FilterFromQuery(q url.Values) FilterRequest {
	return FilterRequest{
		From:           q.Get("from"),
		To:             q.Get("to"),
		VehicleTypes:   listParam(q, "vehicle_type"),
		Statuses:       listParam(q, "status"),
		PaymentMethods: listParam(q, "payment_method"),
	}
}

// listParam returns nil when the key is absent and drops empty values otherwise,
// so a bare `status=` selects nothing.
func listParam(q url.Values, key string) []string {
	values, ok := q[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (r *FilterRequest) Validate(v *validator.Validator) {
	if r.From != "" {
		_, err := time.Parse(dateLayout, r.From)
		v.Check(err == nil, "from", "must be a date in YYYY-MM-DD format")
	}
	if r.To != "" {
		_, err := time.Parse(dateLayout, r.To)
		v.Check(err == nil, "to", "must be a date in YYYY-MM-DD format")
	}
}

// ToModel converts a validated request. Empty dates leave that end open.
func (r *FilterRequest) ToModel() models.FilterConfig {
	cfg := models.FilterConfig{
		VehicleTypes:   r.VehicleTypes,
		PaymentMethods: r.PaymentMethods,
	}
	if r.From != "" {
		cfg.From, _ = time.Parse(dateLayout, r.From)
	}
	if r.To != "" {
		cfg.To, _ = time.Parse(dateLayout, r.To)
	}
	if r.Statuses != nil {
		cfg.Statuses = make([]types.BookingStatus, len(r.Statuses))
		for i, s := range r.Statuses {
			cfg.Statuses[i] = types.BookingStatus(s)
		}
	}
	return cfg
}
