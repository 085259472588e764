package dto

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/validator"
)

func TestFilterFromQuery(t *testing.T) {
	q, err := url.ParseQuery("from=2024-07-01&to=2024-07-31&vehicle_type=Auto&vehicle_type=eBike&status=")
	require.NoError(t, err)

	req := FilterFromQuery(q)
	assert.Equal(t, []string{"Auto", "eBike"}, req.VehicleTypes)
	assert.NotNil(t, req.Statuses)
	assert.Empty(t, req.Statuses)
	assert.Nil(t, req.PaymentMethods)

	v := validator.New()
	req.Validate(v)
	require.True(t, v.Valid())

	cfg := req.ToModel()
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), cfg.From)
	assert.Equal(t, time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), cfg.To)
	assert.Equal(t, []types.BookingStatus{}, cfg.Statuses)
	assert.Nil(t, cfg.PaymentMethods)
}

func TestFilterRequest_Validate(t *testing.T) {
	req := FilterRequest{From: "07/01/2024", To: "2024-13-01"}
	v := validator.New()
	req.Validate(v)

	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "from")
	assert.Contains(t, v.Errors, "to")
}

func TestFilterRequest_OpenConfig(t *testing.T) {
	req := FilterRequest{}
	cfg := req.ToModel()
	assert.True(t, cfg.From.IsZero())
	assert.True(t, cfg.To.IsZero())
	assert.Nil(t, cfg.VehicleTypes)
	assert.Nil(t, cfg.Statuses)
}

func TestPageFromQuery(t *testing.T) {
	v := validator.New()
	_, ok := PageFromQuery(url.Values{}, v)
	assert.False(t, ok)

	p, ok := PageFromQuery(url.Values{"page": {"2"}}, v)
	require.True(t, ok)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, defaultPageSize, p.PageSize)
	assert.True(t, v.Valid())

	v = validator.New()
	PageFromQuery(url.Values{"page": {"two"}, "page_size": {"0"}}, v)
	assert.Equal(t, "must be an integer value", v.Errors["page"])
	assert.Contains(t, v.Errors, "page_size")
}
