package handler

import (
	"net/http"

	"github.com/Temutjin2k/ride-analytics/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/validator"
)

type Dashboard struct {
	service AnalyticsService
	l       logger.Logger
}

func NewDashboard(service AnalyticsService, l logger.Logger) *Dashboard {
	return &Dashboard{
		service: service,
		l:       l,
	}
}

// Get godoc
// @Summary      Filtered dashboard
// @Description  Recomputes the KPI row and every panel over the filtered bookings
// @Tags         Dashboard
// @Produce      json
// @Param        from            query     string    false  "First day, YYYY-MM-DD"
// @Param        to              query     string    false  "Last day, YYYY-MM-DD"
// @Param        vehicle_type    query     []string  false  "Vehicle types"     collectionFormat(multi)
// @Param        status          query     []string  false  "Booking statuses"  collectionFormat(multi)
// @Param        payment_method  query     []string  false  "Payment methods"   collectionFormat(multi)
// @Success      200             {object}  map[string]any
// @Failure      422             {object}  map[string]any
// @Router       /dashboard [get]
func (h *Dashboard) Get(w http.ResponseWriter, r *http.Request) {
	req := dto.FilterFromQuery(r.URL.Query())
	h.serve(w, r, req)
}

// Post godoc
// @Summary      Filtered dashboard from a JSON filter
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FilterRequest  true  "Filter"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      422      {object}  map[string]any
// @Router       /dashboard [post]
func (h *Dashboard) Post(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "dashboard")

	var req dto.FilterRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Warn(ctx, "failed to read request JSON data", "error", err.Error())
		badRequestResponse(w, err.Error())
		return
	}
	h.serve(w, r, req)
}

func (h *Dashboard) serve(w http.ResponseWriter, r *http.Request, req dto.FilterRequest) {
	ctx := wrap.WithAction(r.Context(), "dashboard")

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid filter")
		failedValidationResponse(w, v.Errors)
		return
	}

	d, err := h.service.Dashboard(ctx, types.SurfaceHTTP, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build dashboard", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"dashboard": d}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// Filters godoc
// @Summary      Filter options
// @Description  Date range and the distinct vehicle types, statuses and payment methods
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /dashboard/filters [get]
func (h *Dashboard) Filters(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "dashboard_filters")

	if err := writeJSON(w, http.StatusOK, envelope{"filters": h.service.FilterOptions()}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
