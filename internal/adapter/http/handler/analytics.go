package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/ride-analytics/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/validator"
)

type AnalyticsService interface {
	Engine() types.Engine
	Dataset() models.DatasetInfo
	Menu() []models.MenuItem
	Run(ctx context.Context, kind types.QueryKind) (models.QueryResult, error)
	Dashboard(ctx context.Context, surface string, cfg models.FilterConfig) (models.Dashboard, error)
	Overview(ctx context.Context) (models.Overview, error)
	FilterOptions() models.FilterOptions
	Insights() models.Insights
}

type Analytics struct {
	service AnalyticsService
	l       logger.Logger
}

func NewAnalytics(service AnalyticsService, l logger.Logger) *Analytics {
	return &Analytics{
		service: service,
		l:       l,
	}
}

// ListQueries godoc
// @Summary      Query menu
// @Description  Lists the canned queries in menu order
// @Tags         Queries
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /queries [get]
func (h *Analytics) ListQueries(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_queries")

	if err := writeJSON(w, http.StatusOK, envelope{"queries": h.service.Menu()}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// RunQuery godoc
// @Summary      Run a query
// @Description  Runs one catalog query over the full dataset
// @Tags         Queries
// @Produce      json
// @Param        name       path      string  true   "Query slug, e.g. top_customers"
// @Param        page       query     int     false  "Page of a record listing"
// @Param        page_size  query     int     false  "Records per page, at most 1000"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      501   {object}  map[string]string
// @Router       /queries/{name} [get]
func (h *Analytics) RunQuery(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "run_query")

	kind, err := types.ParseQueryKind(r.PathValue("name"))
	if err != nil {
		h.l.Warn(ctx, "unknown query requested", "name", r.PathValue("name"))
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	v := validator.New()
	page, paged := dto.PageFromQuery(r.URL.Query(), v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid pagination")
		failedValidationResponse(w, v.Errors)
		return
	}

	res, err := h.service.Run(ctx, kind)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to run query", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{}
	if paged {
		response["metadata"] = res.Paginate(page)
	}
	response["result"] = res

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// Overview godoc
// @Summary      Dataset overview
// @Description  KPI tiles over the full dataset with its source and date range
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /overview [get]
func (h *Analytics) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "overview")

	o, err := h.service.Overview(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build overview", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"overview": o}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// Insights godoc
// @Summary      Business insights
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /insights [get]
func (h *Analytics) Insights(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "insights")

	if err := writeJSON(w, http.StatusOK, envelope{"insights": h.service.Insights()}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
