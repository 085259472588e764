package handler

import (
	"net/http"

	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
)

type Health struct {
	serviceName string
	service     AnalyticsService
	log         logger.Logger
}

func NewHealth(serviceName string, service AnalyticsService, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		service:     service,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the service status and the loaded dataset
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	ds := a.service.Dataset()
	response := envelope{
		"status": "available",
		"system_info": envelope{
			"service-name": a.serviceName,
			"engine":       a.service.Engine(),
		},
		"dataset": envelope{
			"rows":     ds.Rows,
			"checksum": ds.Checksum,
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
