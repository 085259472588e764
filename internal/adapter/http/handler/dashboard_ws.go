package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Temutjin2k/ride-analytics/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-analytics/pkg/validator"
	ws "github.com/Temutjin2k/ride-analytics/pkg/wsHub"
)

const maxMessageSize = 8192

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// DashboardWS answers every filter message on a session with a freshly computed dashboard.
type DashboardWS struct {
	service AnalyticsService
	hub     *ws.ConnectionHub
	l       logger.Logger
}

func NewDashboardWS(service AnalyticsService, hub *ws.ConnectionHub, l logger.Logger) *DashboardWS {
	return &DashboardWS{
		service: service,
		hub:     hub,
		l:       l,
	}
}

// HandleWS godoc
// @Summary      Dashboard session
// @Description  WebSocket. Send a filter as JSON, receive {"dashboard": ...} or {"error": ...}
// @Tags         Dashboard
// @Router       /ws/dashboard [get]
func (h *DashboardWS) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ws_dashboard")

	raw, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.l.Warn(ctx, "websocket upgrade failed", "error", err.Error())
		return
	}
	raw.SetReadLimit(maxMessageSize)

	conn := ws.NewConn(ctx, raw)
	if err := h.hub.Add(conn); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register websocket session", err)
		raw.Close()
		return
	}
	defer h.hub.Delete(conn.ID())

	ctx = wrap.WithSessionID(ctx, conn.ID().String())
	h.l.Info(ctx, "dashboard session opened")

	err = conn.Listen(func(msg []byte) error {
		return conn.Send(h.reply(ctx, msg))
	})
	if err != nil {
		h.l.Warn(ctx, "dashboard session ended", "error", err.Error())
		return
	}
	h.l.Info(ctx, "dashboard session closed")
}

// reply turns one filter message into the frame sent back. Bad input keeps the session open.
func (h *DashboardWS) reply(ctx context.Context, msg []byte) envelope {
	var req dto.FilterRequest
	if err := decodeMessage(msg, &req); err != nil {
		return envelope{"error": err.Error()}
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		return envelope{"error": v.Errors}
	}

	d, err := h.service.Dashboard(ctx, types.SurfaceWebSocket, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build dashboard", err)
		return envelope{"error": err.Error()}
	}
	return envelope{"dashboard": d}
}
