package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/internal/service/analytics"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	ws "github.com/Temutjin2k/ride-analytics/pkg/wsHub"
)

func f(v float64) *float64 { return &v }

func table(columns []models.Column) *models.Table {
	day := func(d int) time.Time { return time.Date(2024, time.July, d, 0, 0, 0, 0, time.UTC) }
	rows := []models.Booking{
		{Date: day(1), BookingID: "B1", Status: types.StatusSuccess, CustomerID: "C1", VehicleType: "Prime Sedan", PaymentMethod: "UPI",
			BookingValue: f(100), RideDistance: f(10), DriverRating: f(4.5), CustomerRating: f(4.0)},
		{Date: day(2), BookingID: "B2", Status: types.StatusSuccess, CustomerID: "C2", VehicleType: "Auto", PaymentMethod: "Cash",
			BookingValue: f(50), RideDistance: f(5), DriverRating: f(4.0), CustomerRating: f(3.0)},
		{Date: day(3), BookingID: "B3", Status: types.StatusCanceledByCustomer, CustomerID: "C1", VehicleType: "Auto", PaymentMethod: "UPI"},
	}
	return models.NewTable(rows, columns, models.Source{Path: "fixture.csv", Checksum: "abc"})
}

func discard() logger.Logger {
	return logger.New(io.Discard, "test", logger.LevelError)
}

func newMux(columns []models.Column) *http.ServeMux {
	svc := analytics.New(table(columns), analytics.NewMemoryEngine(), discard())
	a := NewAnalytics(svc, discard())
	d := NewDashboard(svc, discard())
	h := NewHealth("analytics", svc, discard())
	wsh := NewDashboardWS(svc, ws.NewConnHub(discard()), discard())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /queries", a.ListQueries)
	mux.HandleFunc("GET /queries/{name}", a.RunQuery)
	mux.HandleFunc("GET /overview", a.Overview)
	mux.HandleFunc("GET /insights", a.Insights)
	mux.HandleFunc("GET /dashboard", d.Get)
	mux.HandleFunc("POST /dashboard", d.Post)
	mux.HandleFunc("GET /dashboard/filters", d.Filters)
	mux.HandleFunc("GET /ws/dashboard", wsh.HandleWS)
	return mux
}

func do(t *testing.T, mux http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, rd))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	code, out := do(t, newMux(models.AllColumns), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "available", out["status"])
	ds := out["dataset"].(map[string]any)
	assert.Equal(t, float64(3), ds["rows"])
	assert.Equal(t, "abc", ds["checksum"])
	assert.Equal(t, "memory", out["system_info"].(map[string]any)["engine"])
}

func TestQueries(t *testing.T) {
	mux := newMux(models.AllColumns)

	code, out := do(t, mux, http.MethodGet, "/queries", "")
	require.Equal(t, http.StatusOK, code)
	menu := out["queries"].([]any)
	require.Len(t, menu, 10)
	assert.Equal(t, "successful_bookings", menu[0].(map[string]any)["query"])

	code, out = do(t, mux, http.MethodGet, "/queries/success_revenue", "")
	require.Equal(t, http.StatusOK, code)
	res := out["result"].(map[string]any)
	assert.Equal(t, "scalar", res["kind"])
	assert.Equal(t, float64(150), res["data"].(map[string]any)["value"])

	code, out = do(t, mux, http.MethodGet, "/queries/top_customers", "")
	require.Equal(t, http.StatusOK, code)
	groups := out["result"].(map[string]any)["data"].([]any)
	assert.Equal(t, "C1", groups[0].(map[string]any)["key"])
}

func TestQueries_Errors(t *testing.T) {
	code, out := do(t, newMux(models.AllColumns), http.MethodGet, "/queries/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, out["error"], "unknown query")

	code, _ = do(t, newMux(models.RequiredColumns), http.MethodGet, "/queries/avg_distance_by_vehicle", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestDashboard_Get(t *testing.T) {
	mux := newMux(models.AllColumns)

	code, out := do(t, mux, http.MethodGet, "/dashboard?payment_method=UPI", "")
	require.Equal(t, http.StatusOK, code)
	d := out["dashboard"].(map[string]any)
	assert.Equal(t, float64(2), d["kpis"].(map[string]any)["total_rides"])
	assert.Len(t, d["panels"], 10)

	code, out = do(t, mux, http.MethodGet, "/dashboard?from=2024-07-02&to=2024-07-02", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), out["dashboard"].(map[string]any)["kpis"].(map[string]any)["total_rides"])

	code, out = do(t, mux, http.MethodGet, "/dashboard?status=", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), out["dashboard"].(map[string]any)["kpis"].(map[string]any)["total_rides"])

	code, out = do(t, mux, http.MethodGet, "/dashboard?from=July", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, out["error"], "from")
}

func TestDashboard_Post(t *testing.T) {
	mux := newMux(models.AllColumns)

	code, out := do(t, mux, http.MethodPost, "/dashboard", `{"vehicle_types":["Auto"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), out["dashboard"].(map[string]any)["kpis"].(map[string]any)["total_rides"])

	code, out = do(t, mux, http.MethodPost, "/dashboard", `{"vehicle":["Auto"]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out["error"], "unknown key")
}

func TestDashboard_FiltersAndOverview(t *testing.T) {
	mux := newMux(models.AllColumns)

	code, out := do(t, mux, http.MethodGet, "/dashboard/filters", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"Auto", "Prime Sedan"}, out["filters"].(map[string]any)["vehicle_types"])

	code, out = do(t, mux, http.MethodGet, "/overview", "")
	require.Equal(t, http.StatusOK, code)
	kpis := out["overview"].(map[string]any)["kpis"].(map[string]any)
	assert.Equal(t, float64(150), kpis["revenue"])

	code, out = do(t, mux, http.MethodGet, "/insights", "")
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, out["insights"].(map[string]any)["sections"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetCode(types.ErrUnknownQuery))
	assert.Equal(t, http.StatusUnprocessableEntity, GetCode(types.ErrMissingColumn))
	assert.Equal(t, http.StatusNotImplemented, GetCode(types.ErrUnsupportedQuery))
	assert.Equal(t, http.StatusServiceUnavailable, GetCode(types.ErrNotStaged))
	assert.Equal(t, http.StatusInternalServerError, GetCode(io.EOF))
}

func TestDashboardWS_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(newMux(models.AllColumns))
	defer srv.Close()

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/dashboard", nil)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(`{"statuses":["Success"]}`)))
	var out map[string]any
	require.NoError(t, c.ReadJSON(&out))
	d := out["dashboard"].(map[string]any)
	assert.Equal(t, float64(2), d["kpis"].(map[string]any)["total_rides"])

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(`{"from":"yesterday"}`)))
	out = nil
	require.NoError(t, c.ReadJSON(&out))
	assert.Contains(t, out["error"], "from")

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	out = nil
	require.NoError(t, c.ReadJSON(&out))
	assert.Contains(t, out["error"], "badly-formed")
}

func TestQueries_Paginated(t *testing.T) {
	mux := newMux(models.AllColumns)

	code, out := do(t, mux, http.MethodGet, "/queries/successful_bookings?page=2&page_size=1", "")
	require.Equal(t, http.StatusOK, code)
	meta := out["metadata"].(map[string]any)
	assert.Equal(t, float64(2), meta["last_page"])
	assert.Equal(t, float64(2), meta["total_records"])
	rows := out["result"].(map[string]any)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "B2", rows[0].(map[string]any)["booking_id"])

	code, out = do(t, mux, http.MethodGet, "/queries/successful_bookings?page_size=5000", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, out["error"], "page_size")
}
