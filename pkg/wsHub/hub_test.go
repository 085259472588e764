package ws

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/pkg/logger"
	"github.com/Temutjin2k/ride-analytics/pkg/metrics"
)

// echoServer upgrades, registers the session and echoes each frame back as {"echo": ...}.
func echoServer(t *testing.T, hub *ConnectionHub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConn(context.Background(), raw)
		_ = hub.Add(conn)
		defer hub.Delete(conn.ID())

		_ = conn.Listen(func(msg []byte) error {
			return conn.Send(map[string]string{"echo": string(msg)})
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return c
}

func TestConn_SendAndListen(t *testing.T) {
	hub := NewConnHub(logger.New(io.Discard, "test", logger.LevelError))
	c := dial(t, echoServer(t, hub))
	defer c.Close()

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("hello")))

	var got map[string]string
	require.NoError(t, c.ReadJSON(&got))
	assert.Equal(t, "hello", got["echo"])
	assert.Equal(t, 1, hub.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WebSocketSessionsGauge))
}

func TestHub_DeleteAndClose(t *testing.T) {
	hub := NewConnHub(logger.New(io.Discard, "test", logger.LevelError))

	require.ErrorIs(t, hub.Add(nil), ErrEmptyConn)

	a := NewConn(context.Background(), nil)
	b := NewConn(context.Background(), nil)
	require.NoError(t, hub.Add(a))
	require.NoError(t, hub.Add(b))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, hub.Len())

	got, err := hub.GetConn(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, hub.Delete(a.ID()))
	require.ErrorIs(t, hub.Delete(a.ID()), ErrConnIsNotFound)
	_, err = hub.GetConn(a.ID())
	require.ErrorIs(t, err, ErrConnIsNotFound)

	hub.Close()
	assert.Equal(t, 0, hub.Len())
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.WebSocketSessionsGauge))
}

func TestConn_SendAfterClose(t *testing.T) {
	c := NewConn(context.Background(), nil)
	require.NoError(t, c.Close())
	assert.Error(t, c.Send(map[string]int{"n": 1}))
	assert.Error(t, c.Health())
}
