package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	wrap "github.com/Temutjin2k/ride-analytics/pkg/logger/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_InjectsContextFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "analytics", LevelDebug)

	ctx := wrap.WithAction(context.Background(), "run_query")
	ctx = wrap.WithRequestID(ctx, "req-1")
	ctx = wrap.WithQuery(ctx, "top_customers")

	l.Info(ctx, "query finished", "rows", 5)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "query finished", line["message"])
	assert.Equal(t, "analytics", line["service"])
	assert.Equal(t, "run_query", line["action"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "top_customers", line["query"])
	assert.EqualValues(t, 5, line["rows"])
	assert.Contains(t, line, "timestamp")
}

func TestLogger_ErrorCarriesWrappedContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "analytics", LevelInfo)

	inner := wrap.WithAction(context.Background(), "load_dataset")
	err := wrap.Error(inner, errors.New("boom"))

	l.Error(wrap.ErrorCtx(context.Background(), err), "failed", err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "load_dataset", line["action"])
	assert.Equal(t, "failed", line["message"])
	assert.NotContains(t, line, "msg")
	assert.Equal(t, map[string]any{"msg": "boom"}, line["error"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "analytics", LevelWarn)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "shown")
	assert.NotZero(t, buf.Len())
}

func TestValidateLogLevel(t *testing.T) {
	assert.True(t, ValidateLogLevel(LevelInfo))
	assert.False(t, ValidateLogLevel("TRACE"))
}
