package file

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/internal/domain/models"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
)

func sampleReport() *models.Report {
	return &models.Report{
		Dataset: models.DatasetInfo{Source: models.Source{Checksum: "abc"}, Rows: 2},
		Queries: []models.QueryResult{
			{Query: types.QuerySuccessRevenue, Kind: models.KindScalar, Scalar: &models.Scalar{Value: 150}},
		},
	}
}

func TestReportWriter_Stdout(t *testing.T) {
	var buf bytes.Buffer
	w := NewReportWriter("", logger.New(io.Discard, "test", logger.LevelError))
	w.stdout = &buf

	require.NoError(t, w.Publish(context.Background(), sampleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	queries := got["queries"].([]any)
	require.Len(t, queries, 1)
	assert.Equal(t, "success_revenue", queries[0].(map[string]any)["query"])
	assert.Equal(t, "abc", got["dataset"].(map[string]any)["checksum"])
}

func TestReportWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w := NewReportWriter(path, logger.New(io.Discard, "test", logger.LevelError))
	require.NoError(t, w.Publish(context.Background(), sampleReport()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"success_revenue"`)

	bad := NewReportWriter(filepath.Join(t.TempDir(), "missing", "report.json"), logger.New(io.Discard, "test", logger.LevelError))
	require.Error(t, bad.Publish(context.Background(), sampleReport()))
}
