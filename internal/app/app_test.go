package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-analytics/config"
	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/logger"
)

const csvData = `Date,Time,Booking_ID,Booking_Status,Customer_ID,Vehicle_Type,Canceled_Rides_by_Customer,Canceled_Rides_by_Driver,Booking_Value,Payment_Method,Ride_Distance,Driver_Ratings,Customer_Rating
2024-07-01,08:00:00,B1,Success,C1,Auto,,,120,UPI,5.5,4.5,4.0
2024-07-02,09:30:00,B2,Canceled by Customer,C2,Prime Sedan,Change of plans,,,Cash,,,
`

func testConfig(t *testing.T, mode types.ServiceMode) config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bookings.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	return config.Config{
		Mode:      mode,
		Dataset:   config.DatasetConfig{Path: path},
		Analytics: config.AnalyticsConfig{Engine: types.MemoryEngine},
		Report:    config.ReportConfig{Output: filepath.Join(dir, "report.json")},
	}
}

func discard() logger.Logger {
	return logger.New(io.Discard, "test", logger.LevelError)
}

func TestNewApplication_InvalidMode(t *testing.T) {
	_, err := NewApplication(context.Background(), testConfig(t, "ride"), discard())
	require.ErrorIs(t, err, types.ErrInvalidMode)
}

func TestNewApplication_MissingDataset(t *testing.T) {
	cfg := testConfig(t, types.ReportMode)
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewApplication(context.Background(), cfg, discard())
	require.ErrorIs(t, err, types.ErrDatasetNotFound)
}

func TestRun_ReportToFile(t *testing.T) {
	cfg := testConfig(t, types.ReportMode)

	app, err := NewApplication(context.Background(), cfg, discard())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	out, err := os.ReadFile(cfg.Report.Output)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"successful_bookings"`)
	assert.Contains(t, string(out), `"dashboard"`)
}
