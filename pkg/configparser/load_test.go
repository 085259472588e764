package configparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Mode    string `env:"CP_MODE" default:"dashboard"`
	Dataset struct {
		Path  string `env:"CP_DATASET_PATH" default:"dataset.xlsx"`
		Sheet string `env:"CP_DATASET_SHEET"`
	}
	Server struct {
		Port    int           `env:"CP_SERVER_PORT" default:"8080"`
		Timeout time.Duration `env:"CP_SERVER_TIMEOUT" default:"5s"`
	}
	Publish bool     `env:"CP_PUBLISH" default:"false"`
	Ratio   float64  `env:"CP_RATIO" default:"0.5"`
	Tags    []string `env:"CP_TAGS" default:"a, b"`
	skipped string
}

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestParseEnv_Defaults(t *testing.T) {
	clearEnv(t, "CP_MODE", "CP_DATASET_PATH", "CP_DATASET_SHEET", "CP_SERVER_PORT", "CP_SERVER_TIMEOUT", "CP_PUBLISH", "CP_RATIO", "CP_TAGS")

	var cfg testConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "dashboard", cfg.Mode)
	assert.Equal(t, "dataset.xlsx", cfg.Dataset.Path)
	assert.Empty(t, cfg.Dataset.Sheet)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.False(t, cfg.Publish)
	assert.InDelta(t, 0.5, cfg.Ratio, 1e-9)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("CP_SERVER_PORT", "9090")
	t.Setenv("CP_PUBLISH", "true")
	t.Setenv("CP_SERVER_TIMEOUT", "1m")

	var cfg testConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Publish)
	assert.Equal(t, time.Minute, cfg.Server.Timeout)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("CP_SERVER_PORT", "not-a-number")

	var cfg testConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CP_SERVER_PORT")
}

func TestParseEnv_RejectsNonPointer(t *testing.T) {
	require.ErrorIs(t, ParseEnv(testConfig{}), ErrNotStructPointer)
}

func TestLoadAndParseYaml_NestedSections(t *testing.T) {
	clearEnv(t, "CP_MODE", "CP_DATASET_PATH", "CP_DATASET_SHEET", "CP_SERVER_PORT", "CP_SERVER_TIMEOUT")
	t.Setenv("CP_FROM_ENV", "")

	yaml := strings.Join([]string{
		"# analytics configuration",
		"cp:",
		"  mode: report",
		"  dataset:",
		"    path: \"./data/bookings.csv\"",
		"    sheet: ${CP_FROM_ENV:-Sheet1}",
		"  server:",
		"    port: 7000 # inline comment",
	}, "\n")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(path, &cfg))

	assert.Equal(t, "report", cfg.Mode)
	assert.Equal(t, "./data/bookings.csv", cfg.Dataset.Path)
	assert.Equal(t, "Sheet1", cfg.Dataset.Sheet)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadAndParseYaml_EnvWinsOverFile(t *testing.T) {
	clearEnv(t, "CP_MODE")
	t.Setenv("CP_SERVER_PORT", "1234")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cp:\n  server:\n    port: 7000\n"), 0o600))

	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(path, &cfg))
	assert.Equal(t, 1234, cfg.Server.Port)
}

func TestLoadAndParseYaml_MissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t, "CP_MODE")

	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))
	assert.Equal(t, "dashboard", cfg.Mode)
}
