package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapboxToken = "pk.test-token"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 80, cfg.GridLatCount)
	assert.Equal(t, 180, cfg.GridLonCount)
	assert.Equal(t, int64(42), cfg.GridSeed)
	assert.Equal(t, 1800, cfg.YearMin)
	assert.Equal(t, 2050, cfg.YearMax)
	assert.Equal(t, 2050, cfg.YearDefault)
	assert.Equal(t, 21.0, cfg.BaselineCM)
	assert.Equal(t, 5, cfg.MarkerSize)
	assert.Equal(t, 0.7, cfg.MarkerOpacity)
	assert.Equal(t, 1.0, cfg.MapZoom)
	assert.Empty(t, cfg.MapboxToken)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("GRID_LAT_COUNT", "40")
	t.Setenv("GRID_LON_COUNT", "90")
	t.Setenv("GRID_SEED", "7")
	t.Setenv("YEAR_MIN", "1900")
	t.Setenv("YEAR_MAX", "2100")
	t.Setenv("YEAR_DEFAULT", "2025")
	t.Setenv("BASELINE_CM", "30.5")
	t.Setenv("MARKER_SIZE", "8")
	t.Setenv("MARKER_OPACITY", "0.5")
	t.Setenv("MAP_ZOOM", "2.5")
	t.Setenv("MAPBOX_TOKEN", testMapboxToken)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 40, cfg.GridLatCount)
	assert.Equal(t, 90, cfg.GridLonCount)
	assert.Equal(t, int64(7), cfg.GridSeed)
	assert.Equal(t, 1900, cfg.YearMin)
	assert.Equal(t, 2100, cfg.YearMax)
	assert.Equal(t, 2025, cfg.YearDefault)
	assert.Equal(t, 30.5, cfg.BaselineCM)
	assert.Equal(t, 8, cfg.MarkerSize)
	assert.Equal(t, 0.5, cfg.MarkerOpacity)
	assert.Equal(t, 2.5, cfg.MapZoom)
	assert.Equal(t, testMapboxToken, cfg.MapboxToken)
}

func TestLoad_YearDefaultFollowsYearMax(t *testing.T) {
	t.Setenv("YEAR_MAX", "2100")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2100, cfg.YearDefault)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_GridAxisAtCap(t *testing.T) {
	t.Setenv("GRID_LAT_COUNT", "1000")
	t.Setenv("GRID_LON_COUNT", "1000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, MaxGridAxis, cfg.GridLatCount)
	assert.Equal(t, MaxGridAxis, cfg.GridLonCount)
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		key, value, want string
	}{
		{"GRID_LAT_COUNT", "0", "GRID_LAT_COUNT"},
		{"GRID_LAT_COUNT", "many", "GRID_LAT_COUNT"},
		{"GRID_LAT_COUNT", "1001", "GRID_LAT_COUNT"},
		{"GRID_LON_COUNT", "-4", "GRID_LON_COUNT"},
		{"GRID_LON_COUNT", "5000000", "GRID_LON_COUNT"},
		{"GRID_SEED", "x", "GRID_SEED"},
		{"YEAR_MIN", "2060", "YEAR_MIN"},
		{"YEAR_DEFAULT", "1700", "YEAR_DEFAULT"},
		{"BASELINE_CM", "-1", "BASELINE_CM"},
		{"BASELINE_CM", "NaN", "BASELINE_CM"},
		{"MARKER_SIZE", "0", "MARKER_SIZE"},
		{"MARKER_OPACITY", "1.5", "MARKER_OPACITY"},
		{"MAP_ZOOM", "far", "MAP_ZOOM"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
