package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 42

func TestGenerateGrid(t *testing.T) {
	t.Run("5x4 yields 20 points lon-major", func(t *testing.T) {
		points, err := GenerateGrid(5, 4, testSeed)
		require.NoError(t, err)
		require.Len(t, points, 20)

		wantLats := []float64{-60, -25, 10, 45, 80}
		wantLons := []float64{-180, -60, 60, 180}
		for i, p := range points {
			assert.Equal(t, wantLons[i/5], p.Lon, "point %d lon", i)
			assert.Equal(t, wantLats[i%5], p.Lat, "point %d lat", i)
		}
	})

	t.Run("single point sits at range start", func(t *testing.T) {
		points, err := GenerateGrid(1, 1, testSeed)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, -60.0, points[0].Lat)
		assert.Equal(t, -180.0, points[0].Lon)
	})

	t.Run("deterministic for identical arguments", func(t *testing.T) {
		a, err := GenerateGrid(80, 180, testSeed)
		require.NoError(t, err)
		b, err := GenerateGrid(80, 180, testSeed)
		require.NoError(t, err)

		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("grids differ (-first +second):\n%s", diff)
		}
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a, err := GenerateGrid(10, 10, 1)
		require.NoError(t, err)
		b, err := GenerateGrid(10, 10, 2)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("all points within bounds", func(t *testing.T) {
		points, err := GenerateGrid(80, 180, testSeed)
		require.NoError(t, err)
		require.Len(t, points, 80*180)

		for _, p := range points {
			assert.GreaterOrEqual(t, p.Lat, MinLat)
			assert.LessOrEqual(t, p.Lat, MaxLat)
			assert.GreaterOrEqual(t, p.Lon, MinLon)
			assert.LessOrEqual(t, p.Lon, MaxLon)
			assert.GreaterOrEqual(t, p.Anomaly, MinAnomaly)
			assert.LessOrEqual(t, p.Anomaly, MaxAnomaly)
		}
	})

	t.Run("range ends are exact", func(t *testing.T) {
		points, err := GenerateGrid(80, 180, testSeed)
		require.NoError(t, err)

		first, last := points[0], points[len(points)-1]
		assert.Equal(t, MinLat, first.Lat)
		assert.Equal(t, MinLon, first.Lon)
		assert.Equal(t, MaxLat, last.Lat)
		assert.Equal(t, MaxLon, last.Lon)
	})

	t.Run("anomalies vary", func(t *testing.T) {
		points, err := GenerateGrid(3, 3, testSeed)
		require.NoError(t, err)

		seen := map[float64]bool{}
		for _, p := range points {
			seen[p.Anomaly] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestGenerateGrid_InvalidCounts(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon int
	}{
		{"zero lat", 0, 4},
		{"zero lon", 5, 0},
		{"negative lat", -1, 4},
		{"negative lon", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points, err := GenerateGrid(tc.lat, tc.lon, testSeed)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, points)
		})
	}
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, linspace(0, 1, 3))
	assert.Equal(t, []float64{-180}, linspace(-180, 180, 1))
	assert.Equal(t, []float64{-180, 180}, linspace(-180, 180, 2))
}
