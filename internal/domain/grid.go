package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Grid bounds in degrees, and the anomaly range in °C.
const (
	MinLat = -60.0
	MaxLat = 80.0
	MinLon = -180.0
	MaxLon = 180.0

	MinAnomaly = -5.0
	MaxAnomaly = 5.0
)

// ErrInvalidArgument marks inputs that are rejected before any work is done.
var ErrInvalidArgument = errors.New("invalid argument")

// GridPoint is one sample of the synthetic temperature-anomaly map.
type GridPoint struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Anomaly float64 `json:"anomaly"`
}

// GenerateGrid builds the lon-major Cartesian product of latCount latitudes
// and lonCount longitudes and tags each point with a seeded anomaly draw.
func GenerateGrid(latCount, lonCount int, seed int64) ([]GridPoint, error) {
	if latCount <= 0 {
		return nil, fmt.Errorf("lat count %d: %w", latCount, ErrInvalidArgument)
	}
	if lonCount <= 0 {
		return nil, fmt.Errorf("lon count %d: %w", lonCount, ErrInvalidArgument)
	}

	lats := linspace(MinLat, MaxLat, latCount)
	lons := linspace(MinLon, MaxLon, lonCount)
	rng := NewRand(seed)

	points := make([]GridPoint, 0, latCount*lonCount)
	for _, lon := range lons {
		for _, lat := range lats {
			points = append(points, GridPoint{
				Lat:     lat,
				Lon:     lon,
				Anomaly: uniform(rng, MinAnomaly, MaxAnomaly),
			})
		}
	}
	return points, nil
}

// NewRand returns a generator private to the caller. The same seed always
// produces the same stream.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// linspace returns n evenly spaced values over [start, stop]. The last value
// is exactly stop; n == 1 yields just start.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// uniform draws from [lo, hi]. Float64 is in [0, 1), so hi itself is never returned.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
