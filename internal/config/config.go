package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// MaxGridAxis caps GRID_LAT_COUNT and GRID_LON_COUNT so one render stays
// within a bounded allocation.
const MaxGridAxis = 1000

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Anomaly grid resolution and seed.
	GridLatCount int
	GridLonCount int
	GridSeed     int64

	// Year slider.
	YearMin     int
	YearMax     int
	YearDefault int

	BaselineCM float64

	// Map widget presentation.
	MarkerSize    int
	MarkerOpacity float64
	MapZoom       float64
	MapboxToken   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		MapboxToken:     sharedcfg.EnvOrDefault("MAPBOX_TOKEN", ""),
	}

	ints := []struct {
		key string
		def string
		dst *int
	}{
		{"GRID_LAT_COUNT", "80", &cfg.GridLatCount},
		{"GRID_LON_COUNT", "180", &cfg.GridLonCount},
		{"YEAR_MIN", "1800", &cfg.YearMin},
		{"YEAR_MAX", "2050", &cfg.YearMax},
		{"MARKER_SIZE", "5", &cfg.MarkerSize},
	}
	for _, f := range ints {
		v, err := parseInt(f.key, f.def)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	// The slider starts at the top of the range unless told otherwise.
	yearDefault, err := parseInt("YEAR_DEFAULT", strconv.Itoa(cfg.YearMax))
	if err != nil {
		return nil, err
	}
	cfg.YearDefault = yearDefault

	seed, err := strconv.ParseInt(sharedcfg.EnvOrDefault("GRID_SEED", "42"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid GRID_SEED")
	}
	cfg.GridSeed = seed

	if cfg.BaselineCM, err = parseFloat("BASELINE_CM", "21.0"); err != nil {
		return nil, err
	}
	if cfg.MarkerOpacity, err = parseFloat("MARKER_OPACITY", "0.7"); err != nil {
		return nil, err
	}
	if cfg.MapZoom, err = parseFloat("MAP_ZOOM", "1"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.GridLatCount <= 0 || c.GridLatCount > MaxGridAxis {
		return fmt.Errorf("GRID_LAT_COUNT must be between 1 and %d", MaxGridAxis)
	}
	if c.GridLonCount <= 0 || c.GridLonCount > MaxGridAxis {
		return fmt.Errorf("GRID_LON_COUNT must be between 1 and %d", MaxGridAxis)
	}
	if c.YearMin > c.YearMax {
		return fmt.Errorf("YEAR_MIN %d is after YEAR_MAX %d", c.YearMin, c.YearMax)
	}
	if c.YearDefault < c.YearMin || c.YearDefault > c.YearMax {
		return fmt.Errorf("YEAR_DEFAULT %d outside [%d, %d]", c.YearDefault, c.YearMin, c.YearMax)
	}
	if math.IsNaN(c.BaselineCM) || c.BaselineCM < 0 {
		return errors.New("BASELINE_CM must not be negative")
	}
	if c.MarkerSize <= 0 {
		return errors.New("MARKER_SIZE must be positive")
	}
	if !(c.MarkerOpacity >= 0 && c.MarkerOpacity <= 1) {
		return errors.New("MARKER_OPACITY must be within [0, 1]")
	}
	return nil
}

func parseInt(key, def string) (int, error) {
	v, err := strconv.Atoi(sharedcfg.EnvOrDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

func parseFloat(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, def), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
