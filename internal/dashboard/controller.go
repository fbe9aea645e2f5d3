package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/sea-level-dashboard/internal/config"
	"github.com/couchcryptid/sea-level-dashboard/internal/domain"
	"github.com/couchcryptid/sea-level-dashboard/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Options fixes what every render uses besides the user's selection.
type Options struct {
	LatCount   int
	LonCount   int
	Seed       int64
	Years      domain.YearBounds
	BaselineCM float64
}

// OptionsFromConfig copies the render settings out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		LatCount: cfg.GridLatCount,
		LonCount: cfg.GridLonCount,
		Seed:     cfg.GridSeed,
		Years: domain.YearBounds{
			Min:     cfg.YearMin,
			Max:     cfg.YearMax,
			Default: cfg.YearDefault,
		},
		BaselineCM: cfg.BaselineCM,
	}
}

// Dashboard is everything one render hands to the page.
type Dashboard struct {
	RenderID   string                `json:"render_id"`
	RenderedAt time.Time             `json:"rendered_at"`
	View       domain.ViewState      `json:"view"`
	Grid       []domain.GridPoint    `json:"grid"`
	Metric     domain.SeaLevelMetric `json:"metric"`
	RegionCase *domain.RegionCase    `json:"region_case,omitempty"`
	Regions    []string              `json:"regions"`
	Years      domain.YearBounds     `json:"years"`
}

// Controller renders dashboards from view selections.
type Controller struct {
	opts    Options
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
	renders atomic.Uint64
}

// New creates a Controller. A nil clock uses the real clock.
func New(opts Options, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Controller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Controller{
		opts:    opts,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Years returns the slider bounds.
func (c *Controller) Years() domain.YearBounds {
	return c.opts.Years
}

// ParseView validates raw control values against the configured slider bounds.
func (c *Controller) ParseView(rawYear, region string) (domain.ViewState, error) {
	return domain.ParseView(rawYear, region, c.opts.Years)
}

// CheckReadiness returns nil once a render has succeeded, or an error
// describing why the service is not yet ready.
func (c *Controller) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return errors.New("dashboard has not rendered yet")
	}
	return nil
}

// Render samples the grid, estimates the sea-level metric, and looks up the
// selected region. Each call works on its own generators and shares nothing
// with concurrent renders.
func (c *Controller) Render(ctx context.Context, view domain.ViewState) (Dashboard, error) {
	start := time.Now()
	c.metrics.RendersTotal.Inc()

	d, err := c.render(ctx, view)
	if err != nil {
		c.metrics.RenderErrors.Inc()
		return Dashboard{}, err
	}

	c.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	c.metrics.GridPoints.Observe(float64(len(d.Grid)))
	c.metrics.RegionSelections.WithLabelValues(view.Region).Inc()
	c.metrics.SampledSeaLevel.Observe(d.Metric.SampledCM)
	if !c.ready.Swap(true) {
		c.metrics.DashboardReady.Set(1)
	}

	c.logger.Debug("dashboard rendered",
		"render_id", d.RenderID,
		"year", view.Year,
		"region", view.Region,
		"points", len(d.Grid),
		"sampled_cm", d.Metric.SampledCM,
	)
	return d, nil
}

func (c *Controller) render(ctx context.Context, view domain.ViewState) (Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return Dashboard{}, err
	}
	if !c.opts.Years.Contains(view.Year) || !domain.IsSelectable(view.Region) {
		return Dashboard{}, fmt.Errorf("render view %+v: %w", view, domain.ErrInvalidArgument)
	}

	grid, err := domain.GenerateGrid(c.opts.LatCount, c.opts.LonCount, c.opts.Seed)
	if err != nil {
		return Dashboard{}, fmt.Errorf("generate grid: %w", err)
	}

	now := c.clock.Now()
	metric, err := domain.EstimateSeaLevel(view.Year, c.opts.BaselineCM, c.metricRand(now))
	if err != nil {
		return Dashboard{}, fmt.Errorf("estimate sea level: %w", err)
	}

	d := Dashboard{
		RenderID:   uuid.NewString(),
		RenderedAt: now,
		View:       view,
		Grid:       grid,
		Metric:     metric,
		Regions:    domain.RegionOptions(),
		Years:      c.opts.Years,
	}
	if rc, ok := domain.Lookup(view.Region); ok {
		d.RegionCase = &rc
	}
	return d, nil
}

// metricRand seeds a fresh generator per render from the clock and a render
// counter, so two renders in the same clock tick still draw differently.
func (c *Controller) metricRand(now time.Time) *rand.Rand {
	n := c.renders.Add(1)
	return rand.New(rand.NewPCG(uint64(now.UnixNano()), n))
}
