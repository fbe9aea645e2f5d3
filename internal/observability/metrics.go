package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sealevel_dashboard"

// Metrics holds the Prometheus counters, histograms, and gauges for dashboard renders.
type Metrics struct {
	RendersTotal   prometheus.Counter
	RenderErrors   prometheus.Counter
	RenderDuration prometheus.Histogram
	GridPoints     prometheus.Histogram
	DashboardReady prometheus.Gauge

	RegionSelections *prometheus.CounterVec // labels: region
	SampledSeaLevel  prometheus.Histogram
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RendersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total dashboard renders.",
		}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Total renders that failed.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete render: grid, metric, and region lookup.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		GridPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grid_points",
			Help:      "Number of anomaly grid points per render.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		DashboardReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ready",
			Help:      "1 once a render has succeeded, 0 before.",
		}),
		RegionSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "region_selections_total",
			Help:      "Renders by selected region.",
		}, []string{"region"}),
		SampledSeaLevel: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sampled_sea_level_cm",
			Help:      "Mock selected-year sea-level values handed to the page.",
			Buckets:   prometheus.LinearBuckets(0, 3, 8),
		}),
	}

	prometheus.MustRegister(
		m.RendersTotal,
		m.RenderErrors,
		m.RenderDuration,
		m.GridPoints,
		m.DashboardReady,
		m.RegionSelections,
		m.SampledSeaLevel,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RendersTotal:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "renders_total"}),
		RenderErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "render_errors_total"}),
		RenderDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "render_duration_seconds"}),
		GridPoints:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "grid_points"}),
		DashboardReady:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "ready"}),
		RegionSelections: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "region_selections_total"}, []string{"region"}),
		SampledSeaLevel:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "sampled_sea_level_cm"}),
	}
}
