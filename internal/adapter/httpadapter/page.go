package httpadapter

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/couchcryptid/sea-level-dashboard/internal/adapter/mapbox"
	"github.com/couchcryptid/sea-level-dashboard/internal/dashboard"
	"github.com/couchcryptid/sea-level-dashboard/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageOptions controls how the anomaly map is drawn.
type PageOptions struct {
	Style         mapbox.Style
	Zoom          float64
	MarkerSize    int
	MarkerOpacity float64
}

type page struct {
	tmpl *template.Template
	opts PageOptions
}

func newPage(opts PageOptions) (*page, error) {
	tmpl, err := template.New("index.html.tmpl").ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &page{tmpl: tmpl, opts: opts}, nil
}

// pageData is what the template sees.
type pageData struct {
	Dashboard    dashboard.Dashboard
	BaselineYear int
	Chart        template.JS
	LegendCSS    template.CSS
	LegendMin    float64
	LegendMax    float64
	Reflections  []string
}

func (p *page) write(w io.Writer, d dashboard.Dashboard) error {
	fig, err := p.chartJSON(d.Grid)
	if err != nil {
		return err
	}
	return p.tmpl.Execute(w, pageData{
		Dashboard:    d,
		BaselineYear: domain.BaselineYear,
		Chart:        template.JS(fig),
		LegendCSS:    legendGradient(),
		LegendMin:    domain.MinAnomaly,
		LegendMax:    domain.MaxAnomaly,
		Reflections:  reflections,
	})
}

var reflections = []string{
	"해수면 상승이 내 삶에 영향을 줄 수 있다.",
	"국제 사회가 함께 해결해야 한다.",
	"개인적으로 기후 행동에 참여할 의향이 있다.",
}

type chartMarker struct {
	Size    int      `json:"size"`
	Opacity float64  `json:"opacity"`
	Color   []string `json:"color"`
}

type chartTrace struct {
	Type      string      `json:"type"`
	Mode      string      `json:"mode"`
	Lat       []float64   `json:"lat"`
	Lon       []float64   `json:"lon"`
	Text      []string    `json:"text"`
	HoverInfo string      `json:"hoverinfo"`
	Marker    chartMarker `json:"marker"`
}

type chartMargin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type chartLayout struct {
	Mapbox mapbox.Layout `json:"mapbox"`
	Margin chartMargin   `json:"margin"`
	Height int           `json:"height"`
}

type chart struct {
	Data   []chartTrace `json:"data"`
	Layout chartLayout  `json:"layout"`
}

// chartJSON builds the scattermapbox figure. Marker colors are computed here
// so the page and the API share one color scale.
func (p *page) chartJSON(grid []domain.GridPoint) (string, error) {
	tr := chartTrace{
		Type:      "scattermapbox",
		Mode:      "markers",
		Lat:       make([]float64, len(grid)),
		Lon:       make([]float64, len(grid)),
		Text:      make([]string, len(grid)),
		HoverInfo: "text",
		Marker: chartMarker{
			Size:    p.opts.MarkerSize,
			Opacity: p.opts.MarkerOpacity,
			Color:   make([]string, len(grid)),
		},
	}
	for i, pt := range grid {
		tr.Lat[i] = pt.Lat
		tr.Lon[i] = pt.Lon
		tr.Text[i] = fmt.Sprintf("%.1f°, %.1f°: %+.2f °C", pt.Lat, pt.Lon, pt.Anomaly)
		tr.Marker.Color[i] = domain.AnomalyColor(pt.Anomaly)
	}

	data, err := json.Marshal(chart{
		Data: []chartTrace{tr},
		Layout: chartLayout{
			Mapbox: p.opts.Style.Layout(p.opts.Zoom),
			Margin: chartMargin{},
			Height: 520,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode chart: %w", err)
	}
	return string(data), nil
}

// legendGradient renders the color stops as a CSS linear-gradient.
func legendGradient() template.CSS {
	stops := domain.ColorStops()
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("%s %.0f%%", s.Color, s.Position*100)
	}
	return template.CSS("linear-gradient(to right, " + strings.Join(parts, ", ") + ")")
}
