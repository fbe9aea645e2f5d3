package mapbox

import "github.com/couchcryptid/sea-level-dashboard/internal/domain"

// Basemap style names understood by the chart's mapbox layer. The Mapbox
// styles need an access token; carto-positron does not.
const (
	StyleMapboxLight   = "light"
	StyleCartoPositron = "carto-positron"
)

// Center is a map viewport center in WGS-84 degrees.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Layout is the mapbox section of the chart layout.
type Layout struct {
	Style       string  `json:"style"`
	AccessToken string  `json:"accesstoken,omitempty"`
	Zoom        float64 `json:"zoom"`
	Center      Center  `json:"center"`
}

// Style selects the basemap for the anomaly map.
type Style struct {
	name  string
	token string
}

// NewStyle returns the Mapbox light basemap when a token is configured and the
// token-free carto-positron basemap otherwise.
func NewStyle(token string) Style {
	if token == "" {
		return Style{name: StyleCartoPositron}
	}
	return Style{name: StyleMapboxLight, token: token}
}

// Name is the basemap style name.
func (s Style) Name() string { return s.name }

// UsesMapbox reports whether tiles come from Mapbox and carry the access token.
func (s Style) UsesMapbox() bool { return s.token != "" }

// Layout builds the chart's mapbox layout, centered on the middle of the
// anomaly grid.
func (s Style) Layout(zoom float64) Layout {
	return Layout{
		Style:       s.name,
		AccessToken: s.token,
		Zoom:        zoom,
		Center: Center{
			Lat: (domain.MinLat + domain.MaxLat) / 2,
			Lon: (domain.MinLon + domain.MaxLon) / 2,
		},
	}
}
