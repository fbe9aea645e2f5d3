package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// YearBounds are the slider limits and the initial slider position.
type YearBounds struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// Contains reports whether year lies within [Min, Max].
func (b YearBounds) Contains(year int) bool {
	return year >= b.Min && year <= b.Max
}

// ViewState is the user's current selection.
type ViewState struct {
	Year   int    `json:"year"`
	Region string `json:"region"`
}

// ParseView builds a ViewState from raw control values. An empty year selects
// bounds.Default and an empty region selects WholeWorld. Years outside the
// bounds and unknown regions fail with ErrInvalidArgument.
func ParseView(rawYear, region string, bounds YearBounds) (ViewState, error) {
	year := bounds.Default
	if s := strings.TrimSpace(rawYear); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return ViewState{}, fmt.Errorf("year %q: %w", rawYear, ErrInvalidArgument)
		}
		year = v
	}
	return NewViewState(year, region, bounds)
}

// NewViewState validates year and region against bounds and the catalog.
func NewViewState(year int, region string, bounds YearBounds) (ViewState, error) {
	if !bounds.Contains(year) {
		return ViewState{}, fmt.Errorf("year %d outside [%d, %d]: %w", year, bounds.Min, bounds.Max, ErrInvalidArgument)
	}

	region = strings.TrimSpace(region)
	if region == "" {
		region = WholeWorld
	}
	if !IsSelectable(region) {
		return ViewState{}, fmt.Errorf("region %q: %w", region, ErrInvalidArgument)
	}

	return ViewState{Year: year, Region: region}, nil
}
