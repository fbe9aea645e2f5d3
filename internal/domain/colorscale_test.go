package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnomalyColor(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		want  string
	}{
		{"low end", -5, "#0000ff"},
		{"midpoint", 0, "#ffa500"},
		{"high end", 5, "#ff0000"},
		{"below range clamps", -12, "#0000ff"},
		{"above range clamps", 9, "#ff0000"},
		{"halfway low", -2.5, "#805380"},
		{"halfway high", 2.5, "#ff5300"},
		{"NaN", math.NaN(), "#0000ff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnomalyColor(tc.value))
		})
	}
}

func TestColorStops(t *testing.T) {
	stops := ColorStops()
	assert.Len(t, stops, 3)
	assert.Equal(t, "#0000ff", stops[0].Color)
	assert.Equal(t, 0.5, stops[1].Position)
	assert.Equal(t, "#ff0000", stops[2].Color)

	stops[0].Color = "#000000"
	assert.Equal(t, "#0000ff", ColorStops()[0].Color)
}
