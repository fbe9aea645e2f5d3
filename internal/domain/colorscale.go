package domain

import "fmt"

// ColorStop is one anchor of the anomaly gradient. Position is in [0, 1].
type ColorStop struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
	rgb      [3]uint8
}

var colorStops = []ColorStop{
	{Position: 0, Color: "#0000ff", rgb: [3]uint8{0x00, 0x00, 0xff}},
	{Position: 0.5, Color: "#ffa500", rgb: [3]uint8{0xff, 0xa5, 0x00}},
	{Position: 1, Color: "#ff0000", rgb: [3]uint8{0xff, 0x00, 0x00}},
}

// ColorStops returns the low, mid and high stops of the anomaly scale.
func ColorStops() []ColorStop {
	out := make([]ColorStop, len(colorStops))
	copy(out, colorStops)
	return out
}

// AnomalyColor maps an anomaly onto the gradient and returns "#rrggbb".
// Values outside [MinAnomaly, MaxAnomaly] take the end colors.
func AnomalyColor(v float64) string {
	pos := (v - MinAnomaly) / (MaxAnomaly - MinAnomaly)
	switch {
	case pos != pos || pos <= 0: // NaN falls to the low end
		return colorStops[0].Color
	case pos >= 1:
		return colorStops[len(colorStops)-1].Color
	}

	for i := 1; i < len(colorStops); i++ {
		lo, hi := colorStops[i-1], colorStops[i]
		if pos > hi.Position {
			continue
		}
		t := (pos - lo.Position) / (hi.Position - lo.Position)
		return fmt.Sprintf("#%02x%02x%02x",
			lerp(lo.rgb[0], hi.rgb[0], t),
			lerp(lo.rgb[1], hi.rgb[1], t),
			lerp(lo.rgb[2], hi.rgb[2], t),
		)
	}
	return colorStops[len(colorStops)-1].Color
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
