package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// DefaultBaselineCM is the 2025 reference sea-level rise.
const DefaultBaselineCM = 21.0

// BaselineYear labels the baseline figure on the page.
const BaselineYear = 2025

// SeaLevelMetric compares a mock selected-year figure against the baseline.
type SeaLevelMetric struct {
	Year       int     `json:"year"`
	BaselineCM float64 `json:"baseline_cm"`
	SampledCM  float64 `json:"sampled_cm"`
	DeltaCM    float64 `json:"delta_cm"`
}

// EstimateSeaLevel draws SampledCM uniformly from [0, baselineCM] and rounds it
// to two decimals. The year is carried as a label and does not affect the draw.
func EstimateSeaLevel(year int, baselineCM float64, rng *rand.Rand) (SeaLevelMetric, error) {
	if math.IsNaN(baselineCM) || math.IsInf(baselineCM, 0) || baselineCM < 0 {
		return SeaLevelMetric{}, fmt.Errorf("baseline %v cm: %w", baselineCM, ErrInvalidArgument)
	}

	sampled := roundTo2(uniform(rng, 0, baselineCM))
	// Rounding up can overshoot the baseline by less than a hundredth.
	sampled = math.Min(sampled, baselineCM)

	return SeaLevelMetric{
		Year:       year,
		BaselineCM: baselineCM,
		SampledCM:  sampled,
		DeltaCM:    baselineCM - sampled,
	}, nil
}

// DeltaLabel formats the signed delta the way the metric widget shows it.
func (m SeaLevelMetric) DeltaLabel() string {
	return fmt.Sprintf("%.2f cm", m.DeltaCM)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
