// Command gridcheck validates a grid fixture written by gridexport. It checks
// the point count, coordinate and anomaly bounds, longitude-major ordering,
// and that a fresh generation with the recorded seed reproduces every point
// bit for bit.
//
// Usage:
//
//	go run ./cmd/gridcheck -in data/fixtures/grid_80x180_seed42.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/sea-level-dashboard/internal/domain"
)

// maxReported caps how many errors one phase records.
const maxReported = 20

type fixture struct {
	LatCount int                `json:"lat_count"`
	LonCount int                `json:"lon_count"`
	Seed     int64              `json:"seed"`
	Points   []domain.GridPoint `json:"points"`
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	if len(p.errors) < maxReported {
		p.errors = append(p.errors, fmt.Sprintf(format, args...))
	}
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	in := flag.String("in", "", "path to the grid fixture JSON")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(run(*in))
}

func run(path string) int {
	fmt.Println("=== Grid Fixture Validation ===")

	fx, err := loadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load fixture: %v\n", err)
		return 1
	}

	phases := validate(fx)

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-32s %s\n", p.name, status)
	}
	fmt.Printf("\nPoints: %d (%dx%d, seed %d)\n", len(fx.Points), fx.LatCount, fx.LonCount, fx.Seed)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadFixture(path string) (fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, err
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return fixture{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return fx, nil
}

func validate(fx fixture) []*phase {
	return []*phase{
		validateCount(fx),
		validateBounds(fx.Points),
		validateOrder(fx),
		validateReproducible(fx),
	}
}

func validateCount(fx fixture) *phase {
	p := &phase{name: "Point count"}
	if fx.LatCount <= 0 || fx.LonCount <= 0 {
		p.errorf("non-positive resolution %dx%d", fx.LatCount, fx.LonCount)
		return p
	}
	if want := fx.LatCount * fx.LonCount; len(fx.Points) != want {
		p.errorf("got %d points, want %d", len(fx.Points), want)
	}
	return p
}

func validateBounds(points []domain.GridPoint) *phase {
	p := &phase{name: "Coordinate and anomaly bounds"}
	for i, pt := range points {
		if pt.Lat < domain.MinLat || pt.Lat > domain.MaxLat {
			p.errorf("point %d: lat %v outside [%v, %v]", i, pt.Lat, domain.MinLat, domain.MaxLat)
		}
		if pt.Lon < domain.MinLon || pt.Lon > domain.MaxLon {
			p.errorf("point %d: lon %v outside [%v, %v]", i, pt.Lon, domain.MinLon, domain.MaxLon)
		}
		if math.IsNaN(pt.Anomaly) || pt.Anomaly < domain.MinAnomaly || pt.Anomaly > domain.MaxAnomaly {
			p.errorf("point %d: anomaly %v outside [%v, %v]", i, pt.Anomaly, domain.MinAnomaly, domain.MaxAnomaly)
		}
	}
	return p
}

// validateOrder checks the lon-major layout: longitude is constant within each
// run of LatCount points and latitude increases inside the run.
func validateOrder(fx fixture) *phase {
	p := &phase{name: "Longitude-major order"}
	if fx.LatCount <= 0 {
		p.errorf("non-positive lat count %d", fx.LatCount)
		return p
	}
	for i := 1; i < len(fx.Points); i++ {
		prev, cur := fx.Points[i-1], fx.Points[i]
		if i%fx.LatCount == 0 {
			if cur.Lon <= prev.Lon {
				p.errorf("point %d: lon %v does not advance past %v", i, cur.Lon, prev.Lon)
			}
			continue
		}
		if cur.Lon != prev.Lon {
			p.errorf("point %d: lon changed mid-run (%v -> %v)", i, prev.Lon, cur.Lon)
		}
		if cur.Lat <= prev.Lat {
			p.errorf("point %d: lat %v does not increase past %v", i, cur.Lat, prev.Lat)
		}
	}
	return p
}

func validateReproducible(fx fixture) *phase {
	p := &phase{name: "Reproducible from seed"}
	want, err := domain.GenerateGrid(fx.LatCount, fx.LonCount, fx.Seed)
	if err != nil {
		p.errorf("regenerate: %v", err)
		return p
	}
	if len(want) != len(fx.Points) {
		p.errorf("regenerated %d points, fixture has %d", len(want), len(fx.Points))
		return p
	}
	for i := range want {
		if want[i] != fx.Points[i] {
			p.errorf("point %d: fixture %+v, regenerated %+v", i, fx.Points[i], want[i])
		}
	}
	return p
}
