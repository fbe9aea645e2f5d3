// Command gridexport writes the synthetic anomaly grid to a fixture file so
// map renders can be compared across builds. It uses the same domain sampler
// as the dashboard, so a fixture produced here matches what the page draws.
//
// Usage:
//
//	go run ./cmd/gridexport \
//	  -lat 80 -lon 180 -seed 42 \
//	  -out data/fixtures/grid_80x180_seed42.json
//
// Pass -format csv for a lat,lon,anomaly,color table instead of JSON.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/sea-level-dashboard/internal/domain"
)

// fixture is the JSON layout shared with cmd/gridcheck.
type fixture struct {
	LatCount int                `json:"lat_count"`
	LonCount int                `json:"lon_count"`
	Seed     int64              `json:"seed"`
	Points   []domain.GridPoint `json:"points"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	lat := flag.Int("lat", 80, "number of latitude samples over [-60, 80]")
	lon := flag.Int("lon", 180, "number of longitude samples over [-180, 180]")
	seed := flag.Int64("seed", 42, "anomaly generator seed")
	out := flag.String("out", "", "output path for the fixture")
	format := flag.String("format", "json", "output format: json or csv")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *format != "json" && *format != "csv" {
		return fmt.Errorf("unknown -format %q", *format)
	}

	points, err := domain.GenerateGrid(*lat, *lon, *seed)
	if err != nil {
		return fmt.Errorf("generate grid: %w", err)
	}

	fx := fixture{LatCount: *lat, LonCount: *lon, Seed: *seed, Points: points}
	if err := writeFile(*out, *format, fx); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}

	log.Printf("wrote %d points (%dx%d, seed %d) to %s", len(points), *lat, *lon, *seed, *out)
	printStats(points)
	return nil
}

// writeFile writes fx to path in the given format. A failed Close is
// reported, since the final flush to disk happens there.
func writeFile(path, format string, fx fixture) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	if format == "csv" {
		return writeCSV(f, fx.Points)
	}
	return writeJSON(f, fx)
}

func writeJSON(w io.Writer, v fixture) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, points []domain.GridPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lat", "lon", "anomaly", "color"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Lat, 'g', -1, 64),
			strconv.FormatFloat(p.Lon, 'g', -1, 64),
			strconv.FormatFloat(p.Anomaly, 'g', -1, 64),
			domain.AnomalyColor(p.Anomaly),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// printStats summarizes the anomaly distribution for eyeballing a new fixture.
func printStats(points []domain.GridPoint) {
	if len(points) == 0 {
		return
	}
	lo, hi, sum := points[0].Anomaly, points[0].Anomaly, 0.0
	var below, above int
	for _, p := range points {
		lo = min(lo, p.Anomaly)
		hi = max(hi, p.Anomaly)
		sum += p.Anomaly
		if p.Anomaly < 0 {
			below++
		} else {
			above++
		}
	}
	fmt.Println("\n=== Anomaly stats ===")
	fmt.Printf("min=%.3f max=%.3f mean=%.3f\n", lo, hi, sum/float64(len(points)))
	fmt.Printf("below zero=%d, zero or above=%d\n", below, above)
}
