// Shift scan tool - sweeps the observer velocity over its full range and
// writes per-step Doppler distribution stats as CSV.
//
// Usage: go run ./cmd/shiftscan -stars 20000 > shifts.csv
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/config"
	"github.com/astrofield/redshift/starfield"
	"github.com/astrofield/redshift/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	stars := flag.Int("stars", 20000, "Stars per population")
	step := flag.Float64("step", 0.05, "Observer velocity step per scan point")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	out := flag.String("o", "", "Output file (empty = stdout)")

	flag.Parse()

	if err := run(*configPath, *stars, *step, *seed, *out); err != nil {
		fmt.Fprintln(os.Stderr, "shiftscan:", err)
		os.Exit(1)
	}
}

func run(configPath string, stars int, step float64, seed int64, out string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %v", step)
	}
	if stars < 0 {
		return fmt.Errorf("stars must be >= 0, got %d", stars)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	field := starfield.New(starfield.Params{
		Radius:        float32(cfg.Galaxy.Radius),
		MinRadius:     float32(cfg.Galaxy.MinRadius),
		HalfThickness: float32(cfg.Galaxy.HalfThickness),
		MaxVelocity:   float32(cfg.Galaxy.MaxVelocity),
		FlatVelocity:  float32(cfg.Galaxy.FlatVelocity),
		ObserverZ:     cfg.Derived.ObserverZ32,
		RefWavelength: cfg.Derived.RefWave32,
		LOSMode:       cfg.Derived.LOSMode,
	})
	field.Generate(stars, rng, components.Velocity{})

	var records []telemetry.ShiftStats
	tick := int32(0)
	for v := -cfg.Observer.MaxVelocity; v <= cfg.Observer.MaxVelocity+1e-9; v += step {
		observer := components.Velocity{Z: float32(v)}
		for _, m := range []components.Model{components.ModelKeplerian, components.ModelFlat} {
			rec := telemetry.ComputeShiftStats(m.String(), v, field.Factors(m, observer))
			rec.WindowEndTick = tick
			records = append(records, rec)
		}
		tick++
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
