package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/config"
	"github.com/astrofield/redshift/game"
	"github.com/astrofield/redshift/sim"
	"github.com/astrofield/redshift/starfield"
	"github.com/astrofield/redshift/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run a scripted velocity sweep without graphics")
	logStats := flag.Bool("log-stats", false, "Output shift stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	stars := flag.Int("stars", 0, "Stars per population (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited; headless defaults to one sweep)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	starCount := cfg.Galaxy.Stars
	if *stars > 0 {
		starCount = *stars
	}

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

	genStart := time.Now()
	field.Generate(starCount, rng, components.Velocity{})
	slog.Info("star field generated",
		"stars_per_model", starCount,
		"seed", rngSeed,
		"line_of_sight", cfg.Physics.LineOfSight,
		"elapsed", time.Since(genStart).Round(time.Millisecond),
	)

	state := sim.New(field, sim.Options{
		VelocityStep: float32(cfg.Observer.VelocityStep),
		MaxVelocity:  float32(cfg.Observer.MaxVelocity),
		IdleStep:     float32(cfg.View.IdleStep),
	})

	if *headless {
		if err := runHeadless(cfg, field, state, *logStats, *outputDir, *maxTicks); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height),
		"Relativistic Doppler Effect: Galaxy Rotation Models")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(cfg, field, state, game.Options{
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("controls",
		"w/s", "observer velocity",
		"a/d", "rotate view",
		"k", "toggle Keplerian model",
		"f", "toggle flat rotation model",
		"r", "reset",
		"tab", "controls panel",
		"esc", "exit",
	)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless sweeps the observer velocity over its full range while
// emitting telemetry, with no raylib dependency.
func runHeadless(cfg *config.Config, field *starfield.Field, state *sim.State, logStats bool, outputDir string, maxTicks int) error {
	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	dt := float32(1.0) / float32(cfg.Screen.TargetFPS)
	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow, dt)

	if maxTicks == 0 {
		// One full bounce: up to +max, down to -max, back to zero.
		maxTicks = 4 * int(cfg.Observer.MaxVelocity/cfg.Observer.VelocityStep)
	}

	slog.Info("starting headless sweep", "max_ticks", maxTicks)

	increasing := true
	for tick := int32(1); tick <= int32(maxTicks); tick++ {
		if increasing {
			state.IncreaseObserverVelocity()
			if state.ObserverVelocity >= float32(cfg.Observer.MaxVelocity) {
				increasing = false
			}
		} else {
			state.DecreaseObserverVelocity()
			if state.ObserverVelocity <= -float32(cfg.Observer.MaxVelocity) {
				increasing = true
			}
		}
		state.TickIdleRotation()

		if collector.ShouldFlush(tick) {
			records := collector.Flush(tick, field, state.ObserverVelocityVector())
			if logStats {
				for _, r := range records {
					r.LogStats()
				}
			}
			if err := output.WriteShifts(records); err != nil {
				return err
			}
		}
	}

	slog.Info("headless sweep complete", "observer_velocity", state.ObserverVelocity)
	return nil
}
