// Package game wires the star field, interaction state and telemetry to
// the raylib render loop.
package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrofield/redshift/camera"
	"github.com/astrofield/redshift/config"
	"github.com/astrofield/redshift/sim"
	"github.com/astrofield/redshift/starfield"
	"github.com/astrofield/redshift/telemetry"
	"github.com/astrofield/redshift/ui"
)

// Options holds the run options passed from main.
type Options struct {
	LogStats  bool
	OutputDir string
}

// Game holds the presentation state around the core.
type Game struct {
	cfg   *config.Config
	field *starfield.Field
	state *sim.State
	cam   *camera.Orbit

	// One render texture per model viewport
	leftPanel  rl.RenderTexture2D
	rightPanel rl.RenderTexture2D

	hud       *ui.HUD
	controls  *ui.ControlsPanel
	showScale bool

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick int32
}

// New creates the game around an already generated field. The raylib
// window must exist before this is called (render texture creation needs
// a GL context).
func New(cfg *config.Config, field *starfield.Field, state *sim.State, opts Options) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		field: field,
		state: state,
		cam: camera.New(
			cfg.Derived.ObserverZ32,
			float32(cfg.View.EyeHeight),
			float32(cfg.View.FovY),
		),
		hud:      ui.NewHUD(),
		logStats: opts.LogStats,
	}

	panelW := int32(cfg.Screen.Width / 2)
	panelH := int32(cfg.Screen.Height)
	g.leftPanel = rl.LoadRenderTexture(panelW, panelH)
	g.rightPanel = rl.LoadRenderTexture(panelW, panelH)

	g.controls = ui.NewControlsPanel(
		20, 50, 220,
		float32(cfg.Observer.MaxVelocity),
	)

	dt := float32(1.0) / float32(cfg.Screen.TargetFPS)
	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, dt)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Update advances one frame: input, idle rotation, telemetry.
func (g *Game) Update() {
	g.handleInput()
	g.state.TickIdleRotation()
	g.flushTelemetry()
	g.tick++
}

// flushTelemetry emits a stats window when due.
func (g *Game) flushTelemetry() {
	if !g.logStats && g.output == nil {
		return
	}
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	records := g.collector.Flush(g.tick, g.field, g.state.ObserverVelocityVector())
	if g.logStats {
		for _, r := range records {
			r.LogStats()
		}
	}
	if err := g.output.WriteShifts(records); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}

// Tick returns the current frame tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases render resources and closes telemetry output.
func (g *Game) Unload() {
	rl.UnloadRenderTexture(g.leftPanel)
	rl.UnloadRenderTexture(g.rightPanel)
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
