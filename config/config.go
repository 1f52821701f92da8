// Package config provides configuration loading and access for the
// visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astrofield/redshift/physics"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualization configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Galaxy    GalaxyConfig    `yaml:"galaxy"`
	Observer  ObserverConfig  `yaml:"observer"`
	View      ViewConfig      `yaml:"view"`
	Spectrum  SpectrumConfig  `yaml:"spectrum"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GalaxyConfig holds star-field generation parameters.
type GalaxyConfig struct {
	Stars         int     `yaml:"stars"`          // Stars per population
	Radius        float64 `yaml:"radius"`         // Disk radius in world units
	MinRadius     float64 `yaml:"min_radius"`     // Inner sampling bound
	HalfThickness float64 `yaml:"half_thickness"` // Disk half-height
	MaxVelocity   float64 `yaml:"max_velocity"`   // Keplerian speed scale, fraction of c
	FlatVelocity  float64 `yaml:"flat_velocity"`  // Flat-curve speed, fraction of c
}

// ObserverConfig holds observer position and velocity controls.
type ObserverConfig struct {
	PositionZ    float64 `yaml:"position_z"` // Fixed observer point on the z axis
	VelocityStep float64 `yaml:"velocity_step"`
	MaxVelocity  float64 `yaml:"max_velocity"` // Velocity clamp, fraction of c
}

// ViewConfig holds camera rotation parameters.
type ViewConfig struct {
	RotateStep float64 `yaml:"rotate_step"` // Degrees per key press
	IdleStep   float64 `yaml:"idle_step"`   // Degrees per frame tick
	EyeHeight  float64 `yaml:"eye_height"`  // Camera height above the disk plane
	FovY       float64 `yaml:"fovy"`        // Perspective field of view, degrees
}

// SpectrumConfig holds color mapping parameters.
type SpectrumConfig struct {
	ReferenceWavelength float64 `yaml:"reference_wavelength"` // Base wavelength, normalized [0,1]
}

// PhysicsConfig holds Doppler calculation parameters.
type PhysicsConfig struct {
	// LineOfSight selects the sight-line anchor: "velocity" is the
	// default, "position" anchors at the star's position instead.
	LineOfSight string `yaml:"line_of_sight"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds between stat windows
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	LOSMode     physics.LineOfSightMode
	ObserverZ32 float32
	RefWave32   float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the core cannot clamp its way around.
func (c *Config) validate() error {
	if c.Galaxy.Stars < 0 {
		// A zero count degrades to an empty field; negative is a typo.
		return fmt.Errorf("galaxy.stars must be >= 0, got %d", c.Galaxy.Stars)
	}
	if c.Galaxy.Radius <= c.Galaxy.MinRadius {
		return fmt.Errorf("galaxy.radius (%v) must exceed galaxy.min_radius (%v)",
			c.Galaxy.Radius, c.Galaxy.MinRadius)
	}
	switch c.Physics.LineOfSight {
	case "", "velocity", "position":
	default:
		return fmt.Errorf("physics.line_of_sight must be %q or %q, got %q",
			"velocity", "position", c.Physics.LineOfSight)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ObserverZ32 = float32(c.Observer.PositionZ)
	c.Derived.RefWave32 = float32(c.Spectrum.ReferenceWavelength)

	c.Derived.LOSMode = physics.LOSVelocity
	if c.Physics.LineOfSight == "position" {
		c.Derived.LOSMode = physics.LOSPosition
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
