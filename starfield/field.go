// Package starfield generates and maintains the two star populations.
package starfield

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/physics"
	"github.com/astrofield/redshift/spectrum"
)

// Params holds the generation and shift parameters for a star field.
type Params struct {
	Radius        float32 // Disk radius
	MinRadius     float32 // Inner sampling bound
	HalfThickness float32 // Disk half-height
	MaxVelocity   float32 // Keplerian speed scale
	FlatVelocity  float32 // Flat-curve speed
	ObserverZ     float32 // Fixed observer point on the z axis
	RefWavelength float32 // Base wavelength, normalized [0,1]
	LOSMode       physics.LineOfSightMode
}

// Field owns the two index-aligned star populations. Positions and
// velocities are fixed at generation; only the shifted display colors
// change afterward.
type Field struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.StarColor, components.Orbit]
	filter *ecs.Filter4[components.Position, components.Velocity, components.StarColor, components.Orbit]

	params Params
	count  int // stars per population
}

// New creates an empty field with the given parameters.
func New(params Params) *Field {
	world := ecs.NewWorld()
	return &Field{
		world: world,
		mapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.StarColor,
			components.Orbit,
		](world),
		filter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.StarColor,
			components.Orbit,
		](world),
		params: params,
	}
}

// Count returns the number of stars per population.
func (f *Field) Count() int {
	return f.count
}

// Generate replaces both populations wholesale with count stars each,
// sampled from the disk distribution. Paired stars share a position; the
// velocity differs per rotation model. A zero or negative count leaves
// the field empty. The random source is injected so harnesses can fix
// seeds.
func (f *Field) Generate(count int, rng *rand.Rand, observerVel components.Velocity) {
	f.clear()
	if count < 0 {
		count = 0
	}
	f.count = count

	keplerian := KeplerianRule(f.params.MaxVelocity, f.params.Radius)
	flat := FlatRule(f.params.FlatVelocity)
	base := spectrum.WavelengthToRGB(f.params.RefWavelength)

	for i := 0; i < count; i++ {
		angle := rng.Float32() * 2 * math.Pi
		radius := f.params.MinRadius + rng.Float32()*(f.params.Radius-f.params.MinRadius)
		height := -f.params.HalfThickness + rng.Float32()*2*f.params.HalfThickness

		sin := float32(math.Sin(float64(angle)))
		cos := float32(math.Cos(float64(angle)))

		pos := components.Position{X: radius * cos, Y: height, Z: radius * sin}

		// Tangential unit direction in the disk plane
		tangentX := -sin
		tangentZ := cos

		f.spawn(pos, tangentX, tangentZ, keplerian(radius), components.ModelKeplerian, base, observerVel)
		f.spawn(pos, tangentX, tangentZ, flat(radius), components.ModelFlat, base, observerVel)
	}
}

// spawn creates one star entity with its initial shifted color.
func (f *Field) spawn(pos components.Position, tangentX, tangentZ, speed float32, model components.Model, base components.RGB, observerVel components.Velocity) {
	vel := components.Velocity{X: speed * tangentX, Y: 0, Z: speed * tangentZ}
	color := components.StarColor{
		Base:    base,
		Shifted: f.shiftedColor(pos, vel, observerVel),
	}
	orbit := components.Orbit{Model: model}
	f.mapper.NewEntity(&pos, &vel, &color, &orbit)
}

// RefreshColors recomputes every star's shifted color for the given
// observer velocity, leaving positions and velocities untouched. O(count)
// over both populations, no entity allocation.
func (f *Field) RefreshColors(observerVel components.Velocity) {
	query := f.filter.Query()
	for query.Next() {
		pos, vel, color, _ := query.Get()
		color.Shifted = f.shiftedColor(*pos, *vel, observerVel)
	}
}

// shiftedColor derives the display color from the Doppler-shifted
// reference wavelength, clamped into the visible range.
func (f *Field) shiftedColor(pos components.Position, vel, observerVel components.Velocity) components.RGB {
	var factor float32
	if f.params.LOSMode == physics.LOSPosition {
		factor = physics.DopplerFactorAt(pos, vel, observerVel, f.params.ObserverZ)
	} else {
		factor = physics.DopplerFactor(vel, observerVel, f.params.ObserverZ)
	}
	w := spectrum.ClampWavelength(f.params.RefWavelength * factor)
	return spectrum.WavelengthToRGB(w)
}

// Each iterates one population's positions and display colors, for point
// rendering.
func (f *Field) Each(model components.Model, fn func(pos components.Position, color components.RGB)) {
	query := f.filter.Query()
	for query.Next() {
		pos, _, color, orbit := query.Get()
		if orbit.Model != model {
			continue
		}
		fn(*pos, color.Shifted)
	}
}

// EachStar iterates every star of both populations with its full state.
func (f *Field) EachStar(fn func(pos components.Position, vel components.Velocity, color components.StarColor, model components.Model)) {
	query := f.filter.Query()
	for query.Next() {
		pos, vel, color, orbit := query.Get()
		fn(*pos, *vel, *color, orbit.Model)
	}
}

// Factors collects the current Doppler factor of every star in one
// population. Used by telemetry; allocates one slice per call.
func (f *Field) Factors(model components.Model, observerVel components.Velocity) []float64 {
	factors := make([]float64, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		pos, vel, _, orbit := query.Get()
		if orbit.Model != model {
			continue
		}
		var factor float32
		if f.params.LOSMode == physics.LOSPosition {
			factor = physics.DopplerFactorAt(*pos, *vel, observerVel, f.params.ObserverZ)
		} else {
			factor = physics.DopplerFactor(*vel, observerVel, f.params.ObserverZ)
		}
		factors = append(factors, float64(factor))
	}
	return factors
}

// clear removes all star entities. Collection completes before removal;
// removing during query iteration is not allowed.
func (f *Field) clear() {
	var toRemove []ecs.Entity
	query := f.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		f.mapper.Remove(e)
	}
	f.count = 0
}
