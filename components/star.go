// Package components defines ECS components for the star populations.
package components

// Model identifies which rotation-curve model a star belongs to.
type Model uint8

const (
	// ModelKeplerian gives orbital speed falling off as 1/sqrt(radius).
	ModelKeplerian Model = iota
	// ModelFlat gives constant orbital speed regardless of radius.
	ModelFlat
)

// String returns the display name of the model.
func (m Model) String() string {
	if m == ModelFlat {
		return "Flat Rotation Curve"
	}
	return "Keplerian Orbit"
}

// Position is a star's world position. Fixed at generation; paired stars
// of the two models share the same position.
type Position struct {
	X, Y, Z float32
}

// Velocity is a star's orbital velocity as a fraction of light speed.
// Set once at generation; the rotation model is fixed for the run.
type Velocity struct {
	X, Y, Z float32
}

// RGB is a color triple with channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// StarColor holds a star's base color and its Doppler-shifted display
// color. Shifted is derived from velocity, observer velocity and the
// reference wavelength; it is recomputed on every observer change.
type StarColor struct {
	Base    RGB
	Shifted RGB
}

// Orbit tags a star with its rotation-curve model.
type Orbit struct {
	Model Model
}
