// Package camera provides the orbiting 3D viewpoint for the galaxy
// panels.
package camera

import "math"

// Orbit is a perspective viewpoint circling the origin about the Y axis
// at a fixed height and horizontal distance. The render layer reads the
// eye position each frame; the view angle comes from the interaction
// state.
type Orbit struct {
	// Distance is the horizontal distance from the rotation axis.
	Distance float32

	// Height of the eye above the disk plane.
	Height float32

	// FovY is the vertical field of view in degrees.
	FovY float32

	// AngleDeg is the current orbit angle in degrees. Zero puts the eye
	// on the +z axis, between the origin and the observer point.
	AngleDeg float32
}

// New creates an orbit camera at angle zero.
func New(distance, height, fovy float32) *Orbit {
	return &Orbit{
		Distance: distance,
		Height:   height,
		FovY:     fovy,
	}
}

// SetAngle points the camera at the given orbit angle in degrees. Any
// value is accepted; angles are periodic.
func (o *Orbit) SetAngle(deg float32) {
	o.AngleDeg = deg
}

// Eye returns the camera position in world coordinates.
func (o *Orbit) Eye() (x, y, z float32) {
	rad := float64(o.AngleDeg) * math.Pi / 180
	x = o.Distance * float32(math.Sin(rad))
	y = o.Height
	z = o.Distance * float32(math.Cos(rad))
	return x, y, z
}
