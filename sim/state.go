// Package sim holds the interactive observer state and its transitions.
package sim

import (
	"fmt"

	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/starfield"
)

// Options configures the state transitions.
type Options struct {
	VelocityStep float32 // Observer velocity change per key press
	MaxVelocity  float32 // Observer velocity clamp, fraction of c
	IdleStep     float32 // Degrees of view rotation per frame tick
}

// State is the full interaction state: observer velocity, view angle and
// the two visibility toggles. It is the single owner of observer velocity;
// every velocity transition refreshes the star colors synchronously.
type State struct {
	ObserverVelocity float32 // Fraction of c, clamped to [-max, max]
	ViewAngle        float32 // Degrees
	ShowKeplerian    bool
	ShowFlat         bool

	field *starfield.Field
	opts  Options
}

// New creates the initial state with both models visible.
func New(field *starfield.Field, opts Options) *State {
	return &State{
		ShowKeplerian: true,
		ShowFlat:      true,
		field:         field,
		opts:          opts,
	}
}

// ObserverVelocityVector returns the observer velocity as a vector along
// the line of sight.
func (s *State) ObserverVelocityVector() components.Velocity {
	return components.Velocity{Z: s.ObserverVelocity}
}

// IncreaseObserverVelocity steps the observer velocity up, clamped, and
// refreshes both populations' colors.
func (s *State) IncreaseObserverVelocity() {
	s.ObserverVelocity += s.opts.VelocityStep
	if s.ObserverVelocity > s.opts.MaxVelocity {
		s.ObserverVelocity = s.opts.MaxVelocity
	}
	s.refresh()
}

// DecreaseObserverVelocity steps the observer velocity down, clamped, and
// refreshes both populations' colors.
func (s *State) DecreaseObserverVelocity() {
	s.ObserverVelocity -= s.opts.VelocityStep
	if s.ObserverVelocity < -s.opts.MaxVelocity {
		s.ObserverVelocity = -s.opts.MaxVelocity
	}
	s.refresh()
}

// RotateView adds delta degrees to the view angle. Discrete rotation does
// not wrap; only the idle rotation path does.
func (s *State) RotateView(delta float32) {
	s.ViewAngle += delta
}

// TickIdleRotation advances the continuous slow rotation, wrapping past a
// full turn.
func (s *State) TickIdleRotation() {
	s.ViewAngle += s.opts.IdleStep
	if s.ViewAngle > 360 {
		s.ViewAngle -= 360
	}
}

// ToggleKeplerianVisibility flips the Keplerian panel. Visibility only;
// no color recompute.
func (s *State) ToggleKeplerianVisibility() {
	s.ShowKeplerian = !s.ShowKeplerian
}

// ToggleFlatVisibility flips the flat-rotation panel.
func (s *State) ToggleFlatVisibility() {
	s.ShowFlat = !s.ShowFlat
}

// SetObserverVelocity jumps the observer velocity directly (slider input),
// clamped, refreshing colors when it changes.
func (s *State) SetObserverVelocity(v float32) {
	if v > s.opts.MaxVelocity {
		v = s.opts.MaxVelocity
	}
	if v < -s.opts.MaxVelocity {
		v = -s.opts.MaxVelocity
	}
	if v == s.ObserverVelocity {
		return
	}
	s.ObserverVelocity = v
	s.refresh()
}

// Reset restores the initial view and observer state.
func (s *State) Reset() {
	s.ViewAngle = 0
	s.ObserverVelocity = 0
	s.ShowKeplerian = true
	s.ShowFlat = true
	s.refresh()
}

// StatusLine formats the HUD status text.
func (s *State) StatusLine() string {
	return fmt.Sprintf("Observer Velocity: %.2fc | View Angle: %.1f | Use 'W/S' for velocity, 'A/D' for rotation",
		s.ObserverVelocity, s.ViewAngle)
}

func (s *State) refresh() {
	s.field.RefreshColors(s.ObserverVelocityVector())
}
