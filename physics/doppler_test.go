package physics

import (
	"math"
	"testing"

	"github.com/astrofield/redshift/components"
)

const observerZ = 20.0

// vz builds a velocity along the z axis. With the observer point on the
// z axis and the anchor below it, the line of sight is exactly (0,0,1),
// so beta equals the z velocity difference directly.
func vz(v float32) components.Velocity {
	return components.Velocity{Z: v}
}

func TestDopplerFactorNoRelativeMotion(t *testing.T) {
	tests := []struct {
		name     string
		star, ob components.Velocity
	}{
		{"both at rest", components.Velocity{}, components.Velocity{}},
		{"equal velocities", components.Velocity{X: 0.3, Z: 0.1}, components.Velocity{X: 0.3, Z: 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DopplerFactor(tt.star, tt.ob, observerZ)
			if math.Abs(float64(got-1)) > 1e-6 {
				t.Errorf("factor = %v, want 1", got)
			}
		})
	}
}

func TestDopplerFactorSign(t *testing.T) {
	// Positive line-of-sight velocity gives a factor above 1, negative
	// below 1. The factor sign follows the raw dot product; this pins
	// that convention rather than a textbook approach/recession
	// mapping.
	positive := DopplerFactor(vz(0.5), components.Velocity{}, observerZ)
	if positive <= 1 {
		t.Errorf("positive beta: factor = %v, want > 1", positive)
	}

	negative := DopplerFactor(vz(-0.5), components.Velocity{}, observerZ)
	if negative >= 1 {
		t.Errorf("negative beta: factor = %v, want < 1", negative)
	}
}

func TestDopplerFactorMonotonicInBeta(t *testing.T) {
	prev := float32(0)
	for i := -90; i <= 90; i += 5 {
		beta := float32(i) / 100
		f := DopplerFactor(vz(beta), components.Velocity{}, observerZ)
		if f <= 0 {
			t.Fatalf("factor for beta %v = %v, want positive", beta, f)
		}
		if prev != 0 && f <= prev {
			t.Fatalf("factor not monotonic at beta %v: %v <= %v", beta, f, prev)
		}
		prev = f
	}
}

func TestDopplerFactorClampsExtremeBeta(t *testing.T) {
	tests := []struct {
		name string
		star components.Velocity
		want float64
	}{
		// Raw beta 5 clamps to 0.99: sqrt(1.99/0.01)
		{"superluminal approach", vz(5), math.Sqrt(1.99 / 0.01)},
		// Raw beta -5 clamps to -0.99: sqrt(0.01/1.99)
		{"superluminal recession", vz(-5), math.Sqrt(0.01 / 1.99)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DopplerFactor(tt.star, components.Velocity{}, observerZ)
			if math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
				t.Fatalf("factor = %v, want finite", got)
			}
			if math.Abs(float64(got)-tt.want) > 1e-2 {
				t.Errorf("factor = %v, want %v", got, tt.want)
			}
		})
	}
}

// Single-star scenario: a Keplerian star at angle 0, radius 15 has
// velocity (0, 0, 0.5*sqrt(15/15.1)) ~= (0, 0, 0.49834). With the
// observer at rest, beta equals that speed and the factor is
// sqrt(1.49834/0.50166) ~= 1.7282.
func TestDopplerFactorKeplerianEdgeStar(t *testing.T) {
	speed := float32(0.5 * math.Sqrt(15.0/15.1))
	got := DopplerFactor(vz(speed), components.Velocity{}, observerZ)
	if math.Abs(float64(got)-1.7282) > 1e-3 {
		t.Errorf("factor = %v, want ~1.7282", got)
	}
}

func TestDopplerFactorAtUsesPosition(t *testing.T) {
	// Star on the +x axis moving tangentially (+z). Velocity-anchored
	// line of sight sees the full tangential speed; position-anchored
	// sees motion mostly perpendicular to the sight line, so the shift
	// is milder.
	pos := components.Position{X: 15}
	vel := components.Velocity{Z: 0.5}
	at := DopplerFactorAt(pos, vel, components.Velocity{}, observerZ)
	plain := DopplerFactor(vel, components.Velocity{}, observerZ)

	if at <= 1 {
		t.Errorf("position-anchored factor = %v, want > 1 (still closing along sight line)", at)
	}
	if at >= plain {
		t.Errorf("position-anchored factor %v should be below velocity-anchored %v", at, plain)
	}
}

func TestDopplerFactorAnchorAtObserver(t *testing.T) {
	// Degenerate anchor exactly at the observer point: no direction
	// exists, treated as no shift.
	got := DopplerFactor(vz(observerZ), components.Velocity{}, observerZ)
	if got != 1 {
		t.Errorf("factor = %v, want 1", got)
	}
}
