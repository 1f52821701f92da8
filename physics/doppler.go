// Package physics computes relativistic Doppler shift factors.
package physics

import (
	"math"

	"github.com/astrofield/redshift/components"
)

// SpeedOfLight is the normalized light speed; all velocities are
// fractions of it.
const SpeedOfLight float32 = 1.0

// betaLimit keeps the relative velocity strictly below light speed so the
// factor stays finite and real.
const betaLimit float32 = 0.99

// LineOfSightMode selects which vector anchors the line of sight toward
// the observer.
type LineOfSightMode uint8

const (
	// LOSVelocity anchors the line of sight at the star's velocity
	// vector rather than its position. Physically odd, but it is the
	// established output of this visualization, so it is the default.
	LOSVelocity LineOfSightMode = iota
	// LOSPosition anchors the line of sight at the star's actual
	// position.
	LOSPosition
)

// DopplerFactor returns the relativistic Doppler factor for a star as
// seen from a fixed observer at (0, 0, observerZ). The line of sight is
// taken from the star's velocity vector toward the observer point
// (LOSVelocity semantics). A factor above 1 is a redshift, below 1 a
// blueshift.
func DopplerFactor(starVel, observerVel components.Velocity, observerZ float32) float32 {
	return factorFrom(starVel.X, starVel.Y, starVel.Z, starVel, observerVel, observerZ)
}

// DopplerFactorAt is DopplerFactor with the line of sight anchored at the
// star's position instead of its velocity (LOSPosition semantics).
func DopplerFactorAt(pos components.Position, starVel, observerVel components.Velocity, observerZ float32) float32 {
	return factorFrom(pos.X, pos.Y, pos.Z, starVel, observerVel, observerZ)
}

// factorFrom computes sqrt((1+beta)/(1-beta)) with beta the line-of-sight
// relative velocity from the anchor point (ax, ay, az) toward the
// observer, clamped into (-betaLimit, betaLimit).
func factorFrom(ax, ay, az float32, starVel, observerVel components.Velocity, observerZ float32) float32 {
	losX := -ax
	losY := -ay
	losZ := observerZ - az

	l := float32(math.Sqrt(float64(losX*losX + losY*losY + losZ*losZ)))
	if l == 0 {
		// Anchor coincides with the observer: no line of sight, no shift.
		return 1
	}
	losX /= l
	losY /= l
	losZ /= l

	rel := (starVel.X-observerVel.X)*losX +
		(starVel.Y-observerVel.Y)*losY +
		(starVel.Z-observerVel.Z)*losZ

	beta := rel / SpeedOfLight
	if beta >= 1 {
		beta = betaLimit
	}
	if beta <= -1 {
		beta = -betaLimit
	}

	return float32(math.Sqrt(float64((1 + beta) / (1 - beta))))
}
