package starfield

import "math"

// radiusSoftening pads the orbital radius in the Keplerian rule so the
// speed stays finite at the disk center.
const radiusSoftening = 0.1

// VelocityRule maps an orbital radius to a tangential speed, as a
// fraction of light speed. The two rotation models differ only in this
// rule; generation is otherwise shared.
type VelocityRule func(radius float32) float32

// KeplerianRule returns the Keplerian rotation curve: speed proportional
// to 1/sqrt(radius), scaled so the speed at the disk edge approaches
// maxVelocity. Inner stars come out faster than light; the Doppler
// calculator's beta clamp absorbs that.
func KeplerianRule(maxVelocity, galaxyRadius float32) VelocityRule {
	return func(radius float32) float32 {
		return maxVelocity * float32(math.Sqrt(float64(galaxyRadius/(radius+radiusSoftening))))
	}
}

// FlatRule returns the flat rotation curve: constant speed at every
// radius, as observed in real galaxies.
func FlatRule(speed float32) VelocityRule {
	return func(float32) float32 {
		return speed
	}
}
