package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrofield/redshift/components"
)

// ToRaylib converts a unit-range RGB triple to a raylib color.
func ToRaylib(c components.RGB) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), 255)
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
