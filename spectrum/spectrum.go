// Package spectrum maps normalized wavelengths onto visible-spectrum RGB.
package spectrum

import "github.com/astrofield/redshift/components"

// WavelengthToRGB converts a normalized wavelength to an RGB color.
// The input maps the visible spectrum 400-700nm onto [0, 1]: 0 is violet,
// 1 is deep red. A piecewise-linear approximation, not colorimetrically
// exact. Callers must clamp the input to [0, 1] first; out-of-range
// values produce out-of-range channels.
func WavelengthToRGB(w float32) components.RGB {
	switch {
	case w <= 0.25: // violet to blue (400-475nm)
		return components.RGB{
			R: 0.5 * (w / 0.25),
			G: 0,
			B: 0.5 + 0.5*(w/0.25),
		}
	case w <= 0.4: // blue to cyan (475-500nm)
		return components.RGB{
			R: 0,
			G: (w - 0.25) / 0.15,
			B: 1,
		}
	case w <= 0.55: // cyan to green (500-570nm)
		return components.RGB{
			R: 0,
			G: 1,
			B: 1 - (w-0.4)/0.15,
		}
	case w <= 0.6: // green to yellow (570-590nm)
		return components.RGB{
			R: (w - 0.55) / 0.05,
			G: 1,
			B: 0,
		}
	case w <= 0.75: // yellow to red (590-650nm)
		return components.RGB{
			R: 1,
			G: 1 - (w-0.6)/0.15,
			B: 0,
		}
	default: // red (650-700nm)
		return components.RGB{R: 1, G: 0, B: 0}
	}
}

// ClampWavelength restricts a shifted wavelength to the visible range
// before mapping. Extreme blueshifts pin to violet, extreme redshifts
// to red.
func ClampWavelength(w float32) float32 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}
