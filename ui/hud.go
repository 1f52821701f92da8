// Package ui renders the HUD and the interactive controls panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrofield/redshift/spectrum"
)

// DopplerLegend is the fixed explanation line at the bottom of the
// screen.
const DopplerLegend = "Redshift = Moving Away (Redder) | Blueshift = Moving Toward (Bluer)"

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Status       string // formatted status line from the interaction state
	ShowScale    bool
	ScreenWidth  int32
	ScreenHeight int32
	FPS          int32
}

// HUD renders the overlay text and the spectrum scale.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD on top of the viewports.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Status, 10, 10, 14, rl.White)
	rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), data.ScreenWidth-90, 10, 14, rl.Gray)
	rl.DrawText(DopplerLegend, 10, data.ScreenHeight-25, 14, rl.White)

	if data.ShowScale {
		h.drawScale(data)
	}
}

// drawScale renders the wavelength-to-color gradient with shift labels,
// centered above the legend line.
func (h *HUD) drawScale(data HUDData) {
	const scaleWidth = 400
	const scaleHeight = 20
	scaleX := (data.ScreenWidth - scaleWidth) / 2
	scaleY := data.ScreenHeight - 60

	for i := int32(0); i < scaleWidth; i++ {
		w := float32(i) / scaleWidth
		c := spectrum.WavelengthToRGB(w)
		rl.DrawRectangle(scaleX+i, scaleY, 1, scaleHeight, ToRaylib(c))
	}
	rl.DrawRectangleLines(scaleX, scaleY, scaleWidth, scaleHeight, rl.Gray)

	rl.DrawText("Blueshift", scaleX-70, scaleY+4, 12, rl.White)
	rl.DrawText("Redshift", scaleX+scaleWidth+10, scaleY+4, 12, rl.White)
}
