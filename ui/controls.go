package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrofield/redshift/sim"
)

// ControlsPanel renders an interactive panel mirroring the keyboard
// controls: an observer-velocity slider, visibility checkboxes and a
// reset button.
type ControlsPanel struct {
	x, y        float32
	width       float32
	maxVelocity float32
	visible     bool
}

// NewControlsPanel creates a controls panel at the given position.
func NewControlsPanel(x, y, width, maxVelocity float32) *ControlsPanel {
	return &ControlsPanel{
		x:           x,
		y:           y,
		width:       width,
		maxVelocity: maxVelocity,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() {
	c.visible = !c.visible
}

// Draw renders the panel and pushes any edits back into the interaction
// state.
func (c *ControlsPanel) Draw(state *sim.State, showScale *bool) {
	if !c.visible {
		return
	}

	x, y := c.x, c.y
	rl.DrawRectangle(int32(x)-10, int32(y)-10, int32(c.width)+20, 170, rl.NewColor(0, 0, 40, 200))

	rl.DrawText("Observer Velocity", int32(x), int32(y), 14, rl.LightGray)
	y += 18
	newV := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: c.width - 60, Height: 20},
		fmt.Sprintf("%.1f", -c.maxVelocity), fmt.Sprintf("%.1f", c.maxVelocity),
		state.ObserverVelocity, -c.maxVelocity, c.maxVelocity,
	)
	rl.DrawText(fmt.Sprintf("%.2fc", state.ObserverVelocity), int32(x+c.width-50), int32(y+2), 16, rl.White)
	if newV != state.ObserverVelocity {
		state.SetObserverVelocity(newV)
	}
	y += 35

	showKep := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Keplerian model", state.ShowKeplerian)
	if showKep != state.ShowKeplerian {
		state.ToggleKeplerianVisibility()
	}
	y += 24

	showFlat := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Flat rotation model", state.ShowFlat)
	if showFlat != state.ShowFlat {
		state.ToggleFlatVisibility()
	}
	y += 24

	*showScale = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Spectrum scale", *showScale)
	y += 28

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 26}, "Reset") {
		state.Reset()
	}
}
