package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input. Escape quits through raylib's
// default WindowShouldClose handling.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Velocity keys act while held, stepping once per frame.
	if rl.IsKeyDown(rl.KeyW) {
		g.state.IncreaseObserverVelocity()
	}
	if rl.IsKeyDown(rl.KeyS) {
		g.state.DecreaseObserverVelocity()
	}

	// Discrete rotation steps
	rotateStep := float32(g.cfg.View.RotateStep)
	if rl.IsKeyPressed(rl.KeyA) {
		g.state.RotateView(-rotateStep)
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.state.RotateView(rotateStep)
	}

	if rl.IsKeyPressed(rl.KeyK) {
		g.state.ToggleKeplerianVisibility()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		g.state.ToggleFlatVisibility()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.state.Reset()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
}
