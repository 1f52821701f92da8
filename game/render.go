package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrofield/redshift/components"
	"github.com/astrofield/redshift/ui"
)

// spaceBlue is the deep-space clear color behind the star panels.
var spaceBlue = rl.NewColor(0, 0, 26, 255)

// Draw renders both model viewports side by side with the HUD on top.
func (g *Game) Draw() {
	g.cam.SetAngle(g.state.ViewAngle)

	g.drawPanel(g.leftPanel, components.ModelKeplerian, g.state.ShowKeplerian)
	g.drawPanel(g.rightPanel, components.ModelFlat, g.state.ShowFlat)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	panelW := float32(g.cfg.Screen.Width / 2)
	panelH := g.cfg.Derived.ScreenH32

	// Render textures are sampled with a flipped source rect; raylib
	// textures are y-inverted relative to screen space.
	src := rl.Rectangle{X: 0, Y: 0, Width: panelW, Height: -panelH}
	rl.DrawTextureRec(g.leftPanel.Texture, src, rl.Vector2{X: 0, Y: 0}, rl.White)
	rl.DrawTextureRec(g.rightPanel.Texture, src, rl.Vector2{X: panelW, Y: 0}, rl.White)

	g.hud.Draw(ui.HUDData{
		Status:       g.state.StatusLine(),
		ShowScale:    g.showScale,
		ScreenWidth:  int32(g.cfg.Screen.Width),
		ScreenHeight: int32(g.cfg.Screen.Height),
		FPS:          rl.GetFPS(),
	})
	g.controls.Draw(g.state, &g.showScale)

	rl.EndDrawing()
}

// drawPanel renders one population into its viewport texture. A hidden
// panel keeps its background and loses its stars and label.
func (g *Game) drawPanel(panel rl.RenderTexture2D, model components.Model, visible bool) {
	rl.BeginTextureMode(panel)
	rl.ClearBackground(spaceBlue)

	if visible {
		rl.BeginMode3D(g.camera3D())
		g.field.Each(model, func(pos components.Position, color components.RGB) {
			rl.DrawPoint3D(rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}, ui.ToRaylib(color))
		})
		rl.EndMode3D()

		rl.DrawText(model.String()+" Model", 20, 20, 18, rl.White)
	}

	rl.EndTextureMode()
}

// camera3D builds the raylib camera from the orbit viewpoint.
func (g *Game) camera3D() rl.Camera3D {
	x, y, z := g.cam.Eye()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       g.cam.FovY,
		Projection: rl.CameraPerspective,
	}
}
