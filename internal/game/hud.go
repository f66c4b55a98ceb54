package game

import (
	"fmt"

	"efield/internal/editor"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelX = 10
	panelY = 10
	panelW = 320
	panelH = 400
)

// mouseInPanel reports whether the pointer sits over the HUD panel, so 3D
// picking can ignore clicks there.
func (g *Game) mouseInPanel(mouse rl.Vector2) bool {
	return mouse.X >= panelX && mouse.X <= panelX+panelW &&
		mouse.Y >= panelY && mouse.Y <= panelY+panelH
}

func (g *Game) drawHUD(cam rl.Camera3D) {
	g.drawChargeLabels(cam)

	gui.Panel(rl.NewRectangle(panelX, panelY, panelW, panelH), "CONTROLS")

	y := float32(panelY + 34)
	line := func(text string, color rl.Color) {
		rl.DrawText(text, panelX+10, int32(y), 20, color)
		y += 34
	}

	line("[F] Toggle Cam/Mouse", rl.White)
	line("L-Click: Create Charge", rl.Orange)
	line("L-Click Drag: Move", rl.White)
	line("R-Click: Delete", rl.White)
	line("Arrows: Density/Length", rl.Yellow)
	y += 16

	params := g.controller.Params
	line(fmt.Sprintf("Line Density: %d", params.AngularResolution), rl.LightGray)
	line(fmt.Sprintf("Line Steps: %d", params.MaxSteps), rl.LightGray)
	y += 16

	if g.controller.Mode() == editor.ModePlacingValue {
		rl.DrawText("ENTER VALUE:", panelX+10, int32(y), 26, rl.Green)
		rl.DrawText(g.controller.Buffer()+"_", panelX+190, int32(y), 26, rl.Green)
	}

	if g.freeCamera {
		rl.DrawText("FLY MODE", panelX+10, panelY+panelH-30, 20, rl.SkyBlue)
	}

	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)
}

// drawChargeLabels draws each charge's magnitude above its on-screen marker.
func (g *Game) drawChargeLabels(cam rl.Camera3D) {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	for i := 0; i < g.store.Count(); i++ {
		c := g.store.At(i)
		pos := rl.GetWorldToScreen(c.Position, cam)
		if pos.X <= 0 || pos.X >= screenW || pos.Y <= 0 || pos.Y >= screenH {
			continue
		}
		text := fmt.Sprintf("%.1f", c.Magnitude)
		textW := rl.MeasureText(text, 20)
		rl.DrawText(text, int32(pos.X)-textW/2, int32(pos.Y)-30, 20, rl.Green)
	}
}
