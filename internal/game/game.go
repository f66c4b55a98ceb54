package game

import (
	"efield/internal/camera"
	"efield/internal/config"
	"efield/internal/editor"
	"efield/internal/field"
	"efield/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	cfg        *config.Config
	store      *sim.ChargeStore
	controller *editor.Controller
	camera     *camera.FlyCamera

	// True while the user is flying the camera (cursor captured); false in
	// edit mode, where the cursor picks and places charges.
	freeCamera bool
}

func New(cfg *config.Config) *Game {
	store := sim.NewChargeStore()
	for _, c := range cfg.Charges {
		store.Add(rl.Vector3{X: c.X, Y: c.Y, Z: c.Z}, c.Magnitude)
	}

	ctrl := editor.New(store)
	ctrl.Params = field.Params{
		AngularResolution: cfg.Tracer.AngularResolution,
		MaxSteps:          cfg.Tracer.MaxSteps,
	}.Clamp()

	return &Game{
		cfg:        cfg,
		store:      store,
		controller: ctrl,
		camera:     camera.New(rl.Vector3{X: 15, Y: 15, Z: 15}, rl.Vector3{}),
		freeCamera: true,
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	// Escape cancels value entry; quitting is window-close only.
	rl.SetExitKey(0)
	rl.DisableCursor()

	g.applyPrefs(loadPrefs())
	defer g.savePrefs()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF) {
		g.freeCamera = !g.freeCamera
		if g.freeCamera {
			rl.DisableCursor()
			g.camera.ResetLook()
		} else {
			rl.EnableCursor()
		}
	}

	if g.freeCamera {
		// Clicking after the cursor was released (e.g. alt-tab) recaptures it.
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !rl.IsCursorHidden() {
			rl.DisableCursor()
			g.camera.ResetLook()
		}
		if rl.IsCursorHidden() {
			g.camera.Update(deltaTime)
		}
		return
	}

	g.controller.Update(g.pollFrame())
}

// pollFrame snapshots this frame's input state for the controller.
func (g *Game) pollFrame() editor.Frame {
	cam := g.camera.GetRaylibCamera()
	mouse := rl.GetMousePosition()

	var chars []rune
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		chars = append(chars, ch)
	}

	return editor.Frame{
		Pointer:      mouse,
		Ray:          rl.GetScreenToWorldRay(mouse, cam),
		Project:      func(p rl.Vector3) rl.Vector2 { return rl.GetWorldToScreen(p, cam) },
		PointerInHUD: g.mouseInPanel(mouse),

		LeftPressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		LeftDown:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		RightPressed: rl.IsMouseButtonPressed(rl.MouseRightButton),

		Chars:     chars,
		Backspace: rl.IsKeyPressed(rl.KeyBackspace),
		Escape:    rl.IsKeyPressed(rl.KeyEscape),

		StepsUp:   rl.IsKeyDown(rl.KeyUp),
		StepsDown: rl.IsKeyDown(rl.KeyDown),
		ResUp:     rl.IsKeyPressed(rl.KeyRight),
		ResDown:   rl.IsKeyPressed(rl.KeyLeft),
	}
}

func (g *Game) Draw() {
	cam := g.camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(cam)
	drawGrid()
	g.drawCharges()
	g.drawFieldLines()
	rl.EndMode3D()

	g.drawHUD(cam)
	rl.EndDrawing()
}

func (g *Game) drawCharges() {
	selected := g.controller.Selected()
	for i := 0; i < g.store.Count(); i++ {
		c := g.store.At(i)
		color := rl.Red
		if c.IsPositive() {
			color = rl.Blue
		}
		if i == selected {
			color = rl.White
		}
		rl.DrawSphere(c.Position, 0.25, color)
		rl.DrawSphereWires(c.Position, 0.35, 8, 8, rl.Fade(color, 0.5))
	}
}

// lineOpacity is the global additive-blend opacity applied on top of the
// tracer's per-segment alpha.
const lineOpacity float32 = 0.6

func (g *Game) drawFieldLines() {
	rl.BeginBlendMode(rl.BlendAdditive)
	field.Trace(g.store.Charges(), g.controller.Params, func(s field.Segment) {
		rl.DrawLine3D(s.From, s.To, rl.Fade(s.Color, lineOpacity*s.Alpha))
	})
	rl.EndBlendMode()
}

func drawGrid() {
	const slices = 100
	const spacing float32 = 1.0
	halfSize := float32(slices) * spacing / 2

	gridColor := rl.NewColor(40, 40, 40, 255)
	for i := 0; i <= slices; i++ {
		pos := -halfSize + float32(i)*spacing
		rl.DrawLine3D(rl.Vector3{X: pos, Z: -halfSize}, rl.Vector3{X: pos, Z: halfSize}, gridColor)
		rl.DrawLine3D(rl.Vector3{X: -halfSize, Z: pos}, rl.Vector3{X: halfSize, Z: pos}, gridColor)
	}
}
