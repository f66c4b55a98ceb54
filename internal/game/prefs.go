package game

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefs holds state persisted between sessions. The config file is the
// source of the initial scene; prefs only remember how the user left the
// viewer.
type Prefs struct {
	WindowWidth       int        `json:"windowWidth"`
	WindowHeight      int        `json:"windowHeight"`
	CameraPosition    rl.Vector3 `json:"cameraPosition"`
	CameraYaw         float32    `json:"cameraYaw"`
	CameraPitch       float32    `json:"cameraPitch"`
	AngularResolution int        `json:"angularResolution"`
	MaxSteps          int        `json:"maxSteps"`
}

const prefsFile = ".efield_prefs.json"

// loadPrefs reads saved preferences, or returns nil if there are none.
// Corrupt prefs are discarded.
func loadPrefs() *Prefs {
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return nil
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		fmt.Printf("Failed to parse prefs: %v\n", err)
		os.Remove(prefsFile)
		return nil
	}
	return &prefs
}

func (g *Game) applyPrefs(prefs *Prefs) {
	if prefs == nil {
		return
	}

	if prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		rl.SetWindowSize(prefs.WindowWidth, prefs.WindowHeight)
	}
	g.camera.Position = prefs.CameraPosition
	g.camera.Yaw = prefs.CameraYaw
	g.camera.Pitch = prefs.CameraPitch
	if prefs.AngularResolution > 0 {
		g.controller.Params.AngularResolution = prefs.AngularResolution
	}
	if prefs.MaxSteps > 0 {
		g.controller.Params.MaxSteps = prefs.MaxSteps
	}
	g.controller.Params = g.controller.Params.Clamp()
}

func (g *Game) savePrefs() {
	prefs := Prefs{
		WindowWidth:       rl.GetScreenWidth(),
		WindowHeight:      rl.GetScreenHeight(),
		CameraPosition:    g.camera.Position,
		CameraYaw:         g.camera.Yaw,
		CameraPitch:       g.camera.Pitch,
		AngularResolution: g.controller.Params.AngularResolution,
		MaxSteps:          g.controller.Params.MaxSteps,
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal prefs: %v\n", err)
		return
	}
	if err := os.WriteFile(prefsFile, data, 0644); err != nil {
		fmt.Printf("Failed to save prefs: %v\n", err)
	}
}
