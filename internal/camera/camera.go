package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FlyCamera is a free-fly camera: mouse look plus WASD/Space/Shift movement.
// Angles are in radians.
type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32 // units per second
	LookSpeed float32 // radians per pixel of mouse delta

	firstFrame bool
}

// New creates a camera at pos looking at target.
func New(pos, target rl.Vector3) *FlyCamera {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(target, pos))
	return &FlyCamera{
		Position:   pos,
		Yaw:        float32(math.Atan2(float64(forward.X), float64(forward.Z))),
		Pitch:      float32(math.Asin(float64(forward.Y))),
		MoveSpeed:  15.0,
		LookSpeed:  0.003,
		firstFrame: true,
	}
}

// ResetLook suppresses the next frame's mouse delta, so recapturing the
// cursor doesn't jerk the view.
func (c *FlyCamera) ResetLook() { c.firstFrame = true }

func (c *FlyCamera) Update(deltaTime float32) {
	mouseDelta := rl.GetMouseDelta()
	if c.firstFrame {
		mouseDelta = rl.Vector2{}
		c.firstFrame = false
	}

	c.Yaw -= mouseDelta.X * c.LookSpeed
	c.Pitch -= mouseDelta.Y * c.LookSpeed

	if c.Pitch > 1.5 {
		c.Pitch = 1.5
	}
	if c.Pitch < -1.5 {
		c.Pitch = -1.5
	}

	forward := c.Forward()
	right := rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1})

	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	if rl.IsKeyDown(rl.KeySpace) {
		move.Y += 1
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		move.Y -= 1
	}

	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(move, c.MoveSpeed*deltaTime))
}

// Forward is the unit look direction derived from yaw/pitch.
func (c *FlyCamera) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3{
		X: float32(math.Sin(float64(c.Yaw)) * math.Cos(float64(c.Pitch))),
		Y: float32(math.Sin(float64(c.Pitch))),
		Z: float32(math.Cos(float64(c.Yaw)) * math.Cos(float64(c.Pitch))),
	})
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}
