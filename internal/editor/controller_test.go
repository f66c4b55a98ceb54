package editor

import (
	"testing"

	"efield/internal/geom"
	"efield/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Test projector: a top-down view mapping world x/z to screen at 10 px per
// unit around a 500,500 center.
func project(p rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: p.X*10 + 500, Y: p.Z*10 + 500}
}

// rayAt points straight down at the ground position (x, z).
func rayAt(x, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: 10, Z: z}, Direction: rl.Vector3{Y: -1}}
}

// clickAt is a primary click on the ground position (x, z).
func clickAt(x, z float32) Frame {
	return Frame{
		Pointer:     project(rl.Vector3{X: x, Z: z}),
		Ray:         rayAt(x, z),
		Project:     project,
		LeftPressed: true,
		LeftDown:    true,
	}
}

func typeChars(chars ...rune) Frame {
	return Frame{Project: project, Chars: chars}
}

func TestClickEmptySpaceStartsValueEntry(t *testing.T) {
	c := New(sim.NewChargeStore())

	c.Update(clickAt(5, 5))

	if c.Mode() != ModePlacingValue {
		t.Errorf("Expected placing-value mode, got %v", c.Mode())
	}
	if c.Buffer() != "" {
		t.Errorf("Buffer should start empty, got %q", c.Buffer())
	}
}

func TestTypeAndCommitCreatesCharge(t *testing.T) {
	store := sim.NewChargeStore()
	c := New(store)

	c.Update(clickAt(5, 5))
	c.Update(typeChars('2', '.', '5'))
	c.Update(clickAt(3, -4))

	if store.Count() != 1 {
		t.Fatalf("Expected 1 charge, got %d", store.Count())
	}
	ch := store.At(0)
	if ch.Magnitude != 2.5 {
		t.Errorf("Magnitude = %v, want 2.5", ch.Magnitude)
	}
	if ch.Position.X != 3 || ch.Position.Y != 0 || ch.Position.Z != -4 {
		t.Errorf("Position = %v, want (3, 0, -4)", ch.Position)
	}
	if c.Mode() != ModeIdle || c.Buffer() != "" {
		t.Error("Commit should return to idle with a cleared buffer")
	}
}

func TestNegativeValueCommit(t *testing.T) {
	store := sim.NewChargeStore()
	c := New(store)

	c.Update(clickAt(0, 0))
	c.Update(typeChars('-', '1'))
	c.Update(clickAt(8, 0))

	if store.Count() != 1 || store.At(0).Magnitude != -1 {
		t.Fatalf("Expected one charge of magnitude -1, got %d charges", store.Count())
	}
}

func TestZeroValueCommitIsNoOp(t *testing.T) {
	store := sim.NewChargeStore()
	c := New(store)

	c.Update(clickAt(0, 0))
	c.Update(typeChars('0'))
	c.Update(clickAt(5, 5))

	if store.Count() != 0 {
		t.Errorf("Zero value should create no charge, got %d", store.Count())
	}
	if c.Mode() != ModeIdle {
		t.Error("Commit attempt should still end the entry session")
	}
}

func TestUnparseableBufferCommitIsNoOp(t *testing.T) {
	store := sim.NewChargeStore()
	c := New(store)

	c.Update(clickAt(0, 0))
	c.Update(typeChars('-', '-', '.', '5')) // duplicates accumulate, parse fails
	c.Update(clickAt(5, 5))

	if store.Count() != 0 {
		t.Errorf("Unparseable buffer should create no charge, got %d", store.Count())
	}
}

func TestCommitWithoutGroundHitIsNoOp(t *testing.T) {
	store := sim.NewChargeStore()
	c := New(store)

	c.Update(clickAt(0, 0))
	c.Update(typeChars('3'))

	// Pointer ray parallel to the ground: no placement position exists.
	f := Frame{
		Pointer:     rl.Vector2{X: 900, Y: 900},
		Ray:         rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{X: 1}},
		Project:     project,
		LeftPressed: true,
		LeftDown:    true,
	}
	c.Update(f)

	if store.Count() != 0 {
		t.Errorf("Commit without a ground hit should create no charge, got %d", store.Count())
	}
	if c.Mode() != ModeIdle {
		t.Error("Entry session should end even when placement fails")
	}
}

func TestClickWithEmptyBufferRestartsEntry(t *testing.T) {
	store := sim.NewChargeStore()
	c := New(store)

	c.Update(clickAt(0, 0))
	c.Update(clickAt(5, 5))

	if c.Mode() != ModePlacingValue {
		t.Errorf("Expected to stay in placing-value, got %v", c.Mode())
	}
	if store.Count() != 0 {
		t.Errorf("Empty-buffer click should place nothing, got %d", store.Count())
	}
}

func TestBufferAcceptsOnlyNumericCharacters(t *testing.T) {
	c := New(sim.NewChargeStore())

	c.Update(clickAt(0, 0))
	c.Update(typeChars('a', '1', 'x', '.', ' ', '5', '-'))

	if c.Buffer() != "1.5-" {
		t.Errorf("Buffer = %q, want %q", c.Buffer(), "1.5-")
	}
}

func TestBufferLengthCapped(t *testing.T) {
	c := New(sim.NewChargeStore())

	c.Update(clickAt(0, 0))
	for i := 0; i < 3; i++ {
		c.Update(typeChars('1', '2', '3', '4', '5'))
	}

	if len(c.Buffer()) != 10 {
		t.Errorf("Buffer length = %d, want 10", len(c.Buffer()))
	}
}

func TestBackspaceAndEscape(t *testing.T) {
	c := New(sim.NewChargeStore())

	c.Update(clickAt(0, 0))
	c.Update(typeChars('7', '8'))
	c.Update(Frame{Project: project, Backspace: true})

	if c.Buffer() != "7" {
		t.Errorf("Buffer after backspace = %q, want %q", c.Buffer(), "7")
	}

	c.Update(Frame{Project: project, Escape: true})
	if c.Mode() != ModeIdle || c.Buffer() != "" {
		t.Error("Escape should cancel value entry and clear the buffer")
	}
}

func TestClickOnChargeSelectsAndCancelsEntry(t *testing.T) {
	store := sim.NewChargeStore()
	store.Add(rl.Vector3{X: 5, Z: 5}, 2)
	c := New(store)

	// Start typing, then click the existing charge.
	c.Update(clickAt(20, 20))
	c.Update(typeChars('9'))
	c.Update(clickAt(5, 5))

	if c.Mode() != ModeDragging {
		t.Fatalf("Expected dragging mode, got %v", c.Mode())
	}
	if c.Selected() != 0 {
		t.Errorf("Selected = %d, want 0", c.Selected())
	}
	if c.Buffer() != "" {
		t.Error("Selecting a charge should cancel value entry")
	}
}

func TestDragMovesChargeAndReleaseDeselects(t *testing.T) {
	store := sim.NewChargeStore()
	store.Add(rl.Vector3{X: 5, Z: 5}, 2)
	c := New(store)

	c.Update(clickAt(5, 5))

	// Held drag to a new ground position.
	drag := Frame{
		Pointer:  project(rl.Vector3{X: -2, Z: 9}),
		Ray:      rayAt(-2, 9),
		Project:  project,
		LeftDown: true,
	}
	c.Update(drag)

	pos := store.At(0).Position
	if pos.X != -2 || pos.Z != 9 {
		t.Errorf("Dragged position = %v, want (-2, 0, 9)", pos)
	}

	// Release ends the drag and deselects.
	c.Update(Frame{Project: project})
	if c.Mode() != ModeIdle || c.Selected() != -1 {
		t.Error("Release should end dragging and clear the selection")
	}
}

func TestDragClampsToPlacementSquare(t *testing.T) {
	store := sim.NewChargeStore()
	store.Add(rl.Vector3{}, 2)
	c := New(store)

	c.Update(clickAt(0, 0))
	c.Update(Frame{
		Pointer:  project(rl.Vector3{X: 500, Z: -500}),
		Ray:      rayAt(500, -500),
		Project:  project,
		LeftDown: true,
	})

	pos := store.At(0).Position
	if pos.X != geom.PlacementLimit || pos.Z != -geom.PlacementLimit {
		t.Errorf("Dragged position %v not clamped to ±%v", pos, geom.PlacementLimit)
	}
}

func TestRightClickDeletesCharge(t *testing.T) {
	store := sim.NewChargeStore()
	store.Add(rl.Vector3{X: 5, Z: 5}, 2)
	store.Add(rl.Vector3{X: -5, Z: -5}, -2)
	c := New(store)

	f := Frame{
		Pointer:      project(rl.Vector3{X: 5, Z: 5}),
		Ray:          rayAt(5, 5),
		Project:      project,
		RightPressed: true,
	}
	c.Update(f)

	if store.Count() != 1 {
		t.Fatalf("Expected 1 charge after delete, got %d", store.Count())
	}
	if store.At(0).Magnitude != -2 {
		t.Error("Wrong charge deleted")
	}
	if c.Selected() != -1 || c.Mode() != ModeIdle {
		t.Error("Delete should clear selection and editing state")
	}
}

func TestRightClickOnEmptySpaceIsNoOp(t *testing.T) {
	store := sim.NewChargeStore()
	store.Add(rl.Vector3{X: 5, Z: 5}, 2)
	c := New(store)

	f := Frame{
		Pointer:      project(rl.Vector3{X: 40, Z: 40}),
		Ray:          rayAt(40, 40),
		Project:      project,
		RightPressed: true,
	}
	c.Update(f)

	if store.Count() != 1 {
		t.Errorf("Expected charge to survive, got %d", store.Count())
	}
}

func TestClicksOverHUDAreIgnored(t *testing.T) {
	store := sim.NewChargeStore()
	store.Add(rl.Vector3{X: 5, Z: 5}, 2)
	c := New(store)

	left := clickAt(5, 5)
	left.PointerInHUD = true
	c.Update(left)
	if c.Mode() != ModeIdle {
		t.Error("Left click over the HUD should not reach the scene")
	}

	right := Frame{
		Pointer:      project(rl.Vector3{X: 5, Z: 5}),
		Ray:          rayAt(5, 5),
		Project:      project,
		RightPressed: true,
		PointerInHUD: true,
	}
	c.Update(right)
	if store.Count() != 1 {
		t.Error("Right click over the HUD should not delete")
	}
}

func TestCommitRespectsCapacity(t *testing.T) {
	store := sim.NewChargeStore()
	for i := 0; i < sim.MaxCharges; i++ {
		store.Add(rl.Vector3{X: float32(i - 200)}, 1)
	}
	c := New(store)

	c.Update(clickAt(40, 40))
	c.Update(typeChars('5'))
	c.Update(clickAt(40, 40))

	if store.Count() != sim.MaxCharges {
		t.Errorf("Capacity overflow: %d charges", store.Count())
	}
	if c.Mode() != ModeIdle {
		t.Error("Entry session should end even at capacity")
	}
}

func TestParameterKeys(t *testing.T) {
	c := New(sim.NewChargeStore())

	c.Update(Frame{Project: project, StepsUp: true})
	if c.Params.MaxSteps != 3005 {
		t.Errorf("MaxSteps = %d, want 3005", c.Params.MaxSteps)
	}

	c.Params.MaxSteps = 12
	c.Update(Frame{Project: project, StepsDown: true})
	if c.Params.MaxSteps != 10 {
		t.Errorf("MaxSteps floor = %d, want 10", c.Params.MaxSteps)
	}

	c.Update(Frame{Project: project, ResUp: true})
	if c.Params.AngularResolution != 4 {
		t.Errorf("AngularResolution = %d, want 4", c.Params.AngularResolution)
	}

	c.Params.AngularResolution = 1
	c.Update(Frame{Project: project, ResDown: true})
	if c.Params.AngularResolution != 1 {
		t.Errorf("AngularResolution floor = %d, want 1", c.Params.AngularResolution)
	}
}
