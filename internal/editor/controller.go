package editor

import (
	"strconv"

	"efield/internal/field"
	"efield/internal/geom"
	"efield/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode is the controller's editing state. The states are mutually
// exclusive: typing a value and dragging a charge can never overlap.
type Mode int

const (
	ModeIdle Mode = iota
	ModePlacingValue
	ModeDragging
)

const (
	pickRadiusPx   float32 = 20
	maxValueLength         = 10
)

// Frame is one frame's worth of pointer and keyboard input plus the
// camera-derived helpers the controller needs. The host owns the camera and
// input polling; the controller only interprets.
type Frame struct {
	Pointer      rl.Vector2
	Ray          rl.Ray
	Project      sim.Projector
	PointerInHUD bool // clicks over the HUD panel are ignored

	LeftPressed  bool
	LeftDown     bool
	RightPressed bool

	Chars     []rune
	Backspace bool
	Escape    bool

	StepsUp   bool // held
	StepsDown bool // held
	ResUp     bool // pressed
	ResDown   bool // pressed
}

// Controller drives charge placement, selection, dragging and deletion from
// per-frame input. Every rejected action (capacity, zero value, missed
// ground ray) is a silent no-op; that is the UX contract, not an omission.
type Controller struct {
	Store  *sim.ChargeStore
	Params field.Params

	mode     Mode
	selected int // only meaningful while dragging
	buffer   string
}

func New(store *sim.ChargeStore) *Controller {
	return &Controller{
		Store:    store,
		Params:   field.DefaultParams(),
		selected: -1,
	}
}

func (c *Controller) Mode() Mode { return c.mode }

// Selected returns the index of the charge being dragged, or -1. Indices
// are not stable across removals, so it is never retained across frames by
// callers.
func (c *Controller) Selected() int { return c.selected }

// Buffer returns the in-progress value text, for HUD display.
func (c *Controller) Buffer() string { return c.buffer }

func (c *Controller) Update(f Frame) {
	c.updateParams(f)

	if f.LeftPressed && !f.PointerInHUD {
		c.handleLeftPress(f)
	}

	if c.mode == ModeDragging {
		if f.LeftDown {
			if pt, ok := geom.GroundIntersection(f.Ray); ok {
				c.Store.MoveTo(c.selected, pt)
			}
		} else {
			c.mode = ModeIdle
			c.selected = -1
		}
	}

	if f.RightPressed && !f.PointerInHUD {
		if hit := c.Store.FindByScreenProximity(f.Pointer, f.Project, pickRadiusPx); hit >= 0 {
			c.Store.RemoveAt(hit)
			// Indices shifted; any selection or entry session is stale now.
			c.mode = ModeIdle
			c.selected = -1
			c.buffer = ""
		}
	}

	if c.mode == ModePlacingValue {
		c.updateValueBuffer(f)
	}
}

func (c *Controller) handleLeftPress(f Frame) {
	if hit := c.Store.FindByScreenProximity(f.Pointer, f.Project, pickRadiusPx); hit >= 0 {
		// Selecting a charge always cancels value entry.
		c.mode = ModeDragging
		c.selected = hit
		c.buffer = ""
		return
	}

	// Empty space: a click while typing commits the buffer, any other click
	// starts a fresh entry session.
	if c.mode == ModePlacingValue && c.buffer != "" {
		c.commitValue(f.Ray)
		return
	}
	c.mode = ModePlacingValue
	c.selected = -1
	c.buffer = ""
}

// commitValue tries to place a charge under the pointer from the typed
// buffer. Whether or not a charge results (zero or unparseable value, no
// ground hit, capacity) the entry session ends: one click, one commit
// attempt.
func (c *Controller) commitValue(ray rl.Ray) {
	if val, err := strconv.ParseFloat(c.buffer, 32); err == nil && val != 0 {
		if pt, ok := geom.GroundIntersection(ray); ok {
			c.Store.Add(pt, float32(val))
		}
	}
	c.mode = ModeIdle
	c.selected = -1
	c.buffer = ""
}

func (c *Controller) updateValueBuffer(f Frame) {
	for _, ch := range f.Chars {
		if len(c.buffer) >= maxValueLength {
			break
		}
		// Digits, sign and decimal point only. Duplicates are allowed to
		// accumulate; they fail the parse and commit to "no charge".
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			c.buffer += string(ch)
		}
	}

	if f.Backspace && len(c.buffer) > 0 {
		c.buffer = c.buffer[:len(c.buffer)-1]
	}

	if f.Escape {
		c.mode = ModeIdle
		c.buffer = ""
	}
}

func (c *Controller) updateParams(f Frame) {
	if f.StepsUp {
		c.Params.MaxSteps += 5
	}
	if f.StepsDown {
		if c.Params.MaxSteps -= 5; c.Params.MaxSteps < 10 {
			c.Params.MaxSteps = 10
		}
	}
	if f.ResUp {
		c.Params.AngularResolution++
	}
	if f.ResDown {
		if c.Params.AngularResolution--; c.Params.AngularResolution < 1 {
			c.Params.AngularResolution = 1
		}
	}
}
