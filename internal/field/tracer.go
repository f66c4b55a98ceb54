package field

import (
	"math"

	"efield/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// StepSize is the fixed Euler integration step, in world units. Small
	// relative to typical charge separations, which is what makes first-order
	// integration acceptable here.
	StepSize float32 = 0.05

	seedRadius     float32 = 0.1  // sphere seeds start on around a source
	captureRadius2 float32 = 0.04 // squared; within this of a sink a line is captured
	escapeRadius2  float32 = 2500 // squared distance from origin where a line escapes
	minFieldMag2   float32 = 1e-12
	fadeTailSteps          = 50 // last steps of the budget fade to transparent
	farSinkDist    float32 = 20 // lines farther than this from any sink get half alpha
	mixExponent            = 0.7
	mixEpsilon     float32 = 0.001
	farAway        float32 = 10000 // min-distance sentinel when no charge of a polarity exists
)

// Line endpoints of the proximity gradient: near a source the line is blue,
// near a sink it shades to red.
var (
	sourceColor = rl.Blue
	sinkColor   = rl.Red
)

// Params are the externally tunable tracing knobs.
type Params struct {
	AngularResolution int // seed density; >= 1
	MaxSteps          int // integration budget per line; >= 10
}

func DefaultParams() Params {
	return Params{AngularResolution: 3, MaxSteps: 3000}
}

// Clamp enforces the lower bounds the tracer assumes.
func (p Params) Clamp() Params {
	if p.AngularResolution < 1 {
		p.AngularResolution = 1
	}
	if p.MaxSteps < 10 {
		p.MaxSteps = 10
	}
	return p
}

// Segment is one traced line piece with its per-vertex visual attributes.
// Segments are ephemeral: emitted, drawn, and forgotten within a frame.
type Segment struct {
	From, To rl.Vector3
	Color    rl.Color
	Alpha    float32
}

// Termination says why a field line stopped. All four are valid,
// non-error outcomes.
type Termination int

const (
	TermCaptured Termination = iota // entered a sink's capture radius
	TermVanished                    // field magnitude collapsed to ~zero
	TermEscaped                     // left the bounded region
	TermBudget                      // ran out of integration steps
)

func (t Termination) String() string {
	switch t {
	case TermCaptured:
		return "captured-by-sink"
	case TermVanished:
		return "field-vanished"
	case TermEscaped:
		return "escaped-boundary"
	default:
		return "step-budget-exhausted"
	}
}

// Seeds returns the starting points for field lines leaving a positive
// charge: a latitude/longitude grid on a small sphere around center, with
// the poles skipped to avoid degenerate azimuth loops. The count is
// (3*resolution - 1) * 4*resolution.
func Seeds(center rl.Vector3, resolution int) []rl.Vector3 {
	numTheta := 3 * resolution
	numPhi := 4 * resolution

	seeds := make([]rl.Vector3, 0, (numTheta-1)*numPhi)
	for t := 1; t < numTheta; t++ {
		theta := math.Pi * float64(t) / float64(numTheta)
		sinTheta := float32(math.Sin(theta))
		cosTheta := float32(math.Cos(theta))

		for p := 0; p < numPhi; p++ {
			phi := 2 * math.Pi * float64(p) / float64(numPhi)
			seeds = append(seeds, rl.Vector3{
				X: center.X + seedRadius*sinTheta*float32(math.Cos(phi)),
				Y: center.Y + seedRadius*sinTheta*float32(math.Sin(phi)),
				Z: center.Z + seedRadius*cosTheta,
			})
		}
	}
	return seeds
}

// Trace recomputes every field line for the current charge set from scratch
// and streams the segments to emit. Lines leave positive charges only; the
// charge slice is borrowed read-only for the duration of the call.
func Trace(charges []sim.Charge, params Params, emit func(Segment)) {
	params = params.Clamp()
	for _, c := range charges {
		if !c.IsPositive() {
			continue
		}
		for _, seed := range Seeds(c.Position, params.AngularResolution) {
			TraceLine(charges, seed, params.MaxSteps, emit)
		}
	}
}

// TraceLine integrates a single field line from start, emitting one segment
// per step, and reports why it stopped. Captured and escaped lines stop
// before emitting the step that crossed the boundary.
func TraceLine(charges []sim.Charge, start rl.Vector3, maxSteps int, emit func(Segment)) Termination {
	pos := start

	for step := 0; step < maxSteps; step++ {
		var dir rl.Vector3
		minDistToPos := farAway
		minDistToNeg := farAway
		captured := false

		for _, c := range charges {
			rx := pos.X - c.Position.X
			ry := pos.Y - c.Position.Y
			rz := pos.Z - c.Position.Z
			r2 := rx*rx + ry*ry + rz*rz

			if c.Magnitude < 0 && r2 < captureRadius2 {
				captured = true
				break
			}
			if r2 < minFieldMag2 {
				// Coincident with a source; the superposed field is undefined
				// here, so stop rather than divide by zero.
				return TermVanished
			}

			r := float32(math.Sqrt(float64(r2)))
			if c.Magnitude > 0 {
				if r < minDistToPos {
					minDistToPos = r
				}
			} else {
				if r < minDistToNeg {
					minDistToNeg = r
				}
			}

			s := c.Magnitude / (r * r * r)
			dir.X += s * rx
			dir.Y += s * ry
			dir.Z += s * rz
		}

		if captured {
			return TermCaptured
		}

		mag2 := dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z
		if mag2 < minFieldMag2 {
			return TermVanished
		}

		inv := 1 / float32(math.Sqrt(float64(mag2)))
		next := rl.Vector3{
			X: pos.X + dir.X*inv*StepSize,
			Y: pos.Y + dir.Y*inv*StepSize,
			Z: pos.Z + dir.Z*inv*StepSize,
		}

		if next.X*next.X+next.Y*next.Y+next.Z*next.Z > escapeRadius2 {
			return TermEscaped
		}

		mix := minDistToPos / (minDistToPos + minDistToNeg + mixEpsilon)
		mix = float32(math.Pow(float64(mix), mixExponent))

		alpha := float32(1)
		if step > maxSteps-fadeTailSteps {
			alpha = float32(maxSteps-step) / fadeTailSteps
		}
		if minDistToNeg > farSinkDist {
			alpha *= 0.5
		}

		emit(Segment{From: pos, To: next, Color: Blend(sourceColor, sinkColor, mix), Alpha: alpha})
		pos = next
	}

	return TermBudget
}
