package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxCharges is the fixed capacity of a ChargeStore.
const MaxCharges = 100

// Charge is a point charge. The sign of Magnitude determines polarity:
// positive charges are field-line sources, negative charges are sinks.
type Charge struct {
	Position  rl.Vector3
	Magnitude float32
}

// IsPositive reports whether the charge is a field-line source.
func (c Charge) IsPositive() bool { return c.Magnitude > 0 }

// Projector maps a world-space position to screen coordinates. The store
// does not own a camera; the host supplies its transform through this.
type Projector func(rl.Vector3) rl.Vector2

// ChargeStore holds the scene's charges in insertion order, up to
// MaxCharges. Insertion order doubles as pick priority.
type ChargeStore struct {
	charges []Charge
}

func NewChargeStore() *ChargeStore {
	return &ChargeStore{charges: make([]Charge, 0, MaxCharges)}
}

// Add appends a charge. Zero-magnitude charges and adds beyond capacity are
// rejected; callers treat a false return as a silent no-op.
func (s *ChargeStore) Add(position rl.Vector3, magnitude float32) bool {
	if magnitude == 0 || len(s.charges) >= MaxCharges {
		return false
	}
	s.charges = append(s.charges, Charge{Position: position, Magnitude: magnitude})
	return true
}

// RemoveAt deletes the charge at index i and shifts later charges left.
// Any index held by a caller is invalid afterwards.
func (s *ChargeStore) RemoveAt(i int) {
	if i < 0 || i >= len(s.charges) {
		return
	}
	s.charges = append(s.charges[:i], s.charges[i+1:]...)
}

// MoveTo updates a charge's position in place. The position is expected to
// be pre-clamped by the caller (see geom.GroundIntersection).
func (s *ChargeStore) MoveTo(i int, position rl.Vector3) {
	if i < 0 || i >= len(s.charges) {
		return
	}
	s.charges[i].Position = position
}

func (s *ChargeStore) Count() int { return len(s.charges) }

func (s *ChargeStore) At(i int) Charge { return s.charges[i] }

// Charges exposes the backing slice for read-only iteration. The tracer
// borrows this for a single frame and must not retain it.
func (s *ChargeStore) Charges() []Charge { return s.charges }

// FindByScreenProximity returns the first charge, in insertion order, whose
// projected screen position lies within radiusPx of point, or -1 if none.
func (s *ChargeStore) FindByScreenProximity(point rl.Vector2, project Projector, radiusPx float32) int {
	for i := range s.charges {
		sp := project(s.charges[i].Position)
		dx := point.X - sp.X
		dy := point.Y - sp.Y
		if dx*dx+dy*dy <= radiusPx*radiusPx {
			return i
		}
	}
	return -1
}
