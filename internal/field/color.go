package field

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Blend linearly interpolates between two colors per channel using integer
// math. Amounts at or past the endpoints return the endpoint color exactly,
// so accumulated floating-point error can never overshoot the gradient. The
// alpha channel is fixed opaque; line alpha is applied separately by the
// renderer.
func Blend(c1, c2 rl.Color, amount float32) rl.Color {
	if amount <= 0 {
		return c1
	}
	if amount >= 1 {
		return c2
	}
	i := int32(amount * 256)
	inv := 256 - i
	return rl.Color{
		R: uint8((int32(c1.R)*inv + int32(c2.R)*i) >> 8),
		G: uint8((int32(c1.G)*inv + int32(c2.G)*i) >> 8),
		B: uint8((int32(c1.B)*inv + int32(c2.B)*i) >> 8),
		A: 255,
	}
}
