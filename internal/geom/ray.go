package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlacementLimit bounds the x/z square charges can be placed in. Keeping
// placements inside it guarantees every charge sits within the traced and
// rendered region.
const PlacementLimit float32 = 50.0

// RayPlane returns where a ray hits a plane defined by a point and normal.
// Rays near-parallel to the plane or intersecting behind their origin miss.
func RayPlane(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math.Abs(float64(denom)) < 1e-3 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}

// GroundIntersection intersects a pointer ray with the ground plane y=0 and
// clamps the hit to the placement square.
func GroundIntersection(ray rl.Ray) (rl.Vector3, bool) {
	pt, ok := RayPlane(ray.Position, ray.Direction, rl.Vector3{}, rl.Vector3{Y: 1})
	if !ok {
		return rl.Vector3{}, false
	}
	pt.Y = 0
	pt.X = rl.Clamp(pt.X, -PlacementLimit, PlacementLimit)
	pt.Z = rl.Clamp(pt.Z, -PlacementLimit, PlacementLimit)
	return pt, true
}
