package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is a world-aligned box. Every collider reduces to one for overlap tests.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Intersects treats touching faces as overlapping.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// ClosestPoint returns the point inside a nearest to p.
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, a.Min.X, a.Max.X),
		Y: clamp(p.Y, a.Min.Y, a.Max.Y),
		Z: clamp(p.Z, a.Min.Z, a.Max.Z),
	}
}

// Resolve returns the shortest single-axis translation that moves a out of b,
// or zero when they do not overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	aMin, aMax := axes(a.Min), axes(a.Max)
	bMin, bMax := axes(b.Min), axes(b.Max)

	var push [3]float32
	best := float32(-1)
	bestAxis := 0
	for i := range 3 {
		up := bMax[i] - aMin[i]   // push a toward +axis
		down := aMax[i] - bMin[i] // push a toward -axis
		if best < 0 || up < best {
			best, bestAxis, push[i] = up, i, up
		}
		if down < best {
			best, bestAxis, push[i] = down, i, -down
		}
	}

	var out [3]float32
	out[bestAxis] = push[bestAxis]
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}
}

func axes(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
