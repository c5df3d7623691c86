package physics

import (
	"math"

	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest non-trigger collider hit along direction,
// skipping colliders under ignore's hierarchy.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (Hit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit Hit
	closestHit.Distance = maxDistance
	hit := false

	for _, c := range w.colliders {
		if c.Trigger() || !w.colliderLive(c) {
			continue
		}
		if ignore != nil && c.GetGameObject().IsChildOf(ignore) {
			continue
		}
		var info Hit
		var ok bool
		switch shape := c.(type) {
		case *SphereCollider:
			info, ok = raycastSphere(origin, direction, shape.Center(), shape.WorldRadius(), maxDistance)
		default:
			info, ok = raycastBox(origin, direction, c.Bounds(), maxDistance)
		}
		if ok && info.Distance < closestHit.Distance {
			closestHit = info
			closestHit.Collider = c
			closestHit.GameObject = c.GetGameObject()
			hit = true
		}
	}

	return closestHit, hit
}

// Linecast implements Backend.
func (w *World) Linecast(from, to rl.Vector3, ignore *engine.GameObject) (Hit, bool) {
	dir := rl.Vector3Subtract(to, from)
	dist := rl.Vector3Length(dir)
	if dist < 0.0001 {
		return Hit{}, false
	}
	return w.Raycast(from, dir, dist, ignore)
}

func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (Hit, bool) {
	min, max := box.Min, box.Max
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slabs := [3][4]float32{
		{origin.X, direction.X, min.X, max.X},
		{origin.Y, direction.Y, min.Y, max.Y},
		{origin.Z, direction.Z, min.Z, max.Z},
	}
	for _, s := range slabs {
		o, d, lo, hi := s[0], s[1], s[2], s[3]
		if d == 0 {
			if o < lo || o > hi {
				return Hit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return Hit{Point: point, Normal: normal, Distance: t}, true
}
