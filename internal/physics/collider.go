package physics

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a collision shape attached to a GameObject.
type Collider interface {
	engine.Component
	// Bounds returns the world-space axis-aligned bounds of the shape.
	Bounds() AABB
	// Center returns the world-space center of the shape.
	Center() rl.Vector3
	Trigger() bool
	Enabled() bool
	SetEnabled(enabled bool)
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
type CollisionHandler interface {
	OnCollisionEnter(c Collision)
	OnCollisionExit(c Collision)
}

// CollisionStayHandler receives a callback every physics tick a contact persists.
type CollisionStayHandler interface {
	OnCollisionStay(c Collision)
}

// TriggerHandler is implemented by components on a trigger collider's object
// (and on objects overlapping a trigger).
type TriggerHandler interface {
	OnTriggerEnter(other Collider)
	OnTriggerExit(other Collider)
}

// Collision describes one contact from the point of view of the receiving object.
type Collision struct {
	Collider      Collider
	OtherCollider Collider
	Other         *engine.GameObject
	Normal        rl.Vector3 // points from Other toward the receiver
	Depth         float32
}

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
	Disabled  bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetWorldSize returns the collider size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: abs(b.Size.X * s.X), Y: abs(b.Size.Y * s.Y), Z: abs(b.Size.Z * s.Z)}
}

func (b *BoxCollider) Center() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), rl.Vector3RotateByQuaternion(b.Offset, g.WorldRotation()))
}

// Bounds ignores rotation; boxes collide as world-aligned volumes.
func (b *BoxCollider) Bounds() AABB {
	return NewAABBFromCenter(b.Center(), b.GetWorldSize())
}

func (b *BoxCollider) Trigger() bool           { return b.IsTrigger }
func (b *BoxCollider) Enabled() bool           { return !b.Disabled }
func (b *BoxCollider) SetEnabled(enabled bool) { b.Disabled = !enabled }

type SphereCollider struct {
	engine.BaseComponent
	Radius    float32
	Offset    rl.Vector3
	IsTrigger bool
	Disabled  bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// WorldRadius returns the radius scaled by the largest world scale axis.
func (s *SphereCollider) WorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := abs(sc.X)
	if abs(sc.Y) > m {
		m = abs(sc.Y)
	}
	if abs(sc.Z) > m {
		m = abs(sc.Z)
	}
	return s.Radius * m
}

// Center returns the world-space center of this collider
func (s *SphereCollider) Center() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), rl.Vector3RotateByQuaternion(s.Offset, g.WorldRotation()))
}

func (s *SphereCollider) Bounds() AABB {
	r := s.WorldRadius()
	return NewAABBFromCenter(s.Center(), rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
}

func (s *SphereCollider) Trigger() bool           { return s.IsTrigger }
func (s *SphereCollider) Enabled() bool           { return !s.Disabled }
func (s *SphereCollider) SetEnabled(enabled bool) { s.Disabled = !enabled }

// AttachedBody returns the nearest Rigidbody at or above the collider's object.
func AttachedBody(c Collider) *Rigidbody {
	return engine.GetComponentInParent[*Rigidbody](c.GetGameObject())
}

// overlap returns the push that moves a out of b and the penetration depth.
func overlap(a, b Collider) (rl.Vector3, float32, bool) {
	sa, aSphere := a.(*SphereCollider)
	sb, bSphere := b.(*SphereCollider)

	switch {
	case aSphere && bSphere:
		diff := rl.Vector3Subtract(sa.Center(), sb.Center())
		dist := rl.Vector3Length(diff)
		minDist := sa.WorldRadius() + sb.WorldRadius()
		if dist >= minDist {
			return rl.Vector3{}, 0, false
		}
		if dist < 0.0001 {
			return rl.Vector3{Y: minDist}, minDist, true
		}
		depth := minDist - dist
		return rl.Vector3Scale(diff, depth/dist), depth, true
	case aSphere:
		return sphereVsBox(sa, b.Bounds())
	case bSphere:
		push, depth, ok := sphereVsBox(sb, a.Bounds())
		return rl.Vector3Negate(push), depth, ok
	default:
		push := a.Bounds().Resolve(b.Bounds())
		depth := rl.Vector3Length(push)
		if depth == 0 {
			return rl.Vector3{}, 0, a.Bounds().Intersects(b.Bounds())
		}
		return push, depth, true
	}
}

func sphereVsBox(s *SphereCollider, box AABB) (rl.Vector3, float32, bool) {
	center := s.Center()
	radius := s.WorldRadius()
	closest := box.ClosestPoint(center)
	diff := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(diff)
	if dist >= radius {
		return rl.Vector3{}, 0, false
	}
	if dist < 0.0001 {
		// Center inside the box: push out along the shallowest face
		push := NewAABBFromCenter(center, rl.Vector3{X: 2 * radius, Y: 2 * radius, Z: 2 * radius}).Resolve(box)
		return push, rl.Vector3Length(push), true
	}
	depth := radius - dist
	return rl.Vector3Scale(diff, depth/dist), depth, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
