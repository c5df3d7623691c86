package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

// Transform is the local pose of a GameObject relative to its parent.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, in attachment order.
func GetComponent[T Component](g *GameObject) T {
	c, _ := findComponent[T](g)
	return c
}

func findComponent[T Component](g *GameObject) (T, bool) {
	var zero T
	if g == nil {
		return zero, false
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// GetComponents returns every component of type T, in attachment order.
func GetComponents[T Component](g *GameObject) []T {
	if g == nil {
		return nil
	}
	var out []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// GetComponentInParent walks from g up the parent chain and returns the first T found.
func GetComponentInParent[T Component](g *GameObject) T {
	var zero T
	for cur := g; cur != nil; cur = cur.Parent {
		if c, ok := findComponent[T](cur); ok {
			return c
		}
	}
	return zero
}

// GetComponentsInChildren returns every T on g and its descendants, depth first.
func GetComponentsInChildren[T Component](g *GameObject) []T {
	if g == nil {
		return nil
	}
	out := GetComponents[T](g)
	for _, child := range g.Children {
		out = append(out, GetComponentsInChildren[T](child)...)
	}
	return out
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// FixedUpdate runs the physics-rate step of every component that has one.
func (g *GameObject) FixedUpdate(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		if f, ok := c.(FixedUpdater); ok {
			f.FixedUpdate(deltaTime)
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ActiveInHierarchy reports whether g and all of its ancestors are active and alive.
func (g *GameObject) ActiveInHierarchy() bool {
	for cur := g; cur != nil; cur = cur.Parent {
		if !cur.Active || cur.destroyed {
			return false
		}
	}
	return true
}

// Destroyed reports whether the object was removed through Scene.Destroy.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

// IsChildOf reports whether g is other or one of its descendants.
func (g *GameObject) IsChildOf(other *GameObject) bool {
	for cur := g; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Root returns the top-most ancestor of g.
func (g *GameObject) Root() *GameObject {
	cur := g
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetParent re-parents g. With keepWorld the world pose is preserved,
// otherwise the local transform is kept as-is. A nil parent detaches g.
func (g *GameObject) SetParent(parent *GameObject, keepWorld bool) {
	if parent == g.Parent {
		return
	}
	world := g.WorldPose()
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if parent != nil {
		parent.AddChild(g)
	}
	if keepWorld {
		g.SetWorldPose(world)
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale, then rotate into world
	scaled := rl.Vector3Multiply(g.Transform.Position, parentScale)
	rotated := rl.Vector3RotateByQuaternion(scaled, g.Parent.WorldRotation())
	return rl.Vector3Add(g.Parent.WorldPosition(), rotated)
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionNormalize(rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation))
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return rl.Vector3Multiply(g.Parent.WorldScale(), g.Transform.Scale)
}

// WorldPose returns the world-space position and rotation of g.
func (g *GameObject) WorldPose() Pose {
	return Pose{Position: g.WorldPosition(), Rotation: g.WorldRotation()}
}

func (g *GameObject) SetWorldPosition(p rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = p
		return
	}
	local := rl.Vector3Subtract(p, g.Parent.WorldPosition())
	local = rl.Vector3RotateByQuaternion(local, rl.QuaternionInvert(g.Parent.WorldRotation()))
	g.Transform.Position = rl.Vector3Divide(local, nonZero(g.Parent.WorldScale()))
}

func (g *GameObject) SetWorldRotation(q rl.Quaternion) {
	if g.Parent == nil {
		g.Transform.Rotation = rl.QuaternionNormalize(q)
		return
	}
	inv := rl.QuaternionInvert(g.Parent.WorldRotation())
	g.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(inv, q))
}

func (g *GameObject) SetWorldPose(p Pose) {
	g.SetWorldPosition(p.Position)
	g.SetWorldRotation(p.Rotation)
}

// Forward returns the world-space +Z axis of g.
func (g *GameObject) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, g.WorldRotation())
}

// Up returns the world-space +Y axis of g.
func (g *GameObject) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, g.WorldRotation())
}

func nonZero(v rl.Vector3) rl.Vector3 {
	if v.X == 0 {
		v.X = 1
	}
	if v.Y == 0 {
		v.Y = 1
	}
	if v.Z == 0 {
		v.Z = 1
	}
	return v
}
