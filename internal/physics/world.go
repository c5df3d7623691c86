package physics

import (
	"math"

	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// pairKey identifies two colliders independent of order.
type pairKey struct {
	A, B Collider
}

// World is the reference Backend: it integrates bodies, drives joints,
// separates overlapping solids and reports contacts and trigger overlaps.
type World struct {
	Gravity rl.Vector3
	Log     *zap.Logger

	bodies     []*Rigidbody
	colliders  []Collider
	colliderID map[Collider]int
	nextID     int
	joints     []*joint
	ignored    map[pairKey]bool

	// Contacts and trigger overlaps from the previous step, for enter/exit edges
	activeContacts  map[pairKey]contact
	activeTriggers  map[pairKey]bool
	currentContacts map[pairKey]contact
	currentTriggers map[pairKey]bool
}

type contact struct {
	push  rl.Vector3 // moves A out of B
	depth float32
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Gravity:         rl.Vector3{Y: -9.81},
		Log:             log,
		colliderID:      make(map[Collider]int),
		ignored:         make(map[pairKey]bool),
		activeContacts:  make(map[pairKey]contact),
		activeTriggers:  make(map[pairKey]bool),
		currentContacts: make(map[pairKey]contact),
		currentTriggers: make(map[pairKey]bool),
	}
}

// Add registers the bodies and colliders of g and all of its descendants.
func (w *World) Add(g *engine.GameObject) {
	for _, rb := range engine.GetComponents[*Rigidbody](g) {
		if !w.hasBody(rb) {
			w.bodies = append(w.bodies, rb)
		}
	}
	for _, c := range engine.GetComponents[Collider](g) {
		if _, ok := w.colliderID[c]; !ok {
			w.nextID++
			w.colliderID[c] = w.nextID
			w.colliders = append(w.colliders, c)
		}
	}
	for _, child := range g.Children {
		w.Add(child)
	}
}

// Remove unregisters g and its descendants, dropping their joints and contacts.
func (w *World) Remove(g *engine.GameObject) {
	for _, rb := range engine.GetComponents[*Rigidbody](g) {
		for i, b := range w.bodies {
			if b == rb {
				w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
				break
			}
		}
		for _, j := range append([]*joint(nil), w.joints...) {
			if j.spec.Body == Body(rb) {
				w.DestroyJoint(j)
			}
		}
	}
	for _, c := range engine.GetComponents[Collider](g) {
		if _, ok := w.colliderID[c]; !ok {
			continue
		}
		delete(w.colliderID, c)
		for i, other := range w.colliders {
			if other == c {
				w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
				break
			}
		}
		for k := range w.activeContacts {
			if k.A == c || k.B == c {
				delete(w.activeContacts, k)
			}
		}
		for k := range w.activeTriggers {
			if k.A == c || k.B == c {
				delete(w.activeTriggers, k)
			}
		}
		for k := range w.ignored {
			if k.A == c || k.B == c {
				delete(w.ignored, k)
			}
		}
	}
	for _, child := range g.Children {
		w.Remove(child)
	}
}

func (w *World) hasBody(rb *Rigidbody) bool {
	for _, b := range w.bodies {
		if b == rb {
			return true
		}
	}
	return false
}

// Bodies returns the registered rigid bodies.
func (w *World) Bodies() []*Rigidbody {
	return w.bodies
}

// CreateJoint implements Backend.
func (w *World) CreateJoint(spec JointSpec) Joint {
	j := &joint{spec: spec, rotationTarget: rl.QuaternionIdentity()}
	w.joints = append(w.joints, j)
	if spec.Body != nil {
		spec.Body.Wake()
		w.Log.Debug("joint created",
			zap.Stringer("kind", spec.Kind),
			zap.String("body", spec.Body.GetGameObject().Name))
	}
	return j
}

// DestroyJoint implements Backend. Destroying a joint twice is a no-op.
func (w *World) DestroyJoint(j Joint) {
	jj, ok := j.(*joint)
	if !ok || jj.destroyed {
		return
	}
	jj.destroyed = true
	for i, other := range w.joints {
		if other == jj {
			w.joints = append(w.joints[:i], w.joints[i+1:]...)
			break
		}
	}
	w.Log.Debug("joint destroyed", zap.Stringer("kind", jj.spec.Kind))
}

// Joints returns the number of live joints.
func (w *World) Joints() int {
	return len(w.joints)
}

// IgnoreCollision implements Backend.
func (w *World) IgnoreCollision(a, b Collider, ignore bool) {
	if a == nil || b == nil || a == b {
		return
	}
	key := w.key(a, b)
	if ignore {
		w.ignored[key] = true
	} else {
		delete(w.ignored, key)
	}
}

// IsIgnored reports whether contacts between a and b are suppressed.
func (w *World) IsIgnored(a, b Collider) bool {
	return w.ignored[w.key(a, b)]
}

func (w *World) key(a, b Collider) pairKey {
	if w.colliderID[a] > w.colliderID[b] {
		return pairKey{A: b, B: a}
	}
	return pairKey{A: a, B: b}
}

func (w *World) colliderLive(c Collider) bool {
	g := c.GetGameObject()
	return c.Enabled() && g != nil && g.ActiveInHierarchy()
}

// Step advances the simulation by deltaTime seconds.
func (w *World) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}

	for _, j := range w.joints {
		j.drive(deltaTime)
	}

	for _, rb := range w.bodies {
		w.integrate(rb, deltaTime)
	}

	w.detect()
	w.dispatch()
}

func (w *World) integrate(rb *Rigidbody, deltaTime float32) {
	obj := rb.GetGameObject()
	if obj == nil || rb.IsKinematic || rb.IsSleeping || !obj.ActiveInHierarchy() {
		return
	}

	if rb.UseGravity {
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
	}
	if rb.Drag > 0 {
		keep := 1 - rb.Drag*deltaTime
		if keep < 0 {
			keep = 0
		}
		rb.Velocity = rl.Vector3Scale(rb.Velocity, keep)
	}
	if !engine.IsFinite(rb.Velocity) {
		w.Log.Warn("non-finite velocity reset", zap.String("object", obj.Name))
		rb.Velocity = rl.Vector3{}
	}
	if !engine.IsFinite(rb.AngularVelocity) {
		rb.AngularVelocity = rl.Vector3{}
	}

	obj.SetWorldPosition(rl.Vector3Add(obj.WorldPosition(), rl.Vector3Scale(rb.Velocity, deltaTime)))
	obj.SetWorldRotation(engine.IntegrateRotation(obj.WorldRotation(), rb.AngularVelocity, deltaTime))

	// Angular damping is expressed per 1/60 s so it is rate independent
	if rb.AngularDamping > 0 && rb.AngularDamping < 1 {
		keep := float32(math.Pow(float64(rb.AngularDamping), float64(deltaTime*60)))
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, keep)
	}

	rb.TrySleep(deltaTime)
}

// detect fills the current contact and trigger sets and separates solids.
func (w *World) detect() {
	clear(w.currentContacts)
	clear(w.currentTriggers)

	for i := 0; i < len(w.colliders); i++ {
		a := w.colliders[i]
		if !w.colliderLive(a) {
			continue
		}
		boundsA := a.Bounds()
		bodyA := AttachedBody(a)

		for k := i + 1; k < len(w.colliders); k++ {
			b := w.colliders[k]
			if !w.colliderLive(b) || !boundsA.Intersects(b.Bounds()) {
				continue
			}
			bodyB := AttachedBody(b)
			if bodyA == nil && bodyB == nil {
				continue
			}
			if bodyA == bodyB {
				continue
			}
			key := w.key(a, b)
			if w.ignored[key] {
				continue
			}

			push, depth, ok := overlap(key.A, key.B)
			if !ok {
				continue
			}

			if a.Trigger() || b.Trigger() {
				w.currentTriggers[key] = true
				continue
			}

			w.currentContacts[key] = contact{push: push, depth: depth}
			w.separate(key.A, key.B, push)
		}
	}
}

// separate pushes dynamic bodies apart, splitting the correction by inverse mass,
// and removes the approaching velocity component.
func (w *World) separate(a, b Collider, push rl.Vector3) {
	bodyA, bodyB := AttachedBody(a), AttachedBody(b)
	dynA := bodyA != nil && !bodyA.IsKinematic
	dynB := bodyB != nil && !bodyB.IsKinematic
	if !dynA && !dynB {
		return
	}

	shareA, shareB := float32(0), float32(0)
	switch {
	case dynA && dynB:
		invA, invB := 1/bodyA.GetMass(), 1/bodyB.GetMass()
		shareA = invA / (invA + invB)
		shareB = 1 - shareA
	case dynA:
		shareA = 1
	default:
		shareB = 1
	}

	normal := rl.Vector3Normalize(push)
	if shareA > 0 {
		moveBody(bodyA, rl.Vector3Scale(push, shareA), normal)
	}
	if shareB > 0 {
		moveBody(bodyB, rl.Vector3Scale(push, -shareB), rl.Vector3Negate(normal))
	}
}

func moveBody(rb *Rigidbody, delta, normal rl.Vector3) {
	obj := rb.GetGameObject()
	obj.SetWorldPosition(rl.Vector3Add(obj.WorldPosition(), delta))

	into := rl.Vector3DotProduct(rb.Velocity, normal)
	if into < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, (1+rb.Bounciness)*into))
		tangent := rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, rl.Vector3DotProduct(rb.Velocity, normal)))
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(tangent, engine.Clamp01(rb.Friction)))
	}
}

// dispatch fires enter/stay/exit edges by diffing against the previous step.
func (w *World) dispatch() {
	for key, c := range w.currentContacts {
		if _, ok := w.activeContacts[key]; ok {
			w.notifyContact(key, c, stayEvent)
		} else {
			w.notifyContact(key, c, enterEvent)
		}
	}
	for key, c := range w.activeContacts {
		if _, ok := w.currentContacts[key]; !ok {
			w.notifyContact(key, c, exitEvent)
		}
	}
	for key := range w.currentTriggers {
		if !w.activeTriggers[key] {
			w.notifyTrigger(key, true)
		}
	}
	for key := range w.activeTriggers {
		if !w.currentTriggers[key] {
			w.notifyTrigger(key, false)
		}
	}

	w.activeContacts, w.currentContacts = w.currentContacts, w.activeContacts
	w.activeTriggers, w.currentTriggers = w.currentTriggers, w.activeTriggers
}

type contactEvent int

const (
	enterEvent contactEvent = iota
	stayEvent
	exitEvent
)

func (w *World) notifyContact(key pairKey, c contact, ev contactEvent) {
	normal := rl.Vector3Normalize(c.push)
	sendContact(key.A, key.B, normal, c.depth, ev)
	sendContact(key.B, key.A, rl.Vector3Negate(normal), c.depth, ev)
}

func sendContact(self, other Collider, normal rl.Vector3, depth float32, ev contactEvent) {
	col := Collision{
		Collider:      self,
		OtherCollider: other,
		Other:         other.GetGameObject(),
		Normal:        normal,
		Depth:         depth,
	}
	for _, g := range receivers(self) {
		for _, comp := range g.Components() {
			switch ev {
			case enterEvent:
				if h, ok := comp.(CollisionHandler); ok {
					h.OnCollisionEnter(col)
				}
			case stayEvent:
				if h, ok := comp.(CollisionStayHandler); ok {
					h.OnCollisionStay(col)
				}
			case exitEvent:
				if h, ok := comp.(CollisionHandler); ok {
					h.OnCollisionExit(col)
				}
			}
		}
	}
}

func (w *World) notifyTrigger(key pairKey, enter bool) {
	sendTrigger(key.A, key.B, enter)
	sendTrigger(key.B, key.A, enter)
}

func sendTrigger(self, other Collider, enter bool) {
	for _, g := range receivers(self) {
		for _, comp := range g.Components() {
			h, ok := comp.(TriggerHandler)
			if !ok {
				continue
			}
			if enter {
				h.OnTriggerEnter(other)
			} else {
				h.OnTriggerExit(other)
			}
		}
	}
}

// receivers are the collider's own object and, if different, its body's object.
func receivers(c Collider) []*engine.GameObject {
	g := c.GetGameObject()
	out := []*engine.GameObject{g}
	if rb := AttachedBody(c); rb != nil && rb.GetGameObject() != g {
		out = append(out, rb.GetGameObject())
	}
	return out
}
