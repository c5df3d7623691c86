package grab

import (
	"slices"

	"vrgrab/internal/engine"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// lineOfSightTolerance is how far from a remote target a blocking hit may
// lie and still count as reaching it.
const lineOfSightTolerance = 0.09

type candidate struct {
	collider  physics.Collider
	grabbable *Grabbable
}

// GrabbablesInTrigger tracks the grabbables near one grabber through
// trigger callbacks on the grabber's object and resolves the closest
// near and remote candidates.
type GrabbablesInTrigger struct {
	engine.BaseComponent
	svc     *Services
	grabber *Grabber

	// RaycastRemoteGrabbables rejects remote candidates hidden behind other objects.
	RaycastRemoteGrabbables bool

	// Eye, when set, must also see a remote candidate.
	Eye *engine.GameObject

	ClosestGrabbable       *Grabbable
	ClosestRemoteGrabbable *Grabbable

	near    []candidate
	remote  []candidate
	inReach []*Grabbable
}

func NewGrabbablesInTrigger(svc *Services) *GrabbablesInTrigger {
	if svc == nil {
		svc = &Services{}
	}
	return &GrabbablesInTrigger{svc: svc, RaycastRemoteGrabbables: true}
}

func (t *GrabbablesInTrigger) Start() {
	if t.grabber == nil {
		t.grabber = engine.GetComponent[*Grabber](t.GetGameObject())
	}
}

// OnDestroy withdraws the grabber from everything it had in reach.
func (t *GrabbablesInTrigger) OnDestroy() {
	t.updateInReach(nil)
}

// Grabber returns the grabber this index resolves for.
func (t *GrabbablesInTrigger) Grabber() *Grabber {
	return t.grabber
}

func (t *GrabbablesInTrigger) OnTriggerEnter(other physics.Collider) {
	if g := owner(other); g != nil {
		t.near = addCandidate(t.near, other, g)
	}
}

func (t *GrabbablesInTrigger) OnTriggerExit(other physics.Collider) {
	t.near = removeCandidate(t.near, other)
}

// AddNear registers c as a proximity collider of g.
func (t *GrabbablesInTrigger) AddNear(c physics.Collider, g *Grabbable) {
	t.near = addCandidate(t.near, c, g)
}

func (t *GrabbablesInTrigger) RemoveNear(c physics.Collider) {
	t.near = removeCandidate(t.near, c)
}

func (t *GrabbablesInTrigger) AddRemote(c physics.Collider, g *Grabbable) {
	t.remote = addCandidate(t.remote, c, g)
}

func (t *GrabbablesInTrigger) RemoveRemote(c physics.Collider) {
	t.remote = removeCandidate(t.remote, c)
}

// owner maps a solid collider to its nearest Grabbable ancestor.
func owner(c physics.Collider) *Grabbable {
	if c == nil || c.Trigger() {
		return nil
	}
	return engine.GetComponentInParent[*Grabbable](c.GetGameObject())
}

func addCandidate(list []candidate, c physics.Collider, g *Grabbable) []candidate {
	for _, e := range list {
		if e.collider == c {
			return list
		}
	}
	return append(list, candidate{collider: c, grabbable: g})
}

func removeCandidate(list []candidate, c physics.Collider) []candidate {
	for i, e := range list {
		if e.collider == c {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Nearby returns the distinct live grabbables currently in the trigger.
func (t *GrabbablesInTrigger) Nearby() []*Grabbable {
	t.near = t.sanitize(t.near)
	var out []*Grabbable
	seen := make(map[*Grabbable]bool)
	for _, e := range t.near {
		if !seen[e.grabbable] {
			seen[e.grabbable] = true
			out = append(out, e.grabbable)
		}
	}
	return out
}

// Resolve recomputes ClosestGrabbable and ClosestRemoteGrabbable. Remote
// resolution only runs when nothing is in reach.
func (t *GrabbablesInTrigger) Resolve() {
	t.near = t.sanitize(t.near)
	t.ClosestGrabbable = t.closest(t.near, false)
	t.updateInReach(t.near)

	t.ClosestRemoteGrabbable = nil
	t.remote = t.sanitize(t.remote)
	if t.ClosestGrabbable == nil {
		t.ClosestRemoteGrabbable = t.closest(t.remote, true)
	}
}

// updateInReach registers the hand grabber on each valid near candidate and
// withdraws it from those no longer in the list.
func (t *GrabbablesInTrigger) updateInReach(list []candidate) {
	if t.grabber == nil || t.grabber.IsSnapZone() {
		return
	}
	var next []*Grabbable
	for _, e := range list {
		if t.valid(e.grabbable) && !slices.Contains(next, e.grabbable) {
			next = append(next, e.grabbable)
		}
	}
	for _, g := range t.inReach {
		if !slices.Contains(next, g) {
			g.removeInReach(t.grabber)
		}
	}
	for _, g := range next {
		g.addInReach(t.grabber)
	}
	t.inReach = next
}

// sanitize drops entries whose collider or grabbable is gone, disabled or
// past its break distance.
func (t *GrabbablesInTrigger) sanitize(list []candidate) []candidate {
	origin := t.origin()
	kept := list[:0]
	for _, e := range list {
		obj := e.collider.GetGameObject()
		gobj := e.grabbable.GetGameObject()
		if obj == nil || gobj == nil || obj.Destroyed() || gobj.Destroyed() {
			continue
		}
		if !e.collider.Enabled() || !obj.ActiveInHierarchy() || !e.grabbable.IsGrabbable() {
			continue
		}
		if bd := e.grabbable.BreakDistance; bd > 0 && rl.Vector3Distance(origin, e.collider.Center()) > bd {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func (t *GrabbablesInTrigger) origin() rl.Vector3 {
	if t.grabber != nil {
		return t.grabber.GetGameObject().WorldPosition()
	}
	return t.GetGameObject().WorldPosition()
}

func (t *GrabbablesInTrigger) closest(list []candidate, remote bool) *Grabbable {
	origin := t.origin()
	var best *Grabbable
	bestDist := float32(0)
	for _, e := range list {
		g := e.grabbable
		if !t.valid(g) {
			continue
		}
		dist := rl.Vector3Distance(origin, e.collider.Center())
		if remote {
			if !g.RemoteGrabbable || dist > g.RemoteGrabDistance {
				continue
			}
			if t.RaycastRemoteGrabbables && t.obstructed(origin, g, t.ignoreRoot()) {
				continue
			}
			if t.Eye != nil && t.obstructed(t.Eye.WorldPosition(), g, t.Eye) {
				continue
			}
		}
		if best == nil || dist < bestDist {
			best, bestDist = g, dist
		}
	}
	return best
}

func (t *GrabbablesInTrigger) ignoreRoot() *engine.GameObject {
	if t.grabber != nil {
		return t.grabber.GetGameObject()
	}
	return t.GetGameObject()
}

// valid reports whether this grabber may grab g now.
func (t *GrabbablesInTrigger) valid(g *Grabbable) bool {
	if !g.IsGrabbable() || (g.IsRemoteFlying() && (t.grabber == nil || g.flyingTo != t.grabber)) {
		return false
	}
	if !g.BeingHeld() {
		return true
	}
	if t.grabber != nil && g.holderIndex(t.grabber) >= 0 {
		return false
	}
	if zone := g.GetPrimaryGrabber().snapZone; zone != nil {
		return zone.CanRemoveItem
	}
	switch g.SecondaryGrabBehavior {
	case OtherGrabDualGrab, OtherGrabSwapHands:
		return true
	default:
		return false
	}
}

// obstructed casts from origin to g and reports a blocking hit that is
// neither part of g nor within lineOfSightTolerance of it.
func (t *GrabbablesInTrigger) obstructed(origin rl.Vector3, g *Grabbable, ignore *engine.GameObject) bool {
	backend := t.svc.Physics
	if backend == nil {
		return false
	}
	target := g.GetGameObject()
	hit, ok := backend.Linecast(origin, target.WorldPosition(), ignore)
	if !ok || hit.GameObject == nil || hit.GameObject.IsChildOf(target) {
		return false
	}
	return rl.Vector3Distance(hit.Point, target.WorldPosition()) > lineOfSightTolerance
}

// RemoteGrabDetector sits on a large trigger volume in front of the hand and
// feeds remote candidates into a GrabbablesInTrigger. Give its object its own
// kinematic body so its callbacks stay separate from the hand's.
type RemoteGrabDetector struct {
	engine.BaseComponent
	Trigger *GrabbablesInTrigger
}

func NewRemoteGrabDetector(t *GrabbablesInTrigger) *RemoteGrabDetector {
	return &RemoteGrabDetector{Trigger: t}
}

func (d *RemoteGrabDetector) OnTriggerEnter(other physics.Collider) {
	if g := owner(other); g != nil && g.RemoteGrabbable && d.Trigger != nil {
		d.Trigger.AddRemote(other, g)
	}
}

func (d *RemoteGrabDetector) OnTriggerExit(other physics.Collider) {
	if d.Trigger != nil {
		d.Trigger.RemoveRemote(other)
	}
}
