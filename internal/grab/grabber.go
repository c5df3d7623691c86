package grab

import (
	"vrgrab/internal/engine"
	"vrgrab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Grabber is one hand. It reads input each frame, picks a target from its
// GrabbablesInTrigger and issues grab and release calls.
type Grabber struct {
	engine.BaseComponent
	svc *Services

	Hand              input.Hand
	DefaultGrabButton GrabButton
	DefaultHoldType   HoldType
	// GripThreshold is the analog value that starts a hold-down grab.
	GripThreshold float32
	// ReleaseThreshold is the value below which a hold-down grab ends and the
	// grip counts as fresh again.
	ReleaseThreshold float32
	// GrabGraceWindow lets a grip pressed shortly before reaching an object still grab it.
	GrabGraceWindow float32
	// FlickMinAngularSpeed is the hand rotation speed in rad/s that launches a flick grab.
	FlickMinAngularSpeed float32

	Tracker *VelocityTracker
	Trigger *GrabbablesInTrigger

	// HeldGrabbable is the object this hand holds, nil when empty. It is
	// never set while an object is flying to the hand.
	HeldGrabbable *Grabbable

	Grabbed  engine.EventWithArg[*Grabbable]
	Released engine.EventWithArg[*Grabbable]

	flying   *Grabbable
	snapZone *SnapZone

	freshGrip     bool
	gripHeld      bool
	gripPressTime float32

	closest       *Grabbable
	closestRemote *Grabbable
}

func NewGrabber(hand input.Hand, svc *Services) *Grabber {
	if svc == nil {
		svc = &Services{}
	}
	return &Grabber{
		svc:                  svc,
		Hand:                 hand,
		DefaultGrabButton:    ButtonGrip,
		DefaultHoldType:      HoldDown,
		GripThreshold:        0.9,
		ReleaseThreshold:     0.5,
		GrabGraceWindow:      0.1,
		FlickMinAngularSpeed: 8,
		freshGrip:            true,
	}
}

func (g *Grabber) Start() {
	obj := g.GetGameObject()
	if g.Tracker == nil {
		g.Tracker = engine.GetComponent[*VelocityTracker](obj)
	}
	if g.Trigger == nil {
		g.Trigger = engine.GetComponent[*GrabbablesInTrigger](obj)
	}
	if g.Trigger != nil && g.Trigger.grabber == nil {
		g.Trigger.grabber = g
	}
}

// IsSnapZone reports whether this grabber belongs to a SnapZone.
func (g *Grabber) IsSnapZone() bool {
	return g.snapZone != nil
}

// RemoteFlying returns the object currently flying to this hand.
func (g *Grabber) RemoteFlying() *Grabbable {
	return g.flying
}

// FreshGrip reports whether the next grip press may start a grab.
func (g *Grabber) FreshGrip() bool {
	return g.freshGrip
}

func (g *Grabber) setHeld(target *Grabbable) {
	g.HeldGrabbable = target
	g.flying = nil
	g.freshGrip = false
}

func (g *Grabber) clearHeld(target *Grabbable) {
	if g.HeldGrabbable == target {
		g.HeldGrabbable = nil
	}
	// A grip still squeezed after a drop must be let go before grabbing again
	if g.gripHeld {
		g.freshGrip = false
	}
}

func (g *Grabber) setFlying(target *Grabbable) {
	g.flying = target
}

func (g *Grabber) clearFlying(target *Grabbable) {
	if g.flying == target {
		g.flying = nil
	}
}

// GrabButtonFor resolves the button for target: its own setting, then the
// grabber default, then grip.
func (g *Grabber) GrabButtonFor(target *Grabbable) GrabButton {
	if target != nil && target.GrabButton != ButtonInherit {
		return target.GrabButton
	}
	if g.DefaultGrabButton != ButtonInherit {
		return g.DefaultGrabButton
	}
	return ButtonGrip
}

// HoldTypeFor resolves the hold type the same way as GrabButtonFor.
func (g *Grabber) HoldTypeFor(target *Grabbable) HoldType {
	if target != nil && target.HoldType != HoldInherit {
		return target.HoldType
	}
	if g.DefaultHoldType != HoldInherit {
		return g.DefaultHoldType
	}
	return HoldDown
}

// TryGrab grabs the closest object in reach, otherwise starts a remote grab
// on the closest remote candidate. It reports whether anything started.
func (g *Grabber) TryGrab() bool {
	if g.HeldGrabbable != nil || g.Trigger == nil {
		return false
	}
	if target := g.Trigger.ClosestGrabbable; target != nil {
		target.GrabItem(g)
		return g.HeldGrabbable == target
	}
	remote := g.Trigger.ClosestRemoteGrabbable
	if remote == nil || g.flying != nil || remote.IsRemoteFlying() {
		return false
	}
	if remote.RemoteGrabMechanic == RemoteFlick && !g.flickGesture() {
		return false
	}
	remote.GrabRemoteItem(g)
	return g.flying == remote
}

// TryRelease drops the held object, or cancels one in flight.
func (g *Grabber) TryRelease() {
	if held := g.HeldGrabbable; held != nil {
		if held.CanBeDropped {
			held.DropItem(g, true, true)
		}
		return
	}
	if g.flying != nil {
		g.flying.CancelRemoteGrab()
	}
}

// ForceGrab attaches target regardless of input or reach.
func (g *Grabber) ForceGrab(target *Grabbable) {
	if target == nil {
		return
	}
	target.GrabItem(g)
}

// ForceRelease drops whatever the hand holds without throw velocity.
func (g *Grabber) ForceRelease() {
	if held := g.HeldGrabbable; held != nil {
		held.DropItem(g, false, true)
	}
	if g.flying != nil {
		g.flying.CancelRemoteGrab()
	}
}

func (g *Grabber) flickGesture() bool {
	if g.Tracker == nil {
		return false
	}
	return rl.Vector3Length(g.Tracker.AngularVelocity()) >= g.FlickMinAngularSpeed
}

func (g *Grabber) Update(deltaTime float32) {
	if g.snapZone != nil {
		return
	}
	g.releaseInvalid()

	if g.Trigger != nil {
		g.Trigger.Resolve()
		g.updateClosest()
	}

	src := g.svc.Input
	if src == nil {
		return
	}

	target := g.HeldGrabbable
	if target == nil {
		target = g.flying
	}
	if target == nil && g.Trigger != nil {
		target = g.Trigger.ClosestGrabbable
		if target == nil {
			target = g.Trigger.ClosestRemoteGrabbable
		}
	}
	button := g.GrabButtonFor(target)
	hold := g.HoldTypeFor(target)

	value := src.Grip(g.Hand)
	digital := input.ButtonGrip
	if button == ButtonTrigger {
		value = src.Trigger(g.Hand)
		digital = input.ButtonTrigger
	}
	now := g.Now()
	if value < g.ReleaseThreshold {
		g.freshGrip = true
		g.gripHeld = false
	}
	if value >= g.GripThreshold && !g.gripHeld {
		g.gripHeld = true
		g.gripPressTime = now
	}

	grabbedNow := false
	if g.HeldGrabbable == nil && g.flying == nil {
		switch hold {
		case HoldDown:
			if g.gripHeld && g.freshGrip {
				if g.TryGrab() {
					grabbedNow = true
				} else if now-g.gripPressTime > g.GrabGraceWindow && !g.waitingForFlick() {
					g.freshGrip = false
				}
			}
		case Toggle:
			if src.ButtonDown(g.Hand, digital) {
				grabbedNow = g.TryGrab()
			}
		}
	}

	if held := g.HeldGrabbable; held != nil && !grabbedNow {
		g.forwardInput(held, src)
		switch hold {
		case HoldDown:
			if value < g.ReleaseThreshold {
				g.TryRelease()
			}
		case Toggle:
			if src.ButtonDown(g.Hand, digital) {
				g.TryRelease()
			}
		}
	} else if g.flying != nil && hold == HoldDown && value < g.ReleaseThreshold {
		g.svc.logger().Debug("remote grab cancelled by release", zap.Stringer("hand", g.Hand))
		g.TryRelease()
	}
}

// waitingForFlick keeps a held grip fresh while a flick target is aimed at.
func (g *Grabber) waitingForFlick() bool {
	if g.Trigger == nil {
		return false
	}
	r := g.Trigger.ClosestRemoteGrabbable
	return g.Trigger.ClosestGrabbable == nil && r != nil && r.RemoteGrabMechanic == RemoteFlick
}

// releaseInvalid drops held objects that were destroyed or disabled.
func (g *Grabber) releaseInvalid() {
	held := g.HeldGrabbable
	if held == nil {
		return
	}
	obj := held.GetGameObject()
	if obj == nil || obj.Destroyed() || !held.IsGrabbable() {
		g.svc.logger().Debug("releasing invalid held object", zap.Stringer("hand", g.Hand))
		if obj == nil || obj.Destroyed() {
			held.removeHolder(g)
			g.HeldGrabbable = nil
			g.Released.Invoke(held)
			return
		}
		held.ReleaseAll()
	}
}

// updateClosest fires the closest and no-longer-closest edges.
func (g *Grabber) updateClosest() {
	if c := g.Trigger.ClosestGrabbable; c != g.closest {
		if g.closest != nil {
			for _, h := range g.closest.hooks() {
				h.OnNoLongerClosestGrabbable(g)
			}
		}
		if c != nil {
			for _, h := range c.hooks() {
				h.OnBecomesClosestGrabbable(g)
			}
		}
		g.closest = c
	}
	if c := g.Trigger.ClosestRemoteGrabbable; c != g.closestRemote {
		if g.closestRemote != nil {
			for _, h := range g.closestRemote.hooks() {
				h.OnNoLongerClosestRemoteGrabbable(g)
			}
		}
		if c != nil {
			for _, h := range c.hooks() {
				h.OnBecomesClosestRemoteGrabbable(g)
			}
		}
		g.closestRemote = c
	}
}

// forwardInput passes this hand's controls to the held object's hooks.
// Only the primary holder forwards.
func (g *Grabber) forwardInput(held *Grabbable, src input.Source) {
	if held.GetPrimaryGrabber() != g {
		return
	}
	hooks := held.hooks()
	if len(hooks) == 0 {
		return
	}
	grip := src.Grip(g.Hand)
	trigger := src.Trigger(g.Hand)
	for _, h := range hooks {
		h.OnGrip(grip)
		h.OnTrigger(trigger)
		if src.ButtonDown(g.Hand, input.ButtonTrigger) {
			h.OnTriggerDown()
		}
		if src.ButtonUp(g.Hand, input.ButtonTrigger) {
			h.OnTriggerUp()
		}
		if src.Button(g.Hand, input.Button1) {
			h.OnButton1()
		}
		if src.ButtonDown(g.Hand, input.Button1) {
			h.OnButton1Down()
		}
		if src.ButtonUp(g.Hand, input.Button1) {
			h.OnButton1Up()
		}
		if src.Button(g.Hand, input.Button2) {
			h.OnButton2()
		}
		if src.ButtonDown(g.Hand, input.Button2) {
			h.OnButton2Down()
		}
		if src.ButtonUp(g.Hand, input.Button2) {
			h.OnButton2Up()
		}
	}
}
