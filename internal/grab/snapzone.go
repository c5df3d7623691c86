package grab

import (
	"strings"

	"vrgrab/internal/engine"
	"vrgrab/internal/input"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// SnapZone holds one Grabbable at its origin. An eligible item released
// inside the zone within MaxDropTime is snapped in.
type SnapZone struct {
	engine.BaseComponent
	svc *Services

	Grabber *Grabber
	Trigger *GrabbablesInTrigger

	HeldItem     *Grabbable
	StartingItem *Grabbable

	// MaxDropTime is how long after a release an item may still snap.
	MaxDropTime float32

	// OnlyAllowNames limits the zone to items whose name contains one of these.
	OnlyAllowNames []string
	ExcludeNames   []string

	// ScaleItem multiplies the item's original scale while snapped.
	ScaleItem        float32
	DisableColliders bool
	CanRemoveItem    bool
	CanSwapItem      bool

	OnSnap   engine.EventWithArg[*Grabbable]
	OnDetach engine.EventWithArg[*Grabbable]

	closest         *Grabbable
	disabled        []physics.Collider
	releaseListener engine.ListenerID
}

func NewSnapZone(svc *Services) *SnapZone {
	if svc == nil {
		svc = &Services{}
	}
	return &SnapZone{
		svc:           svc,
		MaxDropTime:   0.1,
		ScaleItem:     1,
		CanRemoveItem: true,
		CanSwapItem:   true,
	}
}

func (s *SnapZone) Start() {
	obj := s.GetGameObject()
	if s.Trigger == nil {
		s.Trigger = engine.GetComponent[*GrabbablesInTrigger](obj)
	}
	if s.Grabber == nil {
		s.Grabber = NewGrabber(input.Left, s.svc)
		obj.AddComponent(s.Grabber)
	}
	s.Grabber.snapZone = s
	if s.Trigger != nil {
		s.Trigger.grabber = s.Grabber
	}
	s.releaseListener = s.Grabber.Released.AddListener(s.onReleased)

	if s.StartingItem != nil {
		s.GrabGrabbable(s.StartingItem)
	}
}

func (s *SnapZone) OnDestroy() {
	if s.Grabber != nil {
		s.Grabber.Released.RemoveListener(s.releaseListener)
	}
}

// CanSnap reports whether g passes the zone's filters.
func (s *SnapZone) CanSnap(g *Grabbable) bool {
	if g == nil || g == s.HeldItem || !g.CanBeSnappedToSnapZone || !g.IsGrabbable() {
		return false
	}
	if s.HeldItem != nil && !s.CanSwapItem {
		return false
	}
	name := g.GetGameObject().Name
	if len(s.OnlyAllowNames) > 0 && !containsAny(name, s.OnlyAllowNames) {
		return false
	}
	return !containsAny(name, s.ExcludeNames)
}

func containsAny(name string, parts []string) bool {
	for _, p := range parts {
		if p != "" && strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// ClosestItem returns the eligible item currently hovering in the zone.
func (s *SnapZone) ClosestItem() *Grabbable {
	return s.closest
}

func (s *SnapZone) Update(deltaTime float32) {
	if s.Trigger == nil {
		return
	}
	now := s.Now()
	origin := s.GetGameObject().WorldPosition()

	var closest *Grabbable
	best := float32(0)
	for _, g := range s.Trigger.Nearby() {
		if !s.CanSnap(g) {
			continue
		}
		handHeld := g.BeingHeld() && !g.heldBySnapZone()
		recentlyDropped := !g.BeingHeld() && now-g.LastDropTime() <= s.MaxDropTime
		if !handHeld && !recentlyDropped {
			continue
		}
		d := rl.Vector3Distance(origin, g.GetGameObject().WorldPosition())
		if closest == nil || d < best {
			closest, best = g, d
		}
	}

	if closest != s.closest {
		if s.closest != nil {
			for _, h := range s.closest.hooks() {
				h.OnSnapZoneExit()
			}
		}
		if closest != nil {
			for _, h := range closest.hooks() {
				h.OnSnapZoneEnter()
			}
		}
		s.closest = closest
	}

	if closest != nil && !closest.BeingHeld() {
		s.GrabGrabbable(closest)
	}
}

// GrabGrabbable snaps g into the zone, releasing a previous item.
func (s *SnapZone) GrabGrabbable(g *Grabbable) {
	if g == nil || s.Grabber == nil {
		return
	}
	if s.HeldItem != nil && s.HeldItem != g {
		s.Grabber.ForceRelease()
	}

	g.capture()
	if s.closest == g {
		for _, h := range g.hooks() {
			h.OnSnapZoneExit()
		}
		s.closest = nil
	}

	s.Grabber.ForceGrab(g)
	if s.Grabber.HeldGrabbable != g {
		return
	}
	s.HeldItem = g

	obj := g.GetGameObject()
	obj.Transform.Scale = rl.Vector3Scale(g.OriginalScale, s.ScaleItem)
	if s.DisableColliders {
		for _, c := range g.colliders() {
			if c.Enabled() {
				c.SetEnabled(false)
				s.disabled = append(s.disabled, c)
			}
		}
	}

	s.svc.logger().Debug("snapped",
		zap.String("zone", s.GetGameObject().Name),
		zap.String("object", obj.Name))
	s.OnSnap.Invoke(g)
}

// Release detaches the held item, leaving it to fall.
func (s *SnapZone) Release() {
	if s.Grabber != nil {
		s.Grabber.ForceRelease()
	}
}

// onReleased runs whenever the zone's grabber lets go, including when a
// hand takes the item.
func (s *SnapZone) onReleased(g *Grabbable) {
	if g != s.HeldItem {
		return
	}
	for _, c := range s.disabled {
		c.SetEnabled(true)
	}
	s.disabled = nil
	s.HeldItem = nil
	s.svc.logger().Debug("detached",
		zap.String("zone", s.GetGameObject().Name),
		zap.String("object", g.GetGameObject().Name))
	s.OnDetach.Invoke(g)
}
