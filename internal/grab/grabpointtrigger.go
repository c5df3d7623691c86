package grab

import (
	"vrgrab/internal/engine"
	"vrgrab/internal/physics"
)

// GrabPointTrigger is a trigger volume that offers Target to any hand
// entering it, optionally forcing a specific grab point.
type GrabPointTrigger struct {
	engine.BaseComponent

	Target    *Grabbable
	GrabPoint *GrabPoint
	// AutoGrab grabs as soon as an empty hand enters.
	AutoGrab bool
	// ReleaseOnExit drops the target when the holding hand leaves the volume.
	ReleaseOnExit bool

	collider physics.Collider
	inside   []*Grabber
}

func NewGrabPointTrigger(target *Grabbable) *GrabPointTrigger {
	return &GrabPointTrigger{Target: target}
}

func (p *GrabPointTrigger) Start() {
	p.collider = engine.GetComponent[physics.Collider](p.GetGameObject())
}

func (p *GrabPointTrigger) OnTriggerEnter(other physics.Collider) {
	grabber := engine.GetComponentInParent[*Grabber](other.GetGameObject())
	if grabber == nil || grabber.IsSnapZone() || p.Target == nil || p.collider == nil {
		return
	}
	for _, g := range p.inside {
		if g == grabber {
			return
		}
	}
	p.inside = append(p.inside, grabber)

	if p.GrabPoint != nil && p.GrabPoint.ValidFor(grabber.Hand) {
		p.Target.SetGrabPointOverride(grabber, p.GrabPoint)
	}
	if grabber.Trigger != nil {
		grabber.Trigger.AddNear(p.collider, p.Target)
	}
	if p.AutoGrab && grabber.HeldGrabbable == nil && grabber.RemoteFlying() == nil {
		grabber.ForceGrab(p.Target)
	}
}

func (p *GrabPointTrigger) OnTriggerExit(other physics.Collider) {
	grabber := engine.GetComponentInParent[*Grabber](other.GetGameObject())
	if grabber == nil {
		return
	}
	found := false
	for i, g := range p.inside {
		if g == grabber {
			p.inside = append(p.inside[:i], p.inside[i+1:]...)
			found = true
			break
		}
	}
	if !found || p.Target == nil {
		return
	}

	if grabber.Trigger != nil {
		grabber.Trigger.RemoveNear(p.collider)
	}
	if p.ReleaseOnExit && grabber.HeldGrabbable == p.Target {
		grabber.ForceRelease()
	}
	p.Target.SetGrabPointOverride(grabber, nil)
}
