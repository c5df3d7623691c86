package grab

import "vrgrab/internal/engine"

// GrabbableCallbacks exposes every hook of its Grabbable as an event so
// behaviour can be wired without writing a component.
type GrabbableCallbacks struct {
	engine.BaseComponent

	Grabbed           engine.EventWithArg[*Grabber]
	Released          engine.Event
	SecondaryGrabbed  engine.EventWithArg[*Grabber]
	SecondaryReleased engine.EventWithArg[*Grabber]

	BecameClosest         engine.EventWithArg[*Grabber]
	NoLongerClosest       engine.EventWithArg[*Grabber]
	BecameClosestRemote   engine.EventWithArg[*Grabber]
	NoLongerClosestRemote engine.EventWithArg[*Grabber]

	Grip        engine.EventWithArg[float32]
	Trigger     engine.EventWithArg[float32]
	TriggerDown engine.Event
	TriggerUp   engine.Event
	Button1     engine.Event
	Button1Down engine.Event
	Button1Up   engine.Event
	Button2     engine.Event
	Button2Down engine.Event
	Button2Up   engine.Event

	SnapZoneEntered engine.Event
	SnapZoneExited  engine.Event
}

func (c *GrabbableCallbacks) OnGrab(g *Grabber)             { c.Grabbed.Invoke(g) }
func (c *GrabbableCallbacks) OnRelease()                    { c.Released.Invoke() }
func (c *GrabbableCallbacks) OnSecondaryGrab(g *Grabber)    { c.SecondaryGrabbed.Invoke(g) }
func (c *GrabbableCallbacks) OnSecondaryRelease(g *Grabber) { c.SecondaryReleased.Invoke(g) }

func (c *GrabbableCallbacks) OnBecomesClosestGrabbable(g *Grabber) {
	c.BecameClosest.Invoke(g)
}

func (c *GrabbableCallbacks) OnNoLongerClosestGrabbable(g *Grabber) {
	c.NoLongerClosest.Invoke(g)
}

func (c *GrabbableCallbacks) OnBecomesClosestRemoteGrabbable(g *Grabber) {
	c.BecameClosestRemote.Invoke(g)
}

func (c *GrabbableCallbacks) OnNoLongerClosestRemoteGrabbable(g *Grabber) {
	c.NoLongerClosestRemote.Invoke(g)
}

func (c *GrabbableCallbacks) OnGrip(v float32)    { c.Grip.Invoke(v) }
func (c *GrabbableCallbacks) OnTrigger(v float32) { c.Trigger.Invoke(v) }
func (c *GrabbableCallbacks) OnTriggerDown()      { c.TriggerDown.Invoke() }
func (c *GrabbableCallbacks) OnTriggerUp()        { c.TriggerUp.Invoke() }
func (c *GrabbableCallbacks) OnButton1()          { c.Button1.Invoke() }
func (c *GrabbableCallbacks) OnButton1Down()      { c.Button1Down.Invoke() }
func (c *GrabbableCallbacks) OnButton1Up()        { c.Button1Up.Invoke() }
func (c *GrabbableCallbacks) OnButton2()          { c.Button2.Invoke() }
func (c *GrabbableCallbacks) OnButton2Down()      { c.Button2Down.Invoke() }
func (c *GrabbableCallbacks) OnButton2Up()        { c.Button2Up.Invoke() }
func (c *GrabbableCallbacks) OnSnapZoneEnter()    { c.SnapZoneEntered.Invoke() }
func (c *GrabbableCallbacks) OnSnapZoneExit()     { c.SnapZoneExited.Invoke() }
