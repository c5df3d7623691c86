package grab

// GrabbableEvents is implemented by components that react to a Grabbable.
// Every component on the Grabbable's object implementing it is called in
// attachment order. Embed BaseGrabbableEvents to override only a few hooks.
type GrabbableEvents interface {
	OnGrab(g *Grabber)
	OnRelease()
	OnSecondaryGrab(g *Grabber)
	OnSecondaryRelease(g *Grabber)

	OnBecomesClosestGrabbable(g *Grabber)
	OnNoLongerClosestGrabbable(g *Grabber)
	OnBecomesClosestRemoteGrabbable(g *Grabber)
	OnNoLongerClosestRemoteGrabbable(g *Grabber)

	OnGrip(value float32)
	OnTrigger(value float32)
	OnTriggerDown()
	OnTriggerUp()
	OnButton1()
	OnButton1Down()
	OnButton1Up()
	OnButton2()
	OnButton2Down()
	OnButton2Up()

	OnSnapZoneEnter()
	OnSnapZoneExit()
}

// BaseGrabbableEvents implements every hook as a no-op.
type BaseGrabbableEvents struct{}

func (BaseGrabbableEvents) OnGrab(*Grabber)                           {}
func (BaseGrabbableEvents) OnRelease()                                {}
func (BaseGrabbableEvents) OnSecondaryGrab(*Grabber)                  {}
func (BaseGrabbableEvents) OnSecondaryRelease(*Grabber)               {}
func (BaseGrabbableEvents) OnBecomesClosestGrabbable(*Grabber)        {}
func (BaseGrabbableEvents) OnNoLongerClosestGrabbable(*Grabber)       {}
func (BaseGrabbableEvents) OnBecomesClosestRemoteGrabbable(*Grabber)  {}
func (BaseGrabbableEvents) OnNoLongerClosestRemoteGrabbable(*Grabber) {}
func (BaseGrabbableEvents) OnGrip(float32)                            {}
func (BaseGrabbableEvents) OnTrigger(float32)                         {}
func (BaseGrabbableEvents) OnTriggerDown()                            {}
func (BaseGrabbableEvents) OnTriggerUp()                              {}
func (BaseGrabbableEvents) OnButton1()                                {}
func (BaseGrabbableEvents) OnButton1Down()                            {}
func (BaseGrabbableEvents) OnButton1Up()                              {}
func (BaseGrabbableEvents) OnButton2()                                {}
func (BaseGrabbableEvents) OnButton2Down()                            {}
func (BaseGrabbableEvents) OnButton2Up()                              {}
func (BaseGrabbableEvents) OnSnapZoneEnter()                          {}
func (BaseGrabbableEvents) OnSnapZoneExit()                           {}
