package grab

import (
	"testing"

	"vrgrab/internal/engine"
	"vrgrab/internal/input"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildColliderMapsToAncestor(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	var handle *physics.SphereCollider
	p := s.prop("sword", rl.Vector3{X: 2}, func(p *testProp) {
		child := engine.NewGameObject("hilt")
		handle = physics.NewSphereCollider(0.05)
		child.AddComponent(handle)
		p.obj.AddChild(child)
	})

	left.trigger.OnTriggerEnter(handle)
	assert.Equal(t, []*Grabbable{p.grabbable}, left.trigger.Nearby())

	left.trigger.OnTriggerEnter(p.box)
	assert.Len(t, left.trigger.Nearby(), 1, "one entry per grabbable")
}

func TestTriggerCollidersAreNotCandidates(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	var sensor *physics.SphereCollider
	s.prop("sensor", rl.Vector3{X: 2}, func(p *testProp) {
		sensor = physics.NewSphereCollider(0.5)
		sensor.IsTrigger = true
		p.obj.AddComponent(sensor)
	})

	left.trigger.OnTriggerEnter(sensor)
	assert.Empty(t, left.trigger.Nearby())
}

func TestSanitizeDropsStaleEntries(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	a := s.prop("a", rl.Vector3{X: 2}, nil)
	b := s.prop("b", rl.Vector3{X: 2}, nil)
	c := s.prop("c", rl.Vector3{X: 3}, func(p *testProp) {
		p.grabbable.BreakDistance = 1
	})
	left.trigger.AddNear(a.box, a.grabbable)
	left.trigger.AddNear(b.box, b.grabbable)
	left.trigger.AddNear(c.box, c.grabbable)

	a.box.SetEnabled(false)
	s.scene.Destroy(b.obj)

	left.trigger.Resolve()
	assert.Empty(t, left.trigger.Nearby())
	assert.Nil(t, left.trigger.ClosestGrabbable)
}

func TestClosestPrefersNearest(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	far := s.prop("far", rl.Vector3{X: 0.5}, nil)
	near := s.prop("near", rl.Vector3{X: -0.3}, nil)
	left.trigger.AddNear(far.box, far.grabbable)
	left.trigger.AddNear(near.box, near.grabbable)

	left.trigger.Resolve()
	assert.Same(t, near.grabbable, left.trigger.ClosestGrabbable)
	assert.Nil(t, left.trigger.ClosestRemoteGrabbable)
}

func TestClosestGrabberTracksHandsInReach(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	right := s.hand(input.Right, rl.Vector3{X: 0.4})
	p := s.prop("crate", rl.Vector3{X: 0.1}, nil)
	require.Nil(t, p.grabbable.GetClosestGrabber())

	left.trigger.AddNear(p.box, p.grabbable)
	right.trigger.AddNear(p.box, p.grabbable)
	left.trigger.Resolve()
	right.trigger.Resolve()
	assert.Same(t, left.grabber, p.grabbable.GetClosestGrabber())

	left.trigger.RemoveNear(p.box)
	left.trigger.Resolve()
	assert.Same(t, right.grabber, p.grabbable.GetClosestGrabber())

	right.trigger.RemoveNear(p.box)
	right.trigger.Resolve()
	assert.Nil(t, p.grabbable.GetClosestGrabber())

	// Holders count even though a held object is no candidate for its own hand
	right.grabber.ForceGrab(p.grabbable)
	right.trigger.Resolve()
	assert.Same(t, right.grabber, p.grabbable.GetClosestGrabber())
}

func TestRemoteNeedsLineOfSight(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("remote", rl.Vector3{Z: 1.5}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
	})
	wall := engine.NewGameObject("wall")
	wall.Transform.Position = rl.Vector3{Z: 0.75}
	wallBox := physics.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 0.1})
	wall.AddComponent(wallBox)
	s.spawn(wall)

	left.trigger.AddRemote(p.box, p.grabbable)
	left.trigger.Resolve()
	assert.Nil(t, left.trigger.ClosestRemoteGrabbable, "wall blocks the line")

	left.trigger.RaycastRemoteGrabbables = false
	left.trigger.Resolve()
	assert.Same(t, p.grabbable, left.trigger.ClosestRemoteGrabbable)

	left.trigger.RaycastRemoteGrabbables = true
	wallBox.SetEnabled(false)
	left.trigger.Resolve()
	assert.Same(t, p.grabbable, left.trigger.ClosestRemoteGrabbable)
}

func TestRemoteLimits(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	tooFar := s.prop("too-far", rl.Vector3{Z: 3}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
	})
	// Off the line of sight so only the remote flag rules it out
	notRemote := s.prop("not-remote", rl.Vector3{X: 1}, nil)
	left.trigger.AddRemote(tooFar.box, tooFar.grabbable)
	left.trigger.AddRemote(notRemote.box, notRemote.grabbable)

	left.trigger.Resolve()
	assert.Nil(t, left.trigger.ClosestRemoteGrabbable)

	tooFar.grabbable.RemoteGrabDistance = 5
	left.trigger.Resolve()
	assert.Same(t, tooFar.grabbable, left.trigger.ClosestRemoteGrabbable)
}

func TestNearTargetSuppressesRemote(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	near := s.prop("near", rl.Vector3{Z: 0.05}, nil)
	remote := s.prop("remote", rl.Vector3{Z: 1.5}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
	})
	left.trigger.AddNear(near.box, near.grabbable)
	left.trigger.AddRemote(remote.box, remote.grabbable)

	left.trigger.Resolve()
	assert.Same(t, near.grabbable, left.trigger.ClosestGrabbable)
	assert.Nil(t, left.trigger.ClosestRemoteGrabbable)
}

func TestEyeMustSeeRemoteTarget(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("remote", rl.Vector3{Z: 1.5}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
	})
	eye := engine.NewGameObject("eye")
	eye.Transform.Position = rl.Vector3{Y: 1.5, Z: 1.5}
	s.spawn(eye)
	roof := engine.NewGameObject("roof")
	roof.Transform.Position = rl.Vector3{Y: 0.75, Z: 1.5}
	roof.AddComponent(physics.NewBoxCollider(rl.Vector3{X: 1, Y: 0.1, Z: 1}))
	s.spawn(roof)

	left.trigger.AddRemote(p.box, p.grabbable)
	left.trigger.Resolve()
	require.Same(t, p.grabbable, left.trigger.ClosestRemoteGrabbable)

	left.trigger.Eye = eye
	left.trigger.Resolve()
	assert.Nil(t, left.trigger.ClosestRemoteGrabbable)
}

func TestRemoteDetectorFeedsTrigger(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	remote := s.prop("remote", rl.Vector3{Z: 1.5}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
	})
	plain := s.prop("plain", rl.Vector3{X: 1}, nil)
	detector := NewRemoteGrabDetector(left.trigger)

	detector.OnTriggerEnter(plain.box)
	detector.OnTriggerEnter(remote.box)
	left.trigger.Resolve()
	assert.Same(t, remote.grabbable, left.trigger.ClosestRemoteGrabbable)

	detector.OnTriggerExit(remote.box)
	left.trigger.Resolve()
	assert.Nil(t, left.trigger.ClosestRemoteGrabbable)
}

func TestRemoteDetectorThroughWorld(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	cone := engine.NewGameObject("reach")
	cone.Transform.Position = rl.Vector3{Z: 1}
	body := physics.NewRigidbody()
	body.IsKinematic = true
	volume := physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 2})
	volume.IsTrigger = true
	cone.AddComponent(body)
	cone.AddComponent(volume)
	cone.AddComponent(NewRemoteGrabDetector(left.trigger))
	s.spawn(cone)
	cone.SetParent(left.obj, true)

	p := s.prop("remote", rl.Vector3{Z: 1.5}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
	})

	s.frames(1)
	assert.Same(t, p.grabbable, left.trigger.ClosestRemoteGrabbable)
	assert.Nil(t, left.trigger.ClosestGrabbable)
}
