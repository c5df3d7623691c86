package grab

import (
	"math"
	"testing"

	"vrgrab/internal/engine"
	"vrgrab/internal/input"
	"vrgrab/internal/locomotion"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGripPastThresholdGrabs(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, nil)

	s.input.SetGrip(input.Left, 0.85)
	s.frames(1)
	assert.False(t, p.grabbable.BeingHeld(), "0.85 is below the grip threshold")
	assert.Same(t, p.grabbable, left.trigger.ClosestGrabbable)

	s.input.SetGrip(input.Left, 0.95)
	s.frames(1)
	require.True(t, p.grabbable.BeingHeld())
	assert.Same(t, left.grabber, p.grabbable.GetPrimaryGrabber())
	assert.Same(t, p.grabbable, left.grabber.HeldGrabbable)
	assert.Equal(t, []string{"closest:left", "grab:left"}, p.log.events)
	assertHoldConsistent(t, p.grabbable)
}

func TestReleaseAppliesThrowVelocity(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	left.tracker.UseDeviceVelocity = true
	p := s.prop("ball", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.GrabPhysics = PhysicsKinematic
	})

	s.input.SetDeviceVelocity(input.Left, rl.Vector3{X: 1}, rl.Vector3{Y: 2})
	s.input.SetGrip(input.Left, 0.95)
	s.frames(4)
	require.True(t, p.grabbable.BeingHeld())
	assert.Same(t, left.obj, p.obj.Parent)

	s.input.SetGrip(input.Left, 0.3)
	s.frames(1)
	require.False(t, p.grabbable.BeingHeld())
	assert.Nil(t, p.obj.Parent)

	v := p.body.GetVelocity()
	assert.InDelta(t, 2, v.X, 1e-4, "tracked velocity times ThrowForceMultiplier")
	assert.InDelta(t, 0, v.Y, 1e-4)
	w := p.body.GetAngularVelocity()
	assert.InDelta(t, 3, w.Y, 1e-4, "tracked angular velocity times ThrowForceMultiplierAngular")
	assert.Equal(t, 1, p.log.released)
}

func TestSecondHandSwapsByDefault(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	right := s.hand(input.Right, rl.Vector3{X: 0.1})
	p := s.prop("crate", rl.Vector3{X: 0.05}, nil)

	s.input.SetGrip(input.Left, 0.95)
	s.frames(1)
	require.Same(t, left.grabber, p.grabbable.GetPrimaryGrabber())

	s.input.SetGrip(input.Right, 0.95)
	s.frames(1)
	assert.Len(t, p.grabbable.HeldBy(), 1)
	assert.Same(t, right.grabber, p.grabbable.GetPrimaryGrabber())
	assert.Nil(t, left.grabber.HeldGrabbable)
	assertHoldConsistent(t, p.grabbable)

	// The left grip is still squeezed and must be let go before it grabs again
	s.frames(3)
	assert.Same(t, right.grabber, p.grabbable.GetPrimaryGrabber())
	assert.False(t, left.grabber.FreshGrip())
	assert.Equal(t, 1, p.log.count("grab:left"))
	assert.Equal(t, 1, p.log.count("grab:right"))
	assert.Equal(t, 1, p.log.released)
}

func TestLinearRemoteGrabConverges(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("remote", rl.Vector3{Z: 2}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
		p.grabbable.RemoteGrabMechanic = RemoteLinear
		p.grabbable.GrabSpeed = 15
	})

	p.grabbable.GrabRemoteItem(left.grabber)
	require.True(t, p.grabbable.IsRemoteFlying())
	assert.Same(t, p.grabbable, left.grabber.RemoteFlying())
	assert.Nil(t, left.grabber.HeldGrabbable, "a flying object is not held")
	assert.True(t, p.body.Flags().Kinematic)

	dist := func() float32 { return rl.Vector3Distance(p.obj.WorldPosition(), left.obj.WorldPosition()) }
	prev := dist()
	for i := 0; i < 30 && !p.grabbable.BeingHeld(); i++ {
		s.ticks(1)
		d := dist()
		assert.LessOrEqual(t, d, prev, "tick %d moved away", i)
		prev = d
	}
	require.True(t, p.grabbable.BeingHeld())
	assert.LessOrEqual(t, prev, float32(remoteArrival))
	assert.False(t, p.grabbable.IsRemoteFlying())
	assert.Nil(t, left.grabber.RemoteFlying())
	assertHoldConsistent(t, p.grabbable)
}

func TestVelocityRemoteGrabConverges(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("remote", rl.Vector3{Z: 2}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
		p.grabbable.RemoteGrabMechanic = RemoteVelocity
	})

	p.grabbable.GrabRemoteItem(left.grabber)
	require.True(t, p.grabbable.IsRemoteFlying())
	assert.False(t, p.body.Flags().UseGravity)

	for i := 0; i < 100 && !p.grabbable.BeingHeld(); i++ {
		s.ticks(1)
	}
	require.True(t, p.grabbable.BeingHeld())
	assert.Same(t, left.grabber, p.grabbable.GetPrimaryGrabber())
}

func TestFlickNeedsGesture(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	left.tracker.UseDeviceVelocity = true
	p := s.prop("remote", rl.Vector3{Z: 1.5}, func(p *testProp) {
		p.grabbable.RemoteGrabbable = true
		p.grabbable.RemoteGrabMechanic = RemoteFlick
	})

	left.trigger.AddRemote(p.box, p.grabbable)
	left.trigger.Resolve()
	require.Same(t, p.grabbable, left.trigger.ClosestRemoteGrabbable)

	assert.False(t, left.grabber.TryGrab(), "no flick without wrist rotation")
	assert.False(t, p.grabbable.IsRemoteFlying())

	s.input.SetDeviceVelocity(input.Left, rl.Vector3{}, rl.Vector3{X: -10})
	require.True(t, left.grabber.TryGrab())
	require.True(t, p.grabbable.IsRemoteFlying())
	assert.True(t, p.body.Flags().UseGravity)

	for i := 0; i < 50 && !p.grabbable.BeingHeld(); i++ {
		s.ticks(1)
	}
	assert.True(t, p.grabbable.BeingHeld(), "the ballistic arc ends within catch distance")
}

func TestBreakDistanceReleasesOnce(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.BreakDistance = 0.5
		p.grabbable.GrabPhysics = PhysicsVelocity
	})

	s.input.SetGrip(input.Left, 0.95)
	s.frames(1)
	require.True(t, p.grabbable.BeingHeld())

	left.obj.Transform.Position = rl.Vector3{X: 1}
	s.frames(1)
	assert.False(t, p.grabbable.BeingHeld())
	assert.Equal(t, 1, p.log.released)

	s.frames(5)
	assert.Equal(t, 1, p.log.released)
	assert.Nil(t, left.grabber.HeldGrabbable)
}

func TestDropRestoresFlags(t *testing.T) {
	for _, mode := range []GrabPhysics{PhysicsNone, PhysicsKinematic, PhysicsVelocity, PhysicsJoint, PhysicsFixedJoint} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newSandbox()
			left := s.hand(input.Left, rl.Vector3{})
			p := s.prop("crate", rl.Vector3{Z: 0.05}, func(p *testProp) {
				p.body.UseGravity = true
				p.body.Interpolation = physics.InterpolationExtrapolate
				p.grabbable.GrabPhysics = mode
			})
			orig := p.body.Flags()

			left.grabber.ForceGrab(p.grabbable)
			require.True(t, p.grabbable.BeingHeld())
			s.ticks(2)
			if mode == PhysicsJoint || mode == PhysicsFixedJoint {
				assert.Equal(t, 1, s.world.Joints())
				assert.NotNil(t, p.grabbable.Joint())
			}

			p.grabbable.DropItem(left.grabber, true, true)
			assert.Equal(t, orig, p.body.Flags())
			assert.Zero(t, s.world.Joints())
			assert.Equal(t, PhysicsNone, p.grabbable.ActivePhysics())
		})
	}
}

func TestForceDisableKinematicOnDrop(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.body.IsKinematic = true
		p.grabbable.ForceDisableKinematicOnDrop = true
	})
	orig := p.body.Flags()

	left.grabber.ForceGrab(p.grabbable)
	p.grabbable.DropItem(left.grabber, false, true)

	want := orig
	want.Kinematic = false
	assert.Equal(t, want, p.body.Flags())
}

func TestDropIsIdempotent(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	right := s.hand(input.Right, rl.Vector3{X: 2})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, nil)

	p.grabbable.DropItem(left.grabber, true, true)
	p.grabbable.ReleaseAll()
	assert.Zero(t, p.log.released)

	left.grabber.ForceGrab(p.grabbable)
	p.grabbable.DropItem(right.grabber, true, true)
	assert.True(t, p.grabbable.BeingHeld(), "dropping from a non-holder is a no-op")

	p.grabbable.DropItem(left.grabber, true, true)
	p.grabbable.DropItem(left.grabber, true, true)
	assert.Equal(t, 1, p.log.released)
	assertHoldConsistent(t, p.grabbable)
}

func TestGrabDropRestoresParent(t *testing.T) {
	s := newSandbox()
	shelf := engine.NewGameObject("shelf")
	shelf.Transform.Position = rl.Vector3{Y: 1}
	left := s.hand(input.Left, rl.Vector3{Y: 1})
	p := s.prop("cup", rl.Vector3{Z: 0.05}, func(p *testProp) {
		shelf.AddChild(p.obj)
		p.grabbable.GrabPhysics = PhysicsKinematic
	})

	left.grabber.ForceGrab(p.grabbable)
	assert.Same(t, left.obj, p.obj.Parent)
	s.ticks(3)

	before := p.obj.WorldPosition()
	p.grabbable.DropItem(left.grabber, false, true)
	assert.Same(t, shelf, p.obj.Parent)
	after := p.obj.WorldPosition()
	assert.InDelta(t, before.X, after.X, 1e-4)
	assert.InDelta(t, before.Y, after.Y, 1e-4)
	assert.InDelta(t, before.Z, after.Z, 1e-4)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, p.obj.Transform.Scale)
}

func TestDropKeepsParentWhenAsked(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("cup", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.GrabPhysics = PhysicsKinematic
	})

	left.grabber.ForceGrab(p.grabbable)
	p.grabbable.DropItem(left.grabber, false, false)
	assert.Same(t, left.obj, p.obj.Parent)
}

func TestClosestGrabPointIsDeterministic(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{Z: 0.3})
	var a, b *GrabPoint
	p := s.prop("pistol", rl.Vector3{}, func(p *testProp) {
		// b is listed first and lies as close as a, but at a worse angle
		bObj := engine.NewGameObject("b")
		bObj.Transform.Position = rl.Vector3{X: -0.1}
		bObj.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, 90*rl.Deg2rad)
		b = NewGrabPoint()
		bObj.AddComponent(b)
		p.obj.AddChild(bObj)

		aObj := engine.NewGameObject("a")
		aObj.Transform.Position = rl.Vector3{X: 0.1}
		a = NewGrabPoint()
		aObj.AddComponent(a)
		p.obj.AddChild(aObj)
	})
	require.Len(t, p.grabbable.GrabPoints, 2)

	for i := 0; i < 5; i++ {
		assert.Same(t, a, p.grabbable.GetClosestGrabPoint(left.grabber))
	}

	a.LeftHandIsValid = false
	assert.Same(t, b, p.grabbable.GetClosestGrabPoint(left.grabber))

	b.MaxDegreeDifferenceAllowed = 45
	assert.Nil(t, p.grabbable.GetClosestGrabPoint(left.grabber))

	a.LeftHandIsValid = true
	left.grabber.ForceGrab(p.grabbable)
	assert.Same(t, a, p.grabbable.ActiveGrabPoint())
}

func TestSnapGrabPlacesGrabPointOnHand(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{Y: 1})
	p := s.prop("tool", rl.Vector3{Y: 1, Z: 0.05}, func(p *testProp) {
		handle := engine.NewGameObject("handle")
		handle.Transform.Position = rl.Vector3{X: 0.1}
		handle.AddComponent(NewGrabPoint())
		p.obj.AddChild(handle)
		p.grabbable.GrabPhysics = PhysicsKinematic
		p.grabbable.GrabSpeed = 1000
	})

	left.grabber.ForceGrab(p.grabbable)
	s.ticks(1)

	handle := p.grabbable.ActiveGrabPoint().GetGameObject()
	got := handle.WorldPosition()
	assert.InDelta(t, 0, got.X, 1e-3)
	assert.InDelta(t, 1, got.Y, 1e-3)
	assert.InDelta(t, 0, got.Z, 1e-3)
}

func TestPreciseGrabKeepsOffset(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("plank", rl.Vector3{X: 0.08}, func(p *testProp) {
		p.grabbable.GrabMechanic = GrabPrecise
		p.grabbable.GrabPhysics = PhysicsKinematic
	})

	left.grabber.ForceGrab(p.grabbable)
	s.ticks(5)
	assert.InDelta(t, 0.08, p.obj.WorldPosition().X, 1e-4)
}

func TestNonFiniteThrowIsDiscarded(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	left.tracker.UseDeviceVelocity = true
	p := s.prop("ball", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.GrabPhysics = PhysicsKinematic
	})

	inf := float32(math.Inf(1))
	s.input.SetDeviceVelocity(input.Left, rl.Vector3{X: inf}, rl.Vector3{})
	left.grabber.ForceGrab(p.grabbable)
	s.ticks(3)

	p.body.Velocity = rl.Vector3{Y: 1}
	p.grabbable.DropItem(left.grabber, true, true)
	assert.False(t, p.grabbable.BeingHeld())
	assert.Equal(t, rl.Vector3{Y: 1}, p.body.GetVelocity())
	assert.Equal(t, rl.Vector3{}, p.body.GetAngularVelocity())
}

func newTwoHanded(t *testing.T, drop TwoHandedDropMechanic) (*sandbox, *testHand, *testHand, *testProp) {
	t.Helper()
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	right := s.hand(input.Right, rl.Vector3{X: 0.2})
	p := s.prop("rifle", rl.Vector3{X: 0.1}, func(p *testProp) {
		p.grabbable.SecondaryGrabBehavior = OtherGrabDualGrab
		p.grabbable.TwoHandedDropBehavior = drop
	})
	left.grabber.ForceGrab(p.grabbable)
	right.grabber.ForceGrab(p.grabbable)
	require.True(t, p.grabbable.BeingHeldWithTwoHands())
	require.Same(t, right.grabber, p.grabbable.GetSecondaryGrabber())
	require.Equal(t, []string{"grab:left", "secondary-grab:right"}, p.log.events)
	return s, left, right, p
}

func TestTwoHandedDropReleasesBoth(t *testing.T) {
	_, left, right, p := newTwoHanded(t, TwoHandedDrop)

	p.grabbable.DropItem(left.grabber, false, true)
	assert.False(t, p.grabbable.BeingHeld())
	assert.Nil(t, right.grabber.HeldGrabbable)
	assert.Equal(t, []string{"grab:left", "secondary-grab:right", "secondary-release:right", "release"}, p.log.events)
}

func TestTwoHandedTransferRegrabs(t *testing.T) {
	_, left, right, p := newTwoHanded(t, TwoHandedTransfer)

	p.grabbable.DropItem(left.grabber, false, true)
	assert.Same(t, right.grabber, p.grabbable.GetPrimaryGrabber())
	assert.Len(t, p.grabbable.HeldBy(), 1)
	assert.Nil(t, left.grabber.HeldGrabbable)
	assert.Equal(t, []string{"grab:left", "secondary-grab:right", "secondary-release:right", "release", "grab:right"}, p.log.events)
	assertHoldConsistent(t, p.grabbable)
}

func TestTwoHandedNonePromotesSilently(t *testing.T) {
	_, left, right, p := newTwoHanded(t, TwoHandedNone)

	released := 0
	left.grabber.Released.AddListener(func(*Grabbable) { released++ })

	p.grabbable.DropItem(left.grabber, false, true)
	assert.Same(t, right.grabber, p.grabbable.GetPrimaryGrabber())
	assert.Len(t, p.grabbable.HeldBy(), 1)
	assert.Nil(t, left.grabber.HeldGrabbable)
	assert.Equal(t, 1, released)
	assert.Equal(t, []string{"grab:left", "secondary-grab:right"}, p.log.events)
	assertHoldConsistent(t, p.grabbable)
}

func TestSecondaryDropKeepsPrimary(t *testing.T) {
	_, left, right, p := newTwoHanded(t, TwoHandedDrop)

	p.grabbable.DropItem(right.grabber, true, true)
	assert.Same(t, left.grabber, p.grabbable.GetPrimaryGrabber())
	assert.False(t, p.grabbable.BeingHeldWithTwoHands())
	assert.Nil(t, right.grabber.HeldGrabbable)
	assert.Zero(t, p.log.released)
}

func TestTwoHandedTargetPose(t *testing.T) {
	_, _, right, p := newTwoHanded(t, TwoHandedDrop)
	p.grabbable.TwoHandedPosition = TwoHandedPositionLerp
	p.grabbable.TwoHandedPositionLerpAmount = 0.5

	target := p.grabbable.targetPose()
	assert.InDelta(t, 0.05, target.Position.X, 1e-4, "halfway between both hands' targets")

	p.grabbable.TwoHandedPosition = TwoHandedPositionNone
	p.grabbable.TwoHandedRotation = TwoHandedLookAtSecondary
	assert.InDelta(t, 0, engine.QuaternionAngle(rl.QuaternionIdentity(), p.grabbable.targetPose().Rotation), 0.5)

	// Swinging the secondary hand a quarter turn around the primary turns the object with it
	right.obj.Transform.Position = rl.Vector3{Z: 0.2}
	assert.InDelta(t, 90, engine.QuaternionAngle(rl.QuaternionIdentity(), p.grabbable.targetPose().Rotation), 0.5)
}

func TestOtherGrabNoneForcesRelease(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	right := s.hand(input.Right, rl.Vector3{X: 0.1})
	p := s.prop("crate", rl.Vector3{X: 0.05}, func(p *testProp) {
		p.grabbable.SecondaryGrabBehavior = OtherGrabNone
	})

	left.grabber.ForceGrab(p.grabbable)
	right.trigger.AddNear(p.box, p.grabbable)
	right.trigger.Resolve()
	assert.Nil(t, right.trigger.ClosestGrabbable, "held objects are not candidates for other hands")

	right.grabber.ForceGrab(p.grabbable)
	assert.Same(t, right.grabber, p.grabbable.GetPrimaryGrabber())
	assert.Len(t, p.grabbable.HeldBy(), 1)
	assert.Nil(t, left.grabber.HeldGrabbable)
}

func TestGrabbingAnotherObjectDropsTheFirst(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	a := s.prop("a", rl.Vector3{Z: 0.05}, nil)
	b := s.prop("b", rl.Vector3{Z: -0.05}, nil)

	left.grabber.ForceGrab(a.grabbable)
	left.grabber.ForceGrab(b.grabbable)
	assert.False(t, a.grabbable.BeingHeld())
	assert.Same(t, b.grabbable, left.grabber.HeldGrabbable)
}

func TestLocomotionPinsHeldObjects(t *testing.T) {
	s := newSandbox()
	root := engine.NewGameObject("rig")
	s.scene.AddGameObject(root)
	left := s.hand(input.Left, rl.Vector3{})
	left.obj.SetParent(root, true)
	p := s.prop("crate", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.BreakDistance = 0.5
	})

	left.grabber.ForceGrab(p.grabbable)
	s.ticks(1)
	offset := rl.Vector3Subtract(p.obj.WorldPosition(), left.obj.WorldPosition())

	rig := locomotion.NewRig(root, s.bus)
	rig.TeleportTo(rl.Vector3{X: 5}, 0)
	require.True(t, p.grabbable.BeingHeld())
	assert.False(t, p.grabbable.IsLocked())
	got := rl.Vector3Subtract(p.obj.WorldPosition(), left.obj.WorldPosition())
	assert.InDelta(t, offset.X, got.X, 1e-4)
	assert.InDelta(t, offset.Z, got.Z, 1e-4)
	assert.Equal(t, rl.Vector3{}, p.body.GetVelocity())

	// Right after a teleport a lagging object is not dropped
	p.obj.SetWorldPosition(rl.Vector3{X: -5})
	s.ticks(1)
	assert.True(t, p.grabbable.BeingHeld())

	s.ticks(12)
	assert.False(t, p.grabbable.BeingHeld(), "break distance applies again after the grace period")
}

func TestLockFreezesDuringMovement(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, nil)
	left.grabber.ForceGrab(p.grabbable)

	s.bus.Before.Invoke(locomotion.NewMovement(locomotion.SmoothMove))
	require.True(t, p.grabbable.IsLocked())

	left.obj.Transform.Position = rl.Vector3{X: 1}
	s.ticks(1)
	assert.InDelta(t, 1, p.obj.WorldPosition().X, 1e-4, "locked objects follow the holder rigidly")

	s.bus.After.Invoke(locomotion.NewMovement(locomotion.SmoothMove))
	assert.False(t, p.grabbable.IsLocked())
}

func TestDestroyReleasesAndUnsubscribes(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, nil)
	require.Equal(t, 1, s.bus.Before.GetListenerCount())

	left.grabber.ForceGrab(p.grabbable)
	s.scene.Destroy(p.obj)

	assert.Nil(t, left.grabber.HeldGrabbable)
	assert.False(t, p.grabbable.BeingHeld())
	assert.Zero(t, s.bus.Before.GetListenerCount())
	assert.Zero(t, s.bus.After.GetListenerCount())
}

func TestDisabledObjectIsReleased(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, nil)
	left.grabber.ForceGrab(p.grabbable)

	p.grabbable.Enabled = false
	s.ticks(1)
	assert.False(t, p.grabbable.BeingHeld())
	assert.Nil(t, left.grabber.HeldGrabbable)
}

func TestOtherGrabbableMustBeGrabbed(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	right := s.hand(input.Right, rl.Vector3{X: 1})
	stock := s.prop("stock", rl.Vector3{X: 1}, nil)
	slide := s.prop("slide", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.OtherGrabbableMustBeGrabbed = stock.grabbable
	})

	right.grabber.ForceGrab(stock.grabbable)
	left.grabber.ForceGrab(slide.grabbable)
	s.ticks(1)
	require.True(t, slide.grabbable.BeingHeld())

	stock.grabbable.DropItem(right.grabber, false, true)
	s.ticks(1)
	assert.False(t, slide.grabbable.BeingHeld())
}

func TestCollisionSetResetsEveryTick(t *testing.T) {
	g := NewGrabbable(nil)
	obj := engine.NewGameObject("crate")
	obj.AddComponent(g)
	obj.Start()
	wall := physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})

	g.OnCollisionEnter(physics.Collision{OtherCollider: wall})
	g.OnCollisionStay(physics.Collision{OtherCollider: wall})
	assert.Empty(t, g.Collisions(), "reports become current on the next tick")

	g.FixedUpdate(tick)
	assert.Equal(t, []physics.Collider{wall}, g.Collisions())

	g.FixedUpdate(tick)
	assert.Empty(t, g.Collisions())
}

func TestCollisionsSnapshotIsStable(t *testing.T) {
	g := NewGrabbable(nil)
	obj := engine.NewGameObject("crate")
	obj.AddComponent(g)
	obj.Start()
	wall := physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	floor := physics.NewBoxCollider(rl.Vector3{X: 5, Y: 0.1, Z: 5})

	g.OnCollisionEnter(physics.Collision{OtherCollider: wall})
	g.FixedUpdate(tick)
	got := g.Collisions()

	// Later ticks recycle the internal buffers
	g.FixedUpdate(tick)
	g.OnCollisionEnter(physics.Collision{OtherCollider: floor})
	g.FixedUpdate(tick)

	assert.Equal(t, []physics.Collider{wall}, got)
	assert.Equal(t, []physics.Collider{floor}, g.Collisions())
}

func TestJointSoftensOnContact(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.GrabPhysics = PhysicsJoint
	})
	wall := physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})

	left.grabber.ForceGrab(p.grabbable)
	s.ticks(1)
	j := p.grabbable.Joint()
	require.NotNil(t, j)
	assert.Equal(t, float32(600), j.LinearDrive().Spring)

	p.grabbable.OnCollisionEnter(physics.Collision{OtherCollider: wall})
	s.ticks(1)
	assert.Equal(t, float32(150), j.LinearDrive().Spring)
	assert.Equal(t, float32(25), j.LinearDrive().Damper)

	s.ticks(1)
	assert.Equal(t, float32(600), j.LinearDrive().Spring)
}

func TestGrabWithoutBodyMovesTransform(t *testing.T) {
	s := newSandbox()
	left := s.hand(input.Left, rl.Vector3{})
	obj := engine.NewGameObject("feather")
	obj.Transform.Position = rl.Vector3{Z: 0.05}
	g := NewGrabbable(s.svc)
	obj.AddComponent(g)
	s.spawn(obj)

	left.grabber.ForceGrab(g)
	assert.Equal(t, PhysicsKinematic, g.ActivePhysics())
	assert.Same(t, left.obj, obj.Parent)
}

func TestJointFallsBackWithoutBackend(t *testing.T) {
	s := newSandbox()
	s.svc.Physics = nil
	left := s.hand(input.Left, rl.Vector3{})
	p := s.prop("crate", rl.Vector3{Z: 0.05}, func(p *testProp) {
		p.grabbable.GrabPhysics = PhysicsFixedJoint
	})

	left.grabber.ForceGrab(p.grabbable)
	assert.Equal(t, PhysicsVelocity, p.grabbable.ActivePhysics())
	assert.Nil(t, p.grabbable.Joint())
}
