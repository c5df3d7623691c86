package grab

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	// remoteArrival is the distance at which a flying object attaches.
	remoteArrival = 0.002
	// remoteNear is where linear flight doubles its speed.
	remoteNear = 0.1
)

// GrabRemoteItem starts flying the object toward grabber. It attaches with
// GrabItem on arrival. A hand that is already holding something is refused,
// and any other object flying to it is cancelled.
func (g *Grabbable) GrabRemoteItem(grabber *Grabber) {
	if grabber == nil || g.BeingHeld() || !g.IsGrabbable() || grabber.HeldGrabbable != nil {
		return
	}
	g.capture()
	if g.remoteFlying {
		if g.flyingTo == grabber {
			return
		}
		g.CancelRemoteGrab()
	}
	if flyer := grabber.flying; flyer != nil && flyer != g {
		flyer.CancelRemoteGrab()
	}

	g.remoteFlying = true
	g.flyingTo = grabber
	g.flightStart = g.Now()
	grabber.setFlying(g)

	if g.body != nil {
		flags := g.originalFlags
		switch g.RemoteGrabMechanic {
		case RemoteLinear:
			flags.Kinematic = true
		case RemoteVelocity:
			flags.Kinematic = false
			flags.UseGravity = false
		case RemoteFlick:
			flags.Kinematic = false
			flags.UseGravity = true
		}
		g.body.SetFlags(flags)
		g.body.SetVelocity(rl.Vector3{})
		g.body.SetAngularVelocity(rl.Vector3{})

		if g.RemoteGrabMechanic == RemoteFlick {
			g.body.SetVelocity(g.flickVelocity(grabber))
		}
	}

	g.svc.logger().Debug("remote grab started",
		zap.String("object", g.GetGameObject().Name),
		zap.Stringer("hand", grabber.Hand),
		zap.Stringer("movement", g.RemoteGrabMechanic))
}

// flickVelocity solves the launch velocity that reaches the hand after
// FlickTime seconds under gravity.
func (g *Grabbable) flickVelocity(grabber *Grabber) rl.Vector3 {
	t := g.FlickTime
	if t <= 0 {
		t = 0.5
	}
	d := rl.Vector3Subtract(g.remoteTarget(grabber).Position, g.GetGameObject().WorldPosition())
	return rl.Vector3Subtract(rl.Vector3Scale(d, 1/t), rl.Vector3Scale(g.svc.gravity(), t/2))
}

// remoteTarget is the pose the object will be held at once it arrives.
func (g *Grabbable) remoteTarget(grabber *Grabber) engine.Pose {
	offset, _ := g.holdOffset(grabber)
	return grabber.GetGameObject().WorldPose().Mul(offset)
}

// CancelRemoteGrab stops a flight and restores the body.
func (g *Grabbable) CancelRemoteGrab() {
	if !g.remoteFlying {
		return
	}
	g.endFlight()
	if g.body != nil {
		g.body.SetFlags(g.originalFlags)
	}
}

func (g *Grabbable) endFlight() {
	if g.flyingTo != nil {
		g.flyingTo.clearFlying(g)
	}
	g.remoteFlying = false
	g.flyingTo = nil
}

func (g *Grabbable) updateRemote(deltaTime float32) {
	grabber := g.flyingTo
	if grabber == nil || !g.IsGrabbable() || grabber.GetGameObject().Destroyed() {
		g.CancelRemoteGrab()
		return
	}
	obj := g.GetGameObject()
	target := g.remoteTarget(grabber)
	dist := rl.Vector3Distance(obj.WorldPosition(), target.Position)

	switch g.RemoteGrabMechanic {
	case RemoteLinear:
		speed := g.GrabSpeed
		if dist < remoteNear {
			speed *= 2
		}
		step := speed * deltaTime
		obj.SetWorldPosition(engine.MoveTowards(obj.WorldPosition(), target.Position, step))
		if dist > 0 {
			obj.SetWorldRotation(rl.QuaternionSlerp(obj.WorldRotation(), target.Rotation, engine.Clamp01(step/dist)))
		}
		dist = rl.Vector3Distance(obj.WorldPosition(), target.Position)
		if dist < remoteArrival {
			g.GrabItem(grabber)
		}

	case RemoteVelocity:
		if dist < remoteArrival {
			g.GrabItem(grabber)
			return
		}
		if g.body == nil {
			obj.SetWorldPosition(engine.MoveTowards(obj.WorldPosition(), target.Position, g.GrabSpeed*deltaTime))
			return
		}
		closing := rl.Vector3Scale(rl.Vector3Subtract(target.Position, obj.WorldPosition()), g.RemoteVelocityGain)
		// Never overshoot the target within one tick
		closing = engine.ClampMagnitude(closing, dist/deltaTime)
		g.body.SetVelocity(engine.ClampMagnitude(closing, g.MaxLinearSpeed))

	case RemoteFlick:
		if dist <= g.FlickCatchDistance {
			g.GrabItem(grabber)
			return
		}
		if g.Now()-g.flightStart > 2*g.FlickTime {
			g.svc.logger().Debug("flick missed", zap.String("object", obj.Name))
			g.CancelRemoteGrab()
		}
	}
}
