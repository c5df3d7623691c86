package grab

import (
	"vrgrab/internal/engine"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// correctiveThreshold is the joint error beyond which velocity nudging kicks in.
const correctiveThreshold = 0.01

// setupPhysics configures the body and connection for the active strategy
// with holder as the primary.
func (g *Grabbable) setupPhysics(holder *Grabber) {
	obj := g.GetGameObject()
	if g.body == nil && g.active != PhysicsNone {
		// Without a body every strategy degrades to moving the transform
		g.active = PhysicsKinematic
	}

	if g.body != nil {
		flags := g.originalFlags
		flags.Interpolation = physics.InterpolationInterpolate
		flags.CollisionMode = physics.CollisionContinuousDynamic
		switch g.active {
		case PhysicsKinematic:
			flags.Kinematic = true
		case PhysicsVelocity, PhysicsJoint, PhysicsFixedJoint:
			flags.Kinematic = false
			flags.UseGravity = false
		}
		g.body.SetFlags(flags)
	}

	if g.active == PhysicsKinematic && (g.ParentToHands || holder.snapZone != nil) {
		obj.SetParent(holder.GetGameObject(), true)
	}

	if g.active == PhysicsJoint || g.active == PhysicsFixedJoint {
		g.createJoint(holder)
	}
}

func (g *Grabbable) createJoint(holder *Grabber) {
	backend := g.svc.Physics
	if backend == nil {
		// No back-end to own a joint; velocity drive is the closest match
		g.active = PhysicsVelocity
		return
	}
	kind := physics.JointSpring
	if g.active == PhysicsFixedJoint {
		kind = physics.JointFixed
	}
	drive := physics.JointDrive{Spring: g.Spring, Damper: g.Damper}
	g.joint = backend.CreateJoint(physics.JointSpec{
		Kind:         kind,
		Body:         g.body,
		Connected:    holder.GetGameObject(),
		Anchor:       g.primaryOffset,
		LinearDrive:  drive,
		AngularDrive: drive,
	})
}

func (g *Grabbable) teardownJoint() {
	if g.joint != nil {
		if g.svc.Physics != nil {
			g.svc.Physics.DestroyJoint(g.joint)
		}
		g.joint = nil
	}
}

// teardownPhysics undoes setupPhysics and restores the captured state.
func (g *Grabbable) teardownPhysics(resetParent bool) {
	g.teardownJoint()
	obj := g.GetGameObject()
	if resetParent && obj.Parent != g.originalParent {
		obj.SetParent(g.originalParent, true)
	}
	if g.body != nil {
		flags := g.originalFlags
		if g.ForceDisableKinematicOnDrop {
			flags.Kinematic = false
		}
		g.body.SetFlags(flags)
	}
	obj.Transform.Scale = g.OriginalScale
}

// advancePhysics moves the object toward its target with the active strategy.
func (g *Grabbable) advancePhysics(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	target := g.targetPose()

	switch g.active {
	case PhysicsKinematic:
		g.moveKinematic(target, deltaTime)
	case PhysicsVelocity:
		g.moveVelocity(target, deltaTime)
	case PhysicsJoint, PhysicsFixedJoint:
		g.moveJoint(target, deltaTime)
	}
}

func (g *Grabbable) moveKinematic(target engine.Pose, deltaTime float32) {
	obj := g.GetGameObject()
	t := engine.Clamp01(deltaTime * g.GrabSpeed)
	obj.SetWorldPose(engine.LerpPose(obj.WorldPose(), target, t))
}

// moveVelocity steers the body's velocities toward the target without
// teleporting it, so contacts can still resist it.
func (g *Grabbable) moveVelocity(target engine.Pose, deltaTime float32) {
	obj := g.GetGameObject()
	pose := obj.WorldPose()

	desired := rl.Vector3Scale(rl.Vector3Subtract(target.Position, pose.Position), 1/deltaTime)
	desired = engine.ClampMagnitude(desired, g.MaxLinearSpeed)
	g.body.SetVelocity(engine.MoveTowards(g.body.GetVelocity(), desired, g.MaxVelocityChange))

	desiredW := rl.Vector3Scale(engine.RotationDelta(pose.Rotation, target.Rotation), 1/deltaTime)
	desiredW = engine.ClampMagnitude(desiredW, g.MaxAngularSpeed)
	g.body.SetAngularVelocity(engine.MoveTowards(g.body.GetAngularVelocity(), desiredW, g.MaxAngularVelocityChange))
}

func (g *Grabbable) moveJoint(target engine.Pose, deltaTime float32) {
	if g.joint == nil || g.joint.Destroyed() {
		return
	}
	holder := g.GetPrimaryGrabber().GetGameObject().WorldPose()
	anchor := target.RelativeTo(holder)
	g.joint.SetAnchor(anchor)

	if g.active == PhysicsJoint {
		drive := physics.JointDrive{Spring: g.Spring, Damper: g.Damper}
		if len(g.collisions) > 0 {
			drive = physics.JointDrive{Spring: g.CollisionSpring, Damper: g.CollisionDamper}
		}
		g.joint.SetLinearDrive(drive)
		g.joint.SetAngularDrive(drive)
	}

	if g.BeingHeldWithTwoHands() && g.TwoHandedRotation == TwoHandedLookAtSecondary {
		g.joint.SetRotationTarget(target.Rotation, true)
	} else {
		g.joint.SetRotationTarget(rl.QuaternionIdentity(), false)
	}

	// Nudge toward the target when free but lagging behind it
	obj := g.GetGameObject()
	err := rl.Vector3Subtract(target.Position, obj.WorldPosition())
	if len(g.collisions) == 0 && rl.Vector3Length(err) > correctiveThreshold {
		desired := engine.ClampMagnitude(rl.Vector3Scale(err, 1/deltaTime), g.MaxLinearSpeed)
		g.body.SetVelocity(engine.MoveTowards(g.body.GetVelocity(), desired, g.MaxVelocityChange))
	}
}
