package physics

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// joint is the World's Joint implementation.
type joint struct {
	spec           JointSpec
	rotationTarget rl.Quaternion
	overrideRot    bool
	destroyed      bool
}

func (j *joint) Kind() JointKind               { return j.spec.Kind }
func (j *joint) Body() Body                    { return j.spec.Body }
func (j *joint) Connected() *engine.GameObject { return j.spec.Connected }
func (j *joint) Anchor() engine.Pose           { return j.spec.Anchor }
func (j *joint) SetAnchor(p engine.Pose)       { j.spec.Anchor = p }
func (j *joint) SetLinearDrive(d JointDrive)   { j.spec.LinearDrive = d }
func (j *joint) SetAngularDrive(d JointDrive)  { j.spec.AngularDrive = d }
func (j *joint) LinearDrive() JointDrive       { return j.spec.LinearDrive }
func (j *joint) AngularDrive() JointDrive      { return j.spec.AngularDrive }
func (j *joint) Destroyed() bool               { return j.destroyed }

func (j *joint) SetRotationTarget(q rl.Quaternion, enabled bool) {
	j.rotationTarget = q
	j.overrideRot = enabled
}

func (j *joint) TargetPose() engine.Pose {
	target := j.spec.Anchor
	if j.spec.Connected != nil {
		target = j.spec.Connected.WorldPose().Mul(j.spec.Anchor)
	}
	if j.overrideRot {
		target.Rotation = j.rotationTarget
	}
	return target
}

// drive applies the joint's correction to its body's velocities for one tick.
func (j *joint) drive(deltaTime float32) {
	rb, ok := j.spec.Body.(*Rigidbody)
	if !ok || rb.IsKinematic || deltaTime <= 0 {
		return
	}
	obj := rb.GetGameObject()
	if obj == nil {
		return
	}
	target := j.TargetPose()
	posErr := rl.Vector3Subtract(target.Position, obj.WorldPosition())
	rotErr := engine.RotationDelta(obj.WorldRotation(), target.Rotation)
	rb.Wake()

	switch j.spec.Kind {
	case JointFixed:
		rb.Velocity = rl.Vector3Scale(posErr, 1/deltaTime)
		rb.AngularVelocity = rl.Vector3Scale(rotErr, 1/deltaTime)
	default:
		mass := rb.GetMass()
		rb.Velocity = springStep(rb.Velocity, posErr, j.spec.LinearDrive, mass, deltaTime)
		rb.AngularVelocity = springStep(rb.AngularVelocity, rotErr, j.spec.AngularDrive, mass, deltaTime)
	}
}

// springStep integrates a damped spring on velocity v toward zero error.
func springStep(v, err rl.Vector3, d JointDrive, mass, deltaTime float32) rl.Vector3 {
	force := rl.Vector3Subtract(rl.Vector3Scale(err, d.Spring), rl.Vector3Scale(v, d.Damper))
	if d.MaxForce > 0 {
		force = engine.ClampMagnitude(force, d.MaxForce)
	}
	next := rl.Vector3Add(v, rl.Vector3Scale(force, deltaTime/mass))

	// Never move past the target in a single step
	return engine.ClampMagnitude(next, rl.Vector3Length(err)/deltaTime)
}
