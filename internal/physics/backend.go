// Package physics defines the rigid-body contract the grab core drives and a
// small reference back-end implementing it: rigid bodies, box and sphere
// colliders, spring and fixed joints, contact/trigger callbacks and raycasts.
package physics

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interpolation selects how a body's rendered pose is smoothed between ticks.
type Interpolation int

const (
	InterpolationNone Interpolation = iota
	InterpolationInterpolate
	InterpolationExtrapolate
)

// CollisionMode selects the collision detection quality of a body.
type CollisionMode int

const (
	CollisionDiscrete CollisionMode = iota
	CollisionContinuous
	CollisionContinuousDynamic
	CollisionContinuousSpeculative
)

// BodyFlags is the restorable configuration of a body. Capturing and
// re-applying it as one value keeps drop-restore exact.
type BodyFlags struct {
	Kinematic     bool
	UseGravity    bool
	Interpolation Interpolation
	CollisionMode CollisionMode
}

// Body is a simulated rigid body attached to a GameObject.
type Body interface {
	engine.Component
	GetVelocity() rl.Vector3
	SetVelocity(v rl.Vector3)
	// GetAngularVelocity is in radians per second about world axes.
	GetAngularVelocity() rl.Vector3
	SetAngularVelocity(w rl.Vector3)
	Flags() BodyFlags
	SetFlags(f BodyFlags)
	SetKinematic(kinematic bool)
	SetUseGravity(useGravity bool)
	GetMass() float32
	Wake()
}

// JointKind selects how a joint pulls its body toward the target pose.
type JointKind int

const (
	// JointSpring is a configurable joint with spring/damper drives.
	JointSpring JointKind = iota
	// JointFixed rigidly matches the target pose every tick.
	JointFixed
)

func (k JointKind) String() string {
	switch k {
	case JointSpring:
		return "spring"
	case JointFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// JointDrive parameterises one axis group of a spring joint.
type JointDrive struct {
	Spring   float32
	Damper   float32
	MaxForce float32 // 0 means unlimited
}

// JointSpec describes a joint to create. The target pose each tick is
// Connected's world pose composed with Anchor.
type JointSpec struct {
	Kind         JointKind
	Body         Body
	Connected    *engine.GameObject
	Anchor       engine.Pose
	LinearDrive  JointDrive
	AngularDrive JointDrive
}

// Joint is a live connection owned by whoever created it.
type Joint interface {
	Kind() JointKind
	Body() Body
	Connected() *engine.GameObject
	Anchor() engine.Pose
	SetAnchor(p engine.Pose)
	SetLinearDrive(d JointDrive)
	SetAngularDrive(d JointDrive)
	LinearDrive() JointDrive
	AngularDrive() JointDrive
	// SetRotationTarget overrides the anchor-derived target rotation. Pass
	// enabled=false to go back to following the anchor.
	SetRotationTarget(q rl.Quaternion, enabled bool)
	// TargetPose returns the pose the joint currently drives toward.
	TargetPose() engine.Pose
	Destroyed() bool
}

// Hit is the result of a ray or line cast.
type Hit struct {
	Collider   Collider
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Backend is the physics service the grab core depends on.
type Backend interface {
	CreateJoint(spec JointSpec) Joint
	DestroyJoint(j Joint)
	// Linecast returns the first non-trigger collider between from and to,
	// skipping colliders under ignore's hierarchy.
	Linecast(from, to rl.Vector3, ignore *engine.GameObject) (Hit, bool)
	IgnoreCollision(a, b Collider, ignore bool)
}
