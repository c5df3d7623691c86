package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is a rigid transform: rotation followed by translation.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

// IdentityPose is the pose with no translation and no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: rl.QuaternionIdentity()}
}

// Mul composes p with local, returning local expressed in p's parent frame.
func (p Pose) Mul(local Pose) Pose {
	return Pose{
		Position: p.TransformPoint(local.Position),
		Rotation: rl.QuaternionNormalize(rl.QuaternionMultiply(p.Rotation, local.Rotation)),
	}
}

// Inverse returns the pose that undoes p.
func (p Pose) Inverse() Pose {
	inv := rl.QuaternionInvert(p.Rotation)
	return Pose{
		Position: rl.Vector3RotateByQuaternion(rl.Vector3Negate(p.Position), inv),
		Rotation: inv,
	}
}

// TransformPoint maps a point from p's local frame into p's parent frame.
func (p Pose) TransformPoint(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(p.Position, rl.Vector3RotateByQuaternion(v, p.Rotation))
}

// RelativeTo returns p expressed in the local frame of frame.
func (p Pose) RelativeTo(frame Pose) Pose {
	return frame.Inverse().Mul(p)
}

// LerpPose interpolates position linearly and rotation spherically.
func LerpPose(a, b Pose, t float32) Pose {
	t = Clamp01(t)
	return Pose{
		Position: rl.Vector3Lerp(a.Position, b.Position, t),
		Rotation: rl.QuaternionSlerp(a.Rotation, b.Rotation, t),
	}
}

// Clamp01 restricts t to [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target rl.Vector3, maxDelta float32) rl.Vector3 {
	diff := rl.Vector3Subtract(target, current)
	dist := rl.Vector3Length(diff)
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return rl.Vector3Add(current, rl.Vector3Scale(diff, maxDelta/dist))
}

// ClampMagnitude shortens v to at most maxLength.
func ClampMagnitude(v rl.Vector3, maxLength float32) rl.Vector3 {
	l := rl.Vector3Length(v)
	if l <= maxLength || l == 0 {
		return v
	}
	return rl.Vector3Scale(v, maxLength/l)
}

// QuaternionAngle returns the angle in degrees between two rotations.
func QuaternionAngle(a, b rl.Quaternion) float32 {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		dot = -dot
	}
	if dot > 1 {
		dot = 1
	}
	return float32(2*math.Acos(float64(dot))) * rl.Rad2deg
}

// RotationDelta returns the rotation from a to b as an axis scaled by its angle in radians,
// taking the short way round.
func RotationDelta(from, to rl.Quaternion) rl.Vector3 {
	delta := rl.QuaternionNormalize(rl.QuaternionMultiply(to, rl.QuaternionInvert(from)))
	if delta.W < 0 {
		delta = rl.Quaternion{X: -delta.X, Y: -delta.Y, Z: -delta.Z, W: -delta.W}
	}
	sinHalf := float32(math.Sqrt(float64(delta.X*delta.X + delta.Y*delta.Y + delta.Z*delta.Z)))
	if sinHalf < 1e-6 {
		return rl.Vector3{}
	}
	angle := 2 * float32(math.Atan2(float64(sinHalf), float64(delta.W)))
	axis := rl.Vector3{X: delta.X / sinHalf, Y: delta.Y / sinHalf, Z: delta.Z / sinHalf}
	return rl.Vector3Scale(axis, angle)
}

// IntegrateRotation advances q by angular velocity w (rad/s about world axes) over dt.
func IntegrateRotation(q rl.Quaternion, w rl.Vector3, dt float32) rl.Quaternion {
	speed := rl.Vector3Length(w)
	if speed < 1e-6 {
		return q
	}
	step := rl.QuaternionFromAxisAngle(rl.Vector3Scale(w, 1/speed), speed*dt)
	return rl.QuaternionNormalize(rl.QuaternionMultiply(step, q))
}

// LookRotation builds a rotation whose +Z axis points along forward, with up as the hint.
func LookRotation(forward, up rl.Vector3) rl.Quaternion {
	f := rl.Vector3Normalize(forward)
	if rl.Vector3Length(f) < 1e-6 {
		return rl.QuaternionIdentity()
	}
	r := rl.Vector3CrossProduct(up, f)
	if rl.Vector3Length(r) < 1e-6 {
		// Forward parallel to up; pick any perpendicular right axis
		r = rl.Vector3CrossProduct(rl.Vector3{X: 1}, f)
		if rl.Vector3Length(r) < 1e-6 {
			r = rl.Vector3CrossProduct(rl.Vector3{Z: 1}, f)
		}
	}
	r = rl.Vector3Normalize(r)
	u := rl.Vector3CrossProduct(f, r)

	return basisToQuaternion(r, u, f)
}

// basisToQuaternion converts the orthonormal columns (right, up, forward) of a
// rotation matrix, branching on the largest diagonal term for stability.
func basisToQuaternion(r, u, f rl.Vector3) rl.Quaternion {
	var q rl.Quaternion
	trace := r.X + u.Y + f.Z
	switch {
	case trace > 0:
		s := 2 * float32(math.Sqrt(float64(trace+1)))
		q = rl.Quaternion{W: s / 4, X: (u.Z - f.Y) / s, Y: (f.X - r.Z) / s, Z: (r.Y - u.X) / s}
	case r.X > u.Y && r.X > f.Z:
		s := 2 * float32(math.Sqrt(float64(1+r.X-u.Y-f.Z)))
		q = rl.Quaternion{W: (u.Z - f.Y) / s, X: s / 4, Y: (u.X + r.Y) / s, Z: (f.X + r.Z) / s}
	case u.Y > f.Z:
		s := 2 * float32(math.Sqrt(float64(1+u.Y-r.X-f.Z)))
		q = rl.Quaternion{W: (f.X - r.Z) / s, X: (u.X + r.Y) / s, Y: s / 4, Z: (f.Y + u.Z) / s}
	default:
		s := 2 * float32(math.Sqrt(float64(1+f.Z-r.X-u.Y)))
		q = rl.Quaternion{W: (r.Y - u.X) / s, X: (f.X + r.Z) / s, Y: (f.Y + u.Z) / s, Z: s / 4}
	}
	return rl.QuaternionNormalize(q)
}

// IsFinite reports whether every component of v is a real number.
func IsFinite(v rl.Vector3) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
