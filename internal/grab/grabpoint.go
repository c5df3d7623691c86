package grab

import (
	"vrgrab/internal/engine"
	"vrgrab/internal/input"
)

// GrabPoint marks a hand attachment pose on a child of a Grabbable.
type GrabPoint struct {
	engine.BaseComponent

	LeftHandIsValid  bool
	RightHandIsValid bool

	// MaxDegreeDifferenceAllowed rejects approaches whose hand rotation differs
	// from the point by more than this. 360 means any approach is accepted.
	MaxDegreeDifferenceAllowed float32

	// HandPose names the pose the hand model should take here.
	HandPose string
}

func NewGrabPoint() *GrabPoint {
	return &GrabPoint{
		LeftHandIsValid:            true,
		RightHandIsValid:           true,
		MaxDegreeDifferenceAllowed: 360,
	}
}

// ValidFor reports whether hand h may use this point.
func (p *GrabPoint) ValidFor(h input.Hand) bool {
	if h == input.Left {
		return p.LeftHandIsValid
	}
	return p.RightHandIsValid
}

// AngleTo returns the rotation difference in degrees between the point and pose.
func (p *GrabPoint) AngleTo(pose engine.Pose) float32 {
	return engine.QuaternionAngle(p.GetGameObject().WorldRotation(), pose.Rotation)
}

func (p *GrabPoint) accepts(pose engine.Pose) bool {
	if p.MaxDegreeDifferenceAllowed >= 360 {
		return true
	}
	return p.AngleTo(pose) <= p.MaxDegreeDifferenceAllowed
}
