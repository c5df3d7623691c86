package grab

import (
	"vrgrab/internal/engine"
	"vrgrab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// VelocityTracker samples its object's pose every physics tick and keeps a
// rolling window of linear and angular velocities.
type VelocityTracker struct {
	engine.BaseComponent

	Hand input.Hand

	// Input, when set with UseDeviceVelocity, supplies hardware tracked
	// velocities. Zero readings fall back to the computed ones.
	Input             input.Source
	UseDeviceVelocity bool
	SampleCount       int

	velocity        rl.Vector3
	angularVelocity rl.Vector3
	linearSamples   []rl.Vector3
	angularSamples  []rl.Vector3

	lastPosition rl.Vector3
	lastRotation rl.Quaternion
	hasLast      bool
}

func NewVelocityTracker(hand input.Hand) *VelocityTracker {
	return &VelocityTracker{Hand: hand, SampleCount: 3}
}

func (v *VelocityTracker) FixedUpdate(deltaTime float32) {
	obj := v.GetGameObject()
	if obj == nil || deltaTime <= 0 {
		return
	}
	pos := obj.WorldPosition()
	rot := obj.WorldRotation()

	if v.hasLast {
		v.velocity = rl.Vector3Scale(rl.Vector3Subtract(pos, v.lastPosition), 1/deltaTime)
		v.angularVelocity = rl.Vector3Scale(engine.RotationDelta(v.lastRotation, rot), 1/deltaTime)
	}
	v.lastPosition = pos
	v.lastRotation = rot
	v.hasLast = true

	v.linearSamples = pushSample(v.linearSamples, v.Velocity(), v.SampleCount)
	v.angularSamples = pushSample(v.angularSamples, v.AngularVelocity(), v.SampleCount)
}

func pushSample(samples []rl.Vector3, s rl.Vector3, limit int) []rl.Vector3 {
	if limit < 1 {
		limit = 1
	}
	samples = append(samples, s)
	if len(samples) > limit {
		samples = samples[len(samples)-limit:]
	}
	return samples
}

// Velocity returns the instantaneous linear velocity.
func (v *VelocityTracker) Velocity() rl.Vector3 {
	if v.UseDeviceVelocity && v.Input != nil {
		if d := v.Input.DeviceVelocity(v.Hand); d != (rl.Vector3{}) {
			return d
		}
	}
	return v.velocity
}

// AngularVelocity returns the instantaneous angular velocity in radians per second.
func (v *VelocityTracker) AngularVelocity() rl.Vector3 {
	if v.UseDeviceVelocity && v.Input != nil {
		if d := v.Input.DeviceAngularVelocity(v.Hand); d != (rl.Vector3{}) {
			return d
		}
	}
	return v.angularVelocity
}

// AveragedVelocity is the mean of the sample window, or the instantaneous
// reading before any sample exists.
func (v *VelocityTracker) AveragedVelocity() rl.Vector3 {
	if len(v.linearSamples) == 0 {
		return v.Velocity()
	}
	return mean(v.linearSamples)
}

func (v *VelocityTracker) AveragedAngularVelocity() rl.Vector3 {
	if len(v.angularSamples) == 0 {
		return v.AngularVelocity()
	}
	return mean(v.angularSamples)
}

// Samples returns how many readings the window holds.
func (v *VelocityTracker) Samples() int {
	return len(v.linearSamples)
}

// Reset clears the window, e.g. after the tracked object was teleported.
func (v *VelocityTracker) Reset() {
	v.linearSamples = v.linearSamples[:0]
	v.angularSamples = v.angularSamples[:0]
	v.velocity = rl.Vector3{}
	v.angularVelocity = rl.Vector3{}
	v.hasLast = false
}

func mean(samples []rl.Vector3) rl.Vector3 {
	var sum rl.Vector3
	for _, s := range samples {
		sum = rl.Vector3Add(sum, s)
	}
	return rl.Vector3Scale(sum, 1/float32(len(samples)))
}
