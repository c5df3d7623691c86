package grab

import (
	"fmt"

	"vrgrab/internal/config"
)

// ApplyGrabberConfig copies hand input settings onto g.
func ApplyGrabberConfig(g *Grabber, c config.GrabberConfig) error {
	button, err := ParseGrabButton(c.GrabButton)
	if err != nil {
		return fmt.Errorf("grabber.grab_button: %w", err)
	}
	hold, err := ParseHoldType(c.HoldType)
	if err != nil {
		return fmt.Errorf("grabber.hold_type: %w", err)
	}
	g.DefaultGrabButton = button
	g.DefaultHoldType = hold
	g.GripThreshold = c.GripThreshold
	g.ReleaseThreshold = c.ReleaseThreshold
	g.GrabGraceWindow = c.GrabGraceWindow
	g.FlickMinAngularSpeed = c.FlickMinAngularSpeed
	return nil
}

// ApplyTrackerConfig copies sampling settings onto v.
func ApplyTrackerConfig(v *VelocityTracker, c config.TrackerConfig) {
	v.SampleCount = c.SampleCount
	v.UseDeviceVelocity = c.UseDeviceVelocity
}

// ApplyGrabbableConfig copies holding and remote settings onto g. Nothing is
// changed when any enum name is unknown.
func ApplyGrabbableConfig(g *Grabbable, c config.GrabbableConfig, r config.RemoteConfig) error {
	physics, err := ParseGrabPhysics(c.GrabPhysics)
	if err != nil {
		return fmt.Errorf("grabbable.grab_physics: %w", err)
	}
	mechanic, err := ParseGrabType(c.GrabMechanic)
	if err != nil {
		return fmt.Errorf("grabbable.grab_mechanic: %w", err)
	}
	secondary, err := ParseOtherGrabBehavior(c.SecondaryGrabBehavior)
	if err != nil {
		return fmt.Errorf("grabbable.secondary_grab_behavior: %w", err)
	}
	drop, err := ParseTwoHandedDropMechanic(c.TwoHandedDrop)
	if err != nil {
		return fmt.Errorf("grabbable.two_handed_drop: %w", err)
	}
	rotation, err := ParseTwoHandedRotation(c.TwoHandedRotation)
	if err != nil {
		return fmt.Errorf("grabbable.two_handed_rotation: %w", err)
	}
	position, err := ParseTwoHandedPosition(c.TwoHandedPosition)
	if err != nil {
		return fmt.Errorf("grabbable.two_handed_position: %w", err)
	}
	movement, err := ParseRemoteGrabMovement(r.Movement)
	if err != nil {
		return fmt.Errorf("remote.movement: %w", err)
	}

	g.GrabPhysics = physics
	g.GrabMechanic = mechanic
	g.SecondaryGrabBehavior = secondary
	g.TwoHandedDropBehavior = drop
	g.TwoHandedRotation = rotation
	g.TwoHandedPosition = position
	g.ParentToHands = c.ParentToHands
	g.GrabSpeed = c.GrabSpeed
	g.ThrowForceMultiplier = c.ThrowForceMultiplier
	g.ThrowForceMultiplierAngular = c.ThrowForceMultiplierAngular
	g.BreakDistance = c.BreakDistance
	g.Spring = c.Spring
	g.Damper = c.Damper
	g.CollisionSpring = c.CollisionSpring
	g.CollisionDamper = c.CollisionDamper
	g.MaxLinearSpeed = c.MaxLinearSpeed
	g.MaxVelocityChange = c.MaxVelocityChange
	g.MaxAngularSpeed = c.MaxAngularSpeed
	g.MaxAngularVelocityChange = c.MaxAngularVelocityChange

	g.RemoteGrabbable = r.Enabled
	g.RemoteGrabMechanic = movement
	g.RemoteGrabDistance = r.Distance
	g.RemoteVelocityGain = r.VelocityGain
	g.FlickTime = r.FlickTime
	g.FlickCatchDistance = r.FlickCatchDistance
	return nil
}

// ApplyTriggerConfig copies line-of-sight settings onto t.
func ApplyTriggerConfig(t *GrabbablesInTrigger, r config.RemoteConfig) {
	t.RaycastRemoteGrabbables = r.LineOfSight
}
