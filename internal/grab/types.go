package grab

import (
	"fmt"
	"strings"
)

// GrabButton selects which input begins and ends a grab.
type GrabButton int

const (
	ButtonGrip GrabButton = iota
	ButtonTrigger
	// ButtonInherit defers to the grabber's default.
	ButtonInherit
)

var grabButtonNames = []string{"grip", "trigger", "inherit"}

func (b GrabButton) String() string { return enumName(grabButtonNames, int(b)) }

func ParseGrabButton(s string) (GrabButton, error) {
	i, err := parseEnum("grab button", grabButtonNames, s)
	return GrabButton(i), err
}

// HoldType selects how input keeps an object held.
type HoldType int

const (
	// HoldDown keeps the object while the button stays past the grip threshold.
	HoldDown HoldType = iota
	// Toggle grabs on one press and releases on the next.
	Toggle
	HoldInherit
)

var holdTypeNames = []string{"hold-down", "toggle", "inherit"}

func (h HoldType) String() string { return enumName(holdTypeNames, int(h)) }

func ParseHoldType(s string) (HoldType, error) {
	i, err := parseEnum("hold type", holdTypeNames, s)
	return HoldType(i), err
}

// GrabPhysics is the strategy that drives a held object toward its holder.
type GrabPhysics int

const (
	PhysicsNone GrabPhysics = iota
	PhysicsKinematic
	PhysicsVelocity
	PhysicsJoint
	PhysicsFixedJoint
)

var grabPhysicsNames = []string{"none", "kinematic", "velocity", "physics-joint", "fixed-joint"}

func (p GrabPhysics) String() string { return enumName(grabPhysicsNames, int(p)) }

func ParseGrabPhysics(s string) (GrabPhysics, error) {
	i, err := parseEnum("grab physics", grabPhysicsNames, s)
	return GrabPhysics(i), err
}

// GrabType selects whether the object snaps to a grab point or keeps the
// relative pose it had when grabbed.
type GrabType int

const (
	GrabSnap GrabType = iota
	GrabPrecise
)

var grabTypeNames = []string{"snap", "precise"}

func (t GrabType) String() string { return enumName(grabTypeNames, int(t)) }

func ParseGrabType(s string) (GrabType, error) {
	i, err := parseEnum("grab type", grabTypeNames, s)
	return GrabType(i), err
}

// RemoteGrabMovement is the motion profile used to bring a remote object to the hand.
type RemoteGrabMovement int

const (
	RemoteLinear RemoteGrabMovement = iota
	RemoteVelocity
	RemoteFlick
)

var remoteMovementNames = []string{"linear", "velocity", "flick"}

func (m RemoteGrabMovement) String() string { return enumName(remoteMovementNames, int(m)) }

func ParseRemoteGrabMovement(s string) (RemoteGrabMovement, error) {
	i, err := parseEnum("remote grab movement", remoteMovementNames, s)
	return RemoteGrabMovement(i), err
}

// OtherGrabBehavior decides what happens when a second hand grabs a held object.
type OtherGrabBehavior int

const (
	OtherGrabNone OtherGrabBehavior = iota
	OtherGrabSwapHands
	OtherGrabDualGrab
)

var otherGrabNames = []string{"none", "swap-hands", "dual-grab"}

func (b OtherGrabBehavior) String() string { return enumName(otherGrabNames, int(b)) }

func ParseOtherGrabBehavior(s string) (OtherGrabBehavior, error) {
	i, err := parseEnum("secondary grab behavior", otherGrabNames, s)
	return OtherGrabBehavior(i), err
}

// TwoHandedDropMechanic decides what the secondary hand does when the primary lets go.
type TwoHandedDropMechanic int

const (
	TwoHandedDrop TwoHandedDropMechanic = iota
	TwoHandedTransfer
	TwoHandedNone
)

var twoHandedDropNames = []string{"drop", "transfer", "none"}

func (m TwoHandedDropMechanic) String() string { return enumName(twoHandedDropNames, int(m)) }

func ParseTwoHandedDropMechanic(s string) (TwoHandedDropMechanic, error) {
	i, err := parseEnum("two handed drop", twoHandedDropNames, s)
	return TwoHandedDropMechanic(i), err
}

type TwoHandedRotation int

const (
	TwoHandedRotationNone TwoHandedRotation = iota
	// TwoHandedLookAtSecondary turns the object so its forward follows the secondary hand.
	TwoHandedLookAtSecondary
)

var twoHandedRotationNames = []string{"none", "look-at-secondary"}

func (r TwoHandedRotation) String() string { return enumName(twoHandedRotationNames, int(r)) }

func ParseTwoHandedRotation(s string) (TwoHandedRotation, error) {
	i, err := parseEnum("two handed rotation", twoHandedRotationNames, s)
	return TwoHandedRotation(i), err
}

type TwoHandedPosition int

const (
	TwoHandedPositionNone TwoHandedPosition = iota
	// TwoHandedPositionLerp places the object between both hands.
	TwoHandedPositionLerp
)

var twoHandedPositionNames = []string{"none", "lerp"}

func (p TwoHandedPosition) String() string { return enumName(twoHandedPositionNames, int(p)) }

func ParseTwoHandedPosition(s string) (TwoHandedPosition, error) {
	i, err := parseEnum("two handed position", twoHandedPositionNames, s)
	return TwoHandedPosition(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}
