// Package input is the controller-side boundary of the grab core: analog
// grip/trigger values, button edges, tracked device velocities and haptics.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

type Hand int

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	if h == Left {
		return Right
	}
	return Left
}

type Button int

const (
	ButtonGrip Button = iota
	ButtonTrigger
	Button1
	Button2
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonGrip:
		return "grip"
	case ButtonTrigger:
		return "trigger"
	case Button1:
		return "button1"
	case Button2:
		return "button2"
	default:
		return "unknown"
	}
}

// Source reports controller state for the current frame.
type Source interface {
	Grip(h Hand) float32
	Trigger(h Hand) float32
	Button(h Hand, b Button) bool
	ButtonDown(h Hand, b Button) bool
	ButtonUp(h Hand, b Button) bool
	// DeviceVelocity is the tracking system's reported linear velocity, zero if unknown.
	DeviceVelocity(h Hand) rl.Vector3
	// DeviceAngularVelocity is in radians per second, zero if unknown.
	DeviceAngularVelocity(h Hand) rl.Vector3
}

// Haptics accepts vibration requests.
type Haptics interface {
	Pulse(h Hand, frequency, amplitude, duration float32)
}
