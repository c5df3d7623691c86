// Package locomotion moves the player rig and publishes the lock/unlock
// protocol held objects follow while the rig is displaced.
package locomotion

import "vrgrab/internal/engine"

type Kind int

const (
	Teleport Kind = iota
	SmoothMove
	Rotate
)

func (k Kind) String() string {
	switch k {
	case Teleport:
		return "teleport"
	case SmoothMove:
		return "smooth-move"
	case Rotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Movement describes one rig displacement.
type Movement struct {
	Kind Kind

	// LockRotation asks held objects to pin their rotation to the holder as well.
	LockRotation bool
}

// NewMovement returns the movement for kind with its default rotation lock.
func NewMovement(kind Kind) Movement {
	return Movement{Kind: kind, LockRotation: kind != SmoothMove}
}

// Bus carries the before/after notifications of one session. It is not
// shared between worlds.
type Bus struct {
	Before engine.EventWithArg[Movement]
	After  engine.EventWithArg[Movement]
}

func NewBus() *Bus {
	return &Bus{}
}

// Do fires Before, runs move, then fires After.
func (b *Bus) Do(m Movement, move func()) {
	b.Before.Invoke(m)
	if move != nil {
		move()
	}
	b.After.Invoke(m)
}
