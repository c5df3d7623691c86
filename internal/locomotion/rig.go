package locomotion

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rig moves the player root through the bus so held objects stay attached.
type Rig struct {
	Root *engine.GameObject
	Bus  *Bus
}

func NewRig(root *engine.GameObject, bus *Bus) *Rig {
	return &Rig{Root: root, Bus: bus}
}

// TeleportTo places the rig at position facing yaw degrees about +Y.
func (r *Rig) TeleportTo(position rl.Vector3, yaw float32) {
	r.Bus.Do(NewMovement(Teleport), func() {
		r.Root.Transform.Position = position
		r.Root.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, yaw*rl.Deg2rad)
	})
}

// Move translates the rig by delta in world space.
func (r *Rig) Move(delta rl.Vector3) {
	r.Bus.Do(NewMovement(SmoothMove), func() {
		r.Root.Transform.Position = rl.Vector3Add(r.Root.Transform.Position, delta)
	})
}

// SnapTurn rotates the rig by degrees about +Y around its origin.
func (r *Rig) SnapTurn(degrees float32) {
	r.Bus.Do(NewMovement(Rotate), func() {
		turn := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, degrees*rl.Deg2rad)
		r.Root.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(turn, r.Root.Transform.Rotation))
	})
}
