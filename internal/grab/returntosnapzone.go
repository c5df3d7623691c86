package grab

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ReturnToSnapZone flies its Grabbable back to SnapZone after it has been
// left alone for ReturnDelay seconds.
type ReturnToSnapZone struct {
	engine.BaseComponent

	SnapZone    *SnapZone
	ReturnDelay float32
	// Speed is the return flight speed in units per second.
	Speed float32
	// SnapDistance is how close the item must get before the zone takes it.
	SnapDistance float32
}

func NewReturnToSnapZone(zone *SnapZone) *ReturnToSnapZone {
	return &ReturnToSnapZone{SnapZone: zone, ReturnDelay: 0.5, Speed: 10, SnapDistance: 0.05}
}

func (r *ReturnToSnapZone) Update(deltaTime float32) {
	g := engine.GetComponent[*Grabbable](r.GetGameObject())
	if g == nil || r.SnapZone == nil || g.BeingHeld() || g.IsRemoteFlying() || r.SnapZone.HeldItem == g {
		return
	}
	if r.Now()-g.LastDropTime() < r.ReturnDelay {
		return
	}
	if r.SnapZone.HeldItem != nil && !r.SnapZone.CanSwapItem {
		return
	}

	obj := r.GetGameObject()
	dest := r.SnapZone.GetGameObject().WorldPose()
	if body := g.Body(); body != nil {
		body.SetVelocity(rl.Vector3{})
		body.SetAngularVelocity(rl.Vector3{})
	}
	dist := rl.Vector3Distance(obj.WorldPosition(), dest.Position)
	step := r.Speed * deltaTime
	obj.SetWorldPosition(engine.MoveTowards(obj.WorldPosition(), dest.Position, step))
	if dist > 0 {
		obj.SetWorldRotation(rl.QuaternionSlerp(obj.WorldRotation(), dest.Rotation, engine.Clamp01(step/dist)))
	}

	if rl.Vector3Distance(obj.WorldPosition(), dest.Position) <= r.SnapDistance {
		r.SnapZone.GrabGrabbable(g)
	}
}
