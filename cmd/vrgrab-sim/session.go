package main

import (
	"fmt"

	"go.uber.org/zap"

	"vrgrab/internal/grab"
	"vrgrab/internal/input"
	"vrgrab/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// step is one scripted action. budget is the frame limit for waits.
type step struct {
	name string
	run  func(w *world.World, budget int) error
}

func run(w *world.World, steps []step, budget int) error {
	for _, s := range steps {
		w.Log.Info("step", zap.String("name", s.name), zap.Float32("time", w.Time()))
		if err := s.run(w, budget); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func waitFor(w *world.World, budget int, what string, done func() bool) error {
	if !w.RunUntil(budget, done) {
		return fmt.Errorf("%s not reached after %d frames", what, budget)
	}
	return nil
}

// moveHand slides a hand to local over frames so the tracker sees the motion.
func moveHand(w *world.World, side input.Hand, local rl.Vector3, frames int) {
	start := w.Hand(side).Object.Transform.Position
	for i := 1; i <= frames; i++ {
		w.MoveHand(side, rl.Vector3Lerp(start, local, float32(i)/float32(frames)))
		w.Frame()
	}
}

func heldBy(g *grab.Grabbable, h *world.Hand) func() bool {
	return func() bool { return g.GetPrimaryGrabber() == h.Grabber }
}

func session() []step {
	var crate, ball, pistol *grab.Grabbable
	var holster *grab.SnapZone

	return []step{
		{"setup", func(w *world.World, _ int) error {
			var err error
			// Resting on the floor in front of the right hand
			if crate, err = w.AddProp(world.PropSpec{Name: "crate", Position: rl.Vector3{X: 0.2, Y: 0.1, Z: 0.4}, Mass: 2}); err != nil {
				return err
			}
			remote := rl.Vector3Add(w.Left.Object.WorldPosition(), rl.Vector3{Z: 1.2})
			if ball, err = w.AddProp(world.PropSpec{
				Name:     "ball",
				Position: remote,
				Size:     rl.Vector3{X: 0.15, Y: 0.15, Z: 0.15},
				Floating: true,
			}); err != nil {
				return err
			}
			if pistol, err = w.AddProp(world.PropSpec{
				Name:       "pistol",
				Position:   rl.Vector3{X: 0.6, Y: 1.2, Z: 0.35},
				Floating:   true,
				GrabPoints: []rl.Vector3{{Y: -0.05}},
				Configure: func(g *grab.Grabbable) {
					g.GrabPhysics = grab.PhysicsKinematic
					g.RemoteGrabbable = false
				},
			}); err != nil {
				return err
			}
			holster = w.AddSnapZone("holster", rl.Vector3{X: -0.3, Y: 0.9, Z: 0.1}, rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}, nil)
			w.Run(5)
			return nil
		}},
		{"pick up crate", func(w *world.World, budget int) error {
			moveHand(w, input.Right, rl.Vector3{X: 0.2, Y: 0.1, Z: 0.35}, 20)
			w.Input.SetGrip(input.Right, 1)
			if err := waitFor(w, budget, "crate grab", heldBy(crate, w.Right)); err != nil {
				return err
			}
			moveHand(w, input.Right, rl.Vector3{X: 0.2, Y: 1.2, Z: 0.3}, 45)
			return nil
		}},
		{"throw crate", func(w *world.World, budget int) error {
			w.Input.SetDeviceVelocity(input.Right, rl.Vector3{Y: 1, Z: 4}, rl.Vector3{X: 2})
			moveHand(w, input.Right, rl.Vector3{X: 0.2, Y: 1.3, Z: 0.6}, 6)
			w.Input.SetGrip(input.Right, 0)
			w.Frame()
			w.Input.SetDeviceVelocity(input.Right, rl.Vector3{}, rl.Vector3{})
			if crate.BeingHeld() {
				return fmt.Errorf("crate still held after release")
			}
			w.Log.Info("crate thrown", zap.Float32("speed", rl.Vector3Length(crate.Body().GetVelocity())))
			w.Run(budget / 2)
			return nil
		}},
		{"remote grab ball", func(w *world.World, budget int) error {
			if err := waitFor(w, budget, "ball in sight", func() bool {
				return w.Left.Trigger.ClosestRemoteGrabbable == ball
			}); err != nil {
				return err
			}
			w.Input.SetGrip(input.Left, 1)
			return waitFor(w, budget, "ball arrival", heldBy(ball, w.Left))
		}},
		{"holster ball", func(w *world.World, budget int) error {
			moveHand(w, input.Left, rl.Vector3{X: -0.3, Y: 0.9, Z: 0.1}, 30)
			w.Input.SetGrip(input.Left, 0)
			return waitFor(w, budget, "ball holstered", func() bool { return holster.HeldItem == ball })
		}},
		{"teleport with pistol", func(w *world.World, budget int) error {
			moveHand(w, input.Right, rl.Vector3{X: 0.6, Y: 1.2, Z: 0.3}, 20)
			w.Input.SetGrip(input.Right, 1)
			if err := waitFor(w, budget, "pistol grab", heldBy(pistol, w.Right)); err != nil {
				return err
			}
			w.Rig.TeleportTo(rl.Vector3{X: 3, Z: -2}, 90)
			w.Run(10)
			gap := rl.Vector3Distance(pistol.GetGameObject().WorldPosition(), w.Right.Object.WorldPosition())
			w.Log.Info("teleported", zap.Float32("pistol_gap", gap))
			if !pistol.BeingHeld() {
				return fmt.Errorf("pistol dropped during teleport")
			}
			w.Input.SetGrip(input.Right, 0)
			w.Run(2)
			return nil
		}},
	}
}
