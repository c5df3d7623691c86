// Stress test timing the reference physics world's broad-phase and step
// for growing numbers of falling boxes over a static floor.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"vrgrab/internal/engine"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const step = float32(1.0 / 50.0)

func main() {
	testCounts := []int{50, 100, 250, 500, 1000}

	for _, count := range testCounts {
		testStep(count)
	}
}

func testStep(count int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	w := physics.NewWorld(nil)

	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.5}
	floor.AddComponent(physics.NewBoxCollider(rl.Vector3{X: 200, Y: 1, Z: 200}))
	w.Add(floor)

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(10.0) + float32(count)/20.0
	for i := 0; i < count; i++ {
		obj := engine.NewGameObject(fmt.Sprintf("Box_%d", i))
		obj.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 1 + rng.Float32()*spawnSize,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		size := 0.5 + rng.Float32()*0.5
		obj.AddComponent(physics.NewRigidbody())
		obj.AddComponent(physics.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
		w.Add(obj)
	}

	// Warm up
	w.Step(step)

	const iterations = 50
	start := time.Now()
	for i := 0; i < iterations; i++ {
		w.Step(step)
	}
	perStep := time.Since(start) / iterations

	sleeping := 0
	for _, rb := range w.Bodies() {
		if rb.IsSleeping {
			sleeping++
		}
	}

	fmt.Printf("%5d bodies: %10v per step (%4d asleep, %.1f steps/frame budget at 90 Hz)\n",
		count, perStep.Round(time.Microsecond), sleeping,
		float64(time.Second/90)/float64(perStep))
}
