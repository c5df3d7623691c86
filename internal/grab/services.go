package grab

import (
	"vrgrab/internal/input"
	"vrgrab/internal/locomotion"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Services are the collaborators injected into grabbers and grabbables.
// Any of them may be nil; the features that need a missing one are skipped.
type Services struct {
	Physics    physics.Backend
	Input      input.Source
	Haptics    input.Haptics
	Locomotion *locomotion.Bus

	// Gravity is used to solve flick trajectories.
	Gravity rl.Vector3
	Log     *zap.Logger
}

func (s *Services) logger() *zap.Logger {
	if s == nil || s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Services) gravity() rl.Vector3 {
	if s == nil || (s.Gravity == rl.Vector3{}) {
		return rl.Vector3{Y: -9.81}
	}
	return s.Gravity
}
