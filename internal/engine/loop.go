package engine

// Stepper advances a simulation by one fixed tick, e.g. the physics world.
type Stepper interface {
	Step(deltaTime float32)
}

// Loop drives a Scene with the two engine clocks: a fixed-rate tick for
// physics-facing work and a variable-rate frame tick for input and bookkeeping.
type Loop struct {
	Scene     *Scene
	Physics   Stepper
	FixedStep float32

	// MaxSteps caps fixed ticks per frame so a long frame cannot spiral.
	MaxSteps int

	// EndFrame runs after the frame tick, e.g. to latch input edges.
	EndFrame func()

	accumulator float32
	steps       uint64
}

func NewLoop(scene *Scene, physics Stepper, fixedStep float32) *Loop {
	if fixedStep <= 0 {
		fixedStep = 1.0 / 50.0
	}
	return &Loop{
		Scene:     scene,
		Physics:   physics,
		FixedStep: fixedStep,
		MaxSteps:  8,
	}
}

// Frame advances the simulation by deltaTime: zero or more fixed ticks
// followed by one frame tick.
func (l *Loop) Frame(deltaTime float32) {
	l.accumulator += deltaTime
	n := 0
	for l.accumulator >= l.FixedStep && n < l.MaxSteps {
		l.FixedTick()
		l.accumulator -= l.FixedStep
		n++
	}
	if n == l.MaxSteps {
		l.accumulator = 0
	}
	l.Scene.Update(deltaTime)
	if l.EndFrame != nil {
		l.EndFrame()
	}
}

// FixedTick runs exactly one fixed tick: components first, then physics.
func (l *Loop) FixedTick() {
	l.Scene.FixedUpdate(l.FixedStep)
	if l.Physics != nil {
		l.Physics.Step(l.FixedStep)
	}
	l.Scene.Tick(l.FixedStep)
	l.steps++
}

// Steps returns the number of fixed ticks run so far.
func (l *Loop) Steps() uint64 {
	return l.steps
}
