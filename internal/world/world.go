// Package world is a headless grab sandbox: a scene, physics world, player
// rig with two hands and scripted input, stepped by the fixed-rate loop.
package world

import (
	"fmt"

	"vrgrab/internal/config"
	"vrgrab/internal/engine"
	"vrgrab/internal/grab"
	"vrgrab/internal/input"
	"vrgrab/internal/locomotion"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	FloorSize = 20.0
	// HandRadius is the reach sphere around each controller.
	HandRadius = 0.1
)

// Hand is one controller and the grab components attached to it.
type Hand struct {
	Object  *engine.GameObject
	Body    *physics.Rigidbody
	Tracker *grab.VelocityTracker
	Trigger *grab.GrabbablesInTrigger
	Grabber *grab.Grabber
}

type World struct {
	Scene    *engine.Scene
	Physics  *physics.World
	Loop     *engine.Loop
	Input    *input.State
	Haptics  *input.Recorder
	Bus      *locomotion.Bus
	Rig      *locomotion.Rig
	Services *grab.Services
	Log      *zap.Logger

	Left  *Hand
	Right *Hand

	cfg   *config.Config
	props map[string]*grab.Grabbable
	zones map[string]*grab.SnapZone
}

// New builds an empty sandbox with both hands from cfg. A nil logger discards output.
func New(cfg *config.Config, log *zap.Logger) (*World, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	scene := engine.NewScene("Sandbox")
	phys := physics.NewWorld(log.Named("physics"))
	g := cfg.Physics.Gravity
	phys.Gravity = rl.Vector3{X: g[0], Y: g[1], Z: g[2]}

	loop := engine.NewLoop(scene, phys, cfg.Physics.FixedStep)
	loop.MaxSteps = cfg.Physics.MaxSteps
	in := input.NewState()
	loop.EndFrame = in.EndFrame

	bus := locomotion.NewBus()
	w := &World{
		Scene:   scene,
		Physics: phys,
		Loop:    loop,
		Input:   in,
		Haptics: &input.Recorder{},
		Bus:     bus,
		Log:     log,
		cfg:     cfg,
		props:   make(map[string]*grab.Grabbable),
		zones:   make(map[string]*grab.SnapZone),
	}
	w.Services = &grab.Services{
		Physics:    phys,
		Input:      in,
		Haptics:    w.Haptics,
		Locomotion: bus,
		Gravity:    phys.Gravity,
		Log:        log.Named("grab"),
	}

	w.createFloor()

	root := engine.NewGameObject("PlayerRig")
	w.Rig = locomotion.NewRig(root, bus)

	var err error
	if w.Left, err = w.createHand(root, input.Left, rl.Vector3{X: -0.2, Y: 1.2, Z: 0.3}); err != nil {
		return nil, err
	}
	if w.Right, err = w.createHand(root, input.Right, rl.Vector3{X: 0.2, Y: 1.2, Z: 0.3}); err != nil {
		return nil, err
	}
	w.spawn(root)

	log.Info("sandbox ready",
		zap.Float32("fixed_step", cfg.Physics.FixedStep),
		zap.Int("max_steps", cfg.Physics.MaxSteps))
	return w, nil
}

func (w *World) createFloor() {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.1}
	floor.AddComponent(physics.NewBoxCollider(rl.Vector3{X: FloorSize, Y: 0.2, Z: FloorSize}))
	w.spawn(floor)
}

func (w *World) createHand(root *engine.GameObject, side input.Hand, local rl.Vector3) (*Hand, error) {
	obj := engine.NewGameObject(side.String() + "Hand")
	obj.Transform.Position = local

	// Kinematic so trigger callbacks pair with static scenery too
	body := physics.NewRigidbody()
	body.IsKinematic = true
	body.UseGravity = false
	reach := physics.NewSphereCollider(HandRadius)
	reach.IsTrigger = true

	tracker := grab.NewVelocityTracker(side)
	tracker.Input = w.Input
	grab.ApplyTrackerConfig(tracker, w.cfg.Tracker)

	trigger := grab.NewGrabbablesInTrigger(w.Services)
	grab.ApplyTriggerConfig(trigger, w.cfg.Remote)

	grabber := grab.NewGrabber(side, w.Services)
	if err := grab.ApplyGrabberConfig(grabber, w.cfg.Grabber); err != nil {
		return nil, fmt.Errorf("%s hand: %w", side, err)
	}

	obj.AddComponent(body)
	obj.AddComponent(reach)
	obj.AddComponent(tracker)
	obj.AddComponent(trigger)
	obj.AddComponent(grabber)

	if w.cfg.Remote.Enabled {
		obj.AddChild(w.createRemoteReach(trigger))
	}
	root.AddChild(obj)

	log := w.Log.With(zap.Stringer("hand", side))
	grabber.Grabbed.AddListener(func(g *grab.Grabbable) {
		log.Info("grabbed", zap.String("object", g.GetGameObject().Name))
	})
	grabber.Released.AddListener(func(g *grab.Grabbable) {
		log.Info("released", zap.String("object", g.GetGameObject().Name))
	})

	return &Hand{Object: obj, Body: body, Tracker: tracker, Trigger: trigger, Grabber: grabber}, nil
}

// createRemoteReach builds the volume in front of a hand that feeds remote candidates.
func (w *World) createRemoteReach(trigger *grab.GrabbablesInTrigger) *engine.GameObject {
	d := w.cfg.Remote.Distance
	obj := engine.NewGameObject("RemoteReach")
	obj.Transform.Position = rl.Vector3{Z: d / 2}

	body := physics.NewRigidbody()
	body.IsKinematic = true
	body.UseGravity = false
	volume := physics.NewBoxCollider(rl.Vector3{X: d, Y: d, Z: d})
	volume.IsTrigger = true

	obj.AddComponent(body)
	obj.AddComponent(volume)
	obj.AddComponent(grab.NewRemoteGrabDetector(trigger))
	return obj
}

// spawn registers obj and its children with the scene and physics and starts them.
func (w *World) spawn(obj *engine.GameObject) {
	w.Scene.AddGameObject(obj)
	w.Physics.Add(obj)
	start(obj)
}

func start(obj *engine.GameObject) {
	obj.Start()
	for _, c := range obj.Children {
		start(c)
	}
}

// Destroy removes obj from the scene and the physics world.
func (w *World) Destroy(obj *engine.GameObject) {
	w.Scene.Destroy(obj)
	w.Physics.Remove(obj)
	for name, g := range w.props {
		if g.GetGameObject() == obj {
			delete(w.props, name)
		}
	}
}

// Hand returns the hand for side.
func (w *World) Hand(side input.Hand) *Hand {
	if side == input.Left {
		return w.Left
	}
	return w.Right
}

// MoveHand places a controller at local, relative to the rig root.
func (w *World) MoveHand(side input.Hand, local rl.Vector3) {
	w.Hand(side).Object.Transform.Position = local
}

// PointHand places a controller at a world position, aimed at target.
func (w *World) PointHand(side input.Hand, position, target rl.Vector3) {
	obj := w.Hand(side).Object
	obj.SetWorldPosition(position)
	obj.SetWorldRotation(engine.LookRotation(rl.Vector3Subtract(target, position), rl.Vector3{Y: 1}))
}

// Frame runs one frame of the configured frame time.
func (w *World) Frame() {
	w.Loop.Frame(w.cfg.Sim.FrameTime)
}

// Run runs n frames.
func (w *World) Run(n int) {
	for i := 0; i < n; i++ {
		w.Frame()
	}
}

// RunUntil runs frames until done reports true or max frames elapse, and
// reports whether done was reached.
func (w *World) RunUntil(max int, done func() bool) bool {
	for i := 0; i < max; i++ {
		if done() {
			return true
		}
		w.Frame()
	}
	return done()
}

// Time returns the scene clock.
func (w *World) Time() float32 {
	return w.Scene.Time
}
