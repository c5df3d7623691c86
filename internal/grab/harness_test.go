package grab

import (
	"testing"

	"vrgrab/internal/engine"
	"vrgrab/internal/input"
	"vrgrab/internal/locomotion"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

const tick = float32(0.02)

// sandbox is a scene, physics world and scripted input wired like a session.
type sandbox struct {
	scene   *engine.Scene
	world   *physics.World
	loop    *engine.Loop
	input   *input.State
	haptics *input.Recorder
	bus     *locomotion.Bus
	svc     *Services
}

func newSandbox() *sandbox {
	scene := engine.NewScene("test")
	world := physics.NewWorld(nil)
	in := input.NewState()
	rec := &input.Recorder{}
	bus := locomotion.NewBus()
	loop := engine.NewLoop(scene, world, tick)
	loop.EndFrame = in.EndFrame
	return &sandbox{
		scene:   scene,
		world:   world,
		loop:    loop,
		input:   in,
		haptics: rec,
		bus:     bus,
		svc: &Services{
			Physics:    world,
			Input:      in,
			Haptics:    rec,
			Locomotion: bus,
		},
	}
}

// spawn registers obj with the scene and world and starts it.
func (s *sandbox) spawn(obj *engine.GameObject) {
	s.scene.AddGameObject(obj)
	s.world.Add(obj)
	start(obj)
}

func start(obj *engine.GameObject) {
	obj.Start()
	for _, c := range obj.Children {
		start(c)
	}
}

// frames runs n frames of one fixed tick each.
func (s *sandbox) frames(n int) {
	for i := 0; i < n; i++ {
		s.loop.Frame(tick)
	}
}

// ticks runs n fixed ticks without the frame update, so no input is read.
func (s *sandbox) ticks(n int) {
	for i := 0; i < n; i++ {
		s.loop.FixedTick()
	}
}

type testHand struct {
	obj     *engine.GameObject
	body    *physics.Rigidbody
	sphere  *physics.SphereCollider
	tracker *VelocityTracker
	trigger *GrabbablesInTrigger
	grabber *Grabber
}

func (s *sandbox) hand(h input.Hand, pos rl.Vector3) *testHand {
	obj := engine.NewGameObject(h.String() + "Hand")
	obj.Transform.Position = pos

	body := physics.NewRigidbody()
	body.IsKinematic = true
	body.UseGravity = false
	sphere := physics.NewSphereCollider(0.1)
	sphere.IsTrigger = true
	tracker := NewVelocityTracker(h)
	tracker.Input = s.input
	trigger := NewGrabbablesInTrigger(s.svc)
	grabber := NewGrabber(h, s.svc)

	obj.AddComponent(body)
	obj.AddComponent(sphere)
	obj.AddComponent(tracker)
	obj.AddComponent(trigger)
	obj.AddComponent(grabber)
	s.spawn(obj)

	return &testHand{obj: obj, body: body, sphere: sphere, tracker: tracker, trigger: trigger, grabber: grabber}
}

type testProp struct {
	obj       *engine.GameObject
	body      *physics.Rigidbody
	box       *physics.BoxCollider
	grabbable *Grabbable
	log       *hookLog
}

// prop builds a floating 0.2 m box. configure runs before Start.
func (s *sandbox) prop(name string, pos rl.Vector3, configure func(p *testProp)) *testProp {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	body := physics.NewRigidbody()
	body.UseGravity = false
	body.CanSleep = false
	p := &testProp{
		obj:       obj,
		body:      body,
		box:       physics.NewBoxCollider(rl.Vector3{X: 0.2, Y: 0.2, Z: 0.2}),
		grabbable: NewGrabbable(s.svc),
		log:       &hookLog{},
	}
	obj.AddComponent(body)
	obj.AddComponent(p.box)
	obj.AddComponent(p.grabbable)
	obj.AddComponent(p.log)
	if configure != nil {
		configure(p)
	}
	s.spawn(obj)
	return p
}

// hookLog records hook calls in order.
type hookLog struct {
	engine.BaseComponent
	BaseGrabbableEvents

	events   []string
	grips    []float32
	released int
}

func (h *hookLog) add(e string) { h.events = append(h.events, e) }

func (h *hookLog) OnGrab(g *Grabber) { h.add("grab:" + g.Hand.String()) }
func (h *hookLog) OnRelease()        { h.released++; h.add("release") }

func (h *hookLog) OnSecondaryGrab(g *Grabber)    { h.add("secondary-grab:" + g.Hand.String()) }
func (h *hookLog) OnSecondaryRelease(g *Grabber) { h.add("secondary-release:" + g.Hand.String()) }

func (h *hookLog) OnBecomesClosestGrabbable(g *Grabber)  { h.add("closest:" + g.Hand.String()) }
func (h *hookLog) OnNoLongerClosestGrabbable(g *Grabber) { h.add("not-closest:" + g.Hand.String()) }

func (h *hookLog) OnBecomesClosestRemoteGrabbable(g *Grabber) {
	h.add("closest-remote:" + g.Hand.String())
}

func (h *hookLog) OnGrip(v float32) { h.grips = append(h.grips, v) }
func (h *hookLog) OnTriggerDown()   { h.add("trigger-down") }
func (h *hookLog) OnTriggerUp()     { h.add("trigger-up") }
func (h *hookLog) OnButton1Down()   { h.add("button1-down") }
func (h *hookLog) OnSnapZoneEnter() { h.add("zone-enter") }
func (h *hookLog) OnSnapZoneExit()  { h.add("zone-exit") }

func (h *hookLog) count(e string) int {
	n := 0
	for _, x := range h.events {
		if x == e {
			n++
		}
	}
	return n
}

// assertHoldConsistent checks that holder bookkeeping agrees on both sides.
func assertHoldConsistent(t *testing.T, g *Grabbable) {
	t.Helper()
	assert.Equal(t, len(g.HeldBy()) > 0, g.BeingHeld())
	assert.LessOrEqual(t, len(g.HeldBy()), 2)
	for _, h := range g.HeldBy() {
		assert.Same(t, g, h.HeldGrabbable, "holder %s does not point back", h.Hand)
	}
}
