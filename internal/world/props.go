package world

import (
	"fmt"
	"maps"
	"slices"

	"vrgrab/internal/engine"
	"vrgrab/internal/grab"
	"vrgrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// PropSpec describes a grabbable box. Zero Size and Mass take defaults.
type PropSpec struct {
	Name     string
	Position rl.Vector3
	Size     rl.Vector3
	Mass     float32
	Floating bool

	// GrabPoints are local attach positions; none means the object origin.
	GrabPoints []rl.Vector3

	// Configure adjusts the grabbable after the configured defaults are applied.
	Configure func(g *grab.Grabbable)
}

// AddProp spawns a grabbable box configured from the sandbox settings.
func (w *World) AddProp(spec PropSpec) (*grab.Grabbable, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("prop needs a name")
	}
	if _, ok := w.props[spec.Name]; ok {
		return nil, fmt.Errorf("prop %q already exists", spec.Name)
	}
	if spec.Size == (rl.Vector3{}) {
		spec.Size = rl.Vector3{X: 0.2, Y: 0.2, Z: 0.2}
	}

	obj := engine.NewGameObject(spec.Name)
	obj.Transform.Position = spec.Position

	body := physics.NewRigidbody()
	if spec.Mass > 0 {
		body.Mass = spec.Mass
	}
	body.UseGravity = !spec.Floating

	g := grab.NewGrabbable(w.Services)
	if err := grab.ApplyGrabbableConfig(g, w.cfg.Grabbable, w.cfg.Remote); err != nil {
		return nil, fmt.Errorf("prop %q: %w", spec.Name, err)
	}

	obj.AddComponent(body)
	obj.AddComponent(physics.NewBoxCollider(spec.Size))
	obj.AddComponent(g)
	obj.AddComponent(grab.NewGrabbableHaptics(w.Services))

	for i, p := range spec.GrabPoints {
		point := engine.NewGameObject(fmt.Sprintf("%s_GrabPoint_%d", spec.Name, i))
		point.Transform.Position = p
		point.AddComponent(grab.NewGrabPoint())
		obj.AddChild(point)
	}

	if spec.Configure != nil {
		spec.Configure(g)
	}
	w.spawn(obj)
	w.props[spec.Name] = g

	w.Log.Debug("prop added",
		zap.String("object", spec.Name),
		zap.Stringer("physics", g.GrabPhysics),
		zap.Bool("remote", g.RemoteGrabbable))
	return g, nil
}

// Prop returns the grabbable named name, or nil.
func (w *World) Prop(name string) *grab.Grabbable {
	return w.props[name]
}

// AddSnapZone spawns a zone of the given size. configure runs before Start.
func (w *World) AddSnapZone(name string, position, size rl.Vector3, configure func(z *grab.SnapZone)) *grab.SnapZone {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = position

	body := physics.NewRigidbody()
	body.IsKinematic = true
	body.UseGravity = false
	volume := physics.NewBoxCollider(size)
	volume.IsTrigger = true
	zone := grab.NewSnapZone(w.Services)

	obj.AddComponent(body)
	obj.AddComponent(volume)
	obj.AddComponent(grab.NewGrabbablesInTrigger(w.Services))
	obj.AddComponent(zone)
	if configure != nil {
		configure(zone)
	}

	log := w.Log.With(zap.String("zone", name))
	zone.OnSnap.AddListener(func(g *grab.Grabbable) {
		log.Info("snapped", zap.String("object", g.GetGameObject().Name))
	})
	zone.OnDetach.AddListener(func(g *grab.Grabbable) {
		log.Info("detached", zap.String("object", g.GetGameObject().Name))
	})

	w.spawn(obj)
	w.zones[name] = zone
	return zone
}

// Zone returns the snap zone named name, or nil.
func (w *World) Zone(name string) *grab.SnapZone {
	return w.zones[name]
}

// Report logs where every prop is and who holds it.
func (w *World) Report() {
	for _, name := range slices.Sorted(maps.Keys(w.props)) {
		g := w.props[name]
		pos := g.GetGameObject().WorldPosition()
		holder := "none"
		if p := g.GetPrimaryGrabber(); p != nil {
			holder = p.Hand.String()
			if p.IsSnapZone() {
				holder = "snap-zone"
			}
		}
		w.Log.Info("prop",
			zap.String("object", name),
			zap.Float32("x", pos.X),
			zap.Float32("y", pos.Y),
			zap.Float32("z", pos.Z),
			zap.String("held_by", holder),
			zap.Bool("two_handed", g.BeingHeldWithTwoHands()))
	}
}
