package physics

import (
	"vrgrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec - below this, object might sleep
	SleepAngularThreshold  = 0.05 // rad/sec - below this, object might sleep
	SleepTimeThreshold     = 0.5  // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // radians per second about world axes
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // 0 = ice, 1 = stops immediately
	Drag            float32 // linear damping per second
	AngularDamping  float32 // fraction of spin kept per 1/60 s
	UseGravity      bool
	IsKinematic     bool // moves but doesn't get pushed by physics
	Interpolation   Interpolation
	CollisionMode   CollisionMode

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32 // time spent below velocity threshold
	CanSleep   bool    // whether this object can sleep (default true)
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:           1.0,
		Bounciness:     0.2,
		Friction:       0.1,
		AngularDamping: 0.98, // slight damping each frame
		UseGravity:     true,
		CanSleep:       true,
	}
}

func (r *Rigidbody) GetVelocity() rl.Vector3 { return r.Velocity }

func (r *Rigidbody) SetVelocity(v rl.Vector3) {
	r.Velocity = v
	r.Wake()
}

func (r *Rigidbody) GetAngularVelocity() rl.Vector3 { return r.AngularVelocity }

func (r *Rigidbody) SetAngularVelocity(w rl.Vector3) {
	r.AngularVelocity = w
	r.Wake()
}

func (r *Rigidbody) Flags() BodyFlags {
	return BodyFlags{
		Kinematic:     r.IsKinematic,
		UseGravity:    r.UseGravity,
		Interpolation: r.Interpolation,
		CollisionMode: r.CollisionMode,
	}
}

func (r *Rigidbody) SetFlags(f BodyFlags) {
	r.IsKinematic = f.Kinematic
	r.UseGravity = f.UseGravity
	r.Interpolation = f.Interpolation
	r.CollisionMode = f.CollisionMode
	r.Wake()
}

func (r *Rigidbody) SetKinematic(kinematic bool) {
	r.IsKinematic = kinematic
	r.Wake()
}

func (r *Rigidbody) SetUseGravity(useGravity bool) {
	r.UseGravity = useGravity
	r.Wake()
}

func (r *Rigidbody) GetMass() float32 {
	if r.Mass <= 0 {
		return 1
	}
	return r.Mass
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	angSpeed := rl.Vector3Length(r.AngularVelocity)

	if speed < SleepVelocityThreshold && angSpeed < SleepAngularThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
			r.AngularVelocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
