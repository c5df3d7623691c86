package grab

import (
	"vrgrab/internal/engine"
	"vrgrab/internal/input"
)

// GrabbableHaptics pulses the holding hand's controller on grab, release
// and when the object becomes the closest target.
type GrabbableHaptics struct {
	engine.BaseComponent
	BaseGrabbableEvents
	svc *Services

	HapticsOnGrab          bool
	HapticsOnRelease       bool
	HapticsOnBecomeClosest bool

	Frequency float32
	Amplitude float32
	Duration  float32

	holder *Grabber
}

func NewGrabbableHaptics(svc *Services) *GrabbableHaptics {
	if svc == nil {
		svc = &Services{}
	}
	return &GrabbableHaptics{
		svc:                    svc,
		HapticsOnGrab:          true,
		HapticsOnRelease:       true,
		HapticsOnBecomeClosest: true,
		Frequency:              0.3,
		Amplitude:              0.1,
		Duration:               0.1,
	}
}

func (h *GrabbableHaptics) pulse(g *Grabber) {
	if h.svc.Haptics == nil || g == nil || g.IsSnapZone() {
		return
	}
	h.svc.Haptics.Pulse(g.Hand, h.Frequency, h.Amplitude, h.Duration)
}

func (h *GrabbableHaptics) OnGrab(g *Grabber) {
	h.holder = g
	if h.HapticsOnGrab {
		h.pulse(g)
	}
}

func (h *GrabbableHaptics) OnRelease() {
	if h.HapticsOnRelease {
		h.pulse(h.holder)
	}
	h.holder = nil
}

func (h *GrabbableHaptics) OnBecomesClosestGrabbable(g *Grabber) {
	if h.HapticsOnBecomeClosest {
		h.pulse(g)
	}
}

// Hand returns the hand last pulsed for a grab.
func (h *GrabbableHaptics) Hand() (input.Hand, bool) {
	if h.holder == nil {
		return input.Left, false
	}
	return h.holder.Hand, true
}
