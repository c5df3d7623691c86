package input

import rl "github.com/gen2brain/raylib-go/raylib"

// pressThreshold is the analog value at which grip and trigger count as pressed.
const pressThreshold = 0.75

type handState struct {
	grip, trigger float32
	buttons       [buttonCount]bool
	prev          [buttonCount]bool
	velocity      rl.Vector3
	angularVel    rl.Vector3
}

// State is a scriptable Source. Set values during a frame and call EndFrame
// once the frame has been consumed so edges are computed against it.
type State struct {
	hands [2]handState
}

func NewState() *State {
	return &State{}
}

func (s *State) SetGrip(h Hand, v float32) {
	s.hands[h].grip = v
	s.hands[h].buttons[ButtonGrip] = v >= pressThreshold
}

func (s *State) SetTrigger(h Hand, v float32) {
	s.hands[h].trigger = v
	s.hands[h].buttons[ButtonTrigger] = v >= pressThreshold
}

func (s *State) SetButton(h Hand, b Button, pressed bool) {
	s.hands[h].buttons[b] = pressed
}

func (s *State) SetDeviceVelocity(h Hand, linear, angular rl.Vector3) {
	s.hands[h].velocity = linear
	s.hands[h].angularVel = angular
}

// EndFrame latches the current buttons as the previous frame's state.
func (s *State) EndFrame() {
	for i := range s.hands {
		s.hands[i].prev = s.hands[i].buttons
	}
}

func (s *State) Grip(h Hand) float32    { return s.hands[h].grip }
func (s *State) Trigger(h Hand) float32 { return s.hands[h].trigger }

func (s *State) Button(h Hand, b Button) bool {
	return s.hands[h].buttons[b]
}

func (s *State) ButtonDown(h Hand, b Button) bool {
	return s.hands[h].buttons[b] && !s.hands[h].prev[b]
}

func (s *State) ButtonUp(h Hand, b Button) bool {
	return !s.hands[h].buttons[b] && s.hands[h].prev[b]
}

func (s *State) DeviceVelocity(h Hand) rl.Vector3        { return s.hands[h].velocity }
func (s *State) DeviceAngularVelocity(h Hand) rl.Vector3 { return s.hands[h].angularVel }

// Pulse is one recorded haptics request.
type Pulse struct {
	Hand      Hand
	Frequency float32
	Amplitude float32
	Duration  float32
}

// Recorder is a Haptics sink that keeps every request.
type Recorder struct {
	Pulses []Pulse
}

func (r *Recorder) Pulse(h Hand, frequency, amplitude, duration float32) {
	r.Pulses = append(r.Pulses, Pulse{Hand: h, Frequency: frequency, Amplitude: amplitude, Duration: duration})
}

// Count returns how many pulses were sent to h.
func (r *Recorder) Count(h Hand) int {
	n := 0
	for _, p := range r.Pulses {
		if p.Hand == h {
			n++
		}
	}
	return n
}
