package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonEdges(t *testing.T) {
	s := NewState()

	s.SetButton(Right, Button1, true)
	assert.True(t, s.ButtonDown(Right, Button1))
	assert.False(t, s.ButtonUp(Right, Button1))
	assert.False(t, s.ButtonDown(Left, Button1))

	s.EndFrame()
	assert.False(t, s.ButtonDown(Right, Button1), "down is a single-frame edge")
	assert.True(t, s.Button(Right, Button1))

	s.SetButton(Right, Button1, false)
	assert.True(t, s.ButtonUp(Right, Button1))
	s.EndFrame()
	assert.False(t, s.ButtonUp(Right, Button1))
}

func TestAnalogDrivesDigital(t *testing.T) {
	s := NewState()

	s.SetGrip(Left, 0.5)
	assert.False(t, s.Button(Left, ButtonGrip))

	s.SetGrip(Left, 0.95)
	assert.Equal(t, float32(0.95), s.Grip(Left))
	assert.True(t, s.ButtonDown(Left, ButtonGrip))

	s.SetTrigger(Left, 1)
	assert.True(t, s.Button(Left, ButtonTrigger))
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Pulse(Left, 1, 0.5, 0.1)
	r.Pulse(Right, 1, 0.5, 0.1)
	r.Pulse(Right, 1, 0.2, 0.1)

	assert.Equal(t, 1, r.Count(Left))
	assert.Equal(t, 2, r.Count(Right))
	assert.Equal(t, Right, Left.Other())
}
