package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/quadcolor/gui"
)

func TestFrameTimerEmpty(t *testing.T) {
	var timer gui.FrameTimer
	assert.Zero(t, timer.Framerate())
	assert.Zero(t, timer.FrameTime())
}

func TestFrameTimerRollingWindow(t *testing.T) {
	var timer gui.FrameTimer
	for range 60 {
		timer.Add(0.1)
	}
	assert.InDelta(t, 10, timer.Framerate(), 1e-3)

	// A full window of faster frames replaces the old ones entirely.
	for range 60 {
		timer.Add(0.01)
	}
	assert.InDelta(t, 100, timer.Framerate(), 1e-2)
	assert.InDelta(t, 10, timer.FrameTime(), 1e-3)
}

func TestFrameTimerIgnoresNonPositive(t *testing.T) {
	var timer gui.FrameTimer
	timer.Add(0)
	timer.Add(-1)
	assert.Zero(t, timer.Framerate())
}
