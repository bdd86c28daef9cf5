package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/quadcolor/gui"
)

func TestProcessEventQuit(t *testing.T) {
	in := gui.NewInputState()
	assert.True(t, in.ProcessEvent(gui.QuitEvent()))
	assert.False(t, in.ProcessEvent(gui.Event{Kind: gui.EventMouseMove, X: 3, Y: 4}))
	assert.Equal(t, float32(3), in.MouseX)
	assert.Equal(t, float32(4), in.MouseY)
}

func TestMouseEdgesLastOneFrame(t *testing.T) {
	in := gui.NewInputState()
	in.ProcessEvent(gui.Event{Kind: gui.EventMouseButton, Button: gui.MouseButtonLeft, Down: true})

	assert.True(t, in.MouseClicked(gui.MouseButtonLeft))
	assert.True(t, in.MouseDown(gui.MouseButtonLeft))

	in.Reset()
	assert.False(t, in.MouseClicked(gui.MouseButtonLeft))
	assert.True(t, in.MouseDown(gui.MouseButtonLeft), "held buttons survive Reset")

	in.ProcessEvent(gui.Event{Kind: gui.EventMouseButton, Button: gui.MouseButtonLeft, Down: false})
	assert.True(t, in.MouseReleased(gui.MouseButtonLeft))
	assert.False(t, in.MouseDown(gui.MouseButtonLeft))
}

func TestWheelAccumulatesWithinFrame(t *testing.T) {
	in := gui.NewInputState()
	in.ProcessEvent(gui.Event{Kind: gui.EventMouseWheel, Y: 1})
	in.ProcessEvent(gui.Event{Kind: gui.EventMouseWheel, Y: 2})
	assert.Equal(t, float32(3), in.MouseWheelY)

	in.Reset()
	assert.Zero(t, in.MouseWheelY)
}

func TestKeyRepeat(t *testing.T) {
	in := gui.NewInputState()
	in.SetKey(gui.KeyLeft, true)
	assert.True(t, in.KeyRepeated(gui.KeyLeft, 0.016), "initial press triggers")

	in.Reset()
	in.UpdateKeyRepeat(0.1)
	assert.False(t, in.KeyRepeated(gui.KeyLeft, 0.1), "still inside the repeat delay")

	in.UpdateKeyRepeat(0.4)
	assert.True(t, in.KeyRepeated(gui.KeyLeft, 0.4))
}

func TestOutOfRangeButtonsIgnored(t *testing.T) {
	in := gui.NewInputState()
	in.SetMouseButton(gui.MouseButtonCount, true)
	in.SetKey(gui.KeyCount, true)
	assert.False(t, in.MouseDown(gui.MouseButtonCount))
	assert.False(t, in.KeyDown(gui.KeyCount))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "quit", gui.EventQuit.String())
	assert.Equal(t, "unknown", gui.EventKind(99).String())
}
