package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/quadcolor/gui"
)

// Field positions for a ColorEdit3 drawn at the origin with DefaultStyle:
// an 18px swatch, then three 72px fields separated by 4px.
const (
	fieldY = 5
	fieldR = 22 + 36
	fieldG = 98 + 36
	fieldB = 174 + 36
)

type colorEditHarness struct {
	t     *testing.T
	ui    *gui.GUI
	input *gui.InputState
}

func newColorEditHarness(t *testing.T) *colorEditHarness {
	return &colorEditHarness{
		t:     t,
		ui:    gui.New(&mockRenderer{}),
		input: gui.NewInputState(),
	}
}

// frame runs one UI frame with a single ColorEdit3 and returns its result.
func (h *colorEditHarness) frame(label string, col *[3]float32, events ...gui.Event) bool {
	h.input.Reset()
	for _, ev := range events {
		h.input.ProcessEvent(ev)
	}
	ctx := h.ui.Begin(h.input, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.ColorEdit3(label, col)
	require.NoError(h.t, h.ui.End())
	return changed
}

func move(x, y float32) gui.Event {
	return gui.Event{Kind: gui.EventMouseMove, X: x, Y: y}
}

func button(down bool) gui.Event {
	return gui.Event{Kind: gui.EventMouseButton, Button: gui.MouseButtonLeft, Down: down}
}

func TestColorEdit3NoInputNoChange(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0.1, 0.2, 0.3}

	assert.False(t, h.frame("idle", &col))
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, col)
}

func TestColorEdit3DragChangesChannel(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0, 0, 1}

	assert.False(t, h.frame("drag", &col, move(fieldR, fieldY), button(true)), "press alone does not change the value")
	assert.True(t, h.frame("drag", &col, move(fieldR+51, fieldY)))
	assert.InDelta(t, 0.2, col[0], 1e-5)
	assert.Equal(t, float32(0), col[1])
	assert.Equal(t, float32(1), col[2])

	assert.False(t, h.frame("drag", &col, button(false)))
	assert.False(t, h.frame("drag", &col, move(fieldR+200, fieldY)), "released field no longer follows the mouse")
	assert.InDelta(t, 0.2, col[0], 1e-5)
}

func TestColorEdit3DragClamps(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0.5, 0.5, 0.5}

	h.frame("clamp", &col, move(fieldG, fieldY), button(true))
	assert.True(t, h.frame("clamp", &col, move(fieldG+1000, fieldY)))
	assert.Equal(t, float32(1), col[1])

	assert.True(t, h.frame("clamp", &col, move(fieldG-1000, fieldY)))
	assert.Equal(t, float32(0), col[1])
}

func TestColorEdit3Wheel(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0, 0, 0}

	wheel := gui.Event{Kind: gui.EventMouseWheel, Y: 1}
	assert.True(t, h.frame("wheel", &col, move(fieldB, fieldY), wheel))
	assert.InDelta(t, 1.0/255, col[2], 1e-6)

	col[2] = 1
	assert.False(t, h.frame("wheel", &col, wheel), "already at the top of the range")
	assert.Equal(t, float32(1), col[2])
}

func TestColorEdit3KeyboardAfterFocus(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0.5, 0.5, 0.5}

	h.frame("keys", &col, move(fieldB, fieldY), button(true))
	h.frame("keys", &col, button(false), move(700, 500))

	right := gui.Event{Kind: gui.EventKey, Key: gui.KeyRight, Down: true}
	assert.True(t, h.frame("keys", &col, right))
	assert.InDelta(t, 0.5+1.0/255, col[2], 1e-6)
	assert.Equal(t, float32(0.5), col[0])
}

func TestColorEdit3ClickElsewhereDropsFocus(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0.5, 0.5, 0.5}

	h.frame("blur", &col, move(fieldB, fieldY), button(true))
	h.frame("blur", &col, button(false))
	h.frame("blur", &col, move(700, 500), button(true))
	h.frame("blur", &col, button(false))

	right := gui.Event{Kind: gui.EventKey, Key: gui.KeyRight, Down: true}
	assert.False(t, h.frame("blur", &col, right))
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, col)
}

func TestColorEdit3ClickOtherFieldMovesFocus(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0.5, 0.5, 0.5}

	h.frame("move", &col, move(fieldB, fieldY), button(true))
	h.frame("move", &col, button(false))
	h.frame("move", &col, move(fieldR, fieldY), button(true))
	h.frame("move", &col, button(false))

	right := gui.Event{Kind: gui.EventKey, Key: gui.KeyRight, Down: true}
	assert.True(t, h.frame("move", &col, right))
	assert.InDelta(t, 0.5+1.0/255, col[0], 1e-6)
	assert.Equal(t, float32(0.5), col[2])
}

func TestColorEdit3Disabled(t *testing.T) {
	h := newColorEditHarness(t)
	col := [3]float32{0.5, 0.5, 0.5}

	h.input.Reset()
	h.input.ProcessEvent(move(fieldR, fieldY))
	h.input.ProcessEvent(button(true))
	ctx := h.ui.Begin(h.input, gui.Vec2{X: 800, Y: 600}, 0.016)
	assert.False(t, ctx.ColorEdit3("off", &col, gui.WithDisabled(true)))
	require.NoError(t, h.ui.End())
}
