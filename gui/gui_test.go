package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/quadcolor/gui"
)

// mockRenderer records what it was asked to draw.
type mockRenderer struct {
	renderCalls int
	lastCmds    []gui.DrawCmd
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	dl.Finalize()
	m.lastCmds = append(m.lastCmds[:0], dl.CmdBuffer...)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 1280, Y: 720}, 0.016)
	require.NotNil(t, ctx)

	ctx.Text("Hello World")
	ctx.TextDisabled("quiet")

	require.NoError(t, ui.End())
	assert.Equal(t, 1, renderer.renderCalls)
	assert.NotEmpty(t, renderer.lastCmds)
}

func TestEndWithoutBegin(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)

	require.NoError(t, ui.End())
	assert.Zero(t, renderer.renderCalls)
}

func TestPanelBackgroundDrawnFirst(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("", gui.At(0, 0))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})
	require.NoError(t, ui.End())

	require.NotEmpty(t, renderer.lastCmds)
	bg := renderer.lastCmds[0]
	assert.Equal(t, uint32(0), bg.TextureID, "background is untextured")
	assert.Equal(t, uint32(6), bg.ElemCount)
	assert.Equal(t, uint32(0), bg.VertexOffset)
}

func TestPanelCapturesMouse(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()
	input.SetMousePos(5, 5)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("", gui.At(0, 0))(func() {
		ctx.Text("over me")
	})
	assert.True(t, ctx.WantCaptureMouse)
	require.NoError(t, ui.End())

	input.SetMousePos(700, 500)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("", gui.At(0, 0))(func() {
		ctx.Text("over me")
	})
	assert.False(t, ctx.WantCaptureMouse)
	require.NoError(t, ui.End())
}

func TestResizeForwardsToRenderer(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)

	ui.Resize(640, 480)
	assert.Equal(t, 640, renderer.width)
	assert.Equal(t, 480, renderer.height)
}

func TestTimerFedByBegin(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)

	for range 10 {
		ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.02)
		require.NoError(t, ui.End())
	}
	assert.InDelta(t, 50, ui.Timer().Framerate(), 0.01)
	assert.InDelta(t, 20, ui.Timer().FrameTime(), 0.01)
}
