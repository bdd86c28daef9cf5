package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quadcolor/gui"
)

// InputAdapter turns GLFW callbacks into gui events on a queue.
type InputAdapter struct {
	queue *gui.EventQueue
}

// NewInputAdapter installs the input and close callbacks of w. Events are
// pushed to queue as GLFW delivers them during glfw.PollEvents.
func NewInputAdapter(w *glfw.Window, queue *gui.EventQueue) *InputAdapter {
	a := &InputAdapter{queue: queue}
	w.SetCloseCallback(a.onClose)
	w.SetKeyCallback(a.onKey)
	w.SetMouseButtonCallback(a.onMouseButton)
	w.SetScrollCallback(a.onScroll)
	w.SetCursorPosCallback(a.onCursorPos)
	return a
}

func (a *InputAdapter) onClose(w *glfw.Window) {
	a.queue.Push(gui.QuitEvent())
}

func (a *InputAdapter) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := mapKey(key)
	if k == gui.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		a.queue.Push(gui.Event{Kind: gui.EventKey, Key: k, Down: true})
	case glfw.Release:
		a.queue.Push(gui.Event{Kind: gui.EventKey, Key: k})
	}
}

func (a *InputAdapter) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := mapMouseButton(button)
	if !ok || action == glfw.Repeat {
		return
	}
	a.queue.Push(gui.Event{Kind: gui.EventMouseButton, Button: b, Down: action == glfw.Press})
}

func (a *InputAdapter) onScroll(w *glfw.Window, xoff, yoff float64) {
	a.queue.Push(gui.Event{Kind: gui.EventMouseWheel, X: float32(xoff), Y: float32(yoff)})
}

func (a *InputAdapter) onCursorPos(w *glfw.Window, x, y float64) {
	a.queue.Push(gui.Event{Kind: gui.EventMouseMove, X: float32(x), Y: float32(y)})
}

func mapKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	default:
		return gui.KeyNone
	}
}

func mapMouseButton(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
