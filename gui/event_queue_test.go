package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/quadcolor/gui"
)

func TestEventQueueFIFO(t *testing.T) {
	var q gui.EventQueue
	_, ok := q.Pop()
	assert.False(t, ok)

	q.Push(gui.Event{Kind: gui.EventMouseMove, X: 1})
	q.Push(gui.QuitEvent())
	assert.Equal(t, 2, q.Len())

	ev, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, gui.EventMouseMove, ev.Kind)

	q.Push(gui.Event{Kind: gui.EventKey, Key: gui.KeyRight, Down: true})
	ev, _ = q.Pop()
	assert.Equal(t, gui.EventQuit, ev.Kind)
	ev, _ = q.Pop()
	assert.Equal(t, gui.KeyRight, ev.Key)

	assert.Zero(t, q.Len())
	_, ok = q.Pop()
	assert.False(t, ok)
}
