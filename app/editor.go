package app

import (
	"fmt"

	"github.com/go-theft-auto/quadcolor/gui"
	"github.com/go-theft-auto/quadcolor/vertexcolor"
)

// Edit is a color change made in the editor this frame.
type Edit struct {
	Vertex int
	Color  vertexcolor.Color
}

// Editor is the debug panel: the frame-time readout and one color picker per
// vertex.
type Editor struct {
	labels [vertexcolor.VertexCount]string
	edits  []Edit
}

// NewEditor returns an editor labeling its pickers "Vertex 1".."Vertex 4".
func NewEditor() *Editor {
	e := &Editor{edits: make([]Edit, 0, vertexcolor.VertexCount)}
	for i := range e.labels {
		e.labels[i] = fmt.Sprintf("Vertex %d", i+1)
	}
	return e
}

// FrameTimeText formats the readout shown at the top of the panel.
func FrameTimeText(timer *gui.FrameTimer) string {
	return fmt.Sprintf("%.3f ms/frame (%.1f FPS)", timer.FrameTime(), timer.Framerate())
}

// Draw builds the panel and returns the pickers that changed. The store is
// only read; applying the edits is up to the caller. The returned slice is
// reused by the next call.
func (e *Editor) Draw(ctx *gui.Context, store *vertexcolor.Store, timer *gui.FrameTimer) []Edit {
	e.edits = e.edits[:0]
	ctx.Panel("", gui.At(0, 0))(func() {
		ctx.Text(FrameTimeText(timer))
		for i, label := range e.labels {
			c := store.Get(i)
			col := [3]float32{c[0], c[1], c[2]}
			if ctx.ColorEdit3(label, &col) {
				e.edits = append(e.edits, Edit{Vertex: i, Color: vertexcolor.Clamp(col)})
			}
		}
	})
	return e.edits
}
