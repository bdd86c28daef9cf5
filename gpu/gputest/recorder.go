// Package gputest provides an in-memory gpu.Device that records every call.
package gputest

import (
	"fmt"
	"slices"

	"github.com/go-theft-auto/quadcolor/gpu"
)

// BufferState is the recorded content of one buffer.
type BufferState struct {
	Target gpu.BufferTarget
	Usage  gpu.Usage
	Data   []byte
}

// Upload records one UpdateBuffer call.
type Upload struct {
	Buffer gpu.Buffer
	Offset int
	Size   int
}

// Draw records one DrawIndexed call.
type Draw struct {
	Primitive   gpu.Primitive
	Count       int
	Program     gpu.Program
	VertexArray gpu.VertexArray
	PolygonMode gpu.PolygonMode
}

// Recorder implements gpu.Device in memory. Buffer contents are kept so
// tests can compare the GPU mirror byte for byte.
type Recorder struct {
	// Calls lists every command name in order.
	Calls []string

	Buffers      map[gpu.Buffer]*BufferState
	Programs     map[gpu.Program]gpu.ShaderSource
	VertexArrays map[gpu.VertexArray]bool

	Uploads []Upload
	Draws   []Draw

	// Deleted counts deletions per handle kind and name, e.g. "buffer:3".
	Deleted map[string]int

	ViewportRect [4]int
	Clears       int

	// Attribs maps attribute names to locations for AttribLocation.
	// Names not present are reported as missing.
	Attribs map[string]uint32

	// Injected failures.
	FailCreateBuffer  error
	FailCreateProgram error
	FailUpdate        error

	next        uint32
	program     gpu.Program
	vertexArray gpu.VertexArray
	polygonMode gpu.PolygonMode
}

var _ gpu.Device = (*Recorder)(nil)

// New returns an empty Recorder that knows the attributes "position" (0)
// and "color" (1).
func New() *Recorder {
	return &Recorder{
		Buffers:      make(map[gpu.Buffer]*BufferState),
		Programs:     make(map[gpu.Program]gpu.ShaderSource),
		VertexArrays: make(map[gpu.VertexArray]bool),
		Deleted:      make(map[string]int),
		Attribs:      map[string]uint32{"position": 0, "color": 1},
	}
}

func (r *Recorder) call(name string) {
	r.Calls = append(r.Calls, name)
}

func (r *Recorder) name() uint32 {
	r.next++
	return r.next
}

// Info implements gpu.Device.
func (r *Recorder) Info() gpu.Info {
	r.call("Info")
	return gpu.Info{Vendor: "gputest", Renderer: "recorder", Version: "4.1", ShadingLanguageVersion: "4.10"}
}

// CreateBuffer implements gpu.Device.
func (r *Recorder) CreateBuffer(target gpu.BufferTarget, data []byte, usage gpu.Usage) (gpu.Buffer, error) {
	r.call("CreateBuffer")
	if r.FailCreateBuffer != nil {
		return 0, r.FailCreateBuffer
	}
	b := gpu.Buffer(r.name())
	r.Buffers[b] = &BufferState{Target: target, Usage: usage, Data: slices.Clone(data)}
	return b, nil
}

// UpdateBuffer implements gpu.Device.
func (r *Recorder) UpdateBuffer(buf gpu.Buffer, target gpu.BufferTarget, offset int, data []byte) error {
	r.call("UpdateBuffer")
	if r.FailUpdate != nil {
		return r.FailUpdate
	}
	st, ok := r.Buffers[buf]
	if !ok {
		return fmt.Errorf("%w: unknown buffer %d", gpu.ErrUpload, buf)
	}
	if offset < 0 || offset+len(data) > len(st.Data) {
		return fmt.Errorf("%w: range [%d,%d) outside %d bytes", gpu.ErrUpload, offset, offset+len(data), len(st.Data))
	}
	copy(st.Data[offset:], data)
	r.Uploads = append(r.Uploads, Upload{Buffer: buf, Offset: offset, Size: len(data)})
	return nil
}

// DeleteBuffer implements gpu.Device.
func (r *Recorder) DeleteBuffer(buf gpu.Buffer) {
	r.call("DeleteBuffer")
	r.Deleted[fmt.Sprintf("buffer:%d", buf)]++
	delete(r.Buffers, buf)
}

// CreateProgram implements gpu.Device.
func (r *Recorder) CreateProgram(src gpu.ShaderSource) (gpu.Program, error) {
	r.call("CreateProgram")
	if r.FailCreateProgram != nil {
		return 0, r.FailCreateProgram
	}
	p := gpu.Program(r.name())
	r.Programs[p] = src
	return p, nil
}

// AttribLocation implements gpu.Device.
func (r *Recorder) AttribLocation(p gpu.Program, name string) (uint32, error) {
	r.call("AttribLocation")
	loc, ok := r.Attribs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", gpu.ErrAttribute, name)
	}
	return loc, nil
}

// UseProgram implements gpu.Device.
func (r *Recorder) UseProgram(p gpu.Program) {
	r.call("UseProgram")
	r.program = p
}

// DeleteProgram implements gpu.Device.
func (r *Recorder) DeleteProgram(p gpu.Program) {
	r.call("DeleteProgram")
	r.Deleted[fmt.Sprintf("program:%d", p)]++
	delete(r.Programs, p)
}

// CreateVertexArray implements gpu.Device.
func (r *Recorder) CreateVertexArray() (gpu.VertexArray, error) {
	r.call("CreateVertexArray")
	va := gpu.VertexArray(r.name())
	r.VertexArrays[va] = true
	return va, nil
}

// BindVertexArray implements gpu.Device.
func (r *Recorder) BindVertexArray(va gpu.VertexArray) {
	r.call("BindVertexArray")
	r.vertexArray = va
}

// VertexAttrib implements gpu.Device.
func (r *Recorder) VertexAttrib(loc uint32, buf gpu.Buffer, size int) {
	r.call("VertexAttrib")
}

// BindElements implements gpu.Device.
func (r *Recorder) BindElements(buf gpu.Buffer) {
	r.call("BindElements")
}

// DeleteVertexArray implements gpu.Device.
func (r *Recorder) DeleteVertexArray(va gpu.VertexArray) {
	r.call("DeleteVertexArray")
	r.Deleted[fmt.Sprintf("vertex-array:%d", va)]++
	delete(r.VertexArrays, va)
}

// Viewport implements gpu.Device.
func (r *Recorder) Viewport(x, y, width, height int) {
	r.call("Viewport")
	r.ViewportRect = [4]int{x, y, width, height}
}

// ClearColor implements gpu.Device.
func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.call("ClearColor")
}

// Clear implements gpu.Device.
func (r *Recorder) Clear() {
	r.call("Clear")
	r.Clears++
}

// SetPolygonMode implements gpu.Device.
func (r *Recorder) SetPolygonMode(mode gpu.PolygonMode) {
	r.call("SetPolygonMode")
	r.polygonMode = mode
}

// DrawIndexed implements gpu.Device.
func (r *Recorder) DrawIndexed(prim gpu.Primitive, count int) {
	r.call("DrawIndexed")
	r.Draws = append(r.Draws, Draw{
		Primitive:   prim,
		Count:       count,
		Program:     r.program,
		VertexArray: r.vertexArray,
		PolygonMode: r.polygonMode,
	})
}

// BufferData returns a copy of the current content of buf, or nil.
func (r *Recorder) BufferData(buf gpu.Buffer) []byte {
	if st, ok := r.Buffers[buf]; ok {
		return slices.Clone(st.Data)
	}
	return nil
}

// DoubleDeletes returns the handles deleted more than once.
func (r *Recorder) DoubleDeletes() []string {
	var out []string
	for k, n := range r.Deleted {
		if n > 1 {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Live returns the number of objects created and not yet deleted.
func (r *Recorder) Live() int {
	return len(r.Buffers) + len(r.Programs) + len(r.VertexArrays)
}
