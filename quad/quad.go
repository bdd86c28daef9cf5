// Package quad owns the GPU objects of the colored quad: positions, colors,
// indices, shader program and vertex array.
package quad

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/quadcolor/gpu"
	"github.com/go-theft-auto/quadcolor/vertexcolor"
)

// Positions are the corners of the quad in clip space, in vertex order.
var Positions = [vertexcolor.VertexCount]mgl32.Vec2{
	{-0.5, 0.5},
	{0.5, 0.5},
	{0.5, -0.5},
	{-0.5, -0.5},
}

// indices draws the quad as two triangles sharing the 0-2 diagonal.
var indices = [6]uint32{0, 1, 2, 2, 3, 0}

// Indices returns a copy of the index data.
func Indices() [6]uint32 {
	return indices
}

// IndexCount is the number of indices drawn per frame.
const IndexCount = len(indices)

// Attribute names in the shader sources.
const (
	attribPosition = "position"
	attribColor    = "color"
)

// Shaders passes the per-vertex color through to the fragment stage.
var Shaders = gpu.ShaderSource{
	Vertex: `#version 410 core
in vec2 position;
in vec3 color;
out vec3 Color;

void main() {
	Color = color;
	gl_Position = vec4(position, 0.0, 1.0);
}
`,
	Fragment: `#version 410 core
in vec3 Color;
out vec4 outColor;

void main() {
	outColor = vec4(Color, 1.0);
}
`,
	FragOutput: "outColor",
}

// ErrClosed is returned by operations on deleted resources.
var ErrClosed = errors.New("quad resources deleted")

// Resources is the set of GPU objects for one quad. The color buffer mirrors
// the Store passed to NewResources.
type Resources struct {
	dev   gpu.Device
	store *vertexcolor.Store

	positions gpu.Buffer
	colors    gpu.Buffer
	elements  gpu.Buffer
	program   gpu.Program
	vao       gpu.VertexArray

	deleted bool
	logger  *slog.Logger
}

// Option configures Resources.
type Option func(*Resources)

// WithLogger sets the logger used for upload diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resources) { r.logger = l }
}

// NewResources creates all GPU objects and uploads the initial colors from
// store. On failure everything created so far is released.
func NewResources(dev gpu.Device, store *vertexcolor.Store, opts ...Option) (_ *Resources, err error) {
	r := &Resources{dev: dev, store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	defer func() {
		if err != nil {
			r.Delete()
		}
	}()

	r.vao, err = dev.CreateVertexArray()
	if err != nil {
		return nil, fmt.Errorf("create vertex array: %w", err)
	}
	dev.BindVertexArray(r.vao)

	r.elements, err = dev.CreateBuffer(gpu.ElementArrayBuffer, gpu.Uint32Bytes(indices[:]), gpu.StaticDraw)
	if err != nil {
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	pos := make([]float32, 0, 2*len(Positions))
	for _, p := range Positions {
		pos = append(pos, p.X(), p.Y())
	}
	r.positions, err = dev.CreateBuffer(gpu.ArrayBuffer, gpu.Float32Bytes(pos), gpu.StaticDraw)
	if err != nil {
		return nil, fmt.Errorf("create position buffer: %w", err)
	}

	r.colors, err = dev.CreateBuffer(gpu.ArrayBuffer, store.Bytes(), gpu.DynamicDraw)
	if err != nil {
		return nil, fmt.Errorf("create color buffer: %w", err)
	}

	r.program, err = dev.CreateProgram(Shaders)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	dev.UseProgram(r.program)

	posLoc, err := dev.AttribLocation(r.program, attribPosition)
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", attribPosition, err)
	}
	colLoc, err := dev.AttribLocation(r.program, attribColor)
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", attribColor, err)
	}
	dev.VertexAttrib(posLoc, r.positions, 2)
	dev.VertexAttrib(colLoc, r.colors, vertexcolor.Channels)
	dev.BindElements(r.elements)
	dev.BindVertexArray(0)

	return r, nil
}

// ColorBuffer returns the handle of the color buffer.
func (r *Resources) ColorBuffer() gpu.Buffer { return r.colors }

// IndexBuffer returns the handle of the index buffer.
func (r *Resources) IndexBuffer() gpu.Buffer { return r.elements }

// VertexColor returns the stored color of vertex i.
func (r *Resources) VertexColor(i int) vertexcolor.Color {
	return r.store.Get(i)
}

// SetVertexColor stores c for vertex i and uploads that vertex's record to
// the color buffer. Other records are not touched.
func (r *Resources) SetVertexColor(i int, c vertexcolor.Color) error {
	if r.deleted {
		return ErrClosed
	}
	r.store.Set(i, c)
	off := vertexcolor.ByteOffset(i)
	if err := r.dev.UpdateBuffer(r.colors, gpu.ArrayBuffer, off, r.store.VertexBytes(i)); err != nil {
		return fmt.Errorf("vertex %d: %w", i, err)
	}
	r.logger.Debug("vertex color uploaded", "vertex", i, "offset", off, "color", c)
	return nil
}

// Draw issues the indexed draw of the quad.
func (r *Resources) Draw() error {
	if r.deleted {
		return ErrClosed
	}
	r.dev.UseProgram(r.program)
	r.dev.BindVertexArray(r.vao)
	r.dev.SetPolygonMode(gpu.Fill)
	r.dev.DrawIndexed(gpu.Triangles, IndexCount)
	r.dev.BindVertexArray(0)
	return nil
}

// Delete releases the GPU objects in reverse creation order. Only objects
// that were created are released, and later calls do nothing.
func (r *Resources) Delete() {
	if r.deleted {
		return
	}
	r.deleted = true
	if r.program != 0 {
		r.dev.DeleteProgram(r.program)
	}
	if r.colors != 0 {
		r.dev.DeleteBuffer(r.colors)
	}
	if r.positions != 0 {
		r.dev.DeleteBuffer(r.positions)
	}
	if r.elements != 0 {
		r.dev.DeleteBuffer(r.elements)
	}
	if r.vao != 0 {
		r.dev.DeleteVertexArray(r.vao)
	}
}
