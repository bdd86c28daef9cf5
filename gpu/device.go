// Package gpu defines the narrow set of GPU commands the application uses.
//
// Handles are plain uint32 names as in OpenGL; 0 is never a valid handle.
// backend/opengl implements Device on top of go-gl, gputest provides an
// in-memory recorder for tests.
package gpu

import (
	"encoding/binary"
	"errors"
	"math"
)

// Handle types. Zero means "no object".
type (
	Buffer      uint32
	Program     uint32
	VertexArray uint32
)

// BufferTarget selects what a buffer is bound as.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element-array"
	default:
		return "unknown"
	}
}

// Usage is the expected update frequency of a buffer.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

// Primitive is the primitive type of a draw call.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
	Points
)

// PolygonMode is the rasterization mode of filled primitives.
type PolygonMode int

const (
	Fill PolygonMode = iota
	Line
)

// Info describes the active context. The application logs it at startup.
type Info struct {
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
}

// Errors returned by Device implementations. They are wrapped with detail.
var (
	ErrCompile   = errors.New("shader compile failed")
	ErrLink      = errors.New("program link failed")
	ErrAttribute = errors.New("vertex attribute not found")
	ErrUpload    = errors.New("buffer upload failed")
	ErrNoObject  = errors.New("object creation failed")
)

// ShaderSource is the pair of stages linked into one program.
type ShaderSource struct {
	Vertex   string
	Fragment string
	// FragOutput is bound to color number 0 before linking when set.
	FragOutput string
}

// Device issues GPU commands. Calls are synchronous from the caller's point
// of view and must come from the thread owning the context.
type Device interface {
	Info() Info

	CreateBuffer(target BufferTarget, data []byte, usage Usage) (Buffer, error)
	// UpdateBuffer replaces len(data) bytes of buf starting at offset.
	UpdateBuffer(buf Buffer, target BufferTarget, offset int, data []byte) error
	DeleteBuffer(buf Buffer)

	CreateProgram(src ShaderSource) (Program, error)
	AttribLocation(p Program, name string) (uint32, error)
	UseProgram(p Program)
	DeleteProgram(p Program)

	CreateVertexArray() (VertexArray, error)
	BindVertexArray(va VertexArray)
	// VertexAttrib binds buf as the source of float attribute loc with size
	// components per vertex, tightly packed, and enables it. The vertex
	// array bound at the time records the binding.
	VertexAttrib(loc uint32, buf Buffer, size int)
	// BindElements records buf as the index buffer of the bound vertex array.
	BindElements(buf Buffer)
	DeleteVertexArray(va VertexArray)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
	SetPolygonMode(mode PolygonMode)
	// DrawIndexed draws count uint32 indices from the bound element buffer.
	DrawIndexed(prim Primitive, count int)
}

// Float32Bytes encodes values in native byte order.
func Float32Bytes(values []float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.NativeEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

// Uint32Bytes encodes values in native byte order.
func Uint32Bytes(values []uint32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.NativeEndian.AppendUint32(out, v)
	}
	return out
}

// BytesFloat32 decodes native-order bytes into floats. A trailing partial
// value is ignored.
func BytesFloat32(b []byte) []float32 {
	out := make([]float32, 0, len(b)/4)
	for len(b) >= 4 {
		out = append(out, math.Float32frombits(binary.NativeEndian.Uint32(b)))
		b = b[4:]
	}
	return out
}

// BytesUint32 decodes native-order bytes into uint32 values.
func BytesUint32(b []byte) []uint32 {
	out := make([]uint32, 0, len(b)/4)
	for len(b) >= 4 {
		out = append(out, binary.NativeEndian.Uint32(b))
		b = b[4:]
	}
	return out
}
