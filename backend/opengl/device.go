package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/quadcolor/gpu"
)

// Device implements gpu.Device on the current OpenGL 4.1 context.
type Device struct{}

var _ gpu.Device = Device{}

// NewDevice returns a Device. gl.Init must have succeeded.
func NewDevice() Device {
	return Device{}
}

func glTarget(t gpu.BufferTarget) uint32 {
	if t == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glUsage(u gpu.Usage) uint32 {
	switch u {
	case gpu.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gpu.StreamDraw:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

func glPrimitive(p gpu.Primitive) uint32 {
	switch p {
	case gpu.Lines:
		return gl.LINES
	case gpu.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// checkError drains the GL error flags and wraps the first one in kind.
func checkError(kind error, op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return fmt.Errorf("%w: %s: GL error 0x%04X", kind, op, code)
}

// Info implements gpu.Device.
func (Device) Info() gpu.Info {
	return gpu.Info{
		Vendor:                 gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:               gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:                gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguageVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// CreateBuffer implements gpu.Device.
func (Device) CreateBuffer(target gpu.BufferTarget, data []byte, usage gpu.Usage) (gpu.Buffer, error) {
	var buf uint32
	gl.GenBuffers(1, &buf)
	if buf == 0 {
		return 0, fmt.Errorf("%w: buffer", gpu.ErrNoObject)
	}
	t := glTarget(target)
	gl.BindBuffer(t, buf)
	if len(data) > 0 {
		gl.BufferData(t, len(data), gl.Ptr(data), glUsage(usage))
	} else {
		gl.BufferData(t, 0, nil, glUsage(usage))
	}
	if err := checkError(gpu.ErrUpload, "buffer data"); err != nil {
		gl.DeleteBuffers(1, &buf)
		return 0, err
	}
	return gpu.Buffer(buf), nil
}

// UpdateBuffer implements gpu.Device.
func (Device) UpdateBuffer(buf gpu.Buffer, target gpu.BufferTarget, offset int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	t := glTarget(target)
	gl.BindBuffer(t, uint32(buf))
	gl.BufferSubData(t, offset, len(data), gl.Ptr(data))
	return checkError(gpu.ErrUpload, fmt.Sprintf("buffer %d [%d,%d)", buf, offset, offset+len(data)))
}

// DeleteBuffer implements gpu.Device.
func (Device) DeleteBuffer(buf gpu.Buffer) {
	name := uint32(buf)
	gl.DeleteBuffers(1, &name)
}

// CreateProgram implements gpu.Device.
func (Device) CreateProgram(src gpu.ShaderSource) (gpu.Program, error) {
	p, err := linkProgram(src)
	if err != nil {
		return 0, err
	}
	return gpu.Program(p), nil
}

// AttribLocation implements gpu.Device.
func (Device) AttribLocation(p gpu.Program, name string) (uint32, error) {
	loc := gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("%w: %q", gpu.ErrAttribute, name)
	}
	return uint32(loc), nil
}

// UseProgram implements gpu.Device.
func (Device) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

// DeleteProgram implements gpu.Device.
func (Device) DeleteProgram(p gpu.Program) {
	gl.DeleteProgram(uint32(p))
}

// CreateVertexArray implements gpu.Device.
func (Device) CreateVertexArray() (gpu.VertexArray, error) {
	var va uint32
	gl.GenVertexArrays(1, &va)
	if va == 0 {
		return 0, fmt.Errorf("%w: vertex array", gpu.ErrNoObject)
	}
	return gpu.VertexArray(va), nil
}

// BindVertexArray implements gpu.Device.
func (Device) BindVertexArray(va gpu.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

// VertexAttrib implements gpu.Device.
func (Device) VertexAttrib(loc uint32, buf gpu.Buffer, size int) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.VertexAttribPointerWithOffset(loc, int32(size), gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
}

// BindElements implements gpu.Device.
func (Device) BindElements(buf gpu.Buffer) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buf))
}

// DeleteVertexArray implements gpu.Device.
func (Device) DeleteVertexArray(va gpu.VertexArray) {
	name := uint32(va)
	gl.DeleteVertexArrays(1, &name)
}

// Viewport implements gpu.Device.
func (Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearColor implements gpu.Device.
func (Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements gpu.Device.
func (Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetPolygonMode implements gpu.Device.
func (Device) SetPolygonMode(mode gpu.PolygonMode) {
	m := uint32(gl.FILL)
	if mode == gpu.Line {
		m = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, m)
}

// DrawIndexed implements gpu.Device.
func (Device) DrawIndexed(prim gpu.Primitive, count int) {
	gl.DrawElements(glPrimitive(prim), int32(count), gl.UNSIGNED_INT, nil)
}

// compileShader compiles one stage. The returned error carries the info log.
func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(log))
		gl.DeleteShader(shader)
		stage := "vertex"
		if kind == gl.FRAGMENT_SHADER {
			stage = "fragment"
		}
		return 0, fmt.Errorf("%w: %s: %s", gpu.ErrCompile, stage, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// linkProgram compiles both stages and links them. The stages are deleted
// once linked.
func linkProgram(src gpu.ShaderSource) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	if src.FragOutput != "" {
		gl.BindFragDataLocation(program, 0, gl.Str(src.FragOutput+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", gpu.ErrLink, strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	return program, nil
}
