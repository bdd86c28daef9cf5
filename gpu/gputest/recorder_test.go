package gputest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/quadcolor/gpu"
)

func TestRecorderUpdateBuffer(t *testing.T) {
	r := New()
	buf, err := r.CreateBuffer(gpu.ArrayBuffer, make([]byte, 8), gpu.DynamicDraw)
	require.NoError(t, err)

	require.NoError(t, r.UpdateBuffer(buf, gpu.ArrayBuffer, 4, []byte{1, 2, 3, 4}))
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 4}, r.BufferData(buf))
	assert.Equal(t, []Upload{{Buffer: buf, Offset: 4, Size: 4}}, r.Uploads)

	err = r.UpdateBuffer(buf, gpu.ArrayBuffer, 6, []byte{1, 2, 3})
	assert.ErrorIs(t, err, gpu.ErrUpload)

	err = r.UpdateBuffer(99, gpu.ArrayBuffer, 0, []byte{1})
	assert.ErrorIs(t, err, gpu.ErrUpload)
}

func TestRecorderCreateBufferCopiesData(t *testing.T) {
	r := New()
	data := []byte{1, 2}
	buf, err := r.CreateBuffer(gpu.ArrayBuffer, data, gpu.StaticDraw)
	require.NoError(t, err)
	data[0] = 9
	assert.Equal(t, []byte{1, 2}, r.BufferData(buf))
}

func TestRecorderInjectedFailures(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	r.FailCreateProgram = boom
	_, err := r.CreateProgram(gpu.ShaderSource{})
	assert.ErrorIs(t, err, boom)

	r.FailCreateBuffer = boom
	_, err = r.CreateBuffer(gpu.ArrayBuffer, nil, gpu.StaticDraw)
	assert.ErrorIs(t, err, boom)
}

func TestRecorderDoubleDeletes(t *testing.T) {
	r := New()
	buf, _ := r.CreateBuffer(gpu.ArrayBuffer, nil, gpu.StaticDraw)
	va, _ := r.CreateVertexArray()
	r.DeleteBuffer(buf)
	r.DeleteVertexArray(va)
	assert.Empty(t, r.DoubleDeletes())
	assert.Zero(t, r.Live())

	r.DeleteBuffer(buf)
	assert.Len(t, r.DoubleDeletes(), 1)
}

func TestRecorderDrawCapturesState(t *testing.T) {
	r := New()
	p, _ := r.CreateProgram(gpu.ShaderSource{})
	va, _ := r.CreateVertexArray()
	r.UseProgram(p)
	r.BindVertexArray(va)
	r.SetPolygonMode(gpu.Line)
	r.DrawIndexed(gpu.Triangles, 6)

	require.Len(t, r.Draws, 1)
	assert.Equal(t, Draw{Primitive: gpu.Triangles, Count: 6, Program: p, VertexArray: va, PolygonMode: gpu.Line}, r.Draws[0])
}

func TestRecorderAttribLocation(t *testing.T) {
	r := New()
	loc, err := r.AttribLocation(1, "color")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), loc)

	_, err = r.AttribLocation(1, "normal")
	assert.ErrorIs(t, err, gpu.ErrAttribute)
}

func TestRecorderCountsClears(t *testing.T) {
	r := New()
	r.ClearColor(0, 0, 0, 1)
	r.Clear()
	r.Clear()
	assert.Equal(t, 2, r.Clears)
	assert.Equal(t, []string{"ClearColor", "Clear", "Clear"}, r.Calls)
}
