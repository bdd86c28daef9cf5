package quad_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/quadcolor/gpu"
	"github.com/go-theft-auto/quadcolor/gpu/gputest"
	"github.com/go-theft-auto/quadcolor/quad"
	"github.com/go-theft-auto/quadcolor/vertexcolor"
)

func newQuad(t *testing.T) (*quad.Resources, *gputest.Recorder, *vertexcolor.Store) {
	t.Helper()
	dev := gputest.New()
	store := vertexcolor.Default()
	res, err := quad.NewResources(dev, store)
	require.NoError(t, err)
	return res, dev, store
}

func TestNewResourcesUploadsInitialData(t *testing.T) {
	res, dev, store := newQuad(t)

	assert.Equal(t, store.Bytes(), dev.BufferData(res.ColorBuffer()))
	assert.Equal(t, gpu.DynamicDraw, dev.Buffers[res.ColorBuffer()].Usage)

	idx := gpu.BytesUint32(dev.BufferData(res.IndexBuffer()))
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, idx)
	assert.Equal(t, gpu.ElementArrayBuffer, dev.Buffers[res.IndexBuffer()].Target)

	require.Len(t, dev.Programs, 1)
	for _, src := range dev.Programs {
		assert.Equal(t, "outColor", src.FragOutput)
	}
}

func TestSetVertexColorMirrorsStore(t *testing.T) {
	res, dev, store := newQuad(t)

	c := vertexcolor.Color{0.5, 0.5, 0.5}
	require.NoError(t, res.SetVertexColor(2, c))

	assert.Equal(t, c, res.VertexColor(2))
	floats := gpu.BytesFloat32(dev.BufferData(res.ColorBuffer()))
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, floats[6:9])
	assert.Equal(t, store.Floats(), floats)
}

func TestSetVertexColorTouchesOnlyItsRegion(t *testing.T) {
	for i := range vertexcolor.VertexCount {
		res, dev, _ := newQuad(t)
		before := dev.BufferData(res.ColorBuffer())

		require.NoError(t, res.SetVertexColor(i, vertexcolor.Color{0.25, 0.75, 0.125}))

		require.Len(t, dev.Uploads, 1)
		assert.Equal(t, gputest.Upload{Buffer: res.ColorBuffer(), Offset: i * 12, Size: 12}, dev.Uploads[0])

		after := dev.BufferData(res.ColorBuffer())
		lo, hi := i*12, i*12+12
		assert.Equal(t, before[:lo], after[:lo], "vertex %d", i)
		assert.Equal(t, before[hi:], after[hi:], "vertex %d", i)
		assert.NotEqual(t, before[lo:hi], after[lo:hi], "vertex %d", i)
	}
}

func TestSetVertexColorIdempotent(t *testing.T) {
	res, dev, _ := newQuad(t)
	c := vertexcolor.Color{0.1, 0.2, 0.3}

	require.NoError(t, res.SetVertexColor(1, c))
	once := dev.BufferData(res.ColorBuffer())
	require.NoError(t, res.SetVertexColor(1, c))

	assert.Equal(t, once, dev.BufferData(res.ColorBuffer()))
	assert.Equal(t, c, res.VertexColor(1))
}

func TestSetVertexColorUploadError(t *testing.T) {
	res, dev, _ := newQuad(t)
	dev.FailUpdate = errors.New("lost context")

	err := res.SetVertexColor(0, vertexcolor.Color{1, 1, 1})
	assert.ErrorContains(t, err, "lost context")
}

func TestDrawIssuesOneIndexedDraw(t *testing.T) {
	res, dev, _ := newQuad(t)
	require.NoError(t, res.Draw())

	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.Equal(t, gpu.Triangles, d.Primitive)
	assert.Equal(t, 6, d.Count)
	assert.Equal(t, gpu.Fill, d.PolygonMode)
	assert.NotZero(t, d.Program)
	assert.NotZero(t, d.VertexArray)
}

func TestFramesWithoutEditsKeepColors(t *testing.T) {
	res, dev, _ := newQuad(t)
	before := dev.BufferData(res.ColorBuffer())
	for range 100 {
		require.NoError(t, res.Draw())
	}
	assert.Equal(t, before, dev.BufferData(res.ColorBuffer()))
	assert.Empty(t, dev.Uploads)
	assert.Equal(t, quad.Indices(), [6]uint32{0, 1, 2, 2, 3, 0})
}

func TestDeleteOnce(t *testing.T) {
	res, dev, _ := newQuad(t)
	res.Delete()
	res.Delete()

	assert.Zero(t, dev.Live())
	assert.Empty(t, dev.DoubleDeletes())
	assert.ErrorIs(t, res.Draw(), quad.ErrClosed)
	assert.ErrorIs(t, res.SetVertexColor(0, vertexcolor.Color{}), quad.ErrClosed)
}

func TestNewResourcesReleasesOnFailure(t *testing.T) {
	dev := gputest.New()
	dev.FailCreateProgram = gpu.ErrCompile

	_, err := quad.NewResources(dev, vertexcolor.Default())
	require.ErrorIs(t, err, gpu.ErrCompile)
	assert.Zero(t, dev.Live())
	assert.Empty(t, dev.DoubleDeletes())
}

func TestNewResourcesMissingAttribute(t *testing.T) {
	dev := gputest.New()
	delete(dev.Attribs, "color")

	_, err := quad.NewResources(dev, vertexcolor.Default())
	require.ErrorIs(t, err, gpu.ErrAttribute)
	assert.ErrorContains(t, err, "attribute color:")
	assert.Zero(t, dev.Live())
}
