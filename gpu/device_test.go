package gpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/quadcolor/gpu"
)

func TestFloat32BytesRoundTrip(t *testing.T) {
	in := []float32{0, 1, 0.5, -2.25}
	b := gpu.Float32Bytes(in)
	assert.Len(t, b, 16)
	assert.Equal(t, in, gpu.BytesFloat32(b))
}

func TestUint32BytesRoundTrip(t *testing.T) {
	in := []uint32{0, 1, 2, 2, 3, 0}
	b := gpu.Uint32Bytes(in)
	assert.Len(t, b, 24)
	assert.Equal(t, in, gpu.BytesUint32(b))
}

func TestBytesDecodeIgnoresPartialTail(t *testing.T) {
	b := append(gpu.Float32Bytes([]float32{1}), 0xFF, 0xFF)
	assert.Equal(t, []float32{1}, gpu.BytesFloat32(b))
	assert.Empty(t, gpu.BytesUint32([]byte{1, 2, 3}))
}

func TestBufferTargetString(t *testing.T) {
	assert.Equal(t, "array", gpu.ArrayBuffer.String())
	assert.Equal(t, "element-array", gpu.ElementArrayBuffer.String())
	assert.Equal(t, "unknown", gpu.BufferTarget(42).String())
}
