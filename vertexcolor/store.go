// Package vertexcolor holds the colors of the quad's four vertices.
//
// The Store is the source of truth; the GPU color buffer mirrors it. Colors
// are laid out as interleaved float32 R,G,B records in vertex order, so the
// byte range of vertex i is [ByteOffset(i), ByteOffset(i)+Stride).
package vertexcolor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/quadcolor/gpu"
)

// Color is an RGB triple with channels in [0,1].
type Color = mgl32.Vec3

const (
	// VertexCount is the number of vertices of the quad.
	VertexCount = 4
	// Channels is the number of floats per color record.
	Channels = 3
	// Stride is the size of one color record in bytes.
	Stride = Channels * 4
	// Size is the size of the whole color buffer in bytes.
	Size = VertexCount * Stride
)

// DefaultPalette is the startup palette: blue, green, red, yellow.
var DefaultPalette = [VertexCount]Color{
	{0, 0, 1},
	{0, 1, 0},
	{1, 0, 0},
	{1, 1, 0},
}

// Store holds one color per vertex. It is not safe for concurrent use.
type Store struct {
	colors [VertexCount]Color
}

// NewStore returns a store initialized with palette.
func NewStore(palette [VertexCount]Color) *Store {
	return &Store{colors: palette}
}

// Default returns a store initialized with DefaultPalette.
func Default() *Store {
	return NewStore(DefaultPalette)
}

// Get returns the color of vertex i. It panics if i is not in [0, VertexCount).
func (s *Store) Get(i int) Color {
	return s.colors[i]
}

// Set replaces the color of vertex i. Values are stored as given; callers
// that take user input clamp first. It panics if i is not in [0, VertexCount).
func (s *Store) Set(i int, c Color) {
	s.colors[i] = c
}

// Palette returns a copy of all colors.
func (s *Store) Palette() [VertexCount]Color {
	return s.colors
}

// Floats returns the 12 interleaved channel values.
func (s *Store) Floats() []float32 {
	out := make([]float32, 0, VertexCount*Channels)
	for _, c := range s.colors {
		out = append(out, c[0], c[1], c[2])
	}
	return out
}

// Bytes returns the whole buffer image as uploaded to the GPU.
func (s *Store) Bytes() []byte {
	return gpu.Float32Bytes(s.Floats())
}

// VertexBytes returns the Stride bytes of vertex i.
func (s *Store) VertexBytes(i int) []byte {
	c := s.colors[i]
	return gpu.Float32Bytes(c[:])
}

// ByteOffset returns the offset of vertex i's record in the buffer.
func ByteOffset(i int) int {
	return i * Stride
}

// Clamp limits each channel of c to [0,1].
func Clamp(c Color) Color {
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}
	return c
}

// InRange reports whether every channel of c is in [0,1].
func InRange(c Color) bool {
	for _, v := range c {
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			return false
		}
	}
	return true
}
