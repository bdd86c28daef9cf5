package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/quadcolor/vertexcolor"
)

func TestDefaultMatchesStartupValues(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "TestSDLGL", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.Resizable)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, vertexcolor.DefaultPalette, cfg.Colors())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)
}

func TestParseMergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: demo
  vsync: false
palette:
  - [1, 1, 1]
  - [0.5, 0.5, 0.5]
  - [0, 0, 0]
  - [0.25, 0, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, vertexcolor.Color{0.5, 0.5, 0.5}, cfg.Colors()[1])
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"size":          "window: {width: 0}",
		"palette count": "palette: [[1, 1, 1]]",
		"channels":      "palette: [[1, 1], [1, 1, 1], [1, 1, 1], [1, 1, 1]]",
		"range":         "palette: [[2, 1, 1], [1, 1, 1], [1, 1, 1], [1, 1, 1]]",
		"clear color":   "clear_color: [0, 0, 0, -1]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("window: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quadcolor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {height: 480}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Window.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWindowCenteredIn(t *testing.T) {
	w := Default().Window
	x, y := w.CenteredIn(1920, 1080)
	assert.Equal(t, 320, x)
	assert.Equal(t, 180, y)

	x, y = w.CenteredIn(1024, 600)
	assert.Zero(t, x)
	assert.Zero(t, y)
}
