package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quadcolor/app"
	"github.com/go-theft-auto/quadcolor/config"
	"github.com/go-theft-auto/quadcolor/gpu"
	"github.com/go-theft-auto/quadcolor/gui"
)

// Window is a GLFW window with a current OpenGL 4.1 core context. It must be
// used from the thread that opened it.
type Window struct {
	win    *glfw.Window
	queue  gui.EventQueue
	input  *InputAdapter
	start  float64
	pumped bool
	closed bool
}

var _ app.Window = (*Window)(nil)

// OpenWindow initializes GLFW, creates the window, makes its context current
// and loads the GL functions. Errors wrap app.ErrWindowCreation or
// app.ErrContextCreation; nothing stays initialized on failure.
func OpenWindow(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w: %w", app.ErrWindowCreation, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	resizable := glfw.False
	if cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)
	// Shown only once centered.
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w: %w", app.ErrWindowCreation, err)
	}
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if mode := mon.GetVideoMode(); mode != nil {
			mx, my := mon.GetPos()
			x, y := cfg.CenteredIn(mode.Width, mode.Height)
			win.SetPos(mx+x, my+y)
		}
	}
	win.Show()
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w: %w", app.ErrContextCreation, err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	w := &Window{win: win, start: glfw.GetTime()}
	w.input = NewInputAdapter(win, &w.queue)
	return w, nil
}

// PollEvent implements app.Window. GLFW is pumped once per frame, when the
// queue first runs dry.
func (w *Window) PollEvent() (gui.Event, bool) {
	if w.queue.Len() == 0 && !w.pumped {
		glfw.PollEvents()
		w.pumped = true
	}
	return w.queue.Pop()
}

// FramebufferSize implements app.Window.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SwapBuffers implements app.Window.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
	w.pumped = false
}

// Time implements app.Window.
func (w *Window) Time() float64 {
	return glfw.GetTime() - w.start
}

// Destroy implements app.Window. It also terminates GLFW.
func (w *Window) Destroy() {
	if w.closed {
		return
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
}

// Platform opens GLFW windows with go-gl devices.
type Platform struct {
	Logger *slog.Logger
}

var _ app.Platform = Platform{}

// Open implements app.Platform.
func (p Platform) Open(cfg config.Window) (app.Window, gpu.Device, error) {
	w, err := OpenWindow(cfg)
	if err != nil {
		return nil, nil, err
	}
	if p.Logger != nil {
		p.Logger.Debug("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "vsync", cfg.VSync)
	}
	return w, NewDevice(), nil
}

// NewRenderer implements app.Platform.
func (p Platform) NewRenderer(width, height int) (app.UIRenderer, error) {
	r, err := NewRenderer(width, height)
	if err != nil {
		return nil, err
	}
	return r, nil
}
