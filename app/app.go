// Package app runs the quadcolor frame loop: it owns the window, the quad's
// GPU resources and the debug UI, and tears them down once.
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-theft-auto/quadcolor/config"
	"github.com/go-theft-auto/quadcolor/gpu"
	"github.com/go-theft-auto/quadcolor/gui"
	"github.com/go-theft-auto/quadcolor/quad"
	"github.com/go-theft-auto/quadcolor/vertexcolor"
)

// App is the running program.
type App struct {
	cfg    config.Config
	logger *slog.Logger

	win      Window
	dev      gpu.Device
	store    *vertexcolor.Store
	res      *quad.Resources
	renderer UIRenderer
	ui       *gui.GUI
	input    *gui.InputState
	editor   *Editor

	state    State
	lastTime float64
	closing  sync.Once
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// New takes ownership of win and dev, creates the quad resources and the UI
// renderer, and enters Running. On error everything, including win, has been
// released.
func New(cfg config.Config, win Window, dev gpu.Device, newRenderer func(width, height int) (UIRenderer, error), opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: slog.Default(),
		win:    win,
		dev:    dev,
		store:  vertexcolor.NewStore(cfg.Colors()),
		input:  gui.NewInputState(),
		editor: NewEditor(),
		state:  Stopped,
	}
	for _, opt := range opts {
		opt(a)
	}

	info := dev.Info()
	a.logger.Info("graphics context",
		"vendor", info.Vendor,
		"renderer", info.Renderer,
		"version", info.Version,
		"glsl", info.ShadingLanguageVersion)

	res, err := quad.NewResources(dev, a.store, quad.WithLogger(a.logger))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("quad resources: %w", err)
	}
	a.res = res

	w, h := win.FramebufferSize()
	renderer, err := newRenderer(w, h)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("ui renderer: %w", err)
	}
	a.renderer = renderer
	a.ui = gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	a.lastTime = win.Time()
	a.state = Running
	return a, nil
}

// State returns the loop state.
func (a *App) State() State { return a.state }

// Store returns the vertex colors.
func (a *App) Store() *vertexcolor.Store { return a.store }

// Input returns the UI input state fed by the window's events.
func (a *App) Input() *gui.InputState { return a.input }

// Frame runs one iteration of the loop. It does nothing once Stopped. A
// returned error also moves the loop to Stopped.
func (a *App) Frame() error {
	if a.state != Running {
		return nil
	}

	a.input.Reset()
	for {
		ev, ok := a.win.PollEvent()
		if !ok {
			break
		}
		if a.input.ProcessEvent(ev) {
			a.logger.Debug("quit requested")
			a.state = Stopped
		}
	}
	if a.state == Stopped {
		return nil
	}

	now := a.win.Time()
	dt := float32(now - a.lastTime)
	a.lastTime = now

	w, h := a.win.FramebufferSize()
	ctx := a.ui.Begin(a.input, gui.Vec2{X: float32(w), Y: float32(h)}, dt)
	for _, e := range a.editor.Draw(ctx, a.store, a.ui.Timer()) {
		if err := a.res.SetVertexColor(e.Vertex, e.Color); err != nil {
			_ = a.ui.End()
			return a.fail(err)
		}
		a.logger.Debug("vertex color edited", "vertex", e.Vertex+1, "color", e.Color)
	}

	a.dev.Viewport(0, 0, w, h)
	a.ui.Resize(w, h)

	cc := a.cfg.ClearColor
	a.dev.ClearColor(cc[0], cc[1], cc[2], cc[3])
	a.dev.Clear()

	if err := a.res.Draw(); err != nil {
		_ = a.ui.End()
		return a.fail(err)
	}
	if err := a.ui.End(); err != nil {
		return a.fail(fmt.Errorf("render ui: %w", err))
	}

	a.win.SwapBuffers()
	return nil
}

func (a *App) fail(err error) error {
	a.state = Stopped
	return err
}

// Run calls Frame until the loop stops, then closes the app. It returns the
// error that stopped the loop, if any.
func (a *App) Run() error {
	defer a.Close()
	for a.state == Running {
		if err := a.Frame(); err != nil {
			a.logger.Error("frame failed", "err", err)
			return err
		}
	}
	return nil
}

// Close releases the UI renderer, the quad resources and the window, in that
// order. Only the first call has an effect.
func (a *App) Close() {
	a.closing.Do(func() {
		a.state = Stopped
		if a.renderer != nil {
			a.renderer.Delete()
		}
		if a.res != nil {
			a.res.Delete()
		}
		if a.win != nil {
			a.win.Destroy()
		}
		a.logger.Debug("shutdown complete")
	})
}
