package app

import (
	"errors"

	"github.com/go-theft-auto/quadcolor/config"
	"github.com/go-theft-auto/quadcolor/gpu"
	"github.com/go-theft-auto/quadcolor/gui"
)

// Startup failures of the platform. Both end the program with exit code -1.
var (
	ErrWindowCreation  = errors.New("window creation failed")
	ErrContextCreation = errors.New("graphics context creation failed")
)

// Window is a native window with a current graphics context.
type Window interface {
	// PollEvent returns the next pending event, or false when the queue is
	// empty. A close request is reported as gui.EventQuit.
	PollEvent() (gui.Event, bool)
	FramebufferSize() (width, height int)
	SwapBuffers()
	// Time returns seconds since the window was opened.
	Time() float64
	// Destroy releases the window, its context and the windowing library.
	Destroy()
}

// UIRenderer draws gui draw lists and owns GPU objects of its own.
type UIRenderer interface {
	gui.Renderer
	Delete()
}

// Platform creates the window, the device bound to its context and the UI
// renderer. backend/opengl implements it with GLFW and go-gl.
type Platform interface {
	// Open creates the window and makes its context current. Errors wrap
	// ErrWindowCreation or ErrContextCreation. On failure nothing is left
	// acquired.
	Open(cfg config.Window) (Window, gpu.Device, error)
	NewRenderer(width, height int) (UIRenderer, error)
}
