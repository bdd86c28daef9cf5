package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/quadcolor/config"
	"github.com/go-theft-auto/quadcolor/gpu"
	"github.com/go-theft-auto/quadcolor/gpu/gputest"
	"github.com/go-theft-auto/quadcolor/gui"
)

type fakePlatform struct {
	openErr error
	win     *fakeWindow
	dev     *gputest.Recorder
	log     []string
}

func (p *fakePlatform) Open(config.Window) (Window, gpu.Device, error) {
	if p.openErr != nil {
		return nil, nil, p.openErr
	}
	p.win = &fakeWindow{width: 640, height: 480, events: []gui.Event{gui.QuitEvent()}, log: &p.log}
	return p.win, p.dev, nil
}

func (p *fakePlatform) NewRenderer(int, int) (UIRenderer, error) {
	return &fakeRenderer{log: &p.log}, nil
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, -1, ExitCode(fmt.Errorf("glfw: %w", ErrWindowCreation)))
	assert.Equal(t, -1, ExitCode(fmt.Errorf("gl: %w", ErrContextCreation)))
	assert.Equal(t, 1, ExitCode(errors.New("shader")))
}

func TestExecuteWindowFailure(t *testing.T) {
	p := &fakePlatform{dev: gputest.New(), openErr: fmt.Errorf("create window: %w", ErrWindowCreation)}

	assert.Equal(t, -1, Execute(p, config.Default(), discardLogger()))
	assert.Empty(t, p.dev.Draws)
	assert.Empty(t, p.dev.Calls)
}

func TestExecuteQuit(t *testing.T) {
	p := &fakePlatform{dev: gputest.New()}

	assert.Equal(t, 0, Execute(p, config.Default(), discardLogger()))
	assert.Equal(t, []string{"renderer", "window"}, p.log)
	assert.Zero(t, p.dev.Live())
}

func TestExecuteStartupGPUError(t *testing.T) {
	dev := gputest.New()
	dev.FailCreateProgram = fmt.Errorf("%w: syntax error", gpu.ErrCompile)
	p := &fakePlatform{dev: dev}

	assert.Equal(t, 1, Execute(p, config.Default(), discardLogger()))
	assert.Equal(t, []string{"window"}, p.log)
}
