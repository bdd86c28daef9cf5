package gui

// Renderer draws finished draw lists. backend/opengl provides one.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns the Context and drives frames through a Renderer.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
	timer    FrameTimer
}

// GUIOption configures a GUI.
type GUIOption func(*GUI)

// WithStyle sets the style applied at the start of every frame.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates a GUI rendering through renderer.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame and returns the Context to draw widgets into.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.Reset(displaySize, deltaTime)

	g.timer.Add(deltaTime)
	if input != nil {
		input.UpdateKeyRepeat(deltaTime)
	}
	return ctx
}

// End renders the frame's draw list and releases it.
func (g *GUI) End() error {
	dl := g.ctx.DrawList
	if dl == nil {
		return nil
	}
	g.ctx.endFrame()
	err := g.renderer.Render(dl)
	ReleaseDrawList(dl)
	g.ctx.DrawList = nil
	return err
}

// Context returns the frame context. Only valid between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Timer returns the frame timer fed by Begin.
func (g *GUI) Timer() *FrameTimer {
	return &g.timer
}

// Resize forwards a display size change to the renderer.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
