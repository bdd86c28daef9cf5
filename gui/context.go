package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel is shared by every logger in the package.
var guiLogLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose switches package logging between info and debug.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// Context is the per-frame state widgets draw into and read input from.
// It is not a context.Context.
type Context struct {
	DrawList *DrawList

	style Style

	cursor      Vec2
	layoutStack []*Layout

	// Input is read-only for widgets.
	Input *InputState

	idStack []ID

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	focusedID    ID // keyboard focus
	focusClaimed bool
	activeID     ID // widget holding the mouse (drag in progress)

	FontTextureID uint32

	// WantCaptureMouse is set when the cursor is over UI this frame, so the
	// application can ignore the mouse for its own purposes.
	WantCaptureMouse bool
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{
		layoutStack: make([]*Layout, 0, 8),
		idStack:     make([]ID, 0, 8),
		style:       DefaultStyle(),
	}
}

// Style returns the active style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the active style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
	ctx.focusClaimed = false

	// A drag ends when the button is no longer held, even if the widget
	// that owned it was not drawn this frame.
	if ctx.activeID != 0 && (ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft)) {
		ctx.activeID = 0
	}
}

func (ctx *Context) mousePos() Vec2 {
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

// IsHovered reports whether the cursor is inside rect.
func (ctx *Context) IsHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.mousePos())
}

// IsClicked reports whether rect was clicked with the left button this frame.
func (ctx *Context) IsClicked(rect Rect) bool {
	return ctx.IsHovered(rect) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// SetActive gives id exclusive ownership of the mouse until release.
func (ctx *Context) SetActive(id ID) {
	ctx.activeID = id
}

// IsActive reports whether id owns the mouse.
func (ctx *Context) IsActive(id ID) bool {
	return id != 0 && ctx.activeID == id
}

// SetFocused gives id keyboard focus.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
	ctx.focusClaimed = true
}

// IsFocused reports whether id has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// ClearFocus drops keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// endFrame drops focus when the left button was clicked this frame and no
// widget took focus, i.e. the click landed outside every focusable field.
func (ctx *Context) endFrame() {
	if !ctx.focusClaimed && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.ClearFocus()
	}
}

// LineHeight returns the height of one line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of text in the built-in monospace font.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.LineHeight(),
	}
}

// AddText draws text with the active style's font metrics.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// CursorPos returns where the next widget will be placed.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}

// SetCursorPos moves the placement cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// ItemPos applies the layout gap and returns the position of the next item.
func (ctx *Context) ItemPos() Vec2 {
	if l := ctx.currentLayout(); l != nil && l.ItemCount > 0 {
		gap := l.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		if l.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
	return ctx.cursor
}

// AdvanceCursor moves past an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	if l.Type == LayoutVertical {
		l.MaxWidth = maxf(l.MaxWidth, ctx.cursor.X-l.StartX+size.X)
		ctx.cursor.Y += size.Y
		l.MaxHeight = ctx.cursor.Y - l.StartY
	} else {
		ctx.cursor.X += size.X
		l.MaxWidth = ctx.cursor.X - l.StartX
		l.MaxHeight = maxf(l.MaxHeight, size.Y)
	}
	l.ItemCount++
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}
