package gui

// LayoutType is the stacking direction of a layout.
type LayoutType int

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout tracks placement and content bounds inside a container.
type Layout struct {
	Type    LayoutType
	Gap     float32
	Padding float32
	Width   float32 // minimum width, 0 = fit content
	Height  float32 // minimum height, 0 = fit content

	StartX, StartY      float32
	MaxWidth, MaxHeight float32
	ItemCount           int

	pos    *Vec2
	static bool
}

// LayoutOption configures a container.
type LayoutOption func(*Layout)

// Gap sets the space between items.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets the inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a minimum width.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a minimum height.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// At places the container at a fixed screen position instead of the cursor.
func At(x, y float32) LayoutOption {
	return func(l *Layout) { l.pos = &Vec2{X: x, Y: y} }
}

// Static marks the container as not capturing the mouse. Use it for
// overlays that should not block the scene underneath.
func Static() LayoutOption {
	return func(l *Layout) { l.static = true }
}

func (ctx *Context) pushLayout(l *Layout) {
	l.StartX = ctx.cursor.X
	l.StartY = ctx.cursor.Y
	ctx.layoutStack = append(ctx.layoutStack, l)
}

// popLayout removes the innermost layout and returns its content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	l := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: l.StartX, Y: l.StartY, W: l.MaxWidth, H: l.MaxHeight}
}

// Panel draws a container that sizes itself to its content. An empty title
// draws no header. The returned function runs the content closure.
//
//	ctx.Panel("Debug", gui.At(0, 0))(func() {
//	    ctx.Text("hello")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		l := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(l)
		}

		saved := ctx.cursor
		if l.pos != nil {
			ctx.cursor = *l.pos
		}
		startX, startY := ctx.cursor.X, ctx.cursor.Y
		pad := l.Padding

		headerH := float32(0)
		if title != "" {
			headerH = ctx.LineHeight() + pad*2
		}

		ctx.PushID(title)
		ctx.cursor.X += pad
		ctx.cursor.Y += pad + headerH
		ctx.pushLayout(l)
		contents()
		bounds := ctx.popLayout()
		ctx.PopID()

		w := maxf(bounds.W+pad*2, l.Width)
		h := maxf(bounds.H+pad*2+headerH, l.Height)
		if title != "" {
			w = maxf(w, ctx.MeasureText(title).X+pad*2)
		}

		ctx.DrawList.InsertRect(startX, startY, w, h, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.AddRect(startX, startY, w, headerH, ctx.style.PanelHeaderBgColor)
			textColor := ctx.style.PanelHeaderTextColor
			if textColor == 0 {
				textColor = ctx.style.TextColor
			}
			ctx.AddText(startX+pad, startY+pad, title, textColor)
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, w, h, ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if !l.static && ctx.IsHovered(Rect{X: startX, Y: startY, W: w, H: h}) {
			ctx.WantCaptureMouse = true
		}

		if l.pos != nil {
			ctx.cursor = saved
		} else {
			ctx.cursor = Vec2{X: startX, Y: startY + h}
		}
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.AdvanceCursor(Vec2{Y: pixels})
}
