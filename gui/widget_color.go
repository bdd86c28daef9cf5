package gui

import "fmt"

// channelDrag remembers where a channel drag started.
type channelDrag struct {
	startX     float32
	startValue float32
}

var channelDragStore = NewFrameStore[channelDrag]()

var channelNames = [3]string{"R", "G", "B"}

// Default geometry of ColorEdit3 channel fields.
const (
	colorFieldWidth = 72
	colorDragSpeed  = 1.0 / 255 // value change per dragged pixel
)

// ColorEdit3 draws an RGB editor: a swatch, one field per channel showing
// the value as 0..255, and the label. Drag a field horizontally, scroll over
// it, or focus it and use Left/Right to change a channel. Channels stay in
// [0,1]. Returns true if any channel changed this frame.
//
//	if ctx.ColorEdit3("Vertex 1", &col) {
//	    upload(col)
//	}
func (ctx *Context) ColorEdit3(label string, col *[3]float32, opts ...Option) bool {
	o := applyOptions(opts)
	pos := ctx.ItemPos()

	idLabel := label
	if optID := GetOpt(o, OptID); optID != "" {
		idLabel = optID
	}
	ctx.PushID(idLabel)
	defer ctx.PopID()

	pad := ctx.style.FramePadding
	gap := ctx.style.ItemInnerGap
	h := ctx.LineHeight() + pad*2

	fieldW := float32(colorFieldWidth)
	if w := GetOpt(o, OptWidth); w > 0 {
		fieldW = (w - h - 3*gap) / 3
	}
	step := GetOpt(o, OptStep)
	if step <= 0 {
		step = 1.0 / 255
	}
	disabled := GetOpt(o, OptDisabled)

	swatch := Rect{X: pos.X, Y: pos.Y, W: h, H: h}
	ctx.DrawList.AddRect(swatch.X, swatch.Y, swatch.W, swatch.H, RGBAf(col[0], col[1], col[2], 1))
	ctx.DrawList.AddRectOutline(swatch.X, swatch.Y, swatch.W, swatch.H, ctx.style.FrameBorderColor, 1)

	changed := false
	x := pos.X + h + gap
	for ch := range col {
		field := Rect{X: x, Y: pos.Y, W: fieldW, H: h}
		id := ctx.GetID(channelNames[ch])
		if !disabled && ctx.editChannel(id, field, &col[ch], step) {
			changed = true
		}
		ctx.drawChannelField(id, field, ch, col[ch], disabled)
		x += fieldW + gap
	}

	labelColor := ctx.style.TextColor
	if disabled {
		labelColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(x, pos.Y+pad, label, labelColor)
	x += ctx.MeasureText(label).X

	ctx.AdvanceCursor(Vec2{X: x - pos.X, Y: h})

	if changed && guiVerbose() {
		guiLogger.Debug("color edited", "label", label, "r", col[0], "g", col[1], "b", col[2])
	}
	return changed
}

// editChannel applies mouse and keyboard input to one channel value.
func (ctx *Context) editChannel(id ID, field Rect, v *float32, step float32) bool {
	in := ctx.Input
	if in == nil {
		return false
	}
	old := *v
	hovered := ctx.IsHovered(field)

	if ctx.IsClicked(field) {
		ctx.SetActive(id)
		ctx.SetFocused(id)
		drag := channelDragStore.Get(id, channelDrag{})
		drag.startX = in.MouseX
		drag.startValue = *v
	}

	if ctx.IsActive(id) {
		if in.MouseDown(MouseButtonLeft) {
			drag := channelDragStore.Get(id, channelDrag{startX: in.MouseX, startValue: *v})
			*v = clampf(drag.startValue+(in.MouseX-drag.startX)*colorDragSpeed, 0, 1)
		} else {
			ctx.SetActive(0)
		}
	}

	if hovered && in.MouseWheelY != 0 {
		*v = clampf(*v+in.MouseWheelY*step, 0, 1)
	}

	if ctx.IsFocused(id) {
		if in.KeyRepeated(KeyLeft, ctx.DeltaTime) {
			*v = clampf(*v-step, 0, 1)
		}
		if in.KeyRepeated(KeyRight, ctx.DeltaTime) {
			*v = clampf(*v+step, 0, 1)
		}
	}

	return *v != old
}

func (ctx *Context) drawChannelField(id ID, field Rect, ch int, v float32, disabled bool) {
	bg := ctx.style.FrameBgColor
	switch {
	case disabled:
	case ctx.IsActive(id):
		bg = ctx.style.FrameBgActiveColor
	case ctx.IsHovered(field):
		bg = ctx.style.FrameBgHoveredColor
	}
	ctx.DrawList.AddRect(field.X, field.Y, field.W, field.H, bg)
	if ctx.IsFocused(id) {
		ctx.DrawList.AddRectOutline(field.X, field.Y, field.W, field.H, ctx.style.FocusColor, 1)
	}

	text := fmt.Sprintf("%s:%3d", channelNames[ch], int(clampf(v, 0, 1)*255+0.5))
	tw := ctx.MeasureText(text).X
	color := ctx.style.TextColor
	if disabled {
		color = ctx.style.TextDisabledColor
	}
	ctx.AddText(field.X+(field.W-tw)/2, field.Y+ctx.style.FramePadding, text, color)
}
