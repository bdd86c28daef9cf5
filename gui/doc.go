/*
Package gui is a small immediate-mode UI layer in the style of Dear ImGui.

The UI is rebuilt every frame. Widgets are plain method calls on a per-frame
Context and return their interaction result directly. State that must
survive between frames lives in FrameStores keyed by widget ID.

# Quick Start

	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	input := gui.NewInputState()

	for running {
	    input.Reset()
	    for ev, ok := window.PollEvent(); ok; ev, ok = window.PollEvent() {
	        running = !input.ProcessEvent(ev) && running
	    }

	    ctx := ui.Begin(input, gui.Vec2{X: w, Y: h}, deltaTime)
	    ctx.Panel("", gui.At(0, 0))(func() {
	        ctx.Text(fmt.Sprintf("%.1f FPS", ui.Timer().Framerate()))
	        if ctx.ColorEdit3("Tint", &tint) {
	            apply(tint)
	        }
	    })
	    ui.End()
	}

# ColorEdit3 Controls

	Drag             Change the channel under the cursor, 1/255 per pixel
	Mouse Wheel      Step the channel under the cursor by 1/255
	Left / Right     Step the focused channel (click a field to focus it)

# Rendering

End hands the frame's DrawList to a Renderer. Vertices carry packed RGBA
colors and texture coordinates into the built-in 8x8 font atlas, whose
layout is given by FontAtlasWidth and FontAtlasHeight.
*/
package gui
