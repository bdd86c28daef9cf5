package gui

// Style holds colors and metrics used by widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32
	PanelHeaderTextColor uint32 // 0 = TextColor

	// Frame colors are the backgrounds of value fields.
	FrameBgColor        uint32
	FrameBgHoveredColor uint32
	FrameBgActiveColor  uint32
	FrameBorderColor    uint32

	FocusColor uint32

	FontScale    float32
	CharWidth    float32
	CharHeight   float32
	ItemSpacing  float32
	ItemInnerGap float32 // gap between parts of one widget
	PanelPadding float32
	FramePadding float32
	BorderSize   float32
}

// DefaultStyle returns the base metrics with a neutral gray palette.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:         RGBA(20, 20, 20, 220),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		FrameBgColor:        RGBA(45, 45, 45, 255),
		FrameBgHoveredColor: RGBA(65, 65, 65, 255),
		FrameBgActiveColor:  RGBA(85, 85, 85, 255),
		FrameBorderColor:    RGBA(100, 100, 100, 255),

		FocusColor: RGBA(255, 200, 0, 255),

		FontScale:    1.5,
		CharWidth:    8,
		CharHeight:   8,
		ItemSpacing:  4,
		ItemInnerGap: 4,
		PanelPadding: 8,
		FramePadding: 3,
		BorderSize:   1,
	}
}

// DarkStyle returns the Dear ImGui "dark" palette on top of DefaultStyle.
func DarkStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBAf(1, 1, 1, 1)
	s.TextDisabledColor = RGBAf(0.5, 0.5, 0.5, 1)
	s.PanelColor = RGBAf(0.06, 0.06, 0.06, 0.94)
	s.PanelBorderColor = RGBAf(0.43, 0.43, 0.50, 0.50)
	s.PanelHeaderBgColor = RGBAf(0.16, 0.29, 0.48, 1)
	s.FrameBgColor = RGBAf(0.16, 0.29, 0.48, 0.54)
	s.FrameBgHoveredColor = RGBAf(0.26, 0.59, 0.98, 0.40)
	s.FrameBgActiveColor = RGBAf(0.26, 0.59, 0.98, 0.67)
	s.FrameBorderColor = RGBAf(0.43, 0.43, 0.50, 0.50)
	s.FocusColor = RGBAf(0.26, 0.59, 0.98, 1)
	return s
}
