package gui

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key identifies a keyboard key the UI reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// EventKind is the type of a platform event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventMouseMove
	EventMouseButton
	EventMouseWheel
	EventKey
)

var eventKindNames = [...]string{
	EventNone:        "none",
	EventQuit:        "quit",
	EventMouseMove:   "mouse-move",
	EventMouseButton: "mouse-button",
	EventMouseWheel:  "mouse-wheel",
	EventKey:         "key",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is one input event produced by the windowing layer.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	X, Y   float32 // mouse position or wheel offset
	Button MouseButton
	Key    Key
	Down   bool
}

// QuitEvent returns an event requesting that the application stop.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// InputState holds the input seen by widgets during one frame.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyHoldTime [KeyCount]float32
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears the single-frame edges (clicks, releases, wheel).
// Held buttons and keys stay down.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// ProcessEvent folds a platform event into the input state.
// It reports whether the event was a quit request.
func (s *InputState) ProcessEvent(ev Event) (quit bool) {
	switch ev.Kind {
	case EventQuit:
		return true
	case EventMouseMove:
		s.SetMousePos(ev.X, ev.Y)
	case EventMouseButton:
		s.SetMouseButton(ev.Button, ev.Down)
	case EventMouseWheel:
		s.MouseWheelX += ev.X
		s.MouseWheelY += ev.Y
	case EventKey:
		s.SetKey(ev.Key, ev.Down)
	}
	return false
}

// SetMousePos sets the cursor position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button transition.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey records a key transition.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat advances hold timers. Call once per frame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for k := range s.keyDown {
		if s.keyDown[k] {
			s.keyHoldTime[k] += dt
		}
	}
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked reports whether button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased reports whether button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown reports whether key is held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed reports whether key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated is true on the initial press and then at KeyRepeatInterval
// once the key has been held for KeyRepeatDelay.
func (s *InputState) KeyRepeated(key Key, dt float32) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}
	held := s.keyHoldTime[key]
	if held < KeyRepeatDelay {
		return false
	}
	since := held - KeyRepeatDelay
	return int(since/KeyRepeatInterval) > int((since-dt)/KeyRepeatInterval)
}
