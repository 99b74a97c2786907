package input

// Event is a raw notification from a platform event source.
type Event interface{ isEvent() }

// State is the raw state reported for a key or button.
type State uint8

const (
	Released State = iota
	Pressed
)

func (s State) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

type KeyEvent struct {
	Key    Key
	State  State
	Mods   Mod
	Repeat bool // platform auto-repeat; carried through, ignored by edge detection
}

func (KeyEvent) isEvent() {}

type ButtonEvent struct {
	Button Button
	State  State
	Clicks int // 1 = single, 2 = double, ...
	X, Y   float64
}

func (ButtonEvent) isEvent() {}

// MotionEvent carries the absolute cursor position and the relative motion
// since the previous motion event.
type MotionEvent struct {
	X, Y       float64
	XRel, YRel float64
}

func (MotionEvent) isEvent() {}

type ScrollEvent struct {
	X, Y      float64
	Direction ScrollDirection
}

func (ScrollEvent) isEvent() {}

type WindowEvent struct {
	WindowID     uint32
	Type         WindowEventType
	Data1, Data2 int32
}

func (WindowEvent) isEvent() {}

type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// ScrollDirection is the sign the platform applies to wheel deltas.
type ScrollDirection int

const (
	ScrollNormal  ScrollDirection = 1
	ScrollFlipped ScrollDirection = -1
)

type Button uint8

const (
	ButtonUnknown Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "unknown"
	}
}

type WindowEventType uint8

const (
	WindowNone WindowEventType = iota
	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
)

var windowEventNames = [...]string{
	WindowNone:        "none",
	WindowShown:       "shown",
	WindowHidden:      "hidden",
	WindowExposed:     "exposed",
	WindowMoved:       "moved",
	WindowResized:     "resized",
	WindowSizeChanged: "size-changed",
	WindowMinimized:   "minimized",
	WindowMaximized:   "maximized",
	WindowRestored:    "restored",
	WindowEnter:       "enter",
	WindowLeave:       "leave",
	WindowFocusGained: "focus-gained",
	WindowFocusLost:   "focus-lost",
	WindowClose:       "close",
}

func (t WindowEventType) String() string {
	if int(t) < len(windowEventNames) {
		return windowEventNames[t]
	}
	return "unknown"
}

// Mod is a bitmask of modifier keys active when a key event was reported.
type Mod uint16

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
	ModCaps  Mod = 1 << 4
	ModNum   Mod = 1 << 5
)
