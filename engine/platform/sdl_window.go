package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/input"
	"github.com/kataras/golog"
	"github.com/veandco/go-sdl2/sdl"
)

var logger = golog.Child("[platform]")

// SDLWindow implements core.Window over SDL2. It is the tracker's event
// source: PollEvent drains sdl.PollEvent and translates each event.
type SDLWindow struct {
	w   *sdl.Window
	ctx sdl.GLContext
}

// Must be called on main thread before any GL calls.
func NewSDLWindow(cfg core.Config) (*SDLWindow, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 3},
		{sdl.GL_CONTEXT_PROFILE_MASK, int(sdl.GL_CONTEXT_PROFILE_CORE)},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl gl attribute %d: %w", a.attr, err)
		}
	}

	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}
	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl gl context: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warnf("swap interval %d: %v", interval, err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(ctx)
		win.Destroy()
		sdl.Quit()
		return nil, err
	}
	logger.Infof("GL: %s (SDL)", gl.GoStr(gl.GetString(gl.VERSION)))

	return &SDLWindow{w: win, ctx: ctx}, nil
}

func (s *SDLWindow) PollEvent() input.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if out := translateSDLEvent(ev); out != nil {
			return out
		}
	}
	return nil
}

// SetMouseGrab switches SDL relative mouse mode, which hides the cursor and
// confines it to the window.
func (s *SDLWindow) SetMouseGrab(grab bool) error {
	if sdl.SetRelativeMouseMode(grab) < 0 {
		return fmt.Errorf("sdl relative mouse mode: %w", sdl.GetError())
	}
	s.w.SetGrab(grab)
	return nil
}

func (s *SDLWindow) SwapBuffers()      { s.w.GLSwap() }
func (s *SDLWindow) SetTitle(t string) { s.w.SetTitle(t) }

func (s *SDLWindow) FramebufferSize() (int, int) {
	w, h := s.w.GLGetDrawableSize()
	return int(w), int(h)
}

func (s *SDLWindow) Destroy() {
	sdl.GLDeleteContext(s.ctx)
	if err := s.w.Destroy(); err != nil {
		logger.Warnf("sdl destroy window: %v", err)
	}
	sdl.Quit()
}

func translateSDLEvent(ev sdl.Event) input.Event {
	switch e := ev.(type) {
	case *sdl.KeyboardEvent:
		k := translateSDLKey(e.Keysym.Sym)
		if k == input.KeyUnknown {
			return nil
		}
		return input.KeyEvent{
			Key:    k,
			State:  sdlState(e.State),
			Mods:   translateSDLMods(e.Keysym.Mod),
			Repeat: e.Repeat != 0,
		}
	case *sdl.MouseButtonEvent:
		return input.ButtonEvent{
			Button: translateSDLButton(e.Button),
			State:  sdlState(e.State),
			Clicks: int(e.Clicks),
			X:      float64(e.X),
			Y:      float64(e.Y),
		}
	case *sdl.MouseMotionEvent:
		return input.MotionEvent{
			X: float64(e.X), Y: float64(e.Y),
			XRel: float64(e.XRel), YRel: float64(e.YRel),
		}
	case *sdl.MouseWheelEvent:
		dir := input.ScrollNormal
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			dir = input.ScrollFlipped
		}
		return input.ScrollEvent{X: float64(e.X), Y: float64(e.Y), Direction: dir}
	case *sdl.WindowEvent:
		t, ok := sdlWindowEvents[e.Event]
		if !ok {
			return nil
		}
		return input.WindowEvent{WindowID: e.WindowID, Type: t, Data1: e.Data1, Data2: e.Data2}
	case *sdl.QuitEvent:
		return input.QuitEvent{}
	}
	return nil
}

func sdlState(s uint8) input.State {
	if s == uint8(sdl.PRESSED) {
		return input.Pressed
	}
	return input.Released
}

var sdlWindowEvents = map[uint8]input.WindowEventType{
	uint8(sdl.WINDOWEVENT_SHOWN):        input.WindowShown,
	uint8(sdl.WINDOWEVENT_HIDDEN):       input.WindowHidden,
	uint8(sdl.WINDOWEVENT_EXPOSED):      input.WindowExposed,
	uint8(sdl.WINDOWEVENT_MOVED):        input.WindowMoved,
	uint8(sdl.WINDOWEVENT_RESIZED):      input.WindowResized,
	uint8(sdl.WINDOWEVENT_SIZE_CHANGED): input.WindowSizeChanged,
	uint8(sdl.WINDOWEVENT_MINIMIZED):    input.WindowMinimized,
	uint8(sdl.WINDOWEVENT_MAXIMIZED):    input.WindowMaximized,
	uint8(sdl.WINDOWEVENT_RESTORED):     input.WindowRestored,
	uint8(sdl.WINDOWEVENT_ENTER):        input.WindowEnter,
	uint8(sdl.WINDOWEVENT_LEAVE):        input.WindowLeave,
	uint8(sdl.WINDOWEVENT_FOCUS_GAINED): input.WindowFocusGained,
	uint8(sdl.WINDOWEVENT_FOCUS_LOST):   input.WindowFocusLost,
	uint8(sdl.WINDOWEVENT_CLOSE):        input.WindowClose,
}

func translateSDLButton(b uint8) input.Button {
	switch b {
	case uint8(sdl.BUTTON_LEFT):
		return input.ButtonLeft
	case uint8(sdl.BUTTON_MIDDLE):
		return input.ButtonMiddle
	case uint8(sdl.BUTTON_RIGHT):
		return input.ButtonRight
	case uint8(sdl.BUTTON_X1):
		return input.ButtonX1
	case uint8(sdl.BUTTON_X2):
		return input.ButtonX2
	default:
		return input.ButtonUnknown
	}
}

var sdlKeys = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_RETURN:    input.KeyEnter,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_INSERT:    input.KeyInsert,
	sdl.K_DELETE:    input.KeyDelete,
	sdl.K_HOME:      input.KeyHome,
	sdl.K_END:       input.KeyEnd,
	sdl.K_PAGEUP:    input.KeyPageUp,
	sdl.K_PAGEDOWN:  input.KeyPageDown,
	sdl.K_UP:        input.KeyUp,
	sdl.K_DOWN:      input.KeyDown,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_F1:        input.KeyF1,
	sdl.K_F2:        input.KeyF2,
	sdl.K_F3:        input.KeyF3,
	sdl.K_F4:        input.KeyF4,
	sdl.K_F5:        input.KeyF5,
	sdl.K_F6:        input.KeyF6,
	sdl.K_F7:        input.KeyF7,
	sdl.K_F8:        input.KeyF8,
	sdl.K_F9:        input.KeyF9,
	sdl.K_F10:       input.KeyF10,
	sdl.K_F11:       input.KeyF11,
	sdl.K_F12:       input.KeyF12,
	sdl.K_LSHIFT:    input.KeyLeftShift,
	sdl.K_RSHIFT:    input.KeyRightShift,
	sdl.K_LCTRL:     input.KeyLeftCtrl,
	sdl.K_RCTRL:     input.KeyRightCtrl,
	sdl.K_LALT:      input.KeyLeftAlt,
	sdl.K_RALT:      input.KeyRightAlt,
	sdl.K_LGUI:      input.KeyLeftSuper,
	sdl.K_RGUI:      input.KeyRightSuper,
	sdl.K_CAPSLOCK:  input.KeyCapsLock,
}

// SDL keycodes for printable keys are their ASCII values.
func translateSDLKey(k sdl.Keycode) input.Key {
	if key, ok := sdlKeys[k]; ok {
		return key
	}
	if k > 0 && k < 0x80 {
		return input.KeyFromRune(rune(k))
	}
	return input.KeyUnknown
}

func translateSDLMods(m uint16) input.Mod {
	var out input.Mod
	mod := uint32(m)
	if mod&uint32(sdl.KMOD_SHIFT) != 0 {
		out |= input.ModShift
	}
	if mod&uint32(sdl.KMOD_CTRL) != 0 {
		out |= input.ModCtrl
	}
	if mod&uint32(sdl.KMOD_ALT) != 0 {
		out |= input.ModAlt
	}
	if mod&uint32(sdl.KMOD_GUI) != 0 {
		out |= input.ModSuper
	}
	if mod&uint32(sdl.KMOD_CAPS) != 0 {
		out |= input.ModCaps
	}
	if mod&uint32(sdl.KMOD_NUM) != 0 {
		out |= input.ModNum
	}
	return out
}
