package platform

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/input"
)

// GLFW has a single window per process here; events carry this ID.
const glfwWindowID = 1

// GLFWWindow implements core.Window over GLFW. GLFW delivers input through
// callbacks, which push into a queue; PollEvent pumps GLFW once per drain and
// then hands the queued events out one by one.
type GLFWWindow struct {
	w      *glfw.Window
	queue  *input.Queue
	pumped bool
	clicks *input.ClickCounter

	// previous cursor position, for relative motion
	cx, cy    float64
	hasCursor bool
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	logger.Infof("GL: %s (GLFW)", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{
		w:      win,
		queue:  input.NewQueue(64),
		clicks: input.NewClickCounter(),
	}
	gw.install()
	return gw, nil
}

// install translates GLFW callbacks into queued input events.
func (g *GLFWWindow) install() {
	win := g.w
	win.SetCloseCallback(func(w *glfw.Window) {
		// closing is the tracker's decision; it can be acknowledged away
		w.SetShouldClose(false)
		g.window(input.WindowClose, 0, 0)
	})
	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		g.window(input.WindowResized, w, h)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.window(input.WindowSizeChanged, w, h)
	})
	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		g.window(input.WindowMoved, x, y)
	})
	win.SetRefreshCallback(func(*glfw.Window) {
		g.window(input.WindowExposed, 0, 0)
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			g.window(input.WindowFocusGained, 0, 0)
		} else {
			g.window(input.WindowFocusLost, 0, 0)
		}
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			g.window(input.WindowMinimized, 0, 0)
		} else {
			g.window(input.WindowRestored, 0, 0)
		}
	})
	win.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		if maximized {
			g.window(input.WindowMaximized, 0, 0)
		} else {
			g.window(input.WindowRestored, 0, 0)
		}
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			g.window(input.WindowEnter, 0, 0)
		} else {
			g.window(input.WindowLeave, 0, 0)
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ev := input.MotionEvent{X: x, Y: y}
		if g.hasCursor {
			ev.XRel, ev.YRel = x-g.cx, y-g.cy
		}
		g.cx, g.cy, g.hasCursor = x, y, true
		g.queue.Push(ev)
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		btn := translateGLFWButton(b)
		ev := input.ButtonEvent{Button: btn, X: x, Y: y}
		if action == glfw.Press {
			ev.State = input.Pressed
			ev.Clicks = g.clicks.Press(btn, x, y, time.Now())
		} else {
			ev.State = input.Released
			ev.Clicks = g.clicks.Count(btn)
		}
		g.queue.Push(ev)
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.queue.Push(input.ScrollEvent{X: xoff, Y: yoff, Direction: input.ScrollNormal})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateGLFWKey(key)
		if k == input.KeyUnknown {
			return
		}
		state := input.Pressed
		if action == glfw.Release {
			state = input.Released
		}
		g.queue.Push(input.KeyEvent{
			Key:    k,
			State:  state,
			Mods:   translateGLFWMods(mods),
			Repeat: action == glfw.Repeat,
		})
	})
}

func (g *GLFWWindow) window(t input.WindowEventType, d1, d2 int) {
	g.queue.Push(input.WindowEvent{WindowID: glfwWindowID, Type: t, Data1: int32(d1), Data2: int32(d2)})
}

func (g *GLFWWindow) PollEvent() input.Event {
	if !g.pumped {
		glfw.PollEvents()
		g.pumped = true
	}
	ev := g.queue.PollEvent()
	if ev == nil {
		g.pumped = false
	}
	return ev
}

// SetMouseGrab disables the cursor, which GLFW turns into unbounded relative
// motion, using raw motion where the platform offers it.
func (g *GLFWWindow) SetMouseGrab(grab bool) error {
	mode := glfw.CursorNormal
	if grab {
		mode = glfw.CursorDisabled
	}
	g.w.SetInputMode(glfw.CursorMode, mode)
	if glfw.RawMouseMotionSupported() {
		raw := glfw.False
		if grab {
			raw = glfw.True
		}
		g.w.SetInputMode(glfw.RawMouseMotion, raw)
	}
	if got := g.w.GetInputMode(glfw.CursorMode); got != mode {
		return fmt.Errorf("glfw cursor mode is %#x, want %#x", got, mode)
	}
	// the cursor jumps when the mode flips; don't report it as motion
	g.hasCursor = false
	return nil
}

func (g *GLFWWindow) SwapBuffers()                { g.w.SwapBuffers() }
func (g *GLFWWindow) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)           { g.w.SetTitle(t) }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyEnter:        input.KeyEnter,
	glfw.KeyTab:          input.KeyTab,
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyInsert:       input.KeyInsert,
	glfw.KeyDelete:       input.KeyDelete,
	glfw.KeyHome:         input.KeyHome,
	glfw.KeyEnd:          input.KeyEnd,
	glfw.KeyPageUp:       input.KeyPageUp,
	glfw.KeyPageDown:     input.KeyPageDown,
	glfw.KeyUp:           input.KeyUp,
	glfw.KeyDown:         input.KeyDown,
	glfw.KeyLeft:         input.KeyLeft,
	glfw.KeyRight:        input.KeyRight,
	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyEqual:        input.KeyEqual,
	glfw.KeyLeftBracket:  input.KeyLeftBracket,
	glfw.KeyRightBracket: input.KeyRightBracket,
	glfw.KeyBackslash:    input.KeyBackslash,
	glfw.KeySemicolon:    input.KeySemicolon,
	glfw.KeyApostrophe:   input.KeyApostrophe,
	glfw.KeyGraveAccent:  input.KeyGrave,
	glfw.KeyComma:        input.KeyComma,
	glfw.KeyPeriod:       input.KeyPeriod,
	glfw.KeySlash:        input.KeySlash,
	glfw.KeyF1:           input.KeyF1,
	glfw.KeyF2:           input.KeyF2,
	glfw.KeyF3:           input.KeyF3,
	glfw.KeyF4:           input.KeyF4,
	glfw.KeyF5:           input.KeyF5,
	glfw.KeyF6:           input.KeyF6,
	glfw.KeyF7:           input.KeyF7,
	glfw.KeyF8:           input.KeyF8,
	glfw.KeyF9:           input.KeyF9,
	glfw.KeyF10:          input.KeyF10,
	glfw.KeyF11:          input.KeyF11,
	glfw.KeyF12:          input.KeyF12,
	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyLeftControl:  input.KeyLeftCtrl,
	glfw.KeyRightControl: input.KeyRightCtrl,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyRightAlt:     input.KeyRightAlt,
	glfw.KeyLeftSuper:    input.KeyLeftSuper,
	glfw.KeyRightSuper:   input.KeyRightSuper,
	glfw.KeyCapsLock:     input.KeyCapsLock,
}

// GLFW letter and digit keys use their uppercase ASCII codes.
func translateGLFWKey(k glfw.Key) input.Key {
	if key, ok := glfwKeys[k]; ok {
		return key
	}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ, k >= glfw.Key0 && k <= glfw.Key9:
		return input.KeyFromRune(rune(k))
	}
	return input.KeyUnknown
}

func translateGLFWButton(b glfw.MouseButton) input.Button {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	case glfw.MouseButtonRight:
		return input.ButtonRight
	case glfw.MouseButton4:
		return input.ButtonX1
	case glfw.MouseButton5:
		return input.ButtonX2
	default:
		return input.ButtonUnknown
	}
}

func translateGLFWMods(m glfw.ModifierKey) input.Mod {
	var out input.Mod
	if m&glfw.ModShift != 0 {
		out |= input.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= input.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= input.ModSuper
	}
	if m&glfw.ModCapsLock != 0 {
		out |= input.ModCaps
	}
	if m&glfw.ModNumLock != 0 {
		out |= input.ModNum
	}
	return out
}
