// Package term is a tcell backed input source for running the tracker in a
// text terminal.
//
// Terminals report key presses but never releases. A key reported during one
// drain reads as held; if the next drain does not report it again it is
// released at the end of that drain. Auto-repeat therefore keeps a key held
// as long as repeats arrive at least once per frame.
package term

import (
	"fmt"
	"slices"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/grove/engine/input"
	"github.com/kataras/golog"
)

var logger = golog.Child("[term]")

// Terminal implements input.Source and input.Grabber over a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	pending  []input.Event
	draining bool
	held     []input.Key // reported during the current drain
	stale    []input.Key // reported during the previous drain only

	buttons tcell.ButtonMask
	mx, my  int
	hasPos  bool
	clicks  *input.ClickCounter
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTerminal(screen)
}

func newTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.EnableFocus()
	screen.HideCursor()

	t := newSource()
	t.screen = screen
	go t.pump()
	return t, nil
}

func newSource() *Terminal {
	return &Terminal{
		events: make(chan tcell.Event, 256),
		done:   make(chan struct{}),
		clicks: input.NewClickCounter(),
	}
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.done)
			return
		}
		select {
		case t.events <- ev:
		default:
			logger.Warnf("event buffer full, dropping %T", ev)
		}
	}
}

// PollEvent never blocks. It returns nil once the events buffered so far
// are drained.
func (t *Terminal) PollEvent() input.Event {
	if !t.draining {
		t.draining = true
		t.stale, t.held = t.held, t.stale[:0]
	}
	for len(t.pending) == 0 {
		select {
		case ev := <-t.events:
			t.pending = t.convert(ev, t.pending)
		default:
			if len(t.stale) == 0 {
				t.draining = false
				return nil
			}
			for _, k := range t.stale {
				t.pending = append(t.pending, input.KeyEvent{Key: k, State: input.Released})
			}
			t.stale = t.stale[:0]
		}
	}
	ev := t.pending[0]
	t.pending = t.pending[1:]
	return ev
}

// SetMouseGrab switches between button-only and full motion reporting.
// Terminals cannot confine the pointer, so this never fails.
func (t *Terminal) SetMouseGrab(grab bool) error {
	if grab {
		t.screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		t.screen.EnableMouse(tcell.MouseButtonEvents)
	}
	t.hasPos = false
	return nil
}

func (t *Terminal) Size() (int, int) { return t.screen.Size() }

// Print writes text at column x, row y, clipped to the screen.
func (t *Terminal) Print(x, y int, style tcell.Style, text string) {
	w, _ := t.screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) Clear() { t.screen.Clear() }
func (t *Terminal) Show()  { t.screen.Show() }

// Close restores the terminal and waits for the event pump to stop.
func (t *Terminal) Close() {
	t.screen.Fini()
	select {
	case <-t.done:
	case <-time.After(time.Second):
		logger.Warnf("event pump did not stop")
	}
}

func (t *Terminal) convert(ev tcell.Event, out []input.Event) []input.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.convertKey(e, out)
	case *tcell.EventMouse:
		return t.convertMouse(e, out)
	case *tcell.EventResize:
		w, h := e.Size()
		return append(out, input.WindowEvent{Type: input.WindowSizeChanged, Data1: int32(w), Data2: int32(h)})
	case *tcell.EventFocus:
		typ := input.WindowFocusLost
		if e.Focused {
			typ = input.WindowFocusGained
		}
		return append(out, input.WindowEvent{Type: typ})
	}
	return out
}

func (t *Terminal) convertKey(e *tcell.EventKey, out []input.Event) []input.Event {
	if e.Key() == tcell.KeyCtrlC {
		return append(out, input.QuitEvent{})
	}
	k, mods := translateKey(e)
	if k == input.KeyUnknown {
		return out
	}

	repeat := false
	if i := slices.Index(t.stale, k); i >= 0 {
		t.stale = slices.Delete(t.stale, i, i+1)
		repeat = true
	}
	if slices.Contains(t.held, k) {
		repeat = true
	} else {
		t.held = append(t.held, k)
	}
	return append(out, input.KeyEvent{Key: k, State: input.Pressed, Mods: mods, Repeat: repeat})
}

var termKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

func translateKey(e *tcell.EventKey) (input.Key, input.Mod) {
	mods := translateMods(e.Modifiers())
	switch k := e.Key(); {
	case k == tcell.KeyRune:
		r := e.Rune()
		if unicode.IsUpper(r) {
			mods |= input.ModShift
		}
		return input.KeyFromRune(r), mods
	case termKeys[k] != input.KeyUnknown:
		return termKeys[k], mods
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// control characters not claimed above, e.g. Ctrl+W
		return input.KeyA + input.Key(k-tcell.KeyCtrlA), mods | input.ModCtrl
	}
	return input.KeyUnknown, mods
}

func translateMods(m tcell.ModMask) input.Mod {
	var out input.Mod
	if m&tcell.ModShift != 0 {
		out |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= input.ModSuper
	}
	return out
}

var termButtons = []struct {
	mask   tcell.ButtonMask
	button input.Button
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button2, input.ButtonRight},
	{tcell.Button3, input.ButtonMiddle},
}

func (t *Terminal) convertMouse(e *tcell.EventMouse, out []input.Event) []input.Event {
	x, y := e.Position()
	fx, fy := float64(x), float64(y)

	if !t.hasPos || x != t.mx || y != t.my {
		ev := input.MotionEvent{X: fx, Y: fy}
		if t.hasPos {
			ev.XRel, ev.YRel = float64(x-t.mx), float64(y-t.my)
		}
		out = append(out, ev)
		t.mx, t.my, t.hasPos = x, y, true
	}

	btns := e.Buttons()
	now := time.Now()
	for _, b := range termButtons {
		was, is := t.buttons&b.mask != 0, btns&b.mask != 0
		switch {
		case is && !was:
			n := t.clicks.Press(b.button, fx, fy, now)
			out = append(out, input.ButtonEvent{Button: b.button, State: input.Pressed, Clicks: n, X: fx, Y: fy})
		case was && !is:
			out = append(out, input.ButtonEvent{Button: b.button, State: input.Released, Clicks: t.clicks.Count(b.button), X: fx, Y: fy})
		}
	}
	t.buttons = btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	var sx, sy float64
	if btns&tcell.WheelUp != 0 {
		sy++
	}
	if btns&tcell.WheelDown != 0 {
		sy--
	}
	if btns&tcell.WheelRight != 0 {
		sx++
	}
	if btns&tcell.WheelLeft != 0 {
		sx--
	}
	if sx != 0 || sy != 0 {
		out = append(out, input.ScrollEvent{X: sx, Y: sy, Direction: input.ScrollNormal})
	}
	return out
}
