package input

import (
	"errors"
	"testing"
)

func down(k Key) KeyEvent { return KeyEvent{Key: k, State: Pressed} }
func up(k Key) KeyEvent   { return KeyEvent{Key: k, State: Released} }

// frame pushes evs and runs one Update over them.
func frame(t *testing.T, q *Queue, tr *Tracker, evs ...Event) {
	t.Helper()
	q.Push(evs...)
	if n := tr.Update(); n != len(evs) {
		t.Fatalf("Update() ingested %d events, want %d", n, len(evs))
	}
}

func newTracker() (*Queue, *Tracker) {
	q := NewQueue(16)
	return q, New(q)
}

func TestKeyPressedIsOneShot(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr, down(KeyW))
	if !tr.IsKeyPressed(KeyW) || !tr.IsKeyHeld(KeyW) {
		t.Fatalf("after down: pressed=%t held=%t, want both true", tr.IsKeyPressed(KeyW), tr.IsKeyHeld(KeyW))
	}
	if tr.IsKeyReleased(KeyW) {
		t.Fatal("IsKeyReleased(W) = true while held")
	}
	tr.EndFrame()

	if tr.IsKeyPressed(KeyW) {
		t.Error("IsKeyPressed(W) still true after EndFrame")
	}
	if !tr.IsKeyHeld(KeyW) {
		t.Error("IsKeyHeld(W) = false after EndFrame, key was never released")
	}

	frame(t, q, tr, up(KeyW))
	if tr.IsKeyHeld(KeyW) || !tr.IsKeyReleased(KeyW) {
		t.Errorf("after up: held=%t released=%t", tr.IsKeyHeld(KeyW), tr.IsKeyReleased(KeyW))
	}
}

func TestRepeatedDownDoesNotRetrigger(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr, down(KeyA))
	tr.EndFrame()

	for i := 0; i < 5; i++ {
		frame(t, q, tr, KeyEvent{Key: KeyA, State: Pressed, Repeat: true}, down(KeyA))
		if tr.IsKeyPressed(KeyA) {
			t.Fatalf("cycle %d: repeated down re-triggered IsKeyPressed", i)
		}
		tr.EndFrame()
	}

	frame(t, q, tr, up(KeyA))
	tr.EndFrame()
	frame(t, q, tr, down(KeyA))
	if !tr.IsKeyPressed(KeyA) {
		t.Error("press after release did not trigger IsKeyPressed")
	}
}

func TestTapWithinOneFrame(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr, down(KeySpace), up(KeySpace))
	if !tr.IsKeyPressed(KeySpace) {
		t.Error("down+up in one frame should still report the press edge")
	}
	if tr.IsKeyHeld(KeySpace) {
		t.Error("key released in the same frame reads held")
	}
}

func TestUnseenKeysReadAsDefaults(t *testing.T) {
	_, tr := newTracker()

	for _, k := range []Key{KeyUnknown, KeyA, KeyF12, KeyLast, KeyLast + 1, Key(0xFFFF)} {
		if tr.IsKeyHeld(k) || tr.IsKeyPressed(k) || !tr.IsKeyReleased(k) {
			t.Errorf("key %d: held=%t pressed=%t released=%t", k, tr.IsKeyHeld(k), tr.IsKeyPressed(k), tr.IsKeyReleased(k))
		}
		if m := tr.KeyMods(k); m != ModNone {
			t.Errorf("KeyMods(%d) = %v, want none", k, m)
		}
	}
}

func TestOutOfRangeEventsAreIgnored(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr,
		KeyEvent{Key: KeyLast + 5, State: Pressed},
		KeyEvent{Key: KeyUnknown, State: Pressed},
		ButtonEvent{Button: Button(200), State: Pressed},
		WindowEvent{Type: WindowEventType(99)},
	)
	if tr.IsKeyHeld(KeyUnknown) {
		t.Error("KeyUnknown became held")
	}
	if tr.IsButtonPressed(Button(200)) {
		t.Error("out of range button reads pressed")
	}
	if tr.HasWindowEvent(WindowEventType(99)) {
		t.Error("unknown window event type was recorded")
	}
}

func TestKeyModsFollowLatestEvent(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr, KeyEvent{Key: KeyS, State: Pressed, Mods: ModCtrl})
	if got := tr.KeyMods(KeyS); got != ModCtrl {
		t.Fatalf("KeyMods = %v, want ctrl", got)
	}
	frame(t, q, tr, KeyEvent{Key: KeyS, State: Pressed, Mods: ModCtrl | ModShift})
	if got := tr.KeyState(KeyS); got.Mods != ModCtrl|ModShift || got.State != Pressed || got.Key != KeyS {
		t.Errorf("KeyState = %+v", got)
	}
}

func TestButtonPressedIsLevel(t *testing.T) {
	q, tr := newTracker()

	if !tr.IsButtonReleased(ButtonLeft) || tr.IsButtonPressed(ButtonLeft) {
		t.Fatal("unseen button should read released")
	}

	frame(t, q, tr, ButtonEvent{Button: ButtonLeft, State: Pressed, Clicks: 2})
	if !tr.IsButtonPressed(ButtonLeft) {
		t.Fatal("IsButtonPressed(left) = false after down")
	}
	if got := tr.ButtonClicks(ButtonLeft); got != 2 {
		t.Errorf("ButtonClicks = %d, want 2", got)
	}

	for i := 0; i < 3; i++ {
		tr.EndFrame()
		tr.Update()
		if !tr.IsButtonPressed(ButtonLeft) {
			t.Fatalf("frame %d: held button stopped reading pressed", i)
		}
	}

	frame(t, q, tr, ButtonEvent{Button: ButtonLeft, State: Released, Clicks: 1})
	if tr.IsButtonPressed(ButtonLeft) || !tr.IsButtonReleased(ButtonLeft) {
		t.Error("button still pressed after release")
	}
	if tr.IsButtonPressed(ButtonRight) {
		t.Error("right button affected by left button events")
	}
}

func TestButtonTransitionsPerCycle(t *testing.T) {
	q, tr := newTracker()
	press := ButtonEvent{Button: ButtonLeft, State: Pressed, Clicks: 1}
	release := ButtonEvent{Button: ButtonLeft, State: Released, Clicks: 1}

	frame(t, q, tr, press)
	if !tr.IsButtonJustPressed(ButtonLeft) || tr.IsButtonJustReleased(ButtonLeft) {
		t.Fatalf("after down: just pressed=%t released=%t, want true false",
			tr.IsButtonJustPressed(ButtonLeft), tr.IsButtonJustReleased(ButtonLeft))
	}
	tr.EndFrame()

	// a second down without an up is not a new edge
	frame(t, q, tr, press)
	if tr.IsButtonJustPressed(ButtonLeft) {
		t.Error("repeated down reported a new transition")
	}
	if !tr.IsButtonPressed(ButtonLeft) {
		t.Error("level read lost while held")
	}
	tr.EndFrame()

	frame(t, q, tr, release)
	if !tr.IsButtonJustReleased(ButtonLeft) || tr.IsButtonJustPressed(ButtonLeft) {
		t.Error("release edge not recorded")
	}
	tr.EndFrame()
	if tr.IsButtonJustReleased(ButtonLeft) {
		t.Error("release edge survived EndFrame")
	}

	// a click inside one cycle leaves the level released but both edges set
	frame(t, q, tr, press, release)
	if tr.IsButtonPressed(ButtonLeft) {
		t.Error("IsButtonPressed true after a click that ended this cycle")
	}
	if !tr.IsButtonJustPressed(ButtonLeft) || !tr.IsButtonJustReleased(ButtonLeft) {
		t.Error("click within one cycle lost an edge")
	}
	if tr.IsButtonJustPressed(ButtonRight) || tr.IsButtonJustPressed(Button(42)) {
		t.Error("edge reported for an untouched button")
	}
}

func TestMouseMotionAccumulates(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr,
		MotionEvent{X: 10, Y: 10, XRel: 1, YRel: -2},
		MotionEvent{X: 13, Y: 9, XRel: 3, YRel: -1},
		MotionEvent{X: 8, Y: 14, XRel: -5, YRel: 5},
	)
	if !tr.HasMouseMoved() {
		t.Fatal("HasMouseMoved() = false")
	}
	mm := tr.MouseMove()
	if mm.XRel != -1 || mm.YRel != 2 {
		t.Errorf("rel = (%v,%v), want (-1,2)", mm.XRel, mm.YRel)
	}
	if mm.X != 8 || mm.Y != 14 {
		t.Errorf("abs = (%v,%v), want latest (8,14)", mm.X, mm.Y)
	}

	tr.EndFrame()
	mm = tr.MouseMove()
	if tr.HasMouseMoved() || mm.Moved || mm.XRel != 0 || mm.YRel != 0 {
		t.Errorf("after EndFrame: %+v", mm)
	}
	if mm.X != 8 || mm.Y != 14 {
		t.Errorf("absolute position lost on EndFrame: (%v,%v)", mm.X, mm.Y)
	}
}

func TestScrollAccumulates(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr,
		ScrollEvent{X: 2, Y: 0, Direction: ScrollNormal},
		ScrollEvent{X: 0, Y: 3, Direction: ScrollFlipped},
	)
	if !tr.HasScrolled() || tr.XScroll() != 2 || tr.YScroll() != 3 {
		t.Fatalf("scrolled=%t x=%v y=%v, want true 2 3", tr.HasScrolled(), tr.XScroll(), tr.YScroll())
	}
	if tr.ScrollDirection() != ScrollFlipped {
		t.Errorf("ScrollDirection = %v, want latest (flipped)", tr.ScrollDirection())
	}

	tr.EndFrame()
	if tr.HasScrolled() || tr.XScroll() != 0 || tr.YScroll() != 0 {
		t.Errorf("after EndFrame: scrolled=%t x=%v y=%v", tr.HasScrolled(), tr.XScroll(), tr.YScroll())
	}
}

func TestWindowEventsKeyedByType(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr,
		WindowEvent{WindowID: 1, Type: WindowSizeChanged, Data1: 800, Data2: 600},
		WindowEvent{WindowID: 1, Type: WindowFocusGained},
		WindowEvent{WindowID: 1, Type: WindowSizeChanged, Data1: 1024, Data2: 768},
	)
	ev, ok := tr.WindowEvent(WindowSizeChanged)
	if !ok || ev.Data1 != 1024 || ev.Data2 != 768 {
		t.Errorf("WindowEvent(size) = %+v, %t; want latest 1024x768", ev, ok)
	}
	if !tr.HasWindowEvent(WindowFocusGained) {
		t.Error("focus event missing")
	}
	if tr.HasWindowEvent(WindowMoved) {
		t.Error("unexpected moved event")
	}
	if _, ok := tr.WindowEvent(WindowMoved); ok {
		t.Error("WindowEvent(moved) reported ok")
	}

	tr.EndFrame()
	if tr.HasWindowEvent(WindowSizeChanged) || tr.HasWindowEvent(WindowFocusGained) {
		t.Error("window events survived EndFrame")
	}
}

func TestQuitIsSticky(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"quit event", QuitEvent{}},
		{"window close", WindowEvent{Type: WindowClose, WindowID: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, tr := newTracker()
			frame(t, q, tr, tt.ev)
			if !tr.HasQuit() {
				t.Fatal("HasQuit() = false")
			}
			tr.EndFrame()
			tr.EndFrame()
			if !tr.HasQuit() {
				t.Fatal("quit cleared by EndFrame")
			}
			tr.AcknowledgeQuit()
			if tr.HasQuit() {
				t.Fatal("quit survived AcknowledgeQuit")
			}
		})
	}

	_, tr := newTracker()
	tr.Ingest(WindowEvent{Type: WindowClose, WindowID: 3})
	if ev, ok := tr.WindowEvent(WindowClose); !ok || ev.WindowID != 3 {
		t.Errorf("close event not recorded: %+v %t", ev, ok)
	}

	tr.AcknowledgeQuit()
	tr.RequestQuit()
	if !tr.HasQuit() {
		t.Error("RequestQuit did not set quit")
	}
}

func TestEndFrameIsIdempotent(t *testing.T) {
	q, tr := newTracker()

	frame(t, q, tr,
		down(KeyE),
		MotionEvent{XRel: 4, YRel: 4},
		ScrollEvent{Y: 1},
		WindowEvent{Type: WindowMoved},
	)
	for i := 0; i < 2; i++ {
		tr.EndFrame()
		if tr.IsKeyPressed(KeyE) || tr.HasMouseMoved() || tr.HasScrolled() || tr.HasWindowEvent(WindowMoved) {
			t.Fatalf("EndFrame #%d left per-cycle state set", i+1)
		}
		if mm := tr.MouseMove(); mm.XRel != 0 || mm.YRel != 0 {
			t.Fatalf("EndFrame #%d left motion %+v", i+1, mm)
		}
		if !tr.IsKeyHeld(KeyE) {
			t.Fatalf("EndFrame #%d released a held key", i+1)
		}
	}
	if got := tr.Frame(); got != 2 {
		t.Errorf("Frame() = %d, want 2", got)
	}
}

func TestUpdateDrainsVariableCounts(t *testing.T) {
	q, tr := newTracker()

	if n := tr.Update(); n != 0 {
		t.Fatalf("empty Update() = %d", n)
	}
	for _, count := range []int{1, 7, 0, 32} {
		for i := 0; i < count; i++ {
			q.Push(MotionEvent{XRel: 1})
		}
		if n := tr.Update(); n != count {
			t.Errorf("Update() = %d, want %d", n, count)
		}
		if got := tr.MouseMove().XRel; got != float64(count) {
			t.Errorf("XRel = %v, want %d", got, count)
		}
		if q.Len() != 0 {
			t.Errorf("queue not drained, %d left", q.Len())
		}
		tr.EndFrame()
	}
}

func TestNilSourceUpdate(t *testing.T) {
	tr := New(nil)
	if n := tr.Update(); n != 0 {
		t.Errorf("Update() with nil source = %d", n)
	}
	tr.Ingest(down(KeyQ))
	if !tr.IsKeyPressed(KeyQ) {
		t.Error("Ingest without source did not register")
	}
}

type fakeGrabber struct {
	calls []bool
	err   error
}

func (g *fakeGrabber) SetMouseGrab(grab bool) error {
	g.calls = append(g.calls, grab)
	return g.err
}

type grabbingQueue struct {
	*Queue
	fakeGrabber
}

func TestGrabIsIdempotent(t *testing.T) {
	g := &fakeGrabber{}
	tr := New(NewQueue(0), WithGrabber(g))

	tr.ReleaseMouse()
	tr.GrabMouse()
	tr.GrabMouse()
	if !tr.IsMouseGrabbed() {
		t.Fatal("IsMouseGrabbed() = false after GrabMouse")
	}
	tr.EndFrame()
	if !tr.IsMouseGrabbed() {
		t.Fatal("EndFrame released the grab")
	}
	tr.ReleaseMouse()
	tr.ReleaseMouse()

	want := []bool{true, false}
	if len(g.calls) != len(want) {
		t.Fatalf("platform calls = %v, want %v", g.calls, want)
	}
	for i := range want {
		if g.calls[i] != want[i] {
			t.Fatalf("platform calls = %v, want %v", g.calls, want)
		}
	}
}

func TestGrabFailureKeepsState(t *testing.T) {
	g := &fakeGrabber{err: errors.New("no relative mode")}
	tr := New(nil, WithGrabber(g))

	tr.GrabMouse()
	if tr.IsMouseGrabbed() {
		t.Error("grab state changed although the platform refused")
	}
}

func TestSourceGrabberDetected(t *testing.T) {
	src := &grabbingQueue{Queue: NewQueue(0)}
	tr := New(src)

	tr.GrabMouse()
	if len(src.calls) != 1 || !src.calls[0] {
		t.Errorf("source grabber not used: %v", src.calls)
	}
}
