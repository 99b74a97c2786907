package input

import "github.com/kataras/golog"

// KeyState is the latest raw report for a key.
type KeyState struct {
	Key   Key
	State State
	Mods  Mod
}

// ButtonState is the latest raw report for a mouse button.
type ButtonState struct {
	Button Button
	State  State
	Clicks int
}

// MouseMotion is the cursor sample for the current cycle. XRel/YRel are the
// sum of every motion event ingested since the last EndFrame.
type MouseMotion struct {
	X, Y       float64
	XRel, YRel float64
	Moved      bool
}

// Scroll is the wheel sample for the current cycle.
type Scroll struct {
	X, Y      float64
	Direction ScrollDirection
	Scrolled  bool
}

// Tracker turns a stream of raw platform events into per-frame input state.
//
// One frame is: Update, any number of queries, EndFrame. The tracker holds no
// locks; all calls must come from the frame loop goroutine.
type Tracker struct {
	src     Source
	grabber Grabber
	log     *golog.Logger

	keys    [KeyLast + 1]KeyState
	pressed [KeyLast + 1]bool
	buttons [buttonCount]ButtonState
	went    [buttonCount]transition // this cycle's button edges

	motion  MouseMotion
	scroll  Scroll
	windows map[WindowEventType]WindowEvent

	quit    bool
	grabbed bool
	frame   uint64
}

// transition records which edges a button crossed during one cycle. Both
// can be set when a click starts and ends between two Updates.
type transition struct{ down, up bool }

type Option func(*Tracker)

// WithGrabber sets the platform hook used by GrabMouse and ReleaseMouse.
func WithGrabber(g Grabber) Option {
	return func(t *Tracker) { t.grabber = g }
}

func WithLogger(l *golog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// New builds a tracker that drains src on every Update. If src also
// implements Grabber it is used for cursor grabbing unless WithGrabber
// overrides it. src may be nil when events are fed through Ingest only.
func New(src Source, opts ...Option) *Tracker {
	t := &Tracker{
		src:     src,
		log:     golog.Child("[input]"),
		windows: make(map[WindowEventType]WindowEvent, 4),
		scroll:  Scroll{Direction: ScrollNormal},
	}
	if g, ok := src.(Grabber); ok {
		t.grabber = g
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update drains every pending event from the source and returns how many
// were ingested. Call it once per frame, before any query.
func (t *Tracker) Update() int {
	if t.src == nil {
		return 0
	}
	n := 0
	for ev := t.src.PollEvent(); ev != nil; ev = t.src.PollEvent() {
		t.Ingest(ev)
		n++
	}
	return n
}

// Ingest classifies a single raw event into tracker state.
func (t *Tracker) Ingest(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		t.ingestKey(e)
	case ButtonEvent:
		t.ingestButton(e)
	case MotionEvent:
		t.motion.X, t.motion.Y = e.X, e.Y
		t.motion.XRel += e.XRel
		t.motion.YRel += e.YRel
		t.motion.Moved = true
	case ScrollEvent:
		t.scroll.X += e.X
		t.scroll.Y += e.Y
		if e.Direction != 0 {
			t.scroll.Direction = e.Direction
		}
		t.scroll.Scrolled = true
	case WindowEvent:
		if e.Type == WindowNone || e.Type > WindowClose {
			return
		}
		t.windows[e.Type] = e
		if e.Type == WindowClose {
			t.setQuit("window close")
		}
	case QuitEvent:
		t.setQuit("quit event")
	}
}

func (t *Tracker) ingestKey(e KeyEvent) {
	if !e.Key.Valid() {
		return
	}
	ks := &t.keys[e.Key]
	if ks.State == Released && e.State == Pressed {
		t.pressed[e.Key] = true
	}
	*ks = KeyState{Key: e.Key, State: e.State, Mods: e.Mods}
}

func (t *Tracker) ingestButton(e ButtonEvent) {
	if e.Button == ButtonUnknown || e.Button >= buttonCount {
		return
	}
	bs := &t.buttons[e.Button]
	switch {
	case bs.State == Released && e.State == Pressed:
		t.went[e.Button].down = true
	case bs.State == Pressed && e.State == Released:
		t.went[e.Button].up = true
	}
	*bs = ButtonState{Button: e.Button, State: e.State, Clicks: e.Clicks}
}

func (t *Tracker) setQuit(reason string) {
	if !t.quit {
		t.log.Debugf("quit requested (%s) frame=%d", reason, t.frame)
	}
	t.quit = true
}

// EndFrame resets every one-shot and per-cycle accumulator. The quit request
// and the mouse grab state survive it. The absolute cursor position is kept.
func (t *Tracker) EndFrame() {
	clear(t.pressed[:])
	clear(t.went[:])
	t.motion.XRel, t.motion.YRel = 0, 0
	t.motion.Moved = false
	t.scroll = Scroll{Direction: t.scroll.Direction}
	clear(t.windows)
	t.frame++
}

// Frame returns the number of completed cycles.
func (t *Tracker) Frame() uint64 { return t.frame }

// ---- keyboard ----

// IsKeyPressed is true only during the cycle in which k went down.
func (t *Tracker) IsKeyPressed(k Key) bool {
	return k.Valid() && t.pressed[k]
}

// IsKeyReleased is true whenever k is not down, including keys never seen.
func (t *Tracker) IsKeyReleased(k Key) bool {
	return !t.IsKeyHeld(k)
}

func (t *Tracker) IsKeyHeld(k Key) bool {
	return k.Valid() && t.keys[k].State == Pressed
}

// KeyMods returns the modifiers recorded with the latest event for k.
func (t *Tracker) KeyMods(k Key) Mod {
	if !k.Valid() {
		return ModNone
	}
	return t.keys[k].Mods
}

// KeyState returns the latest raw report for k.
func (t *Tracker) KeyState(k Key) KeyState {
	if !k.Valid() {
		return KeyState{Key: k}
	}
	ks := t.keys[k]
	ks.Key = k
	return ks
}

// ---- mouse buttons ----

// IsButtonPressed reads the raw button level: a button held across frames
// reports pressed on every one of them. Keys, by contrast, are edge
// triggered through IsKeyPressed.
func (t *Tracker) IsButtonPressed(b Button) bool {
	return b < buttonCount && t.buttons[b].State == Pressed
}

func (t *Tracker) IsButtonReleased(b Button) bool {
	return !t.IsButtonPressed(b)
}

// IsButtonJustPressed reports that b went down during this cycle, even if it
// came back up before the cycle ended. IsButtonPressed stays the level read.
func (t *Tracker) IsButtonJustPressed(b Button) bool {
	return b < buttonCount && t.went[b].down
}

// IsButtonJustReleased reports that b came up during this cycle.
func (t *Tracker) IsButtonJustReleased(b Button) bool {
	return b < buttonCount && t.went[b].up
}

// ButtonClicks returns the click count of the latest event for b.
func (t *Tracker) ButtonClicks(b Button) int {
	if b >= buttonCount {
		return 0
	}
	return t.buttons[b].Clicks
}

// ---- motion and scroll ----

func (t *Tracker) HasMouseMoved() bool    { return t.motion.Moved }
func (t *Tracker) MouseMove() MouseMotion { return t.motion }

func (t *Tracker) HasScrolled() bool                { return t.scroll.Scrolled }
func (t *Tracker) XScroll() float64                 { return t.scroll.X }
func (t *Tracker) YScroll() float64                 { return t.scroll.Y }
func (t *Tracker) ScrollDirection() ScrollDirection { return t.scroll.Direction }

// ---- window and quit ----

func (t *Tracker) HasWindowEvent(typ WindowEventType) bool {
	_, ok := t.windows[typ]
	return ok
}

// WindowEvent returns the latest event of type typ seen this cycle.
func (t *Tracker) WindowEvent(typ WindowEventType) (WindowEvent, bool) {
	ev, ok := t.windows[typ]
	return ev, ok
}

// HasQuit reports a pending quit request. Reading it does not clear it.
func (t *Tracker) HasQuit() bool { return t.quit }

func (t *Tracker) RequestQuit() { t.setQuit("requested") }

// AcknowledgeQuit clears a pending quit request, e.g. after the user
// cancelled a "save before exit?" prompt.
func (t *Tracker) AcknowledgeQuit() { t.quit = false }

// ---- cursor grab ----

// GrabMouse confines and hides the cursor. No-op when already grabbed.
func (t *Tracker) GrabMouse() { t.setGrab(true) }

// ReleaseMouse frees and shows the cursor. No-op when not grabbed.
func (t *Tracker) ReleaseMouse() { t.setGrab(false) }

func (t *Tracker) IsMouseGrabbed() bool { return t.grabbed }

func (t *Tracker) setGrab(grab bool) {
	if t.grabbed == grab {
		return
	}
	if t.grabber != nil {
		if err := t.grabber.SetMouseGrab(grab); err != nil {
			t.log.Warnf("mouse grab=%t: %v", grab, err)
			return
		}
	}
	t.grabbed = grab
}
