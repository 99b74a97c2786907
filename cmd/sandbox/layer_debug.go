package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/gfx/renderer2d"
	"github.com/hubastard/grove/engine/input"
	"github.com/hubastard/grove/engine/profiler"
	"github.com/hubastard/grove/engine/text"
	"github.com/hubastard/grove/engine/ui"
	"github.com/kataras/golog"
)

var debugLog = golog.Child("[debug]")

// gpuInfo is implemented by renderers that can name the device.
type gpuInfo interface {
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// DebugLayer reports tracker state. F1 dumps it to the log, F2 shows the
// overlay, F3 makes the overlay clickable and Ctrl+P dumps the profile. The
// window title carries the frame rate and cursor state.
type DebugLayer struct {
	title     string
	frames    int
	since     time.Time
	fps       float64
	frameMS   float64
	lastDraw  time.Time
	lastClick int

	// overlay; nil r2d means text only
	r2d         *renderer2d.Renderer2D
	font        *text.Font
	ui          *ui.Context
	gpu         string
	shown       bool
	interactive bool
}

func NewDebugLayer(title string, r2d *renderer2d.Renderer2D, font *text.Font, gpu gpuInfo) *DebugLayer {
	l := &DebugLayer{title: title, r2d: r2d, font: font}
	if gpu != nil {
		l.gpu = fmt.Sprintf("%s | %s | %s", gpu.GPUVendor(), gpu.GPURenderer(), gpu.GPUVersion())
	}
	if r2d != nil && font != nil {
		l.ui = ui.NewContext(r2d, font)
	}
	return l
}

// window events worth a log line
var loggedWindowEvents = []input.WindowEventType{
	input.WindowFocusGained,
	input.WindowFocusLost,
	input.WindowMinimized,
	input.WindowMaximized,
	input.WindowRestored,
	input.WindowClose,
}

func (l *DebugLayer) OnAttach(e *core.Engine) { l.since = time.Now() }
func (l *DebugLayer) OnDetach(e *core.Engine) { l.font.Close() }

func (l *DebugLayer) OnInput(e *core.Engine) bool {
	in := e.Input
	for _, typ := range loggedWindowEvents {
		if ev, ok := in.WindowEvent(typ); ok {
			debugLog.Debugf("window %d: %s", ev.WindowID, typ)
		}
	}

	// clicks are level-read; only report a change in the count
	if n := in.ButtonClicks(input.ButtonLeft); in.IsButtonPressed(input.ButtonLeft) && n != l.lastClick {
		if n > 1 {
			debugLog.Infof("left click x%d", n)
		}
		l.lastClick = n
	} else if in.IsButtonReleased(input.ButtonLeft) {
		l.lastClick = 0
	}

	switch {
	case in.IsKeyPressed(input.KeyF1):
		debugLog.Info(describe(in))
		return true
	case in.IsKeyPressed(input.KeyF2):
		l.shown = !l.shown
		l.interactive = l.interactive && l.shown
		return true
	case in.IsKeyPressed(input.KeyF3):
		l.setInteractive(in, !l.interactive)
		return true
	case in.IsKeyPressed(input.KeyP) && in.KeyMods(input.KeyP)&input.ModCtrl != 0:
		l.dumpProfile()
		return true
	}

	if !l.interactive {
		return false
	}
	if in.IsKeyPressed(input.KeyEscape) {
		l.setInteractive(in, false)
	}
	// the overlay owns the pointer; resizes still reach the layers below
	return !in.HasWindowEvent(input.WindowSizeChanged)
}

func (l *DebugLayer) setInteractive(in *input.Tracker, on bool) {
	l.interactive = on
	if on {
		l.shown = true
		in.ReleaseMouse()
	}
	debugLog.Debugf("overlay interactive: %t", on)
}

func (l *DebugLayer) dumpProfile() {
	path, err := profiler.OpenProfilerGraph()
	if err != nil {
		debugLog.Warnf("profile: %v", err)
		return
	}
	debugLog.Infof("profile: %s", path)
}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !l.lastDraw.IsZero() {
		l.frameMS = float64(now.Sub(l.lastDraw)) / float64(time.Millisecond)
	}
	l.lastDraw = now

	l.frames++
	if el := now.Sub(l.since); el >= 500*time.Millisecond {
		l.fps = float64(l.frames) / el.Seconds()
		l.frames = 0
		l.since = now

		grab := "free"
		if e.Input.IsMouseGrabbed() {
			grab = "grabbed"
		}
		e.Window.SetTitle(fmt.Sprintf("%s | %.0f fps | frame %d | cursor %s", l.title, l.fps, e.Input.Frame(), grab))
	}

	if l.ui == nil || !l.shown {
		return
	}
	w, h := e.Window.FramebufferSize()
	var ptr ui.Input
	if l.interactive {
		ptr = ui.PointerFrom(e.Input)
	}
	stats := l.r2d.Stats() // the overlay's own previous frame
	l.ui.Begin([4]float32{0, 0, float32(w), float32(h)}, ptr)
	l.r2d.BeginScene(renderer2d.ScreenSpace(w, h))
	l.overlay(e.Input, stats).Draw(l.ui)
	l.r2d.EndScene()
}

var (
	panelColor = colors.Color{0.05, 0.06, 0.08, 0.75}
	dimText    = colors.Color{0.7, 0.75, 0.8, 1}
)

func (l *DebugLayer) overlay(in *input.Tracker, st renderer2d.Statistics) ui.UIElement {
	line := func(format string, args ...any) *ui.UILabel {
		return ui.Label(fmt.Sprintf(format, args...)).FontSize(14)
	}

	panel := ui.View().Flow(ui.LayoutVertical).Gap(2).Padding(8).Color(panelColor).Position(8, 8).Children(
		line("frame %d  %.2f ms  %.0f fps", in.Frame(), l.frameMS, l.fps),
		line("2D: %d draws  %d quads  %d verts  %d textures",
			st.DrawCalls, st.QuadCount, st.TotalVertexCount(), st.TextureCount),
		line("mem %.1f MiB  %d allocs  %d goroutines  %d cpus",
			float64(profiler.MemoryUsage())/(1<<20), profiler.MemoryAllocs(), profiler.NumGoroutine(), profiler.NumCPU()),
	)
	if l.gpu != "" {
		panel.Children(line("%s", l.gpu).TextColor(dimText))
	}
	panel.Children(ui.Label(describe(in)).FontSize(14).Wrap(true).MaxWidth(520).TextColor(dimText))

	if !l.interactive {
		return panel.Children(line("F3 to interact").TextColor(dimText))
	}
	grab := ui.Button("Grab cursor").OnClick(func() {
		l.interactive = false
		in.GrabMouse()
	})
	if in.IsMouseGrabbed() {
		grab = ui.Button("Release cursor").OnClick(in.ReleaseMouse)
	}
	profile := ui.Button("Dump profile").OnClick(l.dumpProfile)
	if !profiler.Enabled {
		profile.TextColor(dimText)
	}
	return panel.Children(
		ui.View().Gap(6).Children(
			grab.ID("grab").FontSize(14),
			profile.FontSize(14),
			ui.Button("Quit").FontSize(14).OnClick(in.RequestQuit),
		),
	)
}

// describe renders a one-line snapshot of the tracker.
func describe(in *input.Tracker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame=%d", in.Frame())

	var held []string
	for k := input.KeyUnknown + 1; k <= input.KeyLast; k++ {
		if in.IsKeyHeld(k) {
			held = append(held, k.String())
		}
	}
	fmt.Fprintf(&b, " keys=[%s]", strings.Join(held, " "))

	var buttons []string
	for _, btn := range []input.Button{input.ButtonLeft, input.ButtonMiddle, input.ButtonRight, input.ButtonX1, input.ButtonX2} {
		if in.IsButtonPressed(btn) {
			buttons = append(buttons, btn.String())
		}
	}
	fmt.Fprintf(&b, " buttons=[%s]", strings.Join(buttons, " "))

	mm := in.MouseMove()
	fmt.Fprintf(&b, " cursor=(%.0f,%.0f) grabbed=%t", mm.X, mm.Y, in.IsMouseGrabbed())
	fmt.Fprintf(&b, " scroll-dir=%d quit=%t", in.ScrollDirection(), in.HasQuit())
	return b.String()
}
