// Command inputview shows live input tracker state in a text terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/config"
	"github.com/hubastard/grove/engine/input"
	"github.com/hubastard/grove/engine/platform/term"
	"github.com/kataras/golog"
)

const historyLen = 8

type view struct {
	term    *term.Terminal
	in      *input.Tracker
	pressed []string // most recent key edges, newest first
	windows []string
	scrollY float64
	size    [2]int32
}

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML or TOML config file (logging level only)")
		logPath = flag.String("log", "", "write logs to this file instead of discarding them")
		rate    = flag.Int("hz", 30, "frames per second")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg.Logging.Apply()

	// the screen owns the terminal while it is up
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	golog.SetOutput(out)
	for _, prefix := range config.Loggers {
		golog.Child(prefix).SetOutput(out)
	}

	t, err := term.NewTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer t.Close()

	v := &view{term: t, in: input.New(t)}
	ticker := time.NewTicker(time.Second / time.Duration(max(*rate, 1)))
	defer ticker.Stop()

	for range ticker.C {
		if v.frame() {
			return
		}
	}
}

// frame runs one tracker cycle and reports whether to exit.
func (v *view) frame() bool {
	in := v.in
	in.Update()
	defer in.EndFrame()

	if in.HasQuit() {
		// a quit stays pending until answered
		if in.IsKeyPressed(input.KeyY) {
			return true
		}
		if in.IsKeyPressed(input.KeyN) {
			in.AcknowledgeQuit()
		}
	} else if in.IsKeyPressed(input.KeyQ) {
		in.RequestQuit()
	}
	if in.IsKeyPressed(input.KeyG) {
		if in.IsMouseGrabbed() {
			in.ReleaseMouse()
		} else {
			in.GrabMouse()
		}
	}

	v.collect()
	v.draw()
	return false
}

func (v *view) collect() {
	in := v.in
	for k := input.KeyUnknown + 1; k <= input.KeyLast; k++ {
		if in.IsKeyPressed(k) {
			v.pressed = pushFront(v.pressed, k.String())
		}
	}
	for typ := input.WindowShown; typ <= input.WindowClose; typ++ {
		ev, ok := in.WindowEvent(typ)
		if !ok {
			continue
		}
		v.windows = pushFront(v.windows, fmt.Sprintf("%s(%d,%d)", typ, ev.Data1, ev.Data2))
		if typ == input.WindowSizeChanged {
			v.size = [2]int32{ev.Data1, ev.Data2}
		}
	}
	if in.HasScrolled() {
		v.scrollY += in.YScroll()
	}
}

func pushFront(list []string, s string) []string {
	list = append([]string{s}, list...)
	if len(list) > historyLen {
		list = list[:historyLen]
	}
	return list
}

func style(c colors.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(c.RGB8()))
}

func (v *view) draw() {
	var (
		in     = v.in
		head   = style(colors.Yellow).Bold(true)
		plain  = tcell.StyleDefault
		alert  = style(colors.Red).Bold(true)
		subtle = style(colors.Gray)
		y      = 0
	)
	line := func(s tcell.Style, format string, args ...any) {
		v.term.Print(0, y, s, fmt.Sprintf(format, args...))
		y++
	}

	v.term.Clear()
	line(head, "grove input view  frame %d  terminal %dx%d", in.Frame(), v.size[0], v.size[1])
	line(subtle, "q quit  g toggle grab  Ctrl+C quit request")
	y++

	var held []string
	for k := input.KeyUnknown + 1; k <= input.KeyLast; k++ {
		if in.IsKeyHeld(k) {
			held = append(held, fmt.Sprintf("%s%s", k, modSuffix(in.KeyMods(k))))
		}
	}
	line(head, "keys")
	line(plain, "  held     %s", strings.Join(held, " "))
	line(plain, "  pressed  %s", strings.Join(v.pressed, " "))
	y++

	line(head, "mouse")
	for _, b := range []input.Button{input.ButtonLeft, input.ButtonMiddle, input.ButtonRight} {
		state := "up"
		if in.IsButtonPressed(b) {
			state = "down"
		}
		line(plain, "  %-7s %-4s clicks=%d", b, state, in.ButtonClicks(b))
	}
	mm := in.MouseMove()
	line(plain, "  cursor  (%.0f,%.0f) rel (%+.0f,%+.0f) grabbed=%t", mm.X, mm.Y, mm.XRel, mm.YRel, in.IsMouseGrabbed())
	line(plain, "  wheel   %+.0f total, direction %d", v.scrollY, in.ScrollDirection())
	y++

	line(head, "window")
	line(plain, "  %s", strings.Join(v.windows, " "))
	y++

	if in.HasQuit() {
		line(alert, "quit requested: y to exit, n to stay")
	}
	v.term.Show()
}

func modSuffix(m input.Mod) string {
	var parts []string
	for _, mod := range []struct {
		bit  input.Mod
		name string
	}{
		{input.ModShift, "S"},
		{input.ModCtrl, "C"},
		{input.ModAlt, "A"},
		{input.ModSuper, "M"},
	} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "+" + strings.Join(parts, "")
}
