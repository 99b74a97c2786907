package core

import (
	"runtime"
	"time"

	"github.com/hubastard/grove/engine/input"
	"github.com/hubastard/grove/engine/profiler"
	"github.com/kataras/golog"
)

var logger = golog.Child("[core]")

// Run wires the platform window, renderer and input tracker and executes the
// main loop until a quit request is left unacknowledged at the end of the
// input phase.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    input.New(win),
		start:    time.Now(),
	}
	app.OnStart(eng)
	loop(app, eng, cfg, time.Now)

	eng.Layers.ForEach(func(l Layer) { l.OnDetach(eng) })
	app.OnShutdown(eng)
	logger.Infof("engine exit after %d frames (%s)", eng.Input.Frame(), eng.Uptime().Round(time.Millisecond))
	return nil
}

// Fixed-timestep (60 Hz) with interpolation.
const tick = time.Second / 60

const maxStep = 10 // prevent spiral of death

func loop(app App, eng *Engine, cfg Config, now func() time.Time) {
	var (
		in    = eng.Input
		accum time.Duration
		prev  = now()
		clear = cfg.ClearColor
	)

	for {
		endFrame := profiler.Start("frame")
		t := now()
		accum += t.Sub(prev)
		prev = t

		end := profiler.Start("input.Update")
		in.Update()
		end()
		if ev, ok := in.WindowEvent(input.WindowSizeChanged); ok && ev.Data1 > 0 && ev.Data2 > 0 {
			eng.Renderer.Resize(int(ev.Data1), int(ev.Data2))
		}

		end = profiler.Start("OnInput")
		app.OnInput(eng)
		eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnInput(eng) })
		end()
		if in.HasQuit() {
			endFrame()
			return
		}

		end = profiler.Start("update")
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		if steps == maxStep && accum >= tick {
			logger.Debugf("dropping %s of simulation time", accum.Round(time.Millisecond))
			accum = 0
		}
		end()
		alpha := float64(accum) / float64(tick)

		end = profiler.Start("render")
		eng.Renderer.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		eng.Window.SwapBuffers()
		end()

		end = profiler.Start("EndFrame")
		in.EndFrame()
		end()
		endFrame()
	}
}
