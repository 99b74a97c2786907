package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/input"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnInput(e *Engine)                 // once per frame, after input is polled
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *input.Tracker
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction. The window is also the input event source and
// applies cursor grabs for the tracker.
type Window interface {
	input.Source
	input.Grabber
	SwapBuffers()
	FramebufferSize() (int, int)
	SetTitle(title string)
	Destroy()
}

// Renderer abstraction (minimal; grows with engine).
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	DrawScene(viewProj mgl32.Mat4)
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
