package main

import (
	"flag"
	"os"
	"time"

	"github.com/hubastard/grove/engine/config"
	"github.com/hubastard/grove/engine/core"
	glbackend "github.com/hubastard/grove/engine/gfx/gl"
	"github.com/hubastard/grove/engine/gfx/renderer2d"
	"github.com/hubastard/grove/engine/platform"
	"github.com/hubastard/grove/engine/profiler"
	"github.com/hubastard/grove/engine/text"
	"github.com/kataras/golog"
)

type App struct {
	cfg         *config.Config
	confirmQuit bool
	quitAt      time.Time // first unconfirmed quit request
	scene       *SceneLayer
	debug       *DebugLayer
}

func (a *App) OnStart(e *core.Engine) {
	a.scene = NewSceneLayer(a.cfg.Camera)
	e.PushLayer(a.scene)

	profiler.Init(1 << 16)
	r2d, font := newOverlay(e)
	gpu, _ := e.Renderer.(gpuInfo)
	a.debug = NewDebugLayer(a.cfg.Window.Title, r2d, font, gpu)
	e.PushLayer(a.debug)
}

// newOverlay sets up the 2D batch and font for the debug overlay. Without
// them the debug layer still logs and updates the title.
func newOverlay(e *core.Engine) (*renderer2d.Renderer2D, *text.Font) {
	be, ok := e.Renderer.(renderer2d.Backend)
	if !ok {
		golog.Warn("renderer has no 2D backend; debug overlay disabled")
		return nil, nil
	}
	font, err := text.Mono(16)
	if err != nil {
		golog.Warnf("debug overlay font: %v", err)
		return nil, nil
	}
	if err := font.Upload(be); err != nil {
		golog.Warnf("debug overlay font: %v", err)
		font.Close()
		return nil, nil
	}
	r2d, err := renderer2d.New(be, 0)
	if err != nil {
		golog.Warnf("debug overlay: %v", err)
		font.Close()
		return nil, nil
	}
	return r2d, font
}

// OnInput asks for a second close within two seconds when confirmQuit is set.
func (a *App) OnInput(e *core.Engine) {
	in := e.Input
	if !a.confirmQuit || !in.HasQuit() {
		return
	}
	if !a.quitAt.IsZero() && time.Since(a.quitAt) < 2*time.Second {
		return
	}
	a.quitAt = time.Now()
	in.AcknowledgeQuit()
	golog.Warn("close again within 2s to quit")
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnShutdown(e *core.Engine) {
	golog.Infof("bye after %s", e.Uptime().Round(time.Second))
}

func main() {
	var (
		cfgPath     = flag.String("config", "", "YAML or TOML config file")
		backend     = flag.String("backend", "", "window backend override: sdl or glfw")
		confirmQuit = flag.Bool("confirm-quit", false, "require closing the window twice")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			golog.Fatal(err)
		}
	}
	if *backend != "" {
		cfg.Window.Backend = *backend
		if err := cfg.Validate(); err != nil {
			golog.Fatal(err)
		}
	}
	cfg.Logging.Apply()

	coreCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: cfg.Window.ClearColor,
	}
	app := &App{cfg: cfg, confirmQuit: *confirmQuit}

	newWindow := func(cfg core.Config) (core.Window, error) {
		if app.cfg.Window.Backend == config.BackendGLFW {
			return platform.NewGLFWWindow(cfg)
		}
		return platform.NewSDLWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	golog.Infof("starting with %s backend", cfg.Window.Backend)
	if err := core.Run(app, coreCfg, newWindow, newRenderer); err != nil {
		golog.Error(err)
		os.Exit(1)
	}
}
