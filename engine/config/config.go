package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/grove/engine/colors"
	"github.com/kataras/golog"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type WindowConfig struct {
	Title      string       `yaml:"title" toml:"title"`
	Width      int          `yaml:"width" toml:"width"`
	Height     int          `yaml:"height" toml:"height"`
	VSync      bool         `yaml:"vsync" toml:"vsync"`
	Backend    string       `yaml:"backend" toml:"backend"` // "sdl" or "glfw"
	ClearColor colors.Color `yaml:"clear_color" toml:"clear_color"`
	// Background names a palette color; when set it overrides ClearColor.
	Background string `yaml:"background" toml:"background"`
}

type CameraConfig struct {
	Speed          float32 `yaml:"speed" toml:"speed"`
	Sensitivity    float32 `yaml:"sensitivity" toml:"sensitivity"`
	ConstrainPitch bool    `yaml:"constrain_pitch" toml:"constrain_pitch"`
	FOV            float32 `yaml:"fov" toml:"fov"`
}

type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Loggers lists the child logger prefixes used across the engine. Children
// copy their level when created, so Apply sets each one explicitly.
var Loggers = []string{"[core]", "[input]", "[scene]", "[platform]", "[term]", "[debug]", "[profiler]"}

// Apply sets the default logger and every engine child logger to l.Level.
func (l LoggingConfig) Apply() {
	level := strings.ToLower(l.Level)
	if level == "" {
		level = "info"
	}
	golog.SetLevel(level)
	for _, prefix := range Loggers {
		golog.Child(prefix).SetLevel(level)
	}
}

const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

var ErrInvalid = errors.New("invalid config")

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Grove Sandbox",
			Width:      1280,
			Height:     720,
			VSync:      true,
			Backend:    BackendSDL,
			ClearColor: colors.DarkGray,
		},
		Camera: CameraConfig{
			Speed:          6,
			Sensitivity:    1,
			ConstrainPitch: true,
			FOV:            45,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML (.yaml/.yml) or TOML (.toml) file on top of Default().
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %q: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	if cfg.Window.Background != "" {
		cfg.Window.ClearColor, _ = colors.ByName(cfg.Window.Background)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Window.Backend)
	}
	if c.Window.Background != "" {
		if _, ok := colors.ByName(c.Window.Background); !ok {
			return fmt.Errorf("%w: unknown background color %q", ErrInvalid, c.Window.Background)
		}
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 45 {
		return fmt.Errorf("%w: camera fov %.1f outside [1,45]", ErrInvalid, c.Camera.FOV)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "disable", "fatal", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
