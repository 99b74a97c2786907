package ui

import (
	"github.com/hubastard/grove/engine/gfx/renderer2d"
	"github.com/hubastard/grove/engine/input"
	"github.com/hubastard/grove/engine/text"
)

// Input is the pointer as widgets see it for one frame, in the same pixel
// space as the Viewport.
type Input struct {
	MouseX, MouseY float32
	MouseDown      bool // level
	MousePressed   bool // went down this frame
	MouseReleased  bool // came up this frame
}

// PointerFrom samples the cursor and left button from the tracker. Call it
// between Update and EndFrame; the press and release edges last one frame.
func PointerFrom(in *input.Tracker) Input {
	mm := in.MouseMove()
	return Input{
		MouseX:        float32(mm.X),
		MouseY:        float32(mm.Y),
		MouseDown:     in.IsButtonPressed(input.ButtonLeft),
		MousePressed:  in.IsButtonJustPressed(input.ButtonLeft),
		MouseReleased: in.IsButtonJustReleased(input.ButtonLeft),
	}
}

// Context carries what a tree needs to lay out, draw and react. Keep one per
// overlay: button press state lives here across frames while the element
// tree itself is rebuilt every frame.
type Context struct {
	Viewport    [4]float32 // x, y, w, h
	DefaultFont *text.Font
	Renderer    *renderer2d.Renderer2D
	Input       Input

	active map[string]bool // buttons holding the press that started on them
}

func NewContext(r *renderer2d.Renderer2D, font *text.Font) *Context {
	return &Context{Renderer: r, DefaultFont: font, active: make(map[string]bool)}
}

// Begin sets the viewport and pointer for this frame.
func (c *Context) Begin(viewport [4]float32, in Input) {
	c.Viewport = viewport
	c.Input = in
	if c.active == nil {
		c.active = make(map[string]bool)
	}
}

// Pressing reports whether a press that started on button id is still held.
func (c *Context) Pressing(id string) bool { return c.active[id] }
