package ui

import (
	"math"

	"github.com/hubastard/grove/engine/colors"
)

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

type Constraints struct {
	Min [2]float32
	Max [2]float32 // zero means unbounded
}

type LayoutResult struct {
	Size [2]float32
}

type UIElement interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
}

// Base is the box every element shares. Layout fills size and offset, the
// top-left relative to the parent; Draw turns the offset into position.
type Base struct {
	parent   UIElement
	children []UIElement
	position [2]float32
	offset   [2]float32
	size     [2]float32
	color    colors.Color
	mode     [2]SizeMode // per axis: 0 width, 1 height
	fixed    [2]float32
	padding  [4]float32 // left, top, right, bottom
}

func (b *Base) Parent() UIElement       { return b.parent }
func (b *Base) Children() []UIElement   { return b.children }
func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y float32)     { b.position = [2]float32{x, y} }
func (b *Base) SetSize(w, h float32)    { b.size = [2]float32{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Padding() [4]float32     { return b.padding }
func (b *Base) SetPadding(l, t, r, btm float32) {
	b.padding = [4]float32{l, t, r, btm}
}

// Contains reports whether (x, y) falls inside the box as last drawn.
func (b *Base) Contains(x, y float32) bool {
	return x >= b.position[0] && x <= b.position[0]+b.size[0] &&
		y >= b.position[1] && y <= b.position[1]+b.size[1]
}

// padAlong is the padding total on axis 0 (left+right) or 1 (top+bottom).
func (b *Base) padAlong(axis int) float32 { return b.padding[axis] + b.padding[axis+2] }

// place resolves a child's absolute position from this box's position.
func (b *Base) place(child *Base) {
	child.position = [2]float32{b.position[0] + child.offset[0], b.position[1] + child.offset[1]}
}

func (b *Base) drawBackground(ctx *Context, c colors.Color) {
	if c[3] <= 0 {
		return
	}
	w, h := b.size[0], b.size[1]
	ctx.Renderer.DrawQuad(b.position[0]+w/2, b.position[1]+h/2, w, h, c, 0)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func resolveConstraint(max float32) float32 {
	if max == 0 {
		return float32(math.MaxFloat32)
	}
	return max
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// resolveAxis sizes the box on one axis from its mode and measured content.
// An expanding child measures as its content; its parent hands it the spare
// room afterwards.
func (b *Base) resolveAxis(axis int, content, min, max float32) float32 {
	hi := resolveConstraint(max)
	switch b.mode[axis] {
	case SizeModeFixed:
		if b.fixed[axis] > 0 {
			return clamp(b.fixed[axis], min, hi)
		}
	case SizeModeExpand:
		if b.parent == nil && max > 0 {
			return clamp(max, min, hi)
		}
	}
	return clamp(content, min, hi)
}

// ------ Helper ------

// Common gives every element the chained setters, returning the element
// itself so trees read as one expression.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] { return Common[T]{owner: owner} }

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }

func (c *Common[T]) WidthFit() T    { c.base.mode[0] = SizeModeFit; return c.owner }
func (c *Common[T]) WidthExpand() T { c.base.mode[0] = SizeModeExpand; return c.owner }
func (c *Common[T]) WidthFixed(w float32) T {
	c.base.mode[0], c.base.fixed[0] = SizeModeFixed, w
	return c.owner
}

func (c *Common[T]) HeightFit() T    { c.base.mode[1] = SizeModeFit; return c.owner }
func (c *Common[T]) HeightExpand() T { c.base.mode[1] = SizeModeExpand; return c.owner }
func (c *Common[T]) HeightFixed(h float32) T {
	c.base.mode[1], c.base.fixed[1] = SizeModeFixed, h
	return c.owner
}

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Children(kids ...UIElement) T {
	c.base.children = append(c.base.children, kids...)
	for _, k := range kids {
		k.Node().parent = any(c.owner).(UIElement)
	}
	return c.owner
}
