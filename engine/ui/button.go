package ui

import (
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/text"
)

// UIButton is a label in a padded box. It clicks when the left button is
// released over it after being pressed over it; the press may start and end
// in the same frame.
type UIButton struct {
	Common[*UIButton]
	id          string
	label       *UILabel
	onClick     func()
	hoverColor  colors.Color
	activeColor colors.Color
}

func Button(s string) *UIButton {
	b := &UIButton{
		id:          s,
		label:       Label(s),
		hoverColor:  colors.Color{0.35, 0.35, 0.42, 1},
		activeColor: colors.Color{0.2, 0.45, 0.8, 1},
	}
	b.Common = NewCommon(b)
	b.base.color = colors.Color{0.22, 0.22, 0.26, 1}
	b.base.padding = [4]float32{8, 4, 8, 4}
	b.label.base.parent = b
	return b
}

// ID keys the press state in the Context; it defaults to the button text.
func (b *UIButton) ID(id string) *UIButton              { b.id = id; return b }
func (b *UIButton) OnClick(fn func()) *UIButton         { b.onClick = fn; return b }
func (b *UIButton) Font(f *text.Font) *UIButton         { b.label.Font(f); return b }
func (b *UIButton) FontSize(px float32) *UIButton       { b.label.FontSize(px); return b }
func (b *UIButton) TextColor(c colors.Color) *UIButton  { b.label.TextColor(c); return b }
func (b *UIButton) HoverColor(c colors.Color) *UIButton { b.hoverColor = c; return b }
func (b *UIButton) ActiveColor(c colors.Color) *UIButton {
	b.activeColor = c
	return b
}

func (b *UIButton) Layout(ctx *Context, c Constraints) LayoutResult {
	n := &b.base
	inner := Constraints{Max: [2]float32{
		maxf(0, resolveConstraint(c.Max[0])-n.padAlong(0)),
		maxf(0, resolveConstraint(c.Max[1])-n.padAlong(1)),
	}}
	ls := b.label.Layout(ctx, inner).Size
	n.size = [2]float32{
		n.resolveAxis(0, ls[0]+n.padAlong(0), c.Min[0], c.Max[0]),
		n.resolveAxis(1, ls[1]+n.padAlong(1), c.Min[1], c.Max[1]),
	}
	// centre the label in whatever box the mode produced
	b.label.base.offset = [2]float32{
		(n.size[0] - ls[0]) / 2,
		(n.size[1] - ls[1]) / 2,
	}
	return LayoutResult{Size: n.size}
}

// interact updates press state and reports whether this frame is a click.
func (b *UIButton) interact(ctx *Context) (hot, clicked bool) {
	in := ctx.Input
	hot = b.base.Contains(in.MouseX, in.MouseY)
	if in.MousePressed && hot {
		ctx.active[b.id] = true
	}
	if in.MouseReleased {
		clicked = hot && ctx.active[b.id]
		delete(ctx.active, b.id)
	}
	return hot, clicked
}

func (b *UIButton) Draw(ctx *Context) {
	n := &b.base
	if n.parent == nil {
		b.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport[2], ctx.Viewport[3]}})
	}
	hot, clicked := b.interact(ctx)

	bg := n.color
	switch {
	case ctx.active[b.id]:
		bg = b.activeColor
	case hot:
		bg = b.hoverColor
	}
	n.drawBackground(ctx, bg)
	n.place(&b.label.base)
	b.label.Draw(ctx)

	if clicked && b.onClick != nil {
		b.onClick()
	}
}
