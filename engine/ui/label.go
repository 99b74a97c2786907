package ui

import (
	"strings"

	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/text"
)

type UILabel struct {
	Common[*UILabel]
	text      string
	font      *text.Font
	fontSize  float32
	textColor colors.Color
	wrap      bool
	maxWidth  float32
}

func Label(s string) *UILabel {
	l := &UILabel{text: s, textColor: colors.White}
	l.Common = NewCommon(l)
	return l
}

func (l *UILabel) Text(s string) *UILabel            { l.text = s; return l }
func (l *UILabel) Font(f *text.Font) *UILabel        { l.font = f; return l }
func (l *UILabel) FontSize(px float32) *UILabel      { l.fontSize = px; return l }
func (l *UILabel) TextColor(c colors.Color) *UILabel { l.textColor = c; return l }
func (l *UILabel) Wrap(on bool) *UILabel             { l.wrap = on; return l }
func (l *UILabel) MaxWidth(px float32) *UILabel      { l.maxWidth = px; return l }
func (l *UILabel) fontOr(ctx *Context) *text.Font {
	if l.font != nil {
		return l.font
	}
	return ctx.DefaultFont
}

// lines breaks the text on newlines and, when wrapping, on spaces so no line
// is wider than limit. A single word wider than limit keeps its own line.
func (l *UILabel) lines(f *text.Font, limit float32) []string {
	paras := strings.Split(l.text, "\n")
	if !l.wrap || limit <= 0 {
		return paras
	}
	var out []string
	for _, p := range paras {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			try := line + " " + w
			if tw, _ := text.MeasureText(f, try, l.fontSize); tw > limit {
				out = append(out, line)
				line = w
				continue
			}
			line = try
		}
		out = append(out, line)
	}
	return out
}

func (l *UILabel) wrapLimit(c Constraints) float32 {
	limit := c.Max[0] - l.base.padAlong(0)
	if l.maxWidth > 0 && (limit <= 0 || l.maxWidth < limit) {
		limit = l.maxWidth
	}
	return limit
}

func (l *UILabel) Layout(ctx *Context, c Constraints) LayoutResult {
	b := &l.base
	f := l.fontOr(ctx)
	lines := l.lines(f, l.wrapLimit(c))

	var w float32
	for _, ln := range lines {
		lw, _ := text.MeasureText(f, ln, l.fontSize)
		w = maxf(w, lw)
	}
	h := float32(len(lines)) * text.LineHeight(f, l.fontSize)

	b.size = [2]float32{
		b.resolveAxis(0, w+b.padAlong(0), c.Min[0], c.Max[0]),
		b.resolveAxis(1, h+b.padAlong(1), c.Min[1], c.Max[1]),
	}
	return LayoutResult{Size: b.size}
}

func (l *UILabel) Draw(ctx *Context) {
	b := &l.base
	f := l.fontOr(ctx)
	if b.parent == nil {
		l.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport[2], ctx.Viewport[3]}})
	}
	b.drawBackground(ctx, b.color)

	limit := b.size[0] - b.padAlong(0)
	if l.maxWidth > 0 && l.maxWidth < limit {
		limit = l.maxWidth
	}
	lh := text.LineHeight(f, l.fontSize)
	x, y := b.position[0]+b.padding[0], b.position[1]+b.padding[1]
	for i, ln := range l.lines(f, limit) {
		text.DrawText(ctx.Renderer, f, x, y+float32(i)*lh, ln, l.fontSize, l.textColor)
	}
}
