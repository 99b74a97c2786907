package text

import (
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/gfx/renderer2d"
)

func scaleFor(f *Font, size float32) float32 {
	if size <= 0 {
		return 1
	}
	return size / f.SizePx
}

func (f *Font) kern(prev, r rune) float32 {
	if prev < 0 || f.Face == nil {
		return 0
	}
	return float32(f.Face.Kern(prev, r)) / 64
}

// DrawText draws s with the top-left of its first line at (x, y), Y down.
// size <= 0 draws at the atlas size.
func DrawText(r2d *renderer2d.Renderer2D, f *Font, x, y float32, s string, size float32, color colors.Color) {
	scale := scaleFor(f, size)
	penX := x
	baseY := y + f.Ascent*scale
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight * scale
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			g = f.Glyphs[' ']
		}
		penX += f.kern(prev, r) * scale

		if g.W > 0 && g.H > 0 {
			w, h := float32(g.W)*scale, float32(g.H)*scale
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			r2d.DrawTexturedQuadUV(left+w*0.5, top+h*0.5, w, h, f.Texture, color, 0, g.U0, g.V0, g.U1, g.V1)
		}
		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the size of the box DrawText fills. An empty string
// still takes one line.
func MeasureText(f *Font, s string, size float32) (width, height float32) {
	scale := scaleFor(f, size)
	var lineW float32
	lines := 1
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			lines++
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			g = f.Glyphs[' ']
		}
		lineW += f.kern(prev, r) + g.Advance
		prev = r
	}
	width = max(width, lineW)
	return width * scale, float32(lines) * f.LineHeight * scale
}

// LineHeight is the baseline-to-baseline distance at size.
func LineHeight(f *Font, size float32) float32 { return f.LineHeight * scaleFor(f, size) }
