package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"slices"

	"github.com/hubastard/grove/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // pen to left edge of the bitmap
	BearingY float32 // baseline to top of the bitmap
	W, H     int     // bitmap size; zero for blanks
	U0, V0   float32 // atlas UVs, top-left
	U1, V1   float32
}

// Font is a rasterized face packed into one RGBA atlas. Metrics are in
// pixels at SizePx; drawing at another size scales them.
type Font struct {
	SizePx     float32
	Ascent     float32 // top of line to baseline
	LineHeight float32
	Glyphs     map[rune]Glyph
	Face       font.Face // kept for kerning
	Atlas      *image.RGBA
	Texture    renderer2d.Texture // zero until Upload
}

const (
	atlasPadding = 2
	maxAtlasSize = 4096
)

// Mono builds the built-in Go Mono face at sizePx.
func Mono(sizePx float32) (*Font, error) { return Parse(gomono.TTF, sizePx) }

// LoadTTF reads a TrueType or OpenType file from disk.
func LoadTTF(path string, sizePx float32) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(data, sizePx)
}

// Parse rasterizes printable ASCII and Latin-1 into a white-on-transparent
// atlas. The atlas stays on the CPU until Upload.
func Parse(ttf []byte, sizePx float32) (*Font, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size %.1f", sizePx)
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	glyphs, masks := rasterize(face)
	size, pos, err := pack(masks)
	if err != nil {
		face.Close()
		return nil, err
	}

	atlas := image.NewRGBA(image.Rect(0, 0, size, size))
	for r, m := range masks {
		p := pos[r]
		dst := image.Rectangle{Min: p, Max: p.Add(m.Bounds().Size())}
		draw.DrawMask(atlas, dst, image.White, image.Point{}, m, image.Point{}, draw.Over)

		g := glyphs[r]
		g.U0 = float32(dst.Min.X) / float32(size)
		g.V0 = float32(dst.Min.Y) / float32(size)
		g.U1 = float32(dst.Max.X) / float32(size)
		g.V1 = float32(dst.Max.Y) / float32(size)
		glyphs[r] = g
	}
	// straight alpha: the quad shader blends with SRC_ALPHA
	for i := 0; i < len(atlas.Pix); i += 4 {
		atlas.Pix[i], atlas.Pix[i+1], atlas.Pix[i+2] = 255, 255, 255
	}

	m := face.Metrics()
	return &Font{
		SizePx:     sizePx,
		Ascent:     float32(m.Ascent.Ceil()),
		LineHeight: float32(m.Height.Ceil()),
		Glyphs:     glyphs,
		Face:       face,
		Atlas:      atlas,
	}, nil
}

// Upload hands the atlas to the 2D backend.
func (f *Font) Upload(be renderer2d.Backend) error {
	b := f.Atlas.Bounds()
	tex, err := be.CreateTexture(b.Dx(), b.Dy(), f.Atlas.Pix)
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.Texture = tex
	return nil
}

func (f *Font) Close() {
	if f != nil && f.Face != nil {
		_ = f.Face.Close()
		f.Face = nil
	}
}

func charset() []rune {
	var rs []rune
	for r := rune(32); r <= 126; r++ {
		rs = append(rs, r)
	}
	for r := rune(160); r <= 255; r++ {
		rs = append(rs, r)
	}
	return rs
}

// rasterize renders every glyph of the charset at the origin. Face.Glyph
// reuses its mask, so each bitmap is copied out.
func rasterize(face font.Face) (map[rune]Glyph, map[rune]*image.Alpha) {
	glyphs := make(map[rune]Glyph)
	masks := make(map[rune]*image.Alpha)
	for _, r := range charset() {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			Rune:     r,
			Advance:  float32(adv.Round()),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			W:        dr.Dx(),
			H:        dr.Dy(),
		}
		glyphs[r] = g
		if g.W == 0 || g.H == 0 {
			continue
		}
		m := image.NewAlpha(image.Rect(0, 0, g.W, g.H))
		draw.Draw(m, m.Bounds(), mask, maskp, draw.Src)
		masks[r] = m
	}
	return glyphs, masks
}

// pack places bitmaps on shelves, doubling a square atlas until all fit.
func pack(masks map[rune]*image.Alpha) (int, map[rune]image.Point, error) {
	order := make([]rune, 0, len(masks))
	for r := range masks {
		order = append(order, r)
	}
	// map order is random; shelves must be stable
	slices.Sort(order)

	for size := 128; size <= maxAtlasSize; size *= 2 {
		pos := make(map[rune]image.Point, len(order))
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, r := range order {
			b := masks[r].Bounds()
			if x+b.Dx()+atlasPadding > size {
				x, y, rowH = atlasPadding, y+rowH+atlasPadding, 0
			}
			if x+b.Dx()+atlasPadding > size || y+b.Dy()+atlasPadding > size {
				fits = false
				break
			}
			pos[r] = image.Pt(x, y)
			x += b.Dx() + atlasPadding
			rowH = max(rowH, b.Dy())
		}
		if fits {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
}
