package text

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/gfx/renderer2d"
)

type countingBackend struct {
	uploads [][2]int
	quads   int
}

func (b *countingBackend) CreateTexture(w, h int, rgba []byte) (renderer2d.Texture, error) {
	b.uploads = append(b.uploads, [2]int{w, h})
	return renderer2d.Texture(len(b.uploads)), nil
}

func (b *countingBackend) DrawQuads(_ mgl32.Mat4, _ []float32, inds []uint32, _ []renderer2d.Texture) {
	b.quads += len(inds) / 6
}

func mono(t *testing.T) *Font {
	t.Helper()
	f, err := Mono(16)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(f.Close)
	return f
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 0.01 }

func TestMonoAtlas(t *testing.T) {
	f := mono(t)

	size := f.Atlas.Bounds().Dx()
	if size != f.Atlas.Bounds().Dy() || size&(size-1) != 0 {
		t.Errorf("atlas %v is not a power-of-two square", f.Atlas.Bounds())
	}
	if f.Ascent <= 0 || f.LineHeight < f.Ascent {
		t.Errorf("metrics: ascent=%v line=%v", f.Ascent, f.LineHeight)
	}

	a, ok := f.Glyphs['A']
	if !ok || a.W == 0 || a.H == 0 || a.Advance <= 0 {
		t.Fatalf("glyph A = %+v", a)
	}
	if a.U0 < 0 || a.U1 > 1 || a.U1 <= a.U0 || a.V1 <= a.V0 {
		t.Errorf("glyph A UVs = %v,%v %v,%v", a.U0, a.V0, a.U1, a.V1)
	}
	// the glyph's atlas cell holds coverage
	x := int(a.U0*float32(size)) + a.W/2
	y := int(a.V0*float32(size)) + a.H/2
	var covered bool
	for dy := -a.H / 2; dy < a.H/2 && !covered; dy++ {
		covered = f.Atlas.RGBAAt(x, y+dy).A > 0
	}
	if !covered {
		t.Error("no coverage in glyph A's atlas cell")
	}

	sp := f.Glyphs[' ']
	if sp.W != 0 || sp.Advance != a.Advance {
		t.Errorf("space = %+v, want blank with a monospace advance", sp)
	}
}

func TestMeasureText(t *testing.T) {
	f := mono(t)
	one, lineH := MeasureText(f, "a", 0)

	tests := []struct {
		name string
		s    string
		size float32
		w, h float32
	}{
		{"empty", "", 0, 0, lineH},
		{"monospace", "abc", 0, 3 * one, lineH},
		{"unknown rune spaces", "a世c", 0, 3 * one, lineH},
		{"widest line", "ab\nabcd\n", 0, 4 * one, 3 * lineH},
		{"scaled", "ab", 32, 4 * one, 2 * lineH},
	}
	for _, tt := range tests {
		w, h := MeasureText(f, tt.s, tt.size)
		if !near(w, tt.w) || !near(h, tt.h) {
			t.Errorf("%s: MeasureText(%q) = %v x %v, want %v x %v", tt.name, tt.s, w, h, tt.w, tt.h)
		}
	}
	if got := LineHeight(f, 8); !near(got, lineH/2) {
		t.Errorf("LineHeight(8) = %v, want %v", got, lineH/2)
	}
}

func TestDrawTextSkipsBlanks(t *testing.T) {
	f := mono(t)
	be := &countingBackend{}
	if err := f.Upload(be); err != nil {
		t.Fatal(err)
	}
	if len(be.uploads) != 1 || be.uploads[0][0] != f.Atlas.Bounds().Dx() || f.Texture == 0 {
		t.Fatalf("uploads = %v, texture = %d", be.uploads, f.Texture)
	}

	r2d, err := renderer2d.New(be, 0)
	if err != nil {
		t.Fatal(err)
	}
	r2d.BeginScene(renderer2d.ScreenSpace(100, 100))
	DrawText(r2d, f, 0, 0, "a b\n c", 0, colors.White)
	r2d.EndScene()

	if be.quads != 3 {
		t.Errorf("drew %d quads, want 3", be.quads)
	}
	if st := r2d.Stats(); st.TextureCount != 2 {
		t.Errorf("TextureCount = %d, want white + atlas", st.TextureCount)
	}
}
