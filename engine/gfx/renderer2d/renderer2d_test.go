package renderer2d

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/colors"
)

type batch struct {
	verts    []float32
	inds     []uint32
	textures []Texture
}

type fakeBackend struct {
	next    Texture
	fail    bool
	batches []batch
}

func (f *fakeBackend) CreateTexture(w, h int, rgba []byte) (Texture, error) {
	if f.fail {
		return 0, errors.New("no context")
	}
	f.next++
	return f.next, nil
}

func (f *fakeBackend) DrawQuads(_ mgl32.Mat4, verts []float32, inds []uint32, textures []Texture) {
	f.batches = append(f.batches, batch{
		verts:    append([]float32(nil), verts...),
		inds:     append([]uint32(nil), inds...),
		textures: append([]Texture(nil), textures...),
	})
}

func newRenderer(t *testing.T, maxQuads int) (*fakeBackend, *Renderer2D) {
	t.Helper()
	be := &fakeBackend{}
	rd, err := New(be, maxQuads)
	if err != nil {
		t.Fatal(err)
	}
	return be, rd
}

func TestDrawQuadVertices(t *testing.T) {
	be, rd := newRenderer(t, 0)
	rd.BeginScene(mgl32.Ident4())
	rd.DrawQuad(10, 20, 4, 6, colors.Red, 0)
	rd.EndScene()

	if len(be.batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(be.batches))
	}
	b := be.batches[0]
	if len(b.verts) != 4*VertexStride || len(b.inds) != 6 {
		t.Fatalf("verts=%d inds=%d", len(b.verts), len(b.inds))
	}
	// top-left corner: position, colour, uv, white slot
	want := []float32{8, 17, 1, 0, 0, 1, 0, 0, 0}
	for i, v := range want {
		if b.verts[i] != v {
			t.Errorf("vertex 0 field %d = %v, want %v", i, b.verts[i], v)
		}
	}
	// bottom-right
	if x, y := b.verts[3*VertexStride], b.verts[3*VertexStride+1]; x != 12 || y != 23 {
		t.Errorf("bottom-right = (%v, %v), want (12, 23)", x, y)
	}
	if len(b.textures) != 1 || b.textures[0] != 1 {
		t.Errorf("textures = %v, want only the white texture", b.textures)
	}
}

func TestBatchFlushesWhenFull(t *testing.T) {
	be, rd := newRenderer(t, 2)
	rd.BeginScene(mgl32.Ident4())
	for i := 0; i < 5; i++ {
		rd.DrawQuad(0, 0, 1, 1, colors.White, 0)
	}
	rd.EndScene()

	st := rd.Stats()
	if st.DrawCalls != 3 || st.QuadCount != 5 || len(be.batches) != 3 {
		t.Errorf("stats %+v, batches %d; want 3 draw calls for 5 quads", st, len(be.batches))
	}
	if st.TotalVertexCount() != 20 || st.TotalIndexCount() != 30 {
		t.Errorf("vertex/index totals = %d/%d", st.TotalVertexCount(), st.TotalIndexCount())
	}

	// a new scene starts from zero
	rd.BeginScene(mgl32.Ident4())
	rd.EndScene()
	if rd.Stats() != (Statistics{}) {
		t.Errorf("stats after empty scene = %+v", rd.Stats())
	}
}

func TestTextureSlotsFlushWhenExhausted(t *testing.T) {
	be, rd := newRenderer(t, 0)
	rd.BeginScene(mgl32.Ident4())
	for tex := Texture(100); tex < 100+MaxTexSlots; tex++ {
		rd.DrawTexturedQuad(0, 0, 1, 1, tex, colors.White, 0)
	}
	// reusing a bound texture takes no new slot
	rd.DrawTexturedQuad(0, 0, 1, 1, 100+MaxTexSlots-1, colors.White, 0)
	rd.EndScene()

	if len(be.batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(be.batches))
	}
	if got := len(be.batches[0].textures); got != MaxTexSlots {
		t.Errorf("first batch bound %d textures, want %d", got, MaxTexSlots)
	}
	second := be.batches[1]
	if len(second.textures) != 2 || second.textures[1] != 100+MaxTexSlots-1 {
		t.Errorf("second batch textures = %v", second.textures)
	}
	if slot := second.verts[VertexStride-1]; slot != 1 {
		t.Errorf("texIndex = %v, want 1", slot)
	}
	if rd.Stats().TextureCount != MaxTexSlots {
		t.Errorf("TextureCount = %d", rd.Stats().TextureCount)
	}
}

func TestNewFailsWithoutWhiteTexture(t *testing.T) {
	if _, err := New(&fakeBackend{fail: true}, 1); err == nil {
		t.Fatal("New succeeded with a failing backend")
	}
}

func TestScreenSpace(t *testing.T) {
	m := ScreenSpace(800, 600)
	tests := []struct {
		px, want mgl32.Vec4
	}{
		{mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{-1, 1, 0, 1}},
		{mgl32.Vec4{800, 600, 0, 1}, mgl32.Vec4{1, -1, 0, 1}},
		{mgl32.Vec4{400, 300, 0, 1}, mgl32.Vec4{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		if got := m.Mul4x1(tt.px); !got.ApproxEqual(tt.want) {
			t.Errorf("ScreenSpace * %v = %v, want %v", tt.px, got, tt.want)
		}
	}
}

func TestFromGrid(t *testing.T) {
	sub := FromGrid(7, 1, 2, 16, 16, 64, 64)
	want := SubTexture2D{Texture: 7, U0: 0.25, V0: 0.5, U1: 0.5, V1: 0.75}
	if sub != want {
		t.Errorf("FromGrid = %+v, want %+v", sub, want)
	}
}
