package renderer2d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/colors"
)

// Max textures per batch (common GL limit is 16)
const MaxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	VertexStride = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Texture is a backend texture handle.
type Texture uint32

// Backend uploads textures and draws batches of textured quads. Vertices use
// the VertexStride layout; textures[i] is bound to the slot that a vertex's
// texIndex i selects. The slices are reused once DrawQuads returns.
type Backend interface {
	CreateTexture(w, h int, rgba []byte) (Texture, error)
	DrawQuads(viewProj mgl32.Mat4, verts []float32, inds []uint32, textures []Texture)
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches quads between BeginScene and EndScene and hands them to
// the backend when the batch fills, runs out of texture slots, or ends.
type Renderer2D struct {
	be     Backend
	white  Texture // 1x1 white (slot 0)
	texArr [MaxTexSlots]Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	vp    mgl32.Mat4
	stats Statistics
}

func New(be Backend, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	white, err := be.CreateTexture(1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		return nil, fmt.Errorf("renderer2d white texture: %w", err)
	}
	rd := &Renderer2D{
		be:       be,
		white:    white,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
	}
	rd.resetBatch()
	return rd, nil
}

// ScreenSpace maps pixels with the origin at the top-left and Y down.
func ScreenSpace(w, h int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(w), float32(h), 0, -1, 1)
}

func (rd *Renderer2D) BeginScene(vp mgl32.Mat4) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawQuad draws a solid quad centred on (x, y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rotationRad, rd.texSlot(rd.white), 0, 0, 1, 1)
}

func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex Texture, tint colors.Color, rotationRad float32) {
	rd.DrawTexturedQuadUV(x, y, w, h, tex, tint, rotationRad, 0, 0, 1, 1)
}

// DrawTexturedQuadUV draws the sub-rect u0,v0 -> u1,v1 of tex.
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, u0, v0, u1, v1)
}

func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.DrawTexturedQuadUV(x, y, w, h, sub.Texture, tint, rotationRad, sub.U0, sub.V0, sub.U1, sub.V1)
}

// --- internals ---

func (rd *Renderer2D) texSlot(t Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= MaxTexSlots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	if rd.texCnt > rd.stats.TextureCount {
		rd.stats.TextureCount = rd.texCnt
	}
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, rotationRad float32, texIndex float32, u0, v0, u1, v1 float32) {
	halfW, halfH := w*0.5, h*0.5

	// TL, TR, BL, BR; Y grows downward so the top edge is at -halfH
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	c, s := float32(1), float32(0)
	if rotationRad != 0 {
		c, s = float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))
	}

	first := uint32(len(rd.verts) / VertexStride)
	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0]*c-p[1]*s+x, p[0]*s+p[1]*c+y,
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		first+0, first+2, first+1,
		first+1, first+2, first+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.be.DrawQuads(rd.vp, rd.verts, rd.inds, rd.texArr[:rd.texCnt])
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	clear(rd.texArr[:])
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
