package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/assets"
	"github.com/hubastard/grove/engine/gfx/renderer2d"
)

// quadBatch is the GL side of renderer2d: one streaming VAO drawn with the
// quad2d program, textures bound to units 0..MaxTexSlots-1.
type quadBatch struct {
	program  uint32
	uVP      int32
	vao      uint32
	vbo, ebo uint32
	vboCap   int // bytes
	eboCap   int
	textures []uint32
}

func (q *quadBatch) init() error {
	vs, err := assets.LoadShader("quad2d.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("quad2d.frag")
	if err != nil {
		return err
	}
	if q.program, err = makeProgram(vs, fs); err != nil {
		return fmt.Errorf("quad2d: %w", err)
	}
	q.uVP = gl.GetUniformLocation(q.program, gl.Str("uVP\x00"))

	var slots [renderer2d.MaxTexSlots]int32
	for i := range slots {
		slots[i] = int32(i)
	}
	gl.UseProgram(q.program)
	gl.Uniform1iv(gl.GetUniformLocation(q.program, gl.Str("uTex[0]\x00")), int32(len(slots)), &slots[0])
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.GenBuffers(1, &q.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)

	// pos2 color4 uv2 tex1
	const stride = renderer2d.VertexStride * 4
	attribs := []struct {
		size, offset int32
	}{{2, 0}, {4, 2}, {2, 6}, {1, 8}}
	for loc, a := range attribs {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), a.size, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(a.offset*4)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (q *quadBatch) destroy() {
	if len(q.textures) > 0 {
		gl.DeleteTextures(int32(len(q.textures)), &q.textures[0])
	}
	if q.ebo != 0 {
		gl.DeleteBuffers(1, &q.ebo)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.program != 0 {
		gl.DeleteProgram(q.program)
	}
}

// CreateTexture uploads tightly packed RGBA8 pixels, top row first.
func (r *RendererGL) CreateTexture(w, h int, rgba []byte) (renderer2d.Texture, error) {
	if w <= 0 || h <= 0 || len(rgba) != w*h*4 {
		return 0, fmt.Errorf("texture %dx%d: got %d bytes of pixels", w, h, len(rgba))
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.quads.textures = append(r.quads.textures, id)
	return renderer2d.Texture(id), nil
}

// DrawQuads draws one renderer2d batch over whatever is already in the
// framebuffer, without depth testing.
func (r *RendererGL) DrawQuads(viewProj mgl32.Mat4, verts []float32, inds []uint32, textures []renderer2d.Texture) {
	if len(inds) == 0 {
		return
	}
	q := &r.quads

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(q.program)
	gl.UniformMatrix4fv(q.uVP, 1, false, &viewProj[0])
	for i, tex := range textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	}

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	if n := len(verts) * 4; n > q.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, n, nil, gl.DYNAMIC_DRAW)
		q.vboCap = n
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	if n := len(inds) * 4; n > q.eboCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, n, nil, gl.DYNAMIC_DRAW)
		q.eboCap = n
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(inds)*4, gl.Ptr(inds))

	gl.DrawElements(gl.TRIANGLES, int32(len(inds)), gl.UNSIGNED_INT, gl.PtrOffset(0))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }
