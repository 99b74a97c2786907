package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/assets"
	"github.com/hubastard/grove/engine/core"
)

// RendererGL draws a fixed grid of coloured cubes, enough scenery to see a
// camera move, and serves as the renderer2d backend for overlays.
type RendererGL struct {
	win     core.Window
	program uint32
	uMVP    int32
	vao     uint32
	vbo     uint32
	count   int32
	models  []mgl32.Mat4
	quads   quadBatch
}

const gridHalf = 3 // cubes per side = 2*gridHalf+1

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	vs, err := assets.LoadShader("scene.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("scene.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	r.uMVP = gl.GetUniformLocation(r.program, gl.Str("uMVP\x00"))

	verts := cubeVertices()
	r.count = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec3 aColor;
	const stride = 6 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	for x := -gridHalf; x <= gridHalf; x++ {
		for z := -gridHalf; z <= gridHalf; z++ {
			m := mgl32.Translate3D(float32(x)*2, -1, float32(z)*2).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
			r.models = append(r.models, m)
		}
	}

	if err := r.quads.init(); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	r.quads.destroy()
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) DrawScene(viewProj mgl32.Mat4) {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	for _, m := range r.models {
		mvp := viewProj.Mul4(m)
		gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
		gl.DrawArrays(gl.TRIANGLES, 0, r.count)
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// cubeVertices returns 36 vertices (x,y,z,r,g,b) of a unit cube centred on
// the origin, one flat colour per face.
func cubeVertices() []float32 {
	type face struct {
		axis, sign int
		color      [3]float32
	}
	faces := []face{
		{0, 1, [3]float32{0.9, 0.3, 0.3}},
		{0, -1, [3]float32{0.6, 0.2, 0.2}},
		{1, 1, [3]float32{0.3, 0.9, 0.3}},
		{1, -1, [3]float32{0.2, 0.6, 0.2}},
		{2, 1, [3]float32{0.3, 0.3, 0.9}},
		{2, -1, [3]float32{0.2, 0.2, 0.6}},
	}
	quad := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	out := make([]float32, 0, 36*6)
	for _, f := range faces {
		u, v := (f.axis+1)%3, (f.axis+2)%3
		for _, q := range quad {
			var p [3]float32
			p[f.axis] = float32(f.sign)
			p[u], p[v] = q[0], q[1]
			if f.sign < 0 {
				// keep counter-clockwise winding seen from outside
				p[u], p[v] = q[1], q[0]
			}
			out = append(out, p[0], p[1], p[2], f.color[0], f.color[1], f.color[2])
		}
	}
	return out
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
