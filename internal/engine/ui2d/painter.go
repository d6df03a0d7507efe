package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeview/internal/engine/drawlist"
	"github.com/Faultbox/cubeview/internal/engine/shader"
)

const uiVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

const uiFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float coverage = texture(uTexture, vTexCoord).r;
	FragColor = vec4(vColor.rgb, vColor.a * coverage);
}
`

// Painter executes draw lists against the current GL context. It owns
// blend, scissor, viewport, program, VAO and texture state while it
// draws meshes, and re-applies all of it after every callback.
type Painter struct {
	program *shader.Program
	uProj   int32
	uTex    int32

	vao, vbo uint32
	atlas    uint32

	clear Color

	fbWidth, fbHeight int32
	pixelsPerPoint    float32
	proj              mgl32.Mat4

	// dirty is set when someone else may have touched GL state.
	dirty bool
}

// NewPainter compiles the UI shader and uploads the font atlas.
func NewPainter(font *Font, clear Color) (*Painter, error) {
	prog, err := shader.Compile(uiVertexShader, uiFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile ui shader: %w", err)
	}
	p := &Painter{program: prog, clear: clear}
	p.uProj, _ = prog.Uniform("uProjection")
	p.uTex, _ = prog.Uniform("uTexture")

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	// Vertex format: pos(2) + texcoord(2) + color(4) = 8 floats, 32 bytes
	stride := int32(drawlist.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	img := font.Atlas()
	b := img.Bounds()
	gl.GenTextures(1, &p.atlas)
	gl.BindTexture(gl.TEXTURE_2D, p.atlas)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return p, nil
}

// Paint clears the framebuffer and executes list. fbWidth and fbHeight
// are the drawable size in pixels; the list is in points.
func (p *Painter) Paint(list *drawlist.List, fbWidth, fbHeight int) {
	p.fbWidth, p.fbHeight = int32(fbWidth), int32(fbHeight)
	p.pixelsPerPoint = 1
	if list.Width > 0 {
		p.pixelsPerPoint = float32(fbWidth) / list.Width
	}
	p.proj = mgl32.Ortho(0, list.Width, list.Height, 0, -1, 1)

	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, p.fbWidth, p.fbHeight)
	gl.ClearColor(p.clear.R, p.clear.G, p.clear.B, p.clear.A)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p.dirty = true
	list.Execute(p)

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

func (p *Painter) apply() {
	gl.Viewport(0, 0, p.fbWidth, p.fbHeight)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.SCISSOR_TEST)

	p.program.Use()
	gl.UniformMatrix4fv(p.uProj, 1, false, &p.proj[0])
	gl.Uniform1i(p.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.atlas)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	p.dirty = false
}

func (p *Painter) info(r, clip Rect) drawlist.CallbackInfo {
	return drawlist.CallbackInfo{
		Rect:              r,
		ClipRect:          clip,
		PixelsPerPoint:    p.pixelsPerPoint,
		FramebufferWidth:  p.fbWidth,
		FramebufferHeight: p.fbHeight,
	}
}

// DrawMesh implements drawlist.Backend.
func (p *Painter) DrawMesh(m *drawlist.Mesh) {
	sc := p.info(m.ClipRect, m.ClipRect).Pixels()
	if sc.Empty() {
		return
	}
	if p.dirty {
		p.apply()
	}
	gl.Scissor(sc.X, sc.Y, sc.W, sc.H)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(m.VertexCount()))
}

// RunCallback implements drawlist.Backend.
func (p *Painter) RunCallback(c *drawlist.Callback) {
	c.Fn(p.info(c.Rect, c.ClipRect))
	p.dirty = true
}

// Close releases painter resources.
func (p *Painter) Close() {
	if p.atlas != 0 {
		gl.DeleteTextures(1, &p.atlas)
		p.atlas = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	p.program.Release()
}
