package gfx

import "github.com/go-gl/gl/v4.1-core/gl"

// GL is the Device backed by the current OpenGL context.
type GL struct{}

func glCap(c Cap) uint32 {
	switch c {
	case DepthTest:
		return gl.DEPTH_TEST
	case CullFace:
		return gl.CULL_FACE
	default:
		return gl.SCISSOR_TEST
	}
}

func (GL) Enable(c Cap)  { gl.Enable(glCap(c)) }
func (GL) Disable(c Cap) { gl.Disable(glCap(c)) }

func (GL) Scissor(r Rect)  { gl.Scissor(r.X, r.Y, r.W, r.H) }
func (GL) Viewport(r Rect) { gl.Viewport(r.X, r.Y, r.W, r.H) }

func (GL) DepthLess() { gl.DepthFunc(gl.LESS) }

func (GL) CullBack() {
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

func (GL) ClearDepth() {
	gl.DepthMask(true)
	gl.ClearDepth(1)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}
