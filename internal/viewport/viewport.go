// Package viewport draws the 3D scene into a sub-rectangle of the
// framebuffer from inside the UI's paint pass.
//
// On entry Render enables scissoring, depth testing and back-face
// culling and clears depth inside its rectangle only. On exit depth
// testing and culling are disabled again; the painter re-applies the
// rest of its own state after every callback.
package viewport

import (
	"github.com/Faultbox/cubeview/internal/anim"
	"github.com/Faultbox/cubeview/internal/engine/drawlist"
	"github.com/Faultbox/cubeview/internal/engine/gfx"
	"github.com/Faultbox/cubeview/internal/transform"
)

// Scene draws itself with a transform set. *renderer.Resource is the
// production implementation.
type Scene interface {
	Draw(ts transform.Set)
}

// Viewport renders a Scene through a Device.
type Viewport struct {
	dev    gfx.Device
	scene  Scene
	camera transform.Camera
}

// New returns a Viewport drawing scene with the given camera.
func New(dev gfx.Device, scene Scene, camera transform.Camera) *Viewport {
	return &Viewport{dev: dev, scene: scene, camera: camera}
}

// Render draws the scene at the given animation frame into r. It returns
// false, touching no state, when r covers no pixels.
func (v *Viewport) Render(r gfx.Rect, frame uint64) bool {
	if r.Empty() {
		return false
	}

	v.dev.Enable(gfx.ScissorTest)
	v.dev.Scissor(r)
	v.dev.Viewport(r)
	v.dev.Enable(gfx.DepthTest)
	v.dev.DepthLess()
	v.dev.Enable(gfx.CullFace)
	v.dev.CullBack()
	v.dev.ClearDepth()

	ts := transform.Compute(transform.Aspect(float32(r.W), float32(r.H)), frame, v.camera)
	v.scene.Draw(ts)

	v.dev.Disable(gfx.CullFace)
	v.dev.Disable(gfx.DepthTest)
	return true
}

// Callback returns a draw callback that renders the frame held by state
// at the time the callback runs.
func (v *Viewport) Callback(state *anim.State) drawlist.CallbackFunc {
	return func(info drawlist.CallbackInfo) {
		v.Render(info.Pixels(), state.FrameCount)
	}
}
