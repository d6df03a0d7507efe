package app

import (
	"github.com/Faultbox/cubeview/internal/engine/gfx"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
)

// OffscreenView renders the 3D scene into a pixel rectangle of the
// currently bound framebuffer. *viewport.Viewport implements it.
type OffscreenView interface {
	Render(r gfx.Rect, frame uint64) bool
}

// RenderTarget is an offscreen framebuffer shown as an image.
type RenderTarget interface {
	Resize(width, height int32)
	Bind(r, g, b, a float32) (restore func())
	Texture() uint32
}

// Offscreen draws the 3D view into a RenderTarget for front-ends that
// display it as a texture. The UI requests a size while it is built and
// FinishFrame renders it after the animation step, so the texture holds
// the same frame the native painter would draw.
type Offscreen struct {
	dev    gfx.Device
	view   OffscreenView
	target RenderTarget
	clear  ui2d.Color

	width, height int32
}

// NewOffscreen creates an Offscreen clearing to clear.
func NewOffscreen(dev gfx.Device, view OffscreenView, target RenderTarget, clear ui2d.Color) *Offscreen {
	return &Offscreen{dev: dev, view: view, target: target, clear: clear}
}

// Request asks for the view to be rendered at width x height pixels this
// frame.
func (o *Offscreen) Request(width, height int32) {
	o.width, o.height = width, height
}

// Texture is the GL texture holding the rendered view.
func (o *Offscreen) Texture() uint32 {
	return o.target.Texture()
}

// render draws the requested view and clears the request. It returns
// false when nothing was requested or the area is empty.
func (o *Offscreen) render(frame uint64) bool {
	w, h := o.width, o.height
	o.width, o.height = 0, 0
	if w <= 0 || h <= 0 {
		return false
	}

	o.target.Resize(w, h)
	restore := o.target.Bind(o.clear.R, o.clear.G, o.clear.B, 1)
	drawn := o.view.Render(gfx.Rect{W: w, H: h}, frame)
	// The UI backend clears the window next frame with whatever scissor
	// state it finds.
	o.dev.Disable(gfx.ScissorTest)
	restore()
	return drawn
}

// FinishFrame ends a frame whose UI has been fully declared: it steps
// the animation if playing, then renders the requested offscreen view
// at the new frame. It reports whether another frame is wanted.
func FinishFrame(s *State, o *Offscreen) bool {
	redraw := stepIfPlaying(s)
	o.render(s.Anim.FrameCount)
	return redraw || s.openRequested
}
