// Package gfx wraps the small slice of GL state that the 3D viewport
// toggles while it shares the context with the UI painter.
package gfx

// Cap is a GL capability that can be enabled or disabled.
type Cap int

const (
	DepthTest Cap = iota
	CullFace
	ScissorTest
)

func (c Cap) String() string {
	switch c {
	case DepthTest:
		return "depth"
	case CullFace:
		return "cull"
	case ScissorTest:
		return "scissor"
	}
	return "unknown"
}

// Rect is a framebuffer rectangle in physical pixels, origin bottom-left.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Device is the state surface used by render callbacks.
type Device interface {
	Enable(c Cap)
	Disable(c Cap)
	Scissor(r Rect)
	Viewport(r Rect)
	// DepthLess selects the LESS depth comparison.
	DepthLess()
	// CullBack culls back faces with counter-clockwise front faces.
	CullBack()
	// ClearDepth clears the depth buffer to 1. With the scissor test
	// enabled only the scissor box is cleared.
	ClearDepth()
}
