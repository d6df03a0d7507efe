// Package drawlist is the flat, ordered primitive stream produced by the
// UI each frame and consumed by the painter.
//
// A primitive is either a batch of 2D triangles or a custom draw
// callback. Execute walks the list in order and hands each primitive to
// the backend; nothing is reordered or merged across a callback.
package drawlist

import (
	"math"

	"github.com/Faultbox/cubeview/internal/engine/gfx"
)

// Rect is a rectangle in logical points, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o, or a zero-size rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Primitive is *Mesh or *Callback.
type Primitive interface {
	Clip() Rect
	isPrimitive()
}

// FloatsPerVertex is the Mesh vertex layout: x, y, u, v, r, g, b, a.
const FloatsPerVertex = 8

// Mesh is a batch of textured, colored 2D triangles.
type Mesh struct {
	ClipRect Rect
	Vertices []float32
}

func (m *Mesh) Clip() Rect { return m.ClipRect }
func (*Mesh) isPrimitive() {}

// VertexCount returns the number of vertices in the batch.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

// CallbackInfo describes where a callback draws.
type CallbackInfo struct {
	Rect              Rect // region in points
	ClipRect          Rect // visible part of Rect, in points
	PixelsPerPoint    float32
	FramebufferWidth  int32
	FramebufferHeight int32
}

// Pixels converts the visible region to a framebuffer rectangle with a
// bottom-left origin, clamped to the framebuffer.
func (i CallbackInfo) Pixels() gfx.Rect {
	ppp := i.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}
	r := i.ClipRect
	x0 := clamp(round(r.X*ppp), 0, i.FramebufferWidth)
	y0 := clamp(round(r.Y*ppp), 0, i.FramebufferHeight)
	x1 := clamp(round((r.X+r.W)*ppp), 0, i.FramebufferWidth)
	y1 := clamp(round((r.Y+r.H)*ppp), 0, i.FramebufferHeight)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return gfx.Rect{X: x0, Y: i.FramebufferHeight - y1, W: x1 - x0, H: y1 - y0}
}

func round(v float32) int32 {
	return int32(math.Round(float64(v)))
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CallbackFunc draws into the region described by info.
type CallbackFunc func(info CallbackInfo)

// Callback is an opaque custom draw over a region.
type Callback struct {
	Rect     Rect
	ClipRect Rect
	Fn       CallbackFunc
}

func (c *Callback) Clip() Rect { return c.ClipRect }
func (*Callback) isPrimitive() {}

// List is one frame's primitives in paint order.
type List struct {
	Width, Height float32 // screen size in points
	Primitives    []Primitive
}

// Backend consumes primitives.
type Backend interface {
	DrawMesh(m *Mesh)
	RunCallback(c *Callback)
}

// Execute hands every primitive to b in list order.
func (l *List) Execute(b Backend) {
	for _, p := range l.Primitives {
		switch p := p.(type) {
		case *Mesh:
			if p.VertexCount() > 0 {
				b.DrawMesh(p)
			}
		case *Callback:
			b.RunCallback(p)
		}
	}
}

// Callbacks returns the number of callback primitives.
func (l *List) Callbacks() int {
	n := 0
	for _, p := range l.Primitives {
		if _, ok := p.(*Callback); ok {
			n++
		}
	}
	return n
}
