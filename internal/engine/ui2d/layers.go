package ui2d

import "github.com/Faultbox/cubeview/internal/engine/drawlist"

// Rect is a rectangle in logical points.
type Rect = drawlist.Rect

type layerID int

const (
	layerBase layerID = iota
	layerPopup
	layerCount
)

// layer collects primitives. Consecutive quads with the same clip rect
// share one mesh; a callback always starts a new batch after it.
type layer struct {
	prims []drawlist.Primitive
	open  *drawlist.Mesh
}

func (l *layer) reset() {
	l.prims = l.prims[:0]
	l.open = nil
}

func (l *layer) quad(clip Rect, x, y, w, h, u0, v0, u1, v1 float32, c Color) {
	if l.open == nil || l.open.ClipRect != clip {
		l.open = &drawlist.Mesh{ClipRect: clip}
		l.prims = append(l.prims, l.open)
	}
	l.open.Vertices = append(l.open.Vertices,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,

		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, u0, v1, c.R, c.G, c.B, c.A,
	)
}

func (l *layer) callback(cb *drawlist.Callback) {
	l.prims = append(l.prims, cb)
	l.open = nil
}

// DrawRect draws a filled rectangle.
func (c *Context) DrawRect(r Rect, color Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	u, v := c.font.WhiteUV()
	c.layers[c.cur].quad(c.clip, r.X, r.Y, r.W, r.H, u, v, u, v, color)
}

// DrawRectOutline draws a rectangle outline.
func (c *Context) DrawRectOutline(r Rect, thickness float32, color Color) {
	c.DrawRect(Rect{r.X, r.Y, r.W, thickness}, color)
	c.DrawRect(Rect{r.X, r.Y + r.H - thickness, r.W, thickness}, color)
	c.DrawRect(Rect{r.X, r.Y + thickness, thickness, r.H - 2*thickness}, color)
	c.DrawRect(Rect{r.X + r.W - thickness, r.Y + thickness, thickness, r.H - 2*thickness}, color)
}

// DrawText draws one line of text with its top-left corner at x, y.
func (c *Context) DrawText(x, y float32, text string, color Color) {
	gw, gh := c.font.GlyphSize()
	w, h := float32(gw)*c.scale, float32(gh)*c.scale
	for _, ch := range text {
		if ch != ' ' {
			u0, v0, u1, v1 := c.font.GlyphUV(ch)
			c.layers[c.cur].quad(c.clip, x, y, w, h, u0, v0, u1, v1, color)
		}
		x += w
	}
}

// MeasureText returns the size of a line of text at the context scale.
func (c *Context) MeasureText(text string) (float32, float32) {
	return c.font.MeasureText(text, c.scale)
}

// Custom reserves r for a custom draw callback. The callback runs
// during painting, after everything recorded before it on the same
// layer and before everything recorded after.
func (c *Context) Custom(r Rect, fn drawlist.CallbackFunc) {
	c.layers[c.cur].callback(&drawlist.Callback{
		Rect:     r,
		ClipRect: r.Intersect(c.clip),
		Fn:       fn,
	})
}
