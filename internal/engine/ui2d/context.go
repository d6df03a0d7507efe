// Package ui2d is a small immediate-mode UI. Widgets are declared every
// frame; the Context records them into a drawlist.List which a Painter
// executes against OpenGL.
package ui2d

import "github.com/Faultbox/cubeview/internal/engine/drawlist"

// Layout metrics in points.
const (
	BarHeight     = 24
	ToolbarHeight = 32
	padding       = 6
	spacing       = 4
	menuItemH     = 22
	menuMinW      = 140
)

// Context is the main UI context that records widgets and tracks
// interaction state between frames.
type Context struct {
	font  *Font
	input *InputState
	scale float32

	width, height float32

	layers [layerCount]layer
	cur    layerID
	clip   Rect

	// Active/hot widget tracking for interaction
	hotWidget    string
	activeWidget string
	// pressUsed is set once a widget takes this frame's press.
	pressUsed bool

	// Horizontal strip layout
	strip   Rect
	cursorX float32

	// Menus
	openMenu    string
	popup       Rect
	popupActive bool
	menuItemY   float32
}

// NewContext creates a UI context drawing text with font.
func NewContext(font *Font) *Context {
	return &Context{
		font:  font,
		input: &InputState{},
		scale: 1,
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// ScreenSize returns the size passed to Begin.
func (c *Context) ScreenSize() (float32, float32) {
	return c.width, c.height
}

// OpenMenu returns the id of the open menu, or "".
func (c *Context) OpenMenu() string {
	return c.openMenu
}

// Begin starts a new UI frame covering width x height points.
func (c *Context) Begin(width, height float32) {
	c.input.Update()
	c.width, c.height = width, height
	for i := range c.layers {
		c.layers[i].reset()
	}
	c.cur = layerBase
	c.clip = Rect{0, 0, width, height}
	c.hotWidget = ""
	c.pressUsed = false
	c.popupActive = false
	c.popup = Rect{}
}

// End finishes the frame and returns its primitives in paint order:
// the base layer, then popups.
func (c *Context) End() *drawlist.List {
	// A press that no widget took closes any open menu.
	if c.input.MouseLeftPressed && !c.pressUsed {
		c.openMenu = ""
	}
	// A press and release in one batch never produces a release edge.
	if !c.input.MouseLeftDown {
		c.activeWidget = ""
	}
	c.input.EndFrame()

	list := &drawlist.List{Width: c.width, Height: c.height}
	for i := range c.layers {
		list.Primitives = append(list.Primitives, c.layers[i].prims...)
	}
	return list
}

// hover reports whether the mouse is over r and not covered by an open
// popup drawn above the current layer.
func (c *Context) hover(r Rect) bool {
	if !c.input.IsMouseInRect(r) {
		return false
	}
	return c.cur != layerBase || !c.popupActive || !c.input.IsMouseInRect(c.popup)
}

// press reports whether this frame's press lands on r, and takes it.
func (c *Context) press(id string, r Rect) (hovered, pressed bool) {
	hovered = c.hover(r)
	if hovered {
		c.hotWidget = id
		if c.input.MouseLeftPressed && !c.pressUsed {
			c.pressUsed = true
			c.activeWidget = id
			pressed = true
		}
	}
	return hovered, pressed
}

// BeginStrip starts a horizontal bar filling r.
func (c *Context) BeginStrip(r Rect, bg Color) {
	c.strip = r
	c.cursorX = r.X + padding
	c.DrawRect(r, bg)
	c.DrawRect(Rect{r.X, r.Y + r.H - 1, r.W, 1}, ColorBarBorder)
}

// EndStrip ends the current bar.
func (c *Context) EndStrip() {
	c.strip = Rect{}
}

// Button draws a button in the current strip and returns true when it is
// pressed this frame.
func (c *Context) Button(id, label string) bool {
	tw, th := c.MeasureText(label)
	h := c.strip.H - 2*spacing
	r := Rect{c.cursorX, c.strip.Y + spacing, tw + 2*padding + 4, h}

	hovered, pressed := c.press(id, r)

	color := ColorButtonNormal
	if c.activeWidget == id {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}
	c.DrawRect(r, color)
	c.DrawRectOutline(r, 1, ColorBarBorder)
	c.DrawText(r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, label, ColorText)

	c.cursorX += r.W + spacing
	return pressed
}

// Label draws text in the current strip.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws text in the current strip with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	tw, th := c.MeasureText(text)
	c.DrawText(c.cursorX, c.strip.Y+(c.strip.H-th)/2, text, color)
	c.cursorX += tw + spacing
}

// Separator draws a vertical divider in the current strip.
func (c *Context) Separator() {
	c.cursorX += spacing
	c.DrawRect(Rect{c.cursorX, c.strip.Y + spacing, 1, c.strip.H - 2*spacing}, ColorBarBorder)
	c.cursorX += 1 + 2*spacing
}

// BeginMenu draws a menu title in the current strip. It returns true
// while the menu is open; the caller then adds items and calls EndMenu.
func (c *Context) BeginMenu(id, label string) bool {
	tw, th := c.MeasureText(label)
	r := Rect{c.cursorX, c.strip.Y, tw + 2*padding, c.strip.H}
	c.cursorX += r.W

	hovered, pressed := c.press(id, r)
	switch {
	case pressed && c.openMenu == id:
		c.openMenu = ""
	case pressed:
		c.openMenu = id
	case hovered && c.openMenu != "" && c.openMenu != id:
		// Sliding across the bar switches menus.
		c.openMenu = id
	}

	if c.openMenu == id || hovered {
		c.DrawRect(r, ColorButtonHover)
	}
	c.DrawText(r.X+padding, r.Y+(r.H-th)/2, label, ColorText)

	if c.openMenu != id {
		return false
	}
	c.cur = layerPopup
	c.popupActive = true
	c.popup = Rect{X: r.X, Y: r.Y + r.H, W: menuMinW}
	c.menuItemY = c.popup.Y
	return true
}

// MenuItem draws an entry of the open menu and returns true when it is
// chosen. Choosing an item closes the menu.
func (c *Context) MenuItem(id, label string) bool {
	tw, th := c.MeasureText(label)
	if w := tw + 4*padding; w > c.popup.W {
		c.popup.W = w
	}
	r := Rect{c.popup.X, c.menuItemY, c.popup.W, menuItemH}
	c.menuItemY += menuItemH
	c.popup.H += menuItemH

	hovered, pressed := c.press(c.openMenu+"/"+id, r)

	bg := ColorPopupBg
	if hovered {
		bg = ColorButtonHover
	}
	c.DrawRect(r, bg)
	c.DrawText(r.X+2*padding, r.Y+(r.H-th)/2, label, ColorText)

	if pressed {
		c.openMenu = ""
	}
	return pressed
}

// EndMenu closes the menu started by BeginMenu.
func (c *Context) EndMenu() {
	c.DrawRectOutline(c.popup, 1, ColorBarBorder)
	c.cur = layerBase
}
