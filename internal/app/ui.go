package app

import (
	"fmt"

	"github.com/Faultbox/cubeview/internal/anim"
	"github.com/Faultbox/cubeview/internal/engine/drawlist"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
)

// ViewportSource produces the draw callback for the 3D region.
type ViewportSource interface {
	Callback(state *anim.State) drawlist.CallbackFunc
}

// BuildUI declares one frame of UI: menu bar, toolbar, status bar and
// the central 3D region.
func BuildUI(ctx *ui2d.Context, s *State, view ViewportSource) {
	w, h := ctx.ScreenSize()
	in := ctx.Input()
	s.MouseX, s.MouseY = in.MouseX, in.MouseY

	ctx.BeginStrip(ui2d.Rect{X: 0, Y: 0, W: w, H: ui2d.BarHeight}, ui2d.ColorBarBg)
	if ctx.BeginMenu("file", "File") {
		if ctx.MenuItem("open", "Open...") {
			s.RequestOpen()
		}
		if ctx.MenuItem("exit", "Exit") {
			s.RequestQuit()
		}
		ctx.EndMenu()
	}
	if ctx.BeginMenu("help", "Help") {
		if ctx.MenuItem("about", "About") {
			s.Status = AboutText
		}
		ctx.EndMenu()
	}
	ctx.EndStrip()

	ctx.BeginStrip(ui2d.Rect{X: 0, Y: ui2d.BarHeight, W: w, H: ui2d.ToolbarHeight}, ui2d.ColorBarBg)
	if ctx.Button("open", "Open") {
		s.RequestOpen()
	}
	ctx.Separator()
	playLabel := "Play"
	if s.Anim.Playing {
		playLabel = "Pause"
	}
	if ctx.Button("play", playLabel) {
		s.TogglePlay()
	}
	if ctx.Button("step", "Step") {
		s.StepFrame()
	}
	if ctx.Button("reset", "Reset") {
		s.ResetAnim()
	}
	ctx.Separator()
	ctx.LabelColored(fmt.Sprintf("Frame %d", s.Anim.FrameCount), ui2d.ColorTextDim)
	ctx.EndStrip()

	ctx.BeginStrip(ui2d.Rect{X: 0, Y: h - ui2d.BarHeight, W: w, H: ui2d.BarHeight}, ui2d.ColorBarBg)
	ctx.Label(s.StatusLine())
	ctx.EndStrip()

	top := float32(ui2d.BarHeight + ui2d.ToolbarHeight)
	s.Viewport = drawlist.Rect{X: 0, Y: top, W: max(w, 0), H: max(h-top-ui2d.BarHeight, 0)}
	ctx.Custom(s.Viewport, view.Callback(&s.Anim))
}
