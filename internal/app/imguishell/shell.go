// Package imguishell is the Dear ImGui front-end. It drives the same
// app.State as the native driver and shows the 3D view as a texture.
package imguishell

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/app"
	"github.com/Faultbox/cubeview/internal/engine/ui"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
	"github.com/Faultbox/cubeview/internal/logger"
)

// Options configures a Shell. Picker and Screenshots may be nil.
type Options struct {
	Backend     *ui.Backend
	Offscreen   *app.Offscreen
	Picker      app.FilePicker
	Screenshots app.Screenshotter
	State       *app.State
	Title       string
}

// Shell runs the ImGui frame loop.
type Shell struct {
	backend   *ui.Backend
	offscreen *app.Offscreen
	picker    app.FilePicker
	shots     app.Screenshotter
	state     *app.State
	title     string

	// Captures read the front buffer one frame after the request, since
	// the backend presents before control returns.
	captureNext bool
}

// New creates the shell.
func New(o Options) *Shell {
	return &Shell{
		backend:   o.Backend,
		offscreen: o.Offscreen,
		picker:    o.Picker,
		shots:     o.Screenshots,
		state:     o.State,
		title:     o.Title,
	}
}

// Run blocks until the window closes.
func (sh *Shell) Run() {
	sh.backend.Run(sh.frame)
	logger.Info("imgui shell stopped", zap.Uint64("frame", sh.state.Anim.FrameCount))
}

func (sh *Shell) frame() {
	s := sh.state

	if sh.captureNext {
		sh.captureNext = false
		w, h := sh.backend.DrawableSize()
		app.TakeScreenshot(s, sh.shots, w, h)
	}

	keys := ui2d.InputState{
		KeySpacePressed:  ui.IsKeyPressed(imgui.KeySpace),
		KeyUpPressed:     ui.IsKeyPressed(imgui.KeyUpArrow),
		KeyLeftPressed:   ui.IsKeyPressed(imgui.KeyLeftArrow),
		KeyRightPressed:  ui.IsKeyPressed(imgui.KeyRightArrow),
		KeyRPressed:      ui.IsKeyPressed(imgui.KeyR),
		KeyEscapePressed: ui.IsKeyPressed(imgui.KeyEscape),
		KeyF12Pressed:    ui.IsKeyPressed(imgui.KeyF12),
	}
	if app.BeginFrame(s, &keys, sh.picker) {
		sh.backend.SetWindowTitle(s.WindowTitle(sh.title))
	}

	mouse := imgui.MousePos()
	s.MouseX, s.MouseY = mouse.X, mouse.Y

	sh.menuBar()

	vp := imgui.MainViewport()
	workPos, workSize := vp.WorkPos(), vp.WorkSize()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse |
		imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoSavedSettings

	toolbarH := float32(ui2d.ToolbarHeight) + 4
	statusH := float32(ui2d.BarHeight) + 6
	contentH := max(workSize.Y-toolbarH-statusH, 0)

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, toolbarH))
	if imgui.BeginV("##Toolbar", nil, flags) {
		sh.toolbar()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+toolbarH))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, contentH))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Viewport", nil, flags) {
		sh.viewport()
	}
	imgui.End()
	imgui.PopStyleVar()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+toolbarH+contentH))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusH))
	if imgui.BeginV("##StatusBar", nil, flags) {
		imgui.Text(s.StatusLine())
	}
	imgui.End()

	// The image above samples the texture when ImGui renders, after this
	// function returns, so the view is drawn at the stepped frame.
	app.FinishFrame(s, sh.offscreen)

	if s.TakeScreenshotRequest() {
		sh.captureNext = true
	}
	if s.QuitRequested() {
		sh.backend.Close()
	}
}

func (sh *Shell) menuBar() {
	s := sh.state
	if !imgui.BeginMainMenuBar() {
		return
	}
	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Open...") {
			s.RequestOpen()
		}
		imgui.Separator()
		if imgui.MenuItemBool("Exit") {
			s.RequestQuit()
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("Help") {
		if imgui.MenuItemBool("About") {
			s.Status = app.AboutText
		}
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

func (sh *Shell) toolbar() {
	s := sh.state
	if imgui.Button("Open") {
		s.RequestOpen()
	}
	imgui.SameLine()
	playLabel := "Play"
	if s.Anim.Playing {
		playLabel = "Pause"
	}
	if imgui.Button(playLabel + "##play") {
		s.TogglePlay()
	}
	imgui.SameLine()
	if imgui.Button("Step") {
		s.StepFrame()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		s.ResetAnim()
	}
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("Frame %d", s.Anim.FrameCount))
}

// viewport requests the offscreen view at pixel resolution and shows it
// at point size.
func (sh *Shell) viewport() {
	avail := imgui.ContentRegionAvail()
	ppp := ui.PixelsPerPoint()
	pw, ph := int32(avail.X*ppp+0.5), int32(avail.Y*ppp+0.5)
	if pw <= 0 || ph <= 0 {
		return
	}
	sh.offscreen.Request(pw, ph)
	ui.Image(sh.offscreen.Texture(), avail.X, avail.Y, true)
}
