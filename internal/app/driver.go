package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/engine/drawlist"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
	"github.com/Faultbox/cubeview/internal/logger"
)

// Platform is the window the driver runs in.
type Platform interface {
	// CollectInput applies pending events to in. With wait set it blocks
	// until at least one event arrives. It returns true on a quit request.
	CollectInput(in *ui2d.InputState, wait bool) bool
	// WindowSize is the window size in points.
	WindowSize() (int, int)
	// DrawableSize is the framebuffer size in pixels.
	DrawableSize() (int, int)
	Present() error
	SetTitle(title string)
}

// Painter executes a frame's primitive list.
type Painter interface {
	Paint(list *drawlist.List, fbWidth, fbHeight int)
}

// FilePicker shows a modal open-file dialog. ok is false when the user
// cancels.
type FilePicker interface {
	PickFile() (path string, ok bool, err error)
}

// Screenshotter saves the presented framebuffer.
type Screenshotter interface {
	Capture(width, height int) (string, error)
}

// Result tells the caller what to do after a frame.
type Result struct {
	// Redraw requests another frame without waiting for input.
	Redraw bool
	Quit   bool
}

// Driver runs presentation cycles.
type Driver struct {
	platform Platform
	painter  Painter
	picker   FilePicker
	shots    Screenshotter
	ctx      *ui2d.Context
	view     ViewportSource
	state    *State
	title    string
	frames   uint64
}

// Options configures a Driver. Picker and Screenshots may be nil.
type Options struct {
	Platform    Platform
	Painter     Painter
	Picker      FilePicker
	Screenshots Screenshotter
	UI          *ui2d.Context
	Viewport    ViewportSource
	State       *State
	// Title is the window title before a file is chosen.
	Title string
}

// NewDriver creates a driver.
func NewDriver(o Options) *Driver {
	return &Driver{
		platform: o.Platform,
		painter:  o.Painter,
		picker:   o.Picker,
		shots:    o.Screenshots,
		ctx:      o.UI,
		view:     o.Viewport,
		state:    o.State,
		title:    o.Title,
	}
}

// State returns the driven state.
func (d *Driver) State() *State { return d.state }

// Frame runs one cycle: collect input, build the UI, advance the
// animation if playing, paint and present. With wait set it blocks for
// input first.
func (d *Driver) Frame(wait bool) (Result, error) {
	s := d.state
	in := d.ctx.Input()

	if d.platform.CollectInput(in, wait) {
		return Result{Quit: true}, nil
	}
	if BeginFrame(s, in, d.picker) {
		d.platform.SetTitle(s.WindowTitle(d.title))
	}

	w, h := d.platform.WindowSize()
	d.ctx.Begin(float32(w), float32(h))
	BuildUI(d.ctx, s, d.view)

	res := Result{Redraw: stepIfPlaying(s)}
	// A menu or toolbar Open runs its dialog at the start of the next frame.
	if s.openRequested {
		res.Redraw = true
	}

	list := d.ctx.End()
	fbw, fbh := d.platform.DrawableSize()
	d.painter.Paint(list, fbw, fbh)

	if s.TakeScreenshotRequest() {
		TakeScreenshot(s, d.shots, fbw, fbh)
		// Show the outcome in the status bar without waiting for input.
		res.Redraw = true
	}

	if err := d.platform.Present(); err != nil {
		return res, fmt.Errorf("present frame: %w", err)
	}
	d.frames++

	res.Quit = s.QuitRequested()
	return res, nil
}

// Run loops until quit. While idle it waits for input between frames.
func (d *Driver) Run() error {
	wait := false
	for {
		res, err := d.Frame(wait)
		if err != nil {
			return err
		}
		if res.Quit {
			logger.Info("quit requested", zap.Uint64("presented", d.frames))
			return nil
		}
		wait = !res.Redraw
	}
}

// BeginFrame applies this frame's shortcut keys and runs a pending file
// dialog. It reports whether a new file was chosen.
func BeginFrame(s *State, in *ui2d.InputState, picker FilePicker) bool {
	applyShortcuts(s, in)
	if !s.openRequested {
		return false
	}
	s.openRequested = false
	return pickFile(s, picker)
}

// applyShortcuts maps key presses onto state changes. Keys arriving in
// the same batch all apply, in this order.
func applyShortcuts(s *State, in *ui2d.InputState) {
	if in.KeyEscapePressed {
		s.RequestQuit()
	}
	if in.KeySpacePressed || in.KeyUpPressed {
		s.TogglePlay()
	}
	if in.KeyLeftPressed || in.KeyRPressed {
		s.ResetAnim()
	}
	if in.KeyRightPressed {
		s.StepFrame()
	}
	if in.KeyF12Pressed {
		s.RequestScreenshot()
	}
}

// stepIfPlaying advances one frame while playing and reports whether it
// did.
func stepIfPlaying(s *State) bool {
	if !s.Anim.Playing {
		return false
	}
	s.Anim.Step()
	return true
}

func pickFile(s *State, picker FilePicker) bool {
	if picker == nil {
		return false
	}
	path, ok, err := picker.PickFile()
	switch {
	case err != nil:
		logger.Warn("file dialog failed", zap.Error(err))
		s.Status = "File dialog unavailable"
	case !ok:
		s.Status = "File open cancelled"
	default:
		logger.Info("file selected", zap.String("path", path))
		s.SetCurrentFile(path)
		return true
	}
	return false
}

// TakeScreenshot captures a width x height framebuffer and reports the
// outcome in the status bar. A nil shots does nothing.
func TakeScreenshot(s *State, shots Screenshotter, w, h int) {
	if shots == nil {
		return
	}
	path, err := shots.Capture(w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		s.Status = "Screenshot failed"
		return
	}
	s.Status = "Saved " + path
}
