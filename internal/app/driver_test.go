package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/cubeview/internal/engine/drawlist"
	"github.com/Faultbox/cubeview/internal/engine/gfx/gfxtest"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
	"github.com/Faultbox/cubeview/internal/transform"
	"github.com/Faultbox/cubeview/internal/viewport"
)

type fakePlatform struct {
	w, h       int
	scale      int
	events     []func(in *ui2d.InputState)
	quit       bool
	waits      []bool
	presents   int
	presentErr error
	title      string
}

func (p *fakePlatform) CollectInput(in *ui2d.InputState, wait bool) bool {
	p.waits = append(p.waits, wait)
	if len(p.events) > 0 {
		p.events[0](in)
		p.events = p.events[1:]
	}
	return p.quit
}

func (p *fakePlatform) WindowSize() (int, int) { return p.w, p.h }

func (p *fakePlatform) DrawableSize() (int, int) { return p.w * p.scale, p.h * p.scale }

func (p *fakePlatform) SetTitle(title string) { p.title = title }

func (p *fakePlatform) Present() error {
	p.presents++
	return p.presentErr
}

// listPainter executes lists the way the GL painter does, without GL.
type listPainter struct {
	fbw, fbh  int
	ppp       float32
	meshes    int
	callbacks int
	last      *drawlist.List
}

func (p *listPainter) Paint(list *drawlist.List, fbw, fbh int) {
	p.fbw, p.fbh, p.last = fbw, fbh, list
	p.ppp = 1
	if list.Width > 0 {
		p.ppp = float32(fbw) / list.Width
	}
	list.Execute(p)
}

func (p *listPainter) DrawMesh(*drawlist.Mesh) { p.meshes++ }

func (p *listPainter) RunCallback(c *drawlist.Callback) {
	p.callbacks++
	c.Fn(drawlist.CallbackInfo{
		Rect:              c.Rect,
		ClipRect:          c.ClipRect,
		PixelsPerPoint:    p.ppp,
		FramebufferWidth:  int32(p.fbw),
		FramebufferHeight: int32(p.fbh),
	})
}

type countingScene struct {
	frames []transform.Set
}

func (s *countingScene) Draw(ts transform.Set) { s.frames = append(s.frames, ts) }

type fakePicker struct {
	path  string
	ok    bool
	err   error
	calls int
}

func (p *fakePicker) PickFile() (string, bool, error) {
	p.calls++
	return p.path, p.ok, p.err
}

type fixture struct {
	driver   *Driver
	platform *fakePlatform
	painter  *listPainter
	scene    *countingScene
	picker   *fakePicker
}

func newFixture(w, h int) *fixture {
	f := &fixture{
		platform: &fakePlatform{w: w, h: h, scale: 1},
		painter:  &listPainter{},
		scene:    &countingScene{},
		picker:   &fakePicker{},
	}
	view := viewport.New(gfxtest.New(), f.scene, transform.DefaultCamera())
	f.driver = NewDriver(Options{
		Platform: f.platform,
		Painter:  f.painter,
		Picker:   f.picker,
		UI:       ui2d.NewContext(ui2d.NewFont()),
		Viewport: view,
		State:    NewState(false),
		Title:    "cubeview",
	})
	return f
}

func (f *fixture) frame(t *testing.T, wait bool) Result {
	t.Helper()
	res, err := f.driver.Frame(wait)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return res
}

func TestIdleFrameDoesNotRequestRedraw(t *testing.T) {
	f := newFixture(1280, 720)
	res := f.frame(t, false)
	if res.Redraw || res.Quit {
		t.Errorf("idle frame result = %+v", res)
	}
	if f.driver.State().Anim.FrameCount != 0 {
		t.Errorf("idle frame advanced the animation")
	}
	if f.platform.presents != 1 || f.painter.callbacks != 1 || len(f.scene.frames) != 1 {
		t.Errorf("presents=%d callbacks=%d draws=%d, want 1 each",
			f.platform.presents, f.painter.callbacks, len(f.scene.frames))
	}
}

func TestPlayTenCycles(t *testing.T) {
	f := newFixture(1280, 720)
	f.driver.State().TogglePlay()

	for i := 0; i < 10; i++ {
		if res := f.frame(t, false); !res.Redraw {
			t.Fatalf("cycle %d: playing frame did not request a redraw", i)
		}
	}
	s := f.driver.State()
	if s.Anim.FrameCount != 10 {
		t.Errorf("FrameCount = %d, want 10", s.Anim.FrameCount)
	}
	if len(f.scene.frames) != 10 {
		t.Errorf("scene drawn %d times, want 10", len(f.scene.frames))
	}

	// The callback sees the post-step count: the last frame is frame 10.
	cam := transform.DefaultCamera()
	if got, want := f.scene.frames[9].Model, cam.Model(10); got != want {
		t.Errorf("last drawn model is not frame 10")
	}

	s.TogglePlay()
	if res := f.frame(t, false); res.Redraw {
		t.Error("paused frame requested a redraw")
	}
	if s.Anim.FrameCount != 10 {
		t.Errorf("paused frame advanced to %d", s.Anim.FrameCount)
	}
}

func TestRunWaitsWhenIdle(t *testing.T) {
	f := newFixture(800, 600)
	f.driver.State().TogglePlay()
	f.platform.events = []func(in *ui2d.InputState){
		func(*ui2d.InputState) {},
		func(in *ui2d.InputState) { in.KeySpacePressed = true },
		func(*ui2d.InputState) {},
		func(in *ui2d.InputState) { in.KeyEscapePressed = true },
	}
	if err := f.driver.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []bool{false, false, true, true}
	if len(f.platform.waits) != len(want) {
		t.Fatalf("waits = %v, want %v", f.platform.waits, want)
	}
	for i := range want {
		if f.platform.waits[i] != want[i] {
			t.Errorf("waits = %v, want %v", f.platform.waits, want)
			break
		}
	}
	if f.driver.State().Anim.FrameCount != 1 {
		t.Errorf("FrameCount = %d, want 1", f.driver.State().Anim.FrameCount)
	}
}

func TestQuitFromPlatform(t *testing.T) {
	f := newFixture(800, 600)
	f.platform.quit = true
	res := f.frame(t, true)
	if !res.Quit {
		t.Error("platform quit not propagated")
	}
	if f.platform.presents != 0 {
		t.Error("frame presented after quit")
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	f := newFixture(800, 600)
	s := f.driver.State()
	press := func(set func(in *ui2d.InputState)) {
		f.platform.events = append(f.platform.events, set)
		f.frame(t, false)
	}

	press(func(in *ui2d.InputState) { in.KeyRightPressed = true })
	if s.Anim.FrameCount != 1 || s.Status != "Stepped to frame 1" {
		t.Errorf("after Right: %+v %q", s.Anim, s.Status)
	}
	press(func(in *ui2d.InputState) { in.KeyUpPressed = true })
	if !s.Anim.Playing || s.Status != "Playing" {
		t.Errorf("after Up: %+v %q", s.Anim, s.Status)
	}
	press(func(in *ui2d.InputState) { in.KeyRPressed = true })
	if s.Anim.Playing || s.Anim.FrameCount != 0 || s.Status != "Reset" {
		t.Errorf("after R: %+v %q", s.Anim, s.Status)
	}
}

func TestZeroWidthWindowMidAnimation(t *testing.T) {
	f := newFixture(1280, 720)
	f.driver.State().TogglePlay()
	f.frame(t, false)
	f.frame(t, false)

	f.platform.w = 0
	drawsBefore := len(f.scene.frames)
	res := f.frame(t, false)

	if len(f.scene.frames) != drawsBefore {
		t.Errorf("zero-width frame drew the scene")
	}
	if !res.Redraw || f.driver.State().Anim.FrameCount != 3 {
		t.Errorf("animation should keep running: %+v, frame %d", res, f.driver.State().Anim.FrameCount)
	}

	f.platform.w = 1280
	f.frame(t, false)
	if len(f.scene.frames) != drawsBefore+1 {
		t.Errorf("drawing did not resume after restoring the size")
	}
}

func TestHiDPIViewport(t *testing.T) {
	f := newFixture(640, 360)
	f.platform.scale = 2
	f.frame(t, false)
	if f.painter.ppp != 2 {
		t.Errorf("pixels per point = %v, want 2", f.painter.ppp)
	}
	vp := f.driver.State().Viewport
	wantH := float32(360 - ui2d.BarHeight - ui2d.ToolbarHeight - ui2d.BarHeight)
	if vp.W != 640 || vp.H != wantH {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestOpenFileFlow(t *testing.T) {
	f := newFixture(800, 600)
	s := f.driver.State()

	s.RequestOpen()
	f.picker.path, f.picker.ok = "/tmp/data/scene.obj", true
	f.frame(t, false)
	if f.picker.calls != 1 {
		t.Fatalf("picker called %d times", f.picker.calls)
	}
	if s.CurrentFile != "/tmp/data/scene.obj" || s.Status != "Opened: scene.obj" {
		t.Errorf("after pick: file=%q status=%q", s.CurrentFile, s.Status)
	}
	if !strings.Contains(s.StatusLine(), "File: scene.obj") {
		t.Errorf("status line = %q", s.StatusLine())
	}
	if f.platform.title != "cubeview - scene.obj" {
		t.Errorf("window title = %q", f.platform.title)
	}

	s.RequestOpen()
	f.picker.ok = false
	f.frame(t, false)
	if s.Status != "File open cancelled" || s.CurrentFile != "/tmp/data/scene.obj" {
		t.Errorf("after cancel: file=%q status=%q", s.CurrentFile, s.Status)
	}
	if f.platform.title != "cubeview - scene.obj" {
		t.Errorf("cancel changed the window title to %q", f.platform.title)
	}

	f.frame(t, false)
	if f.picker.calls != 2 {
		t.Errorf("picker ran without a request")
	}
}

func TestToolbarPlayButton(t *testing.T) {
	f := newFixture(800, 600)
	f.frame(t, false)

	// "Open" then a separator precede "Play" in the toolbar.
	x := float32(6 + (4*7 + 6*2 + 4) + 4 + 4 + 1 + 8 + 5)
	y := float32(ui2d.BarHeight + ui2d.ToolbarHeight/2)
	f.platform.events = append(f.platform.events, func(in *ui2d.InputState) {
		in.MouseX, in.MouseY = x, y
		in.MouseLeftDown = true
		in.MouseLeftClicked = true
	})
	res := f.frame(t, false)

	s := f.driver.State()
	if !s.Anim.Playing {
		t.Fatalf("play button not pressed; status %q", s.Status)
	}
	if !res.Redraw || s.Anim.FrameCount != 1 {
		t.Errorf("first playing frame: %+v, frame %d", res, s.Anim.FrameCount)
	}
}

func TestPresentErrorIsReturned(t *testing.T) {
	f := newFixture(800, 600)
	f.platform.presentErr = errors.New("swap failed")
	if _, err := f.driver.Frame(false); err == nil {
		t.Error("present error swallowed")
	}
}

func TestStatusLine(t *testing.T) {
	s := NewState(false)
	s.MouseX, s.MouseY = 12.3, 40
	s.Anim.FrameCount = 7
	want := "Mouse: (12.3, 40.0) | Frame: 7 | File: None | Ready"
	if got := s.StatusLine(); got != want {
		t.Errorf("StatusLine() = %q, want %q", got, want)
	}
	if !NewState(true).Anim.Playing {
		t.Error("auto-play state is idle")
	}
}

type fakeShots struct {
	w, h  int
	err   error
	calls int
}

func (s *fakeShots) Capture(w, h int) (string, error) {
	s.calls++
	s.w, s.h = w, h
	return "shots/cube.png", s.err
}

func TestF12CapturesDrawableSize(t *testing.T) {
	f := newFixture(400, 300)
	f.platform.scale = 2
	shots := &fakeShots{}
	f.driver.shots = shots
	f.platform.events = []func(in *ui2d.InputState){
		func(in *ui2d.InputState) { in.KeyF12Pressed = true },
	}

	res := f.frame(t, false)
	if shots.calls != 1 {
		t.Fatalf("expected one capture, got %d", shots.calls)
	}
	if shots.w != 800 || shots.h != 600 {
		t.Errorf("captured %dx%d, want 800x600", shots.w, shots.h)
	}
	if !res.Redraw {
		t.Error("capture should request a redraw to show its status")
	}
	if got := f.driver.State().Status; got != "Saved shots/cube.png" {
		t.Errorf("status = %q", got)
	}

	shots.err = errors.New("read failed")
	f.platform.events = []func(in *ui2d.InputState){
		func(in *ui2d.InputState) { in.KeyF12Pressed = true },
	}
	f.frame(t, false)
	if got := f.driver.State().Status; got != "Screenshot failed" {
		t.Errorf("status after failure = %q", got)
	}
}

func TestShortcutsInOneBatchAllApply(t *testing.T) {
	f := newFixture(800, 600)
	s := f.driver.State()
	f.platform.events = []func(in *ui2d.InputState){
		func(in *ui2d.InputState) {
			in.KeySpacePressed = true
			in.KeyRightPressed = true
		},
	}

	res := f.frame(t, false)
	if !s.Anim.Playing {
		t.Error("Space was dropped when Right arrived in the same batch")
	}
	// Right steps once by hand, then the playing frame steps again.
	if s.Anim.FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", s.Anim.FrameCount)
	}
	if !res.Redraw {
		t.Error("playing frame should request a redraw")
	}
}

func TestToolbarOpenRedrawsToRunDialog(t *testing.T) {
	f := newFixture(800, 600)
	s := f.driver.State()
	f.picker.path, f.picker.ok = "/home/u/cube.txt", true

	f.platform.events = []func(in *ui2d.InputState){
		func(in *ui2d.InputState) {
			in.MouseX, in.MouseY = 10, float32(ui2d.BarHeight+ui2d.ToolbarHeight/2)
			in.MouseLeftClicked = true
		},
	}
	res := f.frame(t, false)
	if f.picker.calls != 0 {
		t.Fatalf("dialog ran while the UI was being built")
	}
	if !res.Redraw {
		t.Fatal("pending open should request another frame")
	}

	f.frame(t, !res.Redraw)
	if f.picker.calls != 1 || s.CurrentFile != "/home/u/cube.txt" {
		t.Errorf("calls=%d file=%q", f.picker.calls, s.CurrentFile)
	}
}
