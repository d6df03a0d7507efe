// Package window handles the SDL2 window, its OpenGL context and event
// collection.
package window

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/engine/input"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
	"github.com/Faultbox/cubeview/internal/logger"
)

// Config holds window configuration.
type Config struct {
	Title     string
	Width     int
	Height    int
	X, Y      *int // nil centers the window
	Maximized bool
	VSync     bool
}

// Window wraps an SDL2 window and its OpenGL 4.1 core context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	vsync     bool
}

// New creates the window, makes its GL context current and loads GL
// function pointers. SDL must not be initialized yet.
func New(cfg Config) (*Window, error) {
	w := &Window{config: cfg}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if cfg.X != nil && cfg.Y != nil {
		x, y = int32(*cfg.X), int32(*cfg.Y)
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(cfg.Title, x, y, int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if err := gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	w.vsync = w.setSwapInterval(cfg.VSync)

	dw, dh := w.DrawableSize()
	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Bool("vsync", w.vsync),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("gl_renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return w, nil
}

// setSwapInterval requests vsync and falls back to immediate swaps when
// the driver refuses. It reports whether vsync is active.
func (w *Window) setSwapInterval(vsync bool) bool {
	if !vsync {
		_ = sdl.GLSetSwapInterval(0)
		return false
	}
	if err := sdl.GLSetSwapInterval(1); err != nil {
		logger.Warn("vsync unavailable, presenting without it", zap.Error(err))
		_ = sdl.GLSetSwapInterval(0)
		return false
	}
	return true
}

// Close deletes the GL context, destroys the window and shuts SDL down.
// Every GL resource must be released before calling it.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}
	sdl.Quit()
}

// CollectInput drains pending events into in. With wait set it first
// blocks until an event arrives. It returns true when the user asked to
// quit.
func (w *Window) CollectInput(in *ui2d.InputState, wait bool) bool {
	var r input.Result
	if wait {
		if ev := sdl.WaitEvent(); ev != nil {
			input.Apply(ev, in, &r)
		}
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		input.Apply(ev, in, &r)
	}
	if r.Resized {
		dw, dh := w.DrawableSize()
		logger.Debug("window resized", zap.Int("drawable_width", dw), zap.Int("drawable_height", dh))
	}
	return r.Quit
}

// WindowSize returns the window size in points.
func (w *Window) WindowSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the framebuffer size in pixels, which differs
// from the window size on HiDPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Present swaps the back buffer to the screen.
func (w *Window) Present() error {
	if w.sdlWindow == nil {
		return fmt.Errorf("present: window closed")
	}
	w.sdlWindow.GLSwap()
	return nil
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Geometry returns the current position and size, and whether the
// window is maximized.
func (w *Window) Geometry() (x, y, width, height int, maximized bool) {
	px, py := w.sdlWindow.GetPosition()
	sw, sh := w.sdlWindow.GetSize()
	maximized = w.sdlWindow.GetFlags()&sdl.WINDOW_MAXIMIZED != 0
	return int(px), int(py), int(sw), int(sh), maximized
}
