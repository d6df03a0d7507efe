// Package ui wraps the cimgui-go SDL backend used by the Dear ImGui
// front-end.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/logger"
)

// Options configures the ImGui window.
type Options struct {
	Title      string
	Width      int
	Height     int
	X, Y       *int // nil keeps the backend's placement
	Background [4]float32
}

// Backend owns the SDL window and GL context created by cimgui-go.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	release []func()
}

// NewBackend creates the window and loads GL function pointers, so GL
// resources can be created as soon as it returns.
func NewBackend(o Options) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Runs while the context is still current, unlike anything after Run.
	b.backend.SetBeforeDestroyContextHook(func() {
		for i := len(b.release) - 1; i >= 0; i-- {
			b.release[i]()
		}
		b.release = nil
	})

	bg := o.Background
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	b.backend.CreateWindow(o.Title, o.Width, o.Height)
	if o.X != nil && o.Y != nil {
		b.backend.SetWindowPos(*o.X, *o.Y)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	logger.Info("imgui window created",
		zap.String("title", o.Title),
		zap.Int("width", o.Width),
		zap.Int("height", o.Height),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
	)
	return b, nil
}

// OnRelease registers cleanup to run before the GL context goes away.
// Functions run in reverse registration order.
func (b *Backend) OnRelease(fn func()) {
	b.release = append(b.release, fn)
}

// Run calls renderFunc once per frame until the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// Close asks the loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DrawableSize returns the framebuffer size in pixels.
func (b *Backend) DrawableSize() (int, int) {
	io := imgui.CurrentIO()
	size, scale := io.DisplaySize(), io.DisplayFramebufferScale()
	return int(size.X * scale.X), int(size.Y * scale.Y)
}

// PixelsPerPoint is the framebuffer scale of the display.
func PixelsPerPoint() float32 {
	return imgui.CurrentIO().DisplayFramebufferScale().X
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// Image shows a GL texture. flipV displays render-target textures,
// whose origin is bottom-left, upright.
func Image(texture uint32, w, h float32, flipV bool) {
	uv0, uv1 := imgui.NewVec2(0, 0), imgui.NewVec2(1, 1)
	if flipV {
		uv0, uv1 = imgui.NewVec2(0, 1), imgui.NewVec2(1, 0)
	}
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(w, h),
		uv0,
		uv1,
		imgui.NewVec4(0, 0, 0, 0),
		imgui.NewVec4(1, 1, 1, 1),
	)
}
