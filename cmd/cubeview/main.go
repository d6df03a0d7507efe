// Package main is the entry point for cubeview, a spinning cube drawn
// inside an immediate-mode UI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/app"
	"github.com/Faultbox/cubeview/internal/app/imguishell"
	"github.com/Faultbox/cubeview/internal/config"
	"github.com/Faultbox/cubeview/internal/dialog"
	"github.com/Faultbox/cubeview/internal/engine/debug"
	"github.com/Faultbox/cubeview/internal/engine/framebuffer"
	"github.com/Faultbox/cubeview/internal/engine/gfx"
	"github.com/Faultbox/cubeview/internal/engine/mesh"
	"github.com/Faultbox/cubeview/internal/engine/renderer"
	"github.com/Faultbox/cubeview/internal/engine/ui"
	"github.com/Faultbox/cubeview/internal/engine/ui2d"
	"github.com/Faultbox/cubeview/internal/engine/window"
	"github.com/Faultbox/cubeview/internal/logger"
	"github.com/Faultbox/cubeview/internal/transform"
	"github.com/Faultbox/cubeview/internal/viewport"
)

func init() {
	// SDL and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := config.ParseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cubeview: %v\n", err)
		return 2
	}
	if flags.Version {
		fmt.Println("cubeview", app.Version)
		return 0
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== cubeview ===", zap.String("version", app.Version), zap.String("ui", cfg.UI.Backend))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.UI.Backend == config.BackendImGui {
		err = runImGui(cfg)
	} else {
		err = runNative(cfg)
	}
	if err != nil {
		logger.Error("cubeview failed", zap.Error(err))
		return 1
	}

	logger.Info("cubeview closed normally")
	return 0
}

// runNative drives the built-in immediate-mode UI on an SDL2 window.
func runNative(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		X:         cfg.Window.X,
		Y:         cfg.Window.Y,
		Maximized: cfg.Window.Maximized,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	res, err := renderer.New(mesh.Cube())
	if err != nil {
		return err
	}
	defer res.Close()

	font := ui2d.NewFont()
	painter, err := ui2d.NewPainter(font, ui2d.ColorBackground)
	if err != nil {
		return fmt.Errorf("create ui painter: %w", err)
	}
	defer painter.Close()

	driver := app.NewDriver(app.Options{
		Platform:    win,
		Title:       cfg.Window.Title,
		Painter:     painter,
		Picker:      dialog.NewNative(),
		Screenshots: debug.NewScreenshots(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		UI:          ui2d.NewContext(font),
		Viewport:    viewport.New(gfx.GL{}, res, camera(cfg)),
		State:       app.NewState(cfg.Animation.AutoPlay),
	})
	if err := driver.Run(); err != nil {
		return err
	}

	if cfg.Window.SaveState {
		cfg.RememberWindow(win.Geometry())
		saveConfig(cfg)
	}
	return nil
}

// runImGui drives the Dear ImGui front-end. The backend owns the window
// and tears the GL context down itself, so GL resources are released
// through OnRelease rather than defers.
func runImGui(cfg *config.Config) error {
	bg := ui2d.ColorBackground
	backend, err := ui.NewBackend(ui.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		X:          cfg.Window.X,
		Y:          cfg.Window.Y,
		Background: [4]float32{bg.R, bg.G, bg.B, bg.A},
	})
	if err != nil {
		return fmt.Errorf("create imgui backend: %w", err)
	}

	res, err := renderer.New(mesh.Cube())
	if err != nil {
		return err
	}
	backend.OnRelease(res.Close)

	target, err := framebuffer.New(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		res.Close()
		return fmt.Errorf("create viewport target: %w", err)
	}
	backend.OnRelease(target.Release)

	shots := debug.NewScreenshots(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)
	shots.UseFrontBuffer()

	view := viewport.New(gfx.GL{}, res, camera(cfg))
	shell := imguishell.New(imguishell.Options{
		Backend:     backend,
		Offscreen:   app.NewOffscreen(gfx.GL{}, view, target, ui2d.ColorBackground),
		Picker:      dialog.NewNative(),
		Screenshots: shots,
		State:       app.NewState(cfg.Animation.AutoPlay),
		Title:       cfg.Window.Title,
	})
	shell.Run()
	return nil
}

// camera builds the viewport camera from config.
func camera(cfg *config.Config) transform.Camera {
	cam := transform.DefaultCamera()
	cam.FovY = mgl32.DegToRad(cfg.Camera.FovDegrees)
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Eye = mgl32.Vec3(cfg.Camera.Eye)
	cam.RadiansPerFrame = cfg.Animation.RadiansPerFrame
	return cam
}

func saveConfig(cfg *config.Config) {
	if err := cfg.Save(); err != nil {
		logger.Warn("failed to save window state", zap.Error(err))
		return
	}
	logger.Debug("window state saved")
}
