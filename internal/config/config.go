// Package config handles application configuration loading and saving.
package config

import (
	"fmt"
	"math"
)

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Animation  AnimationConfig  `yaml:"animation"`
	Camera     CameraConfig     `yaml:"camera"`
	UI         UIConfig         `yaml:"ui"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`

	// source is the file the config was read from, if any.
	source string
}

// WindowConfig holds window placement and presentation settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	X         *int   `yaml:"x,omitempty"`
	Y         *int   `yaml:"y,omitempty"`
	Maximized bool   `yaml:"maximized"`
	VSync     bool   `yaml:"vsync"`
	// SaveState writes the final window geometry back on exit.
	SaveState bool `yaml:"save_state"`
}

// AnimationConfig holds the cube animation settings.
type AnimationConfig struct {
	AutoPlay        bool    `yaml:"auto_play"`
	RadiansPerFrame float64 `yaml:"radians_per_frame"`
}

// CameraConfig holds the fixed 3D camera.
type CameraConfig struct {
	FovDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Eye        [3]float32 `yaml:"eye,flow"`
}

// UI backends.
const (
	BackendNative = "native"
	BackendImGui  = "imgui"
)

// UIConfig selects the UI front-end.
type UIConfig struct {
	Backend string `yaml:"backend"`
}

// ScreenshotConfig holds F12 screenshot settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "cubeview",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Animation: AnimationConfig{
			RadiansPerFrame: 0.01,
		},
		Camera: CameraConfig{
			FovDegrees: 45,
			Near:       0.1,
			Far:        100,
			Eye:        [3]float32{2, 2, 2},
		},
		UI: UIConfig{
			Backend: BackendNative,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "cubeview",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Source returns the path the config was loaded from, or "".
func (c *Config) Source() string {
	return c.source
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0:
		return fmt.Errorf("window width must be positive, got %d", c.Window.Width)
	case c.Window.Height <= 0:
		return fmt.Errorf("window height must be positive, got %d", c.Window.Height)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("camera fov must be between 0 and 180 degrees, got %v", c.Camera.FovDegrees)
	case c.Camera.Near <= 0:
		return fmt.Errorf("camera near plane must be positive, got %v", c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera far plane %v must be beyond near plane %v", c.Camera.Far, c.Camera.Near)
	case c.Camera.Eye == [3]float32{}:
		return fmt.Errorf("camera eye must not sit at the origin it looks at")
	case math.IsNaN(c.Animation.RadiansPerFrame) || math.IsInf(c.Animation.RadiansPerFrame, 0):
		return fmt.Errorf("animation radians_per_frame must be finite")
	case c.UI.Backend != BackendNative && c.UI.Backend != BackendImGui:
		return fmt.Errorf("unknown ui backend %q (want %q or %q)", c.UI.Backend, BackendNative, BackendImGui)
	}
	return nil
}
