// Package app ties the animation state, the UI description and the 3D
// viewport together into the per-frame loop.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/Faultbox/cubeview/internal/anim"
	"github.com/Faultbox/cubeview/internal/engine/drawlist"
)

// AboutText is shown in the status bar by Help > About.
const AboutText = "cubeview " + Version + " - OpenGL cube in an immediate-mode UI"

// Version is the application version reported by --version.
const Version = "v0.1.0"

// State is everything the UI shows or edits. It is owned by the frame
// driver and passed by pointer to the UI builder and the viewport.
type State struct {
	Anim anim.State

	// CurrentFile is the last path chosen in the file dialog, or "".
	CurrentFile string
	Status      string
	MouseX      float32
	MouseY      float32

	// Viewport is the 3D region of the last built frame, in points.
	Viewport drawlist.Rect

	openRequested       bool
	quitRequested       bool
	screenshotRequested bool
}

// NewState returns the initial state, optionally already playing.
func NewState(autoPlay bool) *State {
	s := &State{Status: "Ready"}
	if autoPlay {
		s.Anim.Play()
	}
	return s
}

// TogglePlay starts or pauses playback.
func (s *State) TogglePlay() {
	s.Anim.Toggle()
	if s.Anim.Playing {
		s.Status = "Playing"
	} else {
		s.Status = "Paused"
	}
}

// StepFrame advances one frame by hand.
func (s *State) StepFrame() {
	s.Anim.Step()
	s.Status = fmt.Sprintf("Stepped to frame %d", s.Anim.FrameCount)
}

// ResetAnim returns the animation to frame 0, idle.
func (s *State) ResetAnim() {
	s.Anim.Reset()
	s.Status = "Reset"
}

// SetCurrentFile records a chosen path. The file is never read.
func (s *State) SetCurrentFile(path string) {
	s.CurrentFile = path
	s.Status = "Opened: " + filepath.Base(path)
}

// RequestOpen asks for the file dialog to run at the start of the next
// frame.
func (s *State) RequestOpen() { s.openRequested = true }

// RequestQuit asks the driver to stop after this frame.
func (s *State) RequestQuit() { s.quitRequested = true }

// RequestScreenshot asks for the next presented frame to be saved.
func (s *State) RequestScreenshot() { s.screenshotRequested = true }

// TakeScreenshotRequest reports and clears a pending screenshot request.
func (s *State) TakeScreenshotRequest() bool {
	r := s.screenshotRequested
	s.screenshotRequested = false
	return r
}

// QuitRequested reports whether Exit or Escape was used.
func (s *State) QuitRequested() bool { return s.quitRequested }

// WindowTitle is base, followed by the chosen file's name once there is
// one.
func (s *State) WindowTitle(base string) string {
	if base == "" {
		base = "cubeview"
	}
	if s.CurrentFile == "" {
		return base
	}
	return base + " - " + filepath.Base(s.CurrentFile)
}

// StatusLine is the text of the status bar.
func (s *State) StatusLine() string {
	file := "None"
	if s.CurrentFile != "" {
		file = filepath.Base(s.CurrentFile)
	}
	return fmt.Sprintf("Mouse: (%.1f, %.1f) | Frame: %d | File: %s | %s",
		s.MouseX, s.MouseY, s.Anim.FrameCount, file, s.Status)
}
