// Package input translates SDL2 events into UI input state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubeview/internal/engine/ui2d"
)

// Result summarizes the non-input events seen in a batch.
type Result struct {
	Quit    bool
	Resized bool
}

// Apply folds one SDL event into in and r.
func Apply(event sdl.Event, in *ui2d.InputState, r *Result) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		r.Quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			r.Resized = true
		case sdl.WINDOWEVENT_CLOSE:
			r.Quit = true
		}

	case *sdl.MouseMotionEvent:
		in.MouseX = float32(e.X)
		in.MouseY = float32(e.Y)

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		in.MouseX = float32(e.X)
		in.MouseY = float32(e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			in.MouseLeftDown = true
			in.MouseLeftClicked = true
		} else {
			in.MouseLeftDown = false
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			applyKey(e.Keysym.Scancode, in)
		}
	}
}

func applyKey(sc sdl.Scancode, in *ui2d.InputState) {
	switch sc {
	case sdl.SCANCODE_SPACE:
		in.KeySpacePressed = true
	case sdl.SCANCODE_UP:
		in.KeyUpPressed = true
	case sdl.SCANCODE_LEFT:
		in.KeyLeftPressed = true
	case sdl.SCANCODE_RIGHT:
		in.KeyRightPressed = true
	case sdl.SCANCODE_R:
		in.KeyRPressed = true
	case sdl.SCANCODE_ESCAPE:
		in.KeyEscapePressed = true
	case sdl.SCANCODE_F12:
		in.KeyF12Pressed = true
	}
}
