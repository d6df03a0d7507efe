package ui2d

// InputState holds the input seen by the UI during one frame. The
// platform layer writes the raw fields; Update derives the edges.
type InputState struct {
	MouseX float32
	MouseY float32

	MouseLeftDown     bool
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// MouseLeftClicked latches a button-down event so a press and
	// release delivered in the same batch still count as a press.
	MouseLeftClicked bool

	// Keys pressed since the previous frame.
	KeySpacePressed  bool
	KeyUpPressed     bool
	KeyLeftPressed   bool
	KeyRightPressed  bool
	KeyRPressed      bool
	KeyEscapePressed bool
	KeyF12Pressed    bool

	prevMouseLeft bool
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseLeftPressed = (i.MouseLeftDown && !i.prevMouseLeft) || i.MouseLeftClicked
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft
	i.prevMouseLeft = i.MouseLeftDown
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.MouseLeftClicked = false
	i.KeySpacePressed = false
	i.KeyUpPressed = false
	i.KeyLeftPressed = false
	i.KeyRightPressed = false
	i.KeyRPressed = false
	i.KeyEscapePressed = false
	i.KeyF12Pressed = false
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(r Rect) bool {
	return r.Contains(i.MouseX, i.MouseY)
}
