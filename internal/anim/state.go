// Package anim holds the animation clock of the cube viewport.
//
// The clock is a plain frame counter. While playing, the frame driver
// advances it by exactly one step per presented frame; nothing else
// moves it forward.
package anim

// State is the animation state. The zero value is the initial state:
// frame 0, idle.
type State struct {
	FrameCount uint64
	Playing    bool
}

// Play starts automatic stepping. No-op when already playing.
func (s *State) Play() {
	if s.Playing {
		return
	}
	s.Playing = true
}

// Pause stops automatic stepping. No-op when idle.
func (s *State) Pause() {
	if !s.Playing {
		return
	}
	s.Playing = false
}

// Toggle switches between playing and idle.
func (s *State) Toggle() {
	if s.Playing {
		s.Pause()
	} else {
		s.Play()
	}
}

// Step advances the frame counter by one. Allowed in either mode.
func (s *State) Step() {
	s.FrameCount++
}

// Reset returns to frame 0, idle.
func (s *State) Reset() {
	*s = State{}
}
