package anim

import "testing"

func TestZeroValue(t *testing.T) {
	var s State
	if s.FrameCount != 0 || s.Playing {
		t.Errorf("zero value = %+v, want {0 false}", s)
	}
}

func TestStepCounts(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		var s State
		for i := 0; i < n; i++ {
			s.Step()
		}
		if s.FrameCount != uint64(n) {
			t.Errorf("after %d steps FrameCount = %d", n, s.FrameCount)
		}
		if s.Playing {
			t.Errorf("Step must not change Playing")
		}
	}
}

func TestStepWhilePlaying(t *testing.T) {
	s := State{FrameCount: 4, Playing: true}
	s.Step()
	if s.FrameCount != 5 || !s.Playing {
		t.Errorf("got %+v, want {5 true}", s)
	}
}

func TestResetIdempotent(t *testing.T) {
	s := State{FrameCount: 42, Playing: true}
	s.Reset()
	first := s
	s.Reset()
	if s != first {
		t.Errorf("second Reset changed state: %+v -> %+v", first, s)
	}
	if s != (State{}) {
		t.Errorf("Reset = %+v, want zero state", s)
	}
}

func TestPlayPause(t *testing.T) {
	var s State
	s.Play()
	if !s.Playing {
		t.Fatal("Play did not start playback")
	}
	s.Play()
	if !s.Playing {
		t.Error("Play while playing must be a no-op")
	}
	s.Pause()
	if s.Playing {
		t.Fatal("Pause did not stop playback")
	}
	s.Pause()
	if s.Playing {
		t.Error("Pause while idle must be a no-op")
	}
	if s.FrameCount != 0 {
		t.Errorf("Play/Pause changed FrameCount to %d", s.FrameCount)
	}
}

func TestToggle(t *testing.T) {
	var s State
	s.Toggle()
	if !s.Playing {
		t.Error("Toggle from idle should play")
	}
	s.Toggle()
	if s.Playing {
		t.Error("Toggle from playing should pause")
	}
}

// A driver stepping once per frame: play, 10 frames, pause, 5 frames.
func TestPlayTenFramesThenPause(t *testing.T) {
	var s State
	s.Play()
	for i := 0; i < 10; i++ {
		if s.Playing {
			s.Step()
		}
	}
	s.Pause()
	for i := 0; i < 5; i++ {
		if s.Playing {
			s.Step()
		}
	}
	if s.FrameCount != 10 {
		t.Errorf("FrameCount = %d, want 10", s.FrameCount)
	}
	s.Step()
	s.Step()
	if s.FrameCount != 12 {
		t.Errorf("manual steps while paused: FrameCount = %d, want 12", s.FrameCount)
	}
	s.Reset()
	if s != (State{}) {
		t.Errorf("Reset = %+v", s)
	}
}
