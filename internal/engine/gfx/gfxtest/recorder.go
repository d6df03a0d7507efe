// Package gfxtest provides a recording gfx.Device for tests.
package gfxtest

import (
	"fmt"

	"github.com/Faultbox/cubeview/internal/engine/gfx"
)

// Recorder records every call as a short string and tracks which
// capabilities are currently enabled.
type Recorder struct {
	Calls   []string
	enabled map[gfx.Cap]bool
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{enabled: make(map[gfx.Cap]bool)}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Enable(c gfx.Cap) {
	r.enabled[c] = true
	r.record("enable %s", c)
}

func (r *Recorder) Disable(c gfx.Cap) {
	r.enabled[c] = false
	r.record("disable %s", c)
}

func (r *Recorder) Scissor(rect gfx.Rect) {
	r.record("scissor %d %d %d %d", rect.X, rect.Y, rect.W, rect.H)
}

func (r *Recorder) Viewport(rect gfx.Rect) {
	r.record("viewport %d %d %d %d", rect.X, rect.Y, rect.W, rect.H)
}

func (r *Recorder) DepthLess()  { r.record("depth less") }
func (r *Recorder) CullBack()   { r.record("cull back") }
func (r *Recorder) ClearDepth() { r.record("clear depth") }

// Enabled reports whether c is currently enabled.
func (r *Recorder) Enabled(c gfx.Cap) bool {
	return r.enabled[c]
}

// Mark appends an arbitrary entry, used by fakes to interleave their own
// calls with device calls.
func (r *Recorder) Mark(s string) {
	r.Calls = append(r.Calls, s)
}

// Index returns the position of the first call equal to s, or -1.
func (r *Recorder) Index(s string) int {
	for i, c := range r.Calls {
		if c == s {
			return i
		}
	}
	return -1
}
