package drawlist

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Faultbox/cubeview/internal/engine/gfx"
)

type traceBackend struct {
	trace []string
}

func (b *traceBackend) DrawMesh(m *Mesh) {
	b.trace = append(b.trace, fmt.Sprintf("mesh %d", m.VertexCount()))
}

func (b *traceBackend) RunCallback(c *Callback) {
	b.trace = append(b.trace, "callback")
	c.Fn(CallbackInfo{Rect: c.Rect, ClipRect: c.ClipRect, PixelsPerPoint: 1})
}

func quad(n int) *Mesh {
	return &Mesh{Vertices: make([]float32, n*FloatsPerVertex)}
}

func TestExecutePreservesOrder(t *testing.T) {
	var ran []Rect
	cb := &Callback{Rect: Rect{10, 20, 30, 40}, ClipRect: Rect{10, 20, 30, 40}, Fn: func(info CallbackInfo) {
		ran = append(ran, info.Rect)
	}}
	l := &List{Primitives: []Primitive{quad(6), quad(12), cb, quad(3)}}

	b := &traceBackend{}
	l.Execute(b)

	want := []string{"mesh 6", "mesh 12", "callback", "mesh 3"}
	if !reflect.DeepEqual(b.trace, want) {
		t.Errorf("trace = %v, want %v", b.trace, want)
	}
	if len(ran) != 1 || ran[0] != cb.Rect {
		t.Errorf("callback ran with %v", ran)
	}
	if l.Callbacks() != 1 {
		t.Errorf("Callbacks() = %d", l.Callbacks())
	}
}

func TestExecuteSkipsEmptyMeshes(t *testing.T) {
	l := &List{Primitives: []Primitive{quad(0), quad(3)}}
	b := &traceBackend{}
	l.Execute(b)
	if !reflect.DeepEqual(b.trace, []string{"mesh 3"}) {
		t.Errorf("trace = %v", b.trace)
	}
}

func TestPixels(t *testing.T) {
	tests := []struct {
		name string
		info CallbackInfo
		want gfx.Rect
	}{
		{
			name: "unit scale",
			info: CallbackInfo{ClipRect: Rect{0, 54, 1280, 642}, PixelsPerPoint: 1, FramebufferWidth: 1280, FramebufferHeight: 720},
			want: gfx.Rect{X: 0, Y: 24, W: 1280, H: 642},
		},
		{
			name: "hidpi",
			info: CallbackInfo{ClipRect: Rect{10, 54, 100, 50}, PixelsPerPoint: 2, FramebufferWidth: 2560, FramebufferHeight: 1440},
			want: gfx.Rect{X: 20, Y: 1440 - 208, W: 200, H: 100},
		},
		{
			name: "fractional scale rounds edges",
			info: CallbackInfo{ClipRect: Rect{1, 1, 3, 3}, PixelsPerPoint: 1.5, FramebufferWidth: 100, FramebufferHeight: 100},
			want: gfx.Rect{X: 2, Y: 100 - 6, W: 4, H: 4},
		},
		{
			name: "clamped to framebuffer",
			info: CallbackInfo{ClipRect: Rect{-10, -10, 50, 50}, PixelsPerPoint: 1, FramebufferWidth: 30, FramebufferHeight: 30},
			want: gfx.Rect{X: 0, Y: 0, W: 30, H: 30},
		},
		{
			name: "zero width",
			info: CallbackInfo{ClipRect: Rect{5, 5, 0, 20}, PixelsPerPoint: 1, FramebufferWidth: 30, FramebufferHeight: 30},
			want: gfx.Rect{X: 5, Y: 5, W: 0, H: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Pixels(); got != tt.want {
				t.Errorf("Pixels() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if got := a.Intersect(Rect{5, 5, 10, 10}); got != (Rect{5, 5, 5, 5}) {
		t.Errorf("overlap = %+v", got)
	}
	if got := a.Intersect(Rect{20, 20, 5, 5}); got.W != 0 || got.H != 0 {
		t.Errorf("disjoint = %+v, want zero size", got)
	}
	if !a.Contains(0, 0) || a.Contains(10, 5) {
		t.Error("Contains is not half-open")
	}
}
