package mesh

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	three := []Vertex{{}, {}, {}}
	tests := []struct {
		name     string
		vertices []Vertex
		indices  []uint32
		wantErr  bool
	}{
		{"triangle", three, []uint32{0, 1, 2}, false},
		{"no vertices", nil, []uint32{0, 1, 2}, true},
		{"no indices", three, nil, true},
		{"partial triangle", three, []uint32{0, 1, 2, 0}, true},
		{"index out of range", three, []uint32{0, 1, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.vertices, tt.indices)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var ve *ValidationError
			if err != nil && !errors.As(err, &ve) {
				t.Errorf("error %T is not a *ValidationError", err)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	vs := []Vertex{{Color: Red}, {Color: Green}, {Color: Blue}}
	idx := []uint32{0, 1, 2}
	m, err := New(vs, idx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vs[0].Color = Yellow
	idx[0] = 2
	if m.Vertex(0).Color != Red {
		t.Error("mesh shares vertex storage with caller")
	}
	if m.Triangle(0) != [3]uint32{0, 1, 2} {
		t.Error("mesh shares index storage with caller")
	}
}

func TestCubeShape(t *testing.T) {
	m := Cube()
	if m.VertexCount() != 24 {
		t.Errorf("VertexCount = %d, want 24", m.VertexCount())
	}
	if m.IndexCount() != 36 {
		t.Errorf("IndexCount = %d, want 36", m.IndexCount())
	}
	if got := len(m.Interleaved()); got != 24*FloatsPerVertex {
		t.Errorf("Interleaved length = %d", got)
	}
}

func TestCubeWindsOutward(t *testing.T) {
	m := Cube()
	for tri := 0; tri < m.IndexCount()/3; tri++ {
		ids := m.Triangle(tri)
		a := m.Vertex(int(ids[0])).Position
		b := m.Vertex(int(ids[1])).Position
		c := m.Vertex(int(ids[2])).Position

		ab := sub(b, a)
		ac := sub(c, a)
		n := [3]float32{
			ab[1]*ac[2] - ab[2]*ac[1],
			ab[2]*ac[0] - ab[0]*ac[2],
			ab[0]*ac[1] - ab[1]*ac[0],
		}
		centroid := [3]float32{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3, (a[2] + b[2] + c[2]) / 3}
		if dot(n, centroid) <= 0 {
			t.Errorf("triangle %d %v winds inward", tri, ids)
		}
	}
}

func TestCubeFaceColorsUniform(t *testing.T) {
	m := Cube()
	colors := [][3]float32{Red, Green, Blue, Yellow, Magenta, Cyan}
	for f, c := range colors {
		for i := 0; i < 4; i++ {
			if got := m.Vertex(f*4 + i).Color; got != c {
				t.Errorf("face %d vertex %d color %v, want %v", f, i, got, c)
			}
		}
	}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
