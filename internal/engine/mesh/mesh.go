// Package mesh holds indexed triangle meshes with per-vertex color and
// their GPU buffers.
package mesh

import "fmt"

// Vertex is a position and an RGB color.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// FloatsPerVertex is the interleaved layout size: position then color.
const FloatsPerVertex = 6

// ValidationError describes why vertex/index data does not form a mesh.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid mesh: " + e.Reason
}

// Mesh is an immutable indexed triangle list.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
}

// New validates and copies the data into a Mesh.
func New(vertices []Vertex, indices []uint32) (*Mesh, error) {
	if err := Validate(vertices, indices); err != nil {
		return nil, err
	}
	m := &Mesh{
		vertices: append([]Vertex(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
	}
	return m, nil
}

// Validate checks that the indices form whole triangles referencing
// existing vertices.
func Validate(vertices []Vertex, indices []uint32) error {
	if len(vertices) == 0 {
		return &ValidationError{Reason: "no vertices"}
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return &ValidationError{Reason: fmt.Sprintf("index count %d is not a positive multiple of 3", len(indices))}
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return &ValidationError{Reason: fmt.Sprintf("index %d at position %d out of range (%d vertices)", idx, i, len(vertices))}
		}
	}
	return nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int { return len(m.indices) }

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) Vertex { return m.vertices[i] }

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) [3]uint32 {
	return [3]uint32{m.indices[3*t], m.indices[3*t+1], m.indices[3*t+2]}
}

// Interleaved returns the vertex data as position/color float runs.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.vertices)*FloatsPerVertex)
	for _, v := range m.vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Color[0], v.Color[1], v.Color[2])
	}
	return out
}

// Indices returns a copy of the index list.
func (m *Mesh) Indices() []uint32 {
	return append([]uint32(nil), m.indices...)
}
