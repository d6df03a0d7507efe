package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations used by Buffers.
const (
	PositionLocation = 0
	ColorLocation    = 1
)

// Buffers is a mesh uploaded to GPU memory.
type Buffers struct {
	vao, vbo, ebo uint32
	count         int32
}

// Upload copies m into a new VAO with vertex and index buffers.
func Upload(m *Mesh) *Buffers {
	vertices := m.Interleaved()
	indices := m.Indices()
	b := &Buffers{count: int32(len(indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(PositionLocation, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointerWithOffset(ColorLocation, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(ColorLocation)

	// The element buffer binding is VAO state; unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return b
}

// Draw issues one indexed draw of the whole mesh.
func (b *Buffers) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release deletes the GPU objects. Safe to call more than once.
func (b *Buffers) Release() {
	if b == nil {
		return
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}
