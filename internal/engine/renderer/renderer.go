// Package renderer owns the GPU resources of the 3D viewport: the
// vertex-color shader program and the uploaded mesh.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/engine/mesh"
	"github.com/Faultbox/cubeview/internal/engine/shader"
	"github.com/Faultbox/cubeview/internal/logger"
	"github.com/Faultbox/cubeview/internal/transform"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// Resource is the shader program and GPU mesh drawn by the viewport.
// It must be created after and closed before the GL context.
type Resource struct {
	program *shader.Program
	buffers *mesh.Buffers
	uMVP    int32
}

// New compiles the shader and uploads m.
// IMPORTANT: requires a current GL context with function pointers loaded.
func New(m *mesh.Mesh) (*Resource, error) {
	prog, err := shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile cube shader: %w", err)
	}
	loc, ok := prog.Uniform("uMVP")
	if !ok || loc < 0 {
		prog.Release()
		return nil, fmt.Errorf("cube shader: uniform uMVP not active")
	}

	r := &Resource{
		program: prog,
		buffers: mesh.Upload(m),
		uMVP:    loc,
	}

	logger.Info("viewport resources created",
		zap.Uint32("program", prog.ID),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", m.IndexCount()),
	)
	return r, nil
}

// Draw renders the mesh with the given transforms. Viewport, depth and
// culling state are the caller's business.
func (r *Resource) Draw(ts transform.Set) {
	r.program.Use()
	gl.UniformMatrix4fv(r.uMVP, 1, false, &ts.MVP[0])
	r.buffers.Draw()
	gl.UseProgram(0)
}

// Close releases the mesh buffers and the program. Safe to call more
// than once.
func (r *Resource) Close() {
	if r.buffers == nil && r.program == nil {
		return
	}
	logger.Info("releasing viewport resources")
	r.buffers.Release()
	r.program.Release()
	r.buffers = nil
	r.program = nil
}
