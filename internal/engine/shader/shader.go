// Package shader provides OpenGL shader program compilation.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/logger"
)

// CompileError carries the driver log of a failed compile or link.
type CompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == "link" {
		return "link: " + e.Log
	}
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// Program is a linked shader program with its uniform locations.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// Compile compiles both stages and links them. On failure nothing is
// left allocated and the returned error is a *CompileError.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(id, logLen, nil, buf) })
		gl.DeleteProgram(id)
		return nil, &CompileError{Stage: "link", Log: log}
	}

	p := &Program{ID: id, uniforms: activeUniforms(id)}

	logger.Debug("shader program linked",
		zap.Uint32("program", id),
		zap.Int("uniforms", len(p.uniforms)),
	)
	return p, nil
}

func compileStage(source string, stage uint32, name string) (uint32, error) {
	sh := gl.CreateShader(stage)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(sh, logLen, nil, buf) })
		gl.DeleteShader(sh)
		return 0, &CompileError{Stage: name, Log: log}
	}
	return sh, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the location of an active uniform. ok is false, and
// loc -1, for names the linker did not keep.
func (p *Program) Uniform(name string) (loc int32, ok bool) {
	loc, ok = p.uniforms[name]
	if !ok {
		return -1, false
	}
	return loc, true
}

// Release deletes the program. Safe to call more than once.
func (p *Program) Release() {
	if p == nil || p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

// activeUniforms maps every uniform the linker kept to its location.
func activeUniforms(id uint32) map[string]int32 {
	var count, maxLen int32
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)

	uniforms := make(map[string]int32, count)
	if count == 0 || maxLen <= 0 {
		return uniforms
	}
	buf := make([]byte, maxLen)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(id, i, maxLen, &length, &size, &xtype, &buf[0])
		name := uniformName(buf, length)
		if name == "" {
			continue
		}
		uniforms[name] = gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}
	return uniforms
}

// uniformName turns a GetActiveUniform result into the declared name.
// Arrays are reported as "name[0]".
func uniformName(buf []byte, length int32) string {
	if length <= 0 {
		return ""
	}
	name := string(buf[:min(int(length), len(buf))])
	return strings.TrimSuffix(name, "[0]")
}
