package renderer

import (
	"strings"
	"testing"
)

func TestShaderDeclaresMVP(t *testing.T) {
	if !strings.Contains(vertexShader, "uniform mat4 uMVP;") {
		t.Error("vertex shader does not declare uMVP")
	}
	if !strings.Contains(vertexShader, "gl_Position = uMVP *") {
		t.Error("vertex shader does not use uMVP, so the linker would drop it")
	}
}

func TestShaderAttributeLocations(t *testing.T) {
	for _, want := range []string{"layout (location = 0) in vec3 aPos", "layout (location = 1) in vec3 aColor"} {
		if !strings.Contains(vertexShader, want) {
			t.Errorf("vertex shader missing %q", want)
		}
	}
}

func TestCloseUnopened(t *testing.T) {
	r := &Resource{}
	r.Close()
	r.Close()
}
