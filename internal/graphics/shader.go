package graphics

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"playgroundgl/internal/gpu"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked GL program together with the source files it was
// built from, so it can be rebuilt when they change.
type Shader struct {
	ID       uint32
	Name     string
	vertPath string
	fragPath string
	locs     *gpu.UniformLocations
}

// NewShader compiles and links the program from two source files. The
// program name is the vertex file's base name without extension.
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	s := &Shader{
		Name:     strings.TrimSuffix(filepath.Base(vertexPath), filepath.Ext(vertexPath)),
		vertPath: vertexPath,
		fragPath: fragmentPath,
	}
	id, err := buildProgram(vertexPath, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", s.Name, err)
	}
	s.ID = id
	s.locs = gpu.NewUniformLocations(s.Name, s.lookup)
	return s, nil
}

// Uses reports whether file is one of the program's sources.
func (s *Shader) Uses(file string) bool {
	return filepath.Base(s.vertPath) == file || filepath.Base(s.fragPath) == file
}

// Reload rebuilds the program from disk. On failure the previous program
// stays in use and the error is returned.
func (s *Shader) Reload() error {
	id, err := buildProgram(s.vertPath, s.fragPath)
	if err != nil {
		return fmt.Errorf("reload shader %s: %w", s.Name, err)
	}
	gl.DeleteProgram(s.ID)
	s.ID = id
	s.locs.Reset(s.lookup)
	slog.Info("shader reloaded", "program", s.Name)
	return nil
}

func (s *Shader) Delete() {
	if s.ID == 0 {
		return
	}
	slog.Debug("deleting shader program", "program", s.Name, "id", s.ID)
	gl.DeleteProgram(s.ID)
	s.ID = 0
}

func (s *Shader) lookup(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	s.SetInt(name, v)
}

func (s *Shader) SetInt(name string, value int32) {
	if loc, ok := s.locs.Location(name); ok {
		gl.Uniform1i(loc, value)
	}
}

func (s *Shader) SetUint(name string, value uint32) {
	if loc, ok := s.locs.Location(name); ok {
		gl.Uniform1ui(loc, value)
	}
}

func (s *Shader) SetFloat(name string, value float32) {
	if loc, ok := s.locs.Location(name); ok {
		gl.Uniform1f(loc, value)
	}
}

func (s *Shader) SetVector3(name string, x, y, z float32) {
	if loc, ok := s.locs.Location(name); ok {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	if loc, ok := s.locs.Location(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (s *Shader) SetMatrix3(name string, m mgl32.Mat3) {
	if loc, ok := s.locs.Location(name); ok {
		gl.UniformMatrix3fv(loc, 1, false, &m[0])
	}
}

func buildProgram(vertexPath, fragmentPath string) (uint32, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("read fragment shader: %w", err)
	}
	return compileProgram(string(vertexSource), string(fragmentSource))
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
