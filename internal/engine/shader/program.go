package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked shader program with name-based uniform setters.
// Uniform locations are cached on first use.
type Program struct {
	ID   uint32
	locs map[string]int32
}

// NewProgram compiles and links a program from the given sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:   id,
		locs: make(map[string]int32),
	}, nil
}

// Use activates the program for subsequent uniform updates and draws.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) loc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.locs[name] = loc
	return loc
}

// SetBool sets a boolean uniform (uploaded as an int).
func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(p.loc(name), v)
}

// SetInt sets an integer uniform (also used for sampler bindings).
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.loc(name), value)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.loc(name), value)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3f(p.loc(name), value.X(), value.Y(), value.Z())
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.loc(name), 1, false, &value[0])
}
