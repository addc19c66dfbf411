package shader

import (
	"github.com/gekko3d/learngl/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// Driver is the slice of the graphics API a Program needs.
type Driver interface {
	CreateShader(stage Stage) uint32
	// CompileShader reports success and the info log.
	CompileShader(shader uint32, source string) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	// LinkProgram attaches the shaders, links and reports success and the info log.
	LinkProgram(program uint32, shaders ...uint32) (bool, string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, value int32)
	Uniform1f(location int32, value float32)
	Uniform3fv(location int32, value mgl32.Vec3)
	UniformMatrix4fv(location int32, value mgl32.Mat4)
}

// Program is a linked vertex+fragment program and its uniform cache.
type Program struct {
	name     string
	driver   Driver
	id       uint32
	uniforms *UniformCache
}

// Compile builds a program from src. Failures are logged and returned as
// *CompileError or *LinkError.
func Compile(driver Driver, src Source, log logging.Logger) (*Program, error) {
	log = logging.OrNop(log)

	vertex, err := compileStage(driver, src.Name, Vertex, src.Vertex)
	if err != nil {
		log.Errorf("%v", err)
		return nil, err
	}
	defer driver.DeleteShader(vertex)

	fragment, err := compileStage(driver, src.Name, Fragment, src.Fragment)
	if err != nil {
		log.Errorf("%v", err)
		return nil, err
	}
	defer driver.DeleteShader(fragment)

	id := driver.CreateProgram()
	if ok, infoLog := driver.LinkProgram(id, vertex, fragment); !ok {
		driver.DeleteProgram(id)
		err := &LinkError{Program: src.Name, Log: infoLog}
		log.Errorf("%v", err)
		return nil, err
	}

	p := &Program{
		name:   src.Name,
		driver: driver,
		id:     id,
	}
	p.uniforms = NewUniformCache(func(name string) int32 {
		return driver.GetUniformLocation(id, name)
	}, log)
	log.Debugf("shader %q linked as program %d", src.Name, id)
	return p, nil
}

func compileStage(driver Driver, name string, stage Stage, source string) (uint32, error) {
	id := driver.CreateShader(stage)
	if ok, infoLog := driver.CompileShader(id, source); !ok {
		driver.DeleteShader(id)
		return 0, &CompileError{Program: name, Stage: stage, Log: infoLog}
	}
	return id, nil
}

func (p *Program) Name() string { return p.name }
func (p *Program) ID() uint32   { return p.id }

// Uniforms exposes the location cache.
func (p *Program) Uniforms() *UniformCache { return p.uniforms }

// Use makes p the active program. It must precede any uniform upload.
func (p *Program) Use() {
	p.driver.UseProgram(p.id)
}

// Unuse clears the active program.
func (p *Program) Unuse() {
	p.driver.UseProgram(0)
}

// Delete releases the GPU program. p must not be used afterwards.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.driver.DeleteProgram(p.id)
	p.id = 0
	p.uniforms.Reset()
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.driver.Uniform1i(p.uniforms.Location(name), v)
}

func (p *Program) SetInt(name string, value int32) {
	p.driver.Uniform1i(p.uniforms.Location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	p.driver.Uniform1f(p.uniforms.Location(name), value)
}

func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	p.driver.Uniform3fv(p.uniforms.Location(name), value)
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	p.driver.UniformMatrix4fv(p.uniforms.Location(name), value)
}
