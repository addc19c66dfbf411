package scenes

import (
	"github.com/gekko3d/learngl/gfx/core"
	"github.com/gekko3d/learngl/gfx/mesh"
	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/gfx/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

const PhongName = "phong"

var (
	phongLightPos    = mgl32.Vec3{1.2, 1.0, 2.0}
	phongLightColor  = mgl32.Vec3{1.0, 1.0, 1.0}
	phongObjectColor = mgl32.Vec3{1.0, 0.5, 0.31}
)

// Phong lights a single cube with one point light and draws the lamp.
type Phong struct {
	base
	lighting *shader.Program
	lamp     *shader.Program
	cube     mesh.Handle
}

func NewPhong() Scene {
	s := &Phong{}
	s.defs = []programDef{
		{vertex: shaders.LitVS, fragment: shaders.PhongFS, dst: &s.lighting},
		{vertex: shaders.LampVS, fragment: shaders.LampFS, dst: &s.lamp},
	}
	return s
}

func (s *Phong) Name() string { return PhongName }

func (s *Phong) Setup(env Env) error {
	s.init(env)
	if err := s.buildPrograms(env); err != nil {
		return err
	}
	cube, err := s.uploadMesh(mesh.LitCube())
	if err != nil {
		return err
	}
	s.cube = cube
	return nil
}

func (s *Phong) Reload(env Env) error {
	return s.buildPrograms(env)
}

func (s *Phong) Draw(f Frame) {
	s.dev.Clear(mgl32.Vec4{0.1, 0.1, 0.1, 1.0})

	s.lighting.Use()
	s.lighting.SetVec3("objectColor", phongObjectColor)
	s.lighting.SetVec3("lightColor", phongLightColor)
	s.lighting.SetVec3("lightPos", phongLightPos)
	s.lighting.SetVec3("viewPos", f.ViewPos)
	s.lighting.SetMat4("projection", f.Projection)
	s.lighting.SetMat4("view", f.View)
	s.lighting.SetMat4("model", mgl32.Ident4())
	s.dev.DrawMesh(s.cube)

	s.lamp.Use()
	s.lamp.SetMat4("projection", f.Projection)
	s.lamp.SetMat4("view", f.View)
	s.lamp.SetVec3("lightColor", phongLightColor)
	s.lamp.SetMat4("model", core.ModelMatrix(phongLightPos, 0, mgl32.Vec3{}, 0.2))
	s.dev.DrawMesh(s.cube)
}
