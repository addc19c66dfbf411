package scenes

import (
	"image/color"

	"github.com/gekko3d/learngl/gfx/core"
	"github.com/gekko3d/learngl/gfx/mesh"
	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/gfx/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MultiLightName = "multilight"

	DefaultDiffuseMap  = "res/textures/container2.png"
	DefaultSpecularMap = "res/textures/container2_specular.png"
)

var pointLightPositions = [4]mgl32.Vec3{
	{0.7, 0.2, 2.0},
	{2.3, -3.3, -4.0},
	{-4.0, 2.0, -12.0},
	{0.0, 0.0, -3.0},
}

var sunLight = core.DirLight{
	Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
	Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
	Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
	Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
}

// MultiLight combines a directional light, four point lights and a
// flashlight attached to the camera.
type MultiLight struct {
	base
	lighting    *shader.Program
	lamp        *shader.Program
	cube        mesh.Handle
	diffuseMap  uint32
	specularMap uint32
	material    core.Material
	pointLights [4]core.PointLight
}

func NewMultiLight() Scene {
	s := &MultiLight{material: core.DefaultMaterial()}
	s.defs = []programDef{
		{vertex: shaders.LitVS, fragment: shaders.MultiLightFS, dst: &s.lighting},
		{vertex: shaders.LampVS, fragment: shaders.LampFS, dst: &s.lamp},
	}
	for i, pos := range pointLightPositions {
		s.pointLights[i] = core.PointLight{
			Position:    pos,
			Ambient:     mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:     mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:    mgl32.Vec3{1.0, 1.0, 1.0},
			Attenuation: core.Attenuation50,
		}
	}
	return s
}

func (s *MultiLight) Name() string { return MultiLightName }

func (s *MultiLight) Setup(env Env) error {
	s.init(env)
	if err := s.buildPrograms(env); err != nil {
		return err
	}
	cube, err := s.uploadMesh(mesh.LitCube())
	if err != nil {
		return err
	}
	s.cube = cube
	s.diffuseMap = s.loadTexture(env, "diffuse", DefaultDiffuseMap, color.RGBA{R: 150, G: 100, B: 50, A: 255})
	s.specularMap = s.loadTexture(env, "specular", DefaultSpecularMap, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	s.configure()
	return nil
}

func (s *MultiLight) configure() {
	s.lighting.Use()
	s.material.Apply(s.lighting, "material")
}

func (s *MultiLight) Reload(env Env) error {
	if err := s.buildPrograms(env); err != nil {
		return err
	}
	s.configure()
	return nil
}

func (s *MultiLight) flashlight(f Frame) core.SpotLight {
	return core.SpotLight{
		Position:    f.ViewPos,
		Direction:   f.ViewFront,
		CutOff:      12.5,
		OuterCutOff: 15.0,
		Ambient:     mgl32.Vec3{0, 0, 0},
		Diffuse:     mgl32.Vec3{1, 1, 1},
		Specular:    mgl32.Vec3{1, 1, 1},
		Attenuation: core.Attenuation50,
	}
}

func (s *MultiLight) Draw(f Frame) {
	s.dev.Clear(mgl32.Vec4{0.1, 0.1, 0.1, 1.0})

	s.lighting.Use()
	s.lighting.SetVec3("viewPos", f.ViewPos)
	sunLight.Apply(s.lighting, "dirLight")
	for i, l := range s.pointLights {
		l.Apply(s.lighting, core.PointLightName(i))
	}
	s.flashlight(f).Apply(s.lighting, "spotLight")
	s.lighting.SetMat4("projection", f.Projection)
	s.lighting.SetMat4("view", f.View)

	s.dev.BindTexture(0, s.diffuseMap)
	s.dev.BindTexture(1, s.specularMap)

	for i, pos := range cubePositions {
		s.lighting.SetMat4("model", core.ModelMatrix(pos, mgl32.DegToRad(20.0*float32(i)), cubeAxis, 1))
		s.dev.DrawMesh(s.cube)
	}

	s.lamp.Use()
	s.lamp.SetMat4("projection", f.Projection)
	s.lamp.SetMat4("view", f.View)
	s.lamp.SetVec3("lightColor", mgl32.Vec3{1, 1, 1})
	for _, l := range s.pointLights {
		s.lamp.SetMat4("model", core.ModelMatrix(l.Position, 0, mgl32.Vec3{}, 0.2))
		s.dev.DrawMesh(s.cube)
	}
}
