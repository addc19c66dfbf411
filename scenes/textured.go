package scenes

import (
	"image/color"
	"math"

	"github.com/gekko3d/learngl/gfx/core"
	"github.com/gekko3d/learngl/gfx/mesh"
	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/gfx/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	TexturedName = "textured"

	DefaultTexture1 = "res/textures/noHair.png"
	DefaultTexture2 = "res/textures/pop_cat.png"
)

// Textured draws ten spinning cubes blending two textures.
type Textured struct {
	base
	program  *shader.Program
	cube     mesh.Handle
	texture1 uint32
	texture2 uint32
}

func NewTextured() Scene {
	s := &Textured{}
	s.defs = []programDef{
		{vertex: shaders.TexturedVS, fragment: shaders.TexturedFS, dst: &s.program},
	}
	return s
}

func (s *Textured) Name() string { return TexturedName }

func (s *Textured) Setup(env Env) error {
	s.init(env)
	if err := s.buildPrograms(env); err != nil {
		return err
	}

	cube, err := s.uploadMesh(mesh.TexturedCube())
	if err != nil {
		return err
	}
	s.cube = cube
	s.texture1 = s.loadTexture(env, "texture1", DefaultTexture1, color.RGBA{R: 200, G: 120, B: 40, A: 255})
	s.texture2 = s.loadTexture(env, "texture2", DefaultTexture2, color.RGBA{R: 240, G: 240, B: 240, A: 255})

	s.configure()
	return nil
}

func (s *Textured) configure() {
	s.program.Use()
	s.program.SetInt("texture1", 0)
	s.program.SetInt("texture2", 1)
}

func (s *Textured) Reload(env Env) error {
	if err := s.buildPrograms(env); err != nil {
		return err
	}
	s.configure()
	return nil
}

func (s *Textured) Draw(f Frame) {
	s.dev.Clear(mgl32.Vec4{0.2, 0.3, 0.3, 1.0})

	s.dev.BindTexture(0, s.texture1)
	s.dev.BindTexture(1, s.texture2)

	s.program.Use()
	s.program.SetFloat("greenValue", float32(math.Sin(float64(f.Time)))/2.0+0.5)
	s.program.SetMat4("view", f.View)
	s.program.SetMat4("projection", f.Projection)

	for i, pos := range cubePositions {
		angle := f.Time * mgl32.DegToRad(20.0*float32(i))
		s.program.SetMat4("model", core.ModelMatrix(pos, angle, cubeAxis, 1))
		s.dev.DrawMesh(s.cube)
	}
}
