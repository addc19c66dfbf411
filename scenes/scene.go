package scenes

import (
	"image/color"
	"io/fs"

	"github.com/gekko3d/learngl/gfx/mesh"
	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/gfx/shaders"
	"github.com/gekko3d/learngl/gfx/texture"
	"github.com/gekko3d/learngl/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// Device is everything a scene needs from the graphics backend.
type Device interface {
	shader.Driver

	UploadMesh(m *mesh.Mesh) mesh.Handle
	DeleteMesh(h mesh.Handle)
	DrawMesh(h mesh.Handle)

	UploadTexture(img *texture.Image) uint32
	DeleteTexture(id uint32)
	BindTexture(unit uint32, id uint32)

	Clear(color mgl32.Vec4)
	EnableDepthTest()
}

type TextureLoader interface {
	LoadTexture(path string) (*texture.Image, error)
}

// Env is handed to a scene on setup and reload.
type Env struct {
	Device   Device
	Shaders  fs.FS
	Textures TextureLoader
	// TexturePaths overrides a scene's default texture files by role.
	TexturePaths map[string]string
	Log          logging.Logger
}

// Frame carries per-frame camera state into Draw.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3
	ViewFront  mgl32.Vec3
	Time       float32
}

type Scene interface {
	Name() string
	// Setup uploads geometry and textures and builds the scene's programs.
	Setup(env Env) error
	Draw(f Frame)
	// Sources lists the shader paths the scene reads, relative to Env.Shaders.
	Sources() []string
	// Reload rebuilds every program from source. On error the previous
	// programs stay in use.
	Reload(env Env) error
	Release()
}

// cubeAxis is the rotation axis shared by the rotating cube scenes.
var cubeAxis = mgl32.Vec3{1.0, 0.3, 0.5}

var cubePositions = [10]mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

type programDef struct {
	vertex   string
	fragment string
	dst      **shader.Program
}

// base owns the GPU resources of a scene.
type base struct {
	dev      Device
	log      logging.Logger
	defs     []programDef
	meshes   []mesh.Handle
	textures []uint32
}

func (b *base) init(env Env) {
	b.dev = env.Device
	b.log = logging.OrNop(env.Log)
}

func shaderFS(env Env) fs.FS {
	if env.Shaders != nil {
		return env.Shaders
	}
	return shaders.FS
}

// buildPrograms compiles every program before swapping any of them in, so a
// failure leaves the current set untouched.
func (b *base) buildPrograms(env Env) error {
	built := make([]*shader.Program, 0, len(b.defs))
	for _, s := range b.defs {
		p, err := shader.Load(b.dev, shaderFS(env), s.vertex, s.fragment, b.log)
		if err != nil {
			for _, done := range built {
				done.Delete()
			}
			return err
		}
		built = append(built, p)
	}

	for i, s := range b.defs {
		if *s.dst != nil {
			(*s.dst).Delete()
		}
		*s.dst = built[i]
	}
	return nil
}

func (b *base) Sources() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range b.defs {
		for _, p := range []string{s.vertex, s.fragment} {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

func (b *base) uploadMesh(m *mesh.Mesh) (mesh.Handle, error) {
	if err := m.Validate(); err != nil {
		return mesh.Handle{}, err
	}
	h := b.dev.UploadMesh(m)
	b.meshes = append(b.meshes, h)
	return h, nil
}

// loadTexture uploads the texture for role, falling back to a checkerboard
// when the file is missing or unreadable.
func (b *base) loadTexture(env Env, role, defaultPath string, fallback color.RGBA) uint32 {
	path := defaultPath
	if p, ok := env.TexturePaths[role]; ok && p != "" {
		path = p
	}

	var img *texture.Image
	var err error
	if env.Textures != nil {
		img, err = env.Textures.LoadTexture(path)
	} else {
		img, err = texture.Load(path, texture.Options{FlipY: true})
	}
	if err != nil {
		b.log.Warnf("texture %s (%s): %v; using checkerboard", role, path, err)
		img = texture.Checkerboard(64, 8, fallback, color.RGBA{R: 32, G: 32, B: 32, A: 255})
	}

	id := b.dev.UploadTexture(img)
	b.textures = append(b.textures, id)
	return id
}

func (b *base) Release() {
	for _, s := range b.defs {
		if *s.dst != nil {
			(*s.dst).Delete()
			*s.dst = nil
		}
	}
	for _, h := range b.meshes {
		b.dev.DeleteMesh(h)
	}
	for _, id := range b.textures {
		b.dev.DeleteTexture(id)
	}
	b.meshes = nil
	b.textures = nil
}
