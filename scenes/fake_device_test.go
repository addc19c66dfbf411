package scenes

import (
	"strings"

	"github.com/gekko3d/learngl/gfx/mesh"
	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/gfx/texture"
	"github.com/go-gl/mathgl/mgl32"
)

type uniformKey struct {
	program uint32
	name    string
}

type draw struct {
	program uint32
	vao     uint32
	model   mgl32.Mat4
}

// fakeDevice records what a scene asks of the backend. Sources containing
// "#error" fail to compile.
type fakeDevice struct {
	next       uint32
	sources    map[uint32]string
	active     uint32
	locations  map[uniformKey]int32
	names      map[int32]uniformKey
	values     map[uniformKey]any
	queries    map[uniformKey]int
	draws      []draw
	bound      map[uint32]uint32
	textures   []*texture.Image
	deletedTex []uint32
	deletedVAO []uint32
	deletedPrg []uint32
	clears     []mgl32.Vec4
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		next:      100,
		sources:   make(map[uint32]string),
		locations: make(map[uniformKey]int32),
		names:     make(map[int32]uniformKey),
		values:    make(map[uniformKey]any),
		queries:   make(map[uniformKey]int),
		bound:     make(map[uint32]uint32),
	}
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) CreateShader(stage shader.Stage) uint32 { return d.id() }

func (d *fakeDevice) CompileShader(id uint32, source string) (bool, string) {
	d.sources[id] = source
	if strings.Contains(source, "#error") {
		return false, "0:1(1): error: #error directive"
	}
	return true, ""
}

func (d *fakeDevice) DeleteShader(id uint32)  {}
func (d *fakeDevice) CreateProgram() uint32   { return d.id() }
func (d *fakeDevice) UseProgram(p uint32)     { d.active = p }
func (d *fakeDevice) DeleteProgram(p uint32)  { d.deletedPrg = append(d.deletedPrg, p) }
func (d *fakeDevice) EnableDepthTest()        {}
func (d *fakeDevice) Clear(color mgl32.Vec4)  { d.clears = append(d.clears, color) }
func (d *fakeDevice) DeleteTexture(id uint32) { d.deletedTex = append(d.deletedTex, id) }

func (d *fakeDevice) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	return true, ""
}

func (d *fakeDevice) GetUniformLocation(program uint32, name string) int32 {
	key := uniformKey{program, name}
	d.queries[key]++
	if loc, ok := d.locations[key]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[key] = loc
	d.names[loc] = key
	return loc
}

func (d *fakeDevice) set(loc int32, v any) {
	d.values[d.names[loc]] = v
}

func (d *fakeDevice) Uniform1i(loc int32, v int32)             { d.set(loc, v) }
func (d *fakeDevice) Uniform1f(loc int32, v float32)           { d.set(loc, v) }
func (d *fakeDevice) Uniform3fv(loc int32, v mgl32.Vec3)       { d.set(loc, v) }
func (d *fakeDevice) UniformMatrix4fv(loc int32, v mgl32.Mat4) { d.set(loc, v) }

func (d *fakeDevice) UploadMesh(m *mesh.Mesh) mesh.Handle {
	return mesh.Handle{VAO: d.id(), VBO: d.id(), Count: m.DrawCount(), Indexed: len(m.Indices) > 0}
}

func (d *fakeDevice) DeleteMesh(h mesh.Handle) { d.deletedVAO = append(d.deletedVAO, h.VAO) }

func (d *fakeDevice) DrawMesh(h mesh.Handle) {
	model, _ := d.values[uniformKey{d.active, "model"}].(mgl32.Mat4)
	d.draws = append(d.draws, draw{program: d.active, vao: h.VAO, model: model})
}

func (d *fakeDevice) UploadTexture(img *texture.Image) uint32 {
	d.textures = append(d.textures, img)
	return d.id()
}

func (d *fakeDevice) BindTexture(unit uint32, id uint32) { d.bound[unit] = id }

// uniform returns the last value uploaded to name on program.
func (d *fakeDevice) uniform(program uint32, name string) any {
	return d.values[uniformKey{program, name}]
}

// uniformNames lists every name queried on program.
func (d *fakeDevice) uniformNames(program uint32) []string {
	var names []string
	for key := range d.locations {
		if key.program == program {
			names = append(names, key.name)
		}
	}
	return names
}
