package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type recordingSetter struct {
	values map[string]any
	order  []string
}

func newRecordingSetter() *recordingSetter {
	return &recordingSetter{values: make(map[string]any)}
}

func (r *recordingSetter) set(name string, v any) {
	r.values[name] = v
	r.order = append(r.order, name)
}

func (r *recordingSetter) SetBool(name string, v bool)       { r.set(name, v) }
func (r *recordingSetter) SetInt(name string, v int32)       { r.set(name, v) }
func (r *recordingSetter) SetFloat(name string, v float32)   { r.set(name, v) }
func (r *recordingSetter) SetVec3(name string, v mgl32.Vec3) { r.set(name, v) }
func (r *recordingSetter) SetMat4(name string, v mgl32.Mat4) { r.set(name, v) }

func TestDirLight_Apply(t *testing.T) {
	u := newRecordingSetter()
	DirLight{
		Direction: mgl32.Vec3{-0.2, -1, -0.3},
		Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
		Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	}.Apply(u, "dirLight")

	assert.Equal(t, []string{"dirLight.direction", "dirLight.ambient", "dirLight.diffuse", "dirLight.specular"}, u.order)
	assert.Equal(t, mgl32.Vec3{-0.2, -1, -0.3}, u.values["dirLight.direction"])
}

func TestPointLight_Apply(t *testing.T) {
	u := newRecordingSetter()
	PointLight{
		Position:    mgl32.Vec3{0.7, 0.2, 2.0},
		Attenuation: Attenuation50,
	}.Apply(u, PointLightName(2))

	assert.Len(t, u.order, 7)
	assert.Equal(t, mgl32.Vec3{0.7, 0.2, 2.0}, u.values["pointLights[2].position"])
	assert.Equal(t, float32(1.0), u.values["pointLights[2].constant"])
	assert.Equal(t, float32(0.09), u.values["pointLights[2].linear"])
	assert.Equal(t, float32(0.032), u.values["pointLights[2].quadratic"])
}

func TestSpotLight_ApplyUploadsCosines(t *testing.T) {
	u := newRecordingSetter()
	SpotLight{CutOff: 12.5, OuterCutOff: 15, Attenuation: Attenuation50}.Apply(u, "spotLight")

	assert.InDelta(t, 0.976296, u.values["spotLight.cutOff"], 1e-5)
	assert.InDelta(t, 0.965926, u.values["spotLight.outerCutOff"], 1e-5)
	assert.Contains(t, u.values, "spotLight.direction")
	assert.Len(t, u.order, 10)
}

func TestMaterial_Apply(t *testing.T) {
	u := newRecordingSetter()
	DefaultMaterial().Apply(u, "material")

	assert.Equal(t, int32(0), u.values["material.diffuse"])
	assert.Equal(t, int32(1), u.values["material.specular"])
	assert.Equal(t, float32(32), u.values["material.shininess"])
}

func TestModelMatrix(t *testing.T) {
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), ModelMatrix(mgl32.Vec3{1, 2, 3}, 0, mgl32.Vec3{1, 0.3, 0.5}, 1))

	m := ModelMatrix(mgl32.Vec3{1.2, 1, 2}, 0, mgl32.Vec3{}, 0.2)
	p := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.InDelta(t, 1.4, p.X(), 1e-5)
	assert.InDelta(t, 1.2, p.Y(), 1e-5)
	assert.InDelta(t, 2.2, p.Z(), 1e-5)

	// rotation keeps the origin-centred point's distance
	r := ModelMatrix(mgl32.Vec3{}, 1.3, mgl32.Vec3{1, 0.3, 0.5}, 1)
	q := r.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.InDelta(t, mgl32.Vec3{0.5, 0.5, 0.5}.Len(), q.Len(), 1e-5)
}
