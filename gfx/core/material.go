package core

import "github.com/go-gl/mathgl/mgl32"

// Material binds diffuse and specular maps to texture units.
type Material struct {
	Diffuse   int32
	Specular  int32
	Shininess float32
}

func DefaultMaterial() Material {
	return Material{
		Diffuse:   0,
		Specular:  1,
		Shininess: 32.0,
	}
}

func (m Material) Apply(u UniformSetter, name string) {
	u.SetInt(name+".diffuse", m.Diffuse)
	u.SetInt(name+".specular", m.Specular)
	u.SetFloat(name+".shininess", m.Shininess)
}

// ModelMatrix composes translate * rotate(angle, axis) * scale.
// A zero axis or zero angle skips the rotation.
func ModelMatrix(translation mgl32.Vec3, angle float32, axis mgl32.Vec3, scale float32) mgl32.Mat4 {
	model := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	if angle != 0 && axis.Len() > 0 {
		model = model.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
	}
	if scale != 1 {
		model = model.Mul4(mgl32.Scale3D(scale, scale, scale))
	}
	return model
}
