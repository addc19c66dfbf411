package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter uploads values to named uniforms of the active program.
type UniformSetter interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, value mgl32.Vec3)
	SetMat4(name string, value mgl32.Mat4)
}

// Attenuation holds the constant/linear/quadratic falloff terms.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Attenuation50 covers a distance of roughly 50 units.
var Attenuation50 = Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}

type DirLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

func (l DirLight) Apply(u UniformSetter, name string) {
	u.SetVec3(name+".direction", l.Direction)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Attenuation
}

func (l PointLight) Apply(u UniformSetter, name string) {
	u.SetVec3(name+".position", l.Position)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
	l.Attenuation.apply(u, name)
}

// SpotLight cut-off angles are in degrees; the shader receives their cosines.
type SpotLight struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	CutOff      float32
	OuterCutOff float32
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Attenuation
}

func (l SpotLight) Apply(u UniformSetter, name string) {
	u.SetVec3(name+".position", l.Position)
	u.SetVec3(name+".direction", l.Direction)
	u.SetFloat(name+".cutOff", cosDeg(l.CutOff))
	u.SetFloat(name+".outerCutOff", cosDeg(l.OuterCutOff))
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
	l.Attenuation.apply(u, name)
}

func (a Attenuation) apply(u UniformSetter, name string) {
	u.SetFloat(name+".constant", a.Constant)
	u.SetFloat(name+".linear", a.Linear)
	u.SetFloat(name+".quadratic", a.Quadratic)
}

// PointLightName returns the uniform name of the i-th element of the
// pointLights array.
func PointLightName(i int) string {
	return fmt.Sprintf("pointLights[%d]", i)
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
