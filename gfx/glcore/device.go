package glcore

import (
	"fmt"
	"strings"

	"github.com/gekko3d/learngl/gfx/mesh"
	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/gfx/texture"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Init loads GL function pointers. A context must be current on the calling thread.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	return nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Device issues OpenGL 3.3 core calls on the thread owning the context.
type Device struct{}

var _ shader.Driver = (*Device)(nil)

func NewDevice() *Device {
	return &Device{}
}

func stageType(stage shader.Stage) uint32 {
	if stage == shader.Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (d *Device) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(stageType(stage))
}

func (d *Device) CompileShader(id uint32, source string) (bool, string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
	infoLog := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(id, logLen, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *Device) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	infoLog := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location int32, value int32) {
	gl.Uniform1i(location, value)
}

func (d *Device) Uniform1f(location int32, value float32) {
	gl.Uniform1f(location, value)
}

func (d *Device) Uniform3fv(location int32, value mgl32.Vec3) {
	gl.Uniform3fv(location, 1, &value[0])
}

func (d *Device) UniformMatrix4fv(location int32, value mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

// UploadMesh creates a VAO with its vertex (and, when indexed, element)
// buffer and configures the layout's attribute slots.
func (d *Device) UploadMesh(m *mesh.Mesh) mesh.Handle {
	h := mesh.Handle{Count: m.DrawCount(), Indexed: len(m.Indices) > 0}

	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	gl.GenBuffers(1, &h.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*mesh.FloatSize, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	if h.Indexed {
		gl.GenBuffers(1, &h.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	stride := m.Layout.StrideBytes()
	for _, a := range m.Layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Slot, a.Size, gl.FLOAT, false, stride, uintptr(a.Offset*mesh.FloatSize))
		gl.EnableVertexAttribArray(a.Slot)
	}

	// the element buffer binding is VAO state and stays bound
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return h
}

func (d *Device) DeleteMesh(h mesh.Handle) {
	gl.DeleteVertexArrays(1, &h.VAO)
	gl.DeleteBuffers(1, &h.VBO)
	if h.Indexed {
		gl.DeleteBuffers(1, &h.EBO)
	}
}

func (d *Device) DrawMesh(h mesh.Handle) {
	gl.BindVertexArray(h.VAO)
	if h.Indexed {
		gl.DrawElements(gl.TRIANGLES, h.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, h.Count)
	}
}

// UploadTexture creates a repeating, mip-mapped RGBA8 2D texture.
func (d *Device) UploadTexture(img *texture.Image) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return id
}

func (d *Device) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (d *Device) BindTexture(unit uint32, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (d *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
