package shaders

import (
	"embed"
)

// FS holds every GLSL source shipped with the binary.
//
//go:embed *.vs *.fs
var FS embed.FS

const (
	TexturedVS   = "textured.vs"
	TexturedFS   = "textured.fs"
	LitVS        = "lit.vs"
	PhongFS      = "phong.fs"
	MultiLightFS = "multilight.fs"
	LampVS       = "lamp.vs"
	LampFS       = "lamp.fs"
)
