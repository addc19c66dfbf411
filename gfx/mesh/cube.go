package mesh

// TexturedCube is the 8-vertex indexed cube with per-corner colours used by
// the textured scene.
func TexturedCube() *Mesh {
	return &Mesh{
		Name:   "textured_cube",
		Layout: LayoutPosColorUV,
		Vertices: []float32{
			// positions        // colors     // uv
			0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
			-0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
			-0.5, 0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0,

			0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
			0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
			-0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
			-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
		},
		Indices: []uint32{
			0, 1, 3, 1, 2, 3,
			4, 5, 7, 5, 6, 7,
			0, 1, 4, 1, 4, 5,
			2, 3, 6, 3, 6, 7,
			0, 3, 4, 3, 4, 7,
			1, 2, 5, 2, 5, 6,
		},
	}
}

// LitCube is a 36-vertex cube with per-face normals and texture coordinates.
func LitCube() *Mesh {
	return &Mesh{
		Name:   "lit_cube",
		Layout: LayoutPosNormalUV,
		Vertices: []float32{
			// positions          // normals         // uv
			-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
			0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
			0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
			0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
			-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

			-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
			0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
			0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

			-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
			-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
			-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
			-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
			-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
			-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,

			0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
			0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
			0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
			0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,

			-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
			0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
			0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
			0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
			-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
			-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

			-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
			0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
			0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
			-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
			-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		},
	}
}
