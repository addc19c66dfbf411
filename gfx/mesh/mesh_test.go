package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTexturedCube(t *testing.T) {
	m := TexturedCube()
	require.NoError(t, m.Validate())

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, int32(36), m.DrawCount())
	assert.Equal(t, int32(32), m.Layout.StrideBytes())
	assert.True(t, m.Layout.Has(SlotColor))
	assert.False(t, m.Layout.Has(SlotNormal))
}

func TestLitCube(t *testing.T) {
	m := LitCube()
	require.NoError(t, m.Validate())

	assert.Equal(t, 36, m.VertexCount())
	assert.Equal(t, int32(36), m.DrawCount())
	assert.True(t, m.Layout.Has(SlotNormal))

	for v := 0; v < m.VertexCount(); v++ {
		base := v * m.Layout.Stride
		pos := mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
		n := mgl32.Vec3{m.Vertices[base+3], m.Vertices[base+4], m.Vertices[base+5]}
		assert.InDelta(t, 1, n.Len(), 1e-6, "vertex %d normal", v)
		// every vertex of a face lies on the face plane the normal points out of
		assert.InDelta(t, 0.5, pos.Dot(n), 1e-6, "vertex %d", v)
	}
}

func TestValidate_Errors(t *testing.T) {
	m := &Mesh{Name: "bad", Layout: LayoutPosColorUV, Vertices: make([]float32, 12)}
	assert.Error(t, m.Validate())

	m = &Mesh{Name: "bad", Layout: LayoutPosColorUV, Vertices: make([]float32, 16), Indices: []uint32{0, 1, 2}}
	assert.ErrorContains(t, m.Validate(), "out of range")

	m = &Mesh{Name: "bad", Layout: Layout{Stride: 2, Attributes: []Attribute{{Slot: 0, Size: 3}}}}
	assert.ErrorContains(t, m.Validate(), "overruns")

	m = &Mesh{Name: "bad"}
	assert.ErrorContains(t, m.Validate(), "stride")
}
