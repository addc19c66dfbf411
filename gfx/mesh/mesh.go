package mesh

import (
	"fmt"
)

// Attribute slots shared by every vertex shader.
const (
	SlotPosition uint32 = 0
	SlotColor    uint32 = 1
	SlotTexCoord uint32 = 2
	SlotNormal   uint32 = 3
)

const FloatSize = 4

// Attribute is one interleaved float vector inside a vertex.
type Attribute struct {
	Slot   uint32
	Size   int32 // component count
	Offset int   // in floats
}

// Layout describes interleaved vertex data.
type Layout struct {
	Attributes []Attribute
	Stride     int // in floats
}

func (l Layout) StrideBytes() int32 {
	return int32(l.Stride * FloatSize)
}

// Has reports whether the layout feeds the given slot.
func (l Layout) Has(slot uint32) bool {
	for _, a := range l.Attributes {
		if a.Slot == slot {
			return true
		}
	}
	return false
}

var (
	// LayoutPosColorUV is position(3) color(3) texcoord(2).
	LayoutPosColorUV = Layout{
		Attributes: []Attribute{
			{Slot: SlotPosition, Size: 3, Offset: 0},
			{Slot: SlotColor, Size: 3, Offset: 3},
			{Slot: SlotTexCoord, Size: 2, Offset: 6},
		},
		Stride: 8,
	}

	// LayoutPosNormalUV is position(3) normal(3) texcoord(2).
	LayoutPosNormalUV = Layout{
		Attributes: []Attribute{
			{Slot: SlotPosition, Size: 3, Offset: 0},
			{Slot: SlotNormal, Size: 3, Offset: 3},
			{Slot: SlotTexCoord, Size: 2, Offset: 6},
		},
		Stride: 8,
	}
)

// Mesh is static geometry ready for upload. Indices may be empty, in which
// case vertices are drawn in order.
type Mesh struct {
	Name     string
	Layout   Layout
	Vertices []float32
	Indices  []uint32
}

func (m *Mesh) VertexCount() int {
	if m.Layout.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Layout.Stride
}

// DrawCount is the number of elements a draw call consumes.
func (m *Mesh) DrawCount() int32 {
	if len(m.Indices) > 0 {
		return int32(len(m.Indices))
	}
	return int32(m.VertexCount())
}

func (m *Mesh) Validate() error {
	if m.Layout.Stride <= 0 {
		return fmt.Errorf("mesh %s: invalid stride %d", m.Name, m.Layout.Stride)
	}
	for _, a := range m.Layout.Attributes {
		if a.Offset+int(a.Size) > m.Layout.Stride {
			return fmt.Errorf("mesh %s: attribute slot %d overruns stride", m.Name, a.Slot)
		}
	}
	if len(m.Vertices)%m.Layout.Stride != 0 {
		return fmt.Errorf("mesh %s: %d floats is not a multiple of stride %d", m.Name, len(m.Vertices), m.Layout.Stride)
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh %s: index %d at %d out of range (%d vertices)", m.Name, idx, i, n)
		}
	}
	return nil
}

// Handle names the GPU objects of an uploaded mesh.
type Handle struct {
	VAO     uint32
	VBO     uint32
	EBO     uint32
	Count   int32
	Indexed bool
}
