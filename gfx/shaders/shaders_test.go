package shaders

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	for _, name := range []string{TexturedVS, TexturedFS, LitVS, PhongFS, MultiLightFS, LampVS, LampFS} {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "#version 330 core"), name)
		assert.Contains(t, string(data), "void main()", name)
	}
}

func TestVertexStagesUseFixedSlots(t *testing.T) {
	textured, err := fs.ReadFile(FS, TexturedVS)
	require.NoError(t, err)
	assert.Contains(t, string(textured), "layout (location = 0) in vec3 aPos")
	assert.Contains(t, string(textured), "layout (location = 1) in vec3 aColor")
	assert.Contains(t, string(textured), "layout (location = 2) in vec2 aTexCoord")

	lit, err := fs.ReadFile(FS, LitVS)
	require.NoError(t, err)
	assert.Contains(t, string(lit), "layout (location = 3) in vec3 aNormal")
}
