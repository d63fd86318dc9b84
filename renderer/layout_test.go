package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/materials"
	"github.com/richinsley/godeskscene/meshes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeskLayoutShape(t *testing.T) {
	layout := DeskLayout()
	require.Len(t, layout, 44)

	counts := map[meshes.Kind]int{}
	for _, obj := range layout {
		counts[obj.Mesh]++
		assert.NotEqual(t, mgl32.Vec3{}, obj.Scale, obj.Name)
	}
	assert.Equal(t, 30, counts[meshes.KindTorus])
	assert.Equal(t, 2, counts[meshes.KindCone])
	assert.Equal(t, 7, counts[meshes.KindCylinder])
	assert.Equal(t, 3, counts[meshes.KindBox])
	assert.Equal(t, 1, counts[meshes.KindBox2])
	assert.Equal(t, 1, counts[meshes.KindPlane])

	first := layout[0]
	assert.NotEmpty(t, first.Material, "first draw must bind a material")
	assert.NotEmpty(t, first.Texture, "first draw must bind a texture")
	assert.NotEqual(t, mgl32.Vec2{}, first.UVScale)
}

func TestSpiralSpacing(t *testing.T) {
	var zs []float32
	for _, obj := range DeskLayout() {
		if obj.Mesh == meshes.KindTorus {
			zs = append(zs, obj.Position.Z())
			assert.Equal(t, float32(spiralX), obj.Position.X())
		}
	}
	assert.InDelta(t, 4.0, zs[0], 1e-5)
	assert.InDelta(t, 7.4, zs[17], 1e-5)
	assert.InDelta(t, 3.8, zs[18], 1e-5)
	assert.InDelta(t, 1.6, zs[29], 1e-5)
}

func TestLayoutTagsExist(t *testing.T) {
	mats := map[string]bool{}
	for _, m := range materials.DeskMaterials() {
		mats[m.Tag] = true
	}
	texs := map[string]bool{}
	for _, a := range DeskTextures() {
		texs[a.Tag] = true
	}
	loaded := map[meshes.Kind]bool{}
	for _, k := range DeskMeshes() {
		loaded[k] = true
	}

	for _, obj := range DeskLayout() {
		if obj.Material != "" {
			assert.True(t, mats[obj.Material], "material %q", obj.Material)
		}
		if obj.Texture != "" {
			assert.True(t, texs[obj.Texture], "texture %q", obj.Texture)
		}
		assert.True(t, loaded[obj.Mesh], "mesh %s", obj.Mesh)
	}
}
