package block

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/world/direction"
)

const testCatalog = `
types:
  - id: 10
    name: Glass
    solid: [none]
    texture: {x: 3, y: 0, submesh: 1}
  - id: 11
    sub_id: 2
    name: Slab
    faces: [up, down]
    solid: [down]
    texture: {x: 0, y: 2}
    face_textures:
      up: {x: 4, y: 4}
`

func TestParseCatalog(t *testing.T) {
	reg := NewRegistry()

	n, err := ParseCatalog([]byte(testCatalog), reg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	glass, ok := reg.ByName("Glass")
	require.True(t, ok)
	assert.Equal(t, ID{ID: 10}, glass.ID())
	assert.True(t, glass.HasFace(direction.West), "без faces все грани присутствуют")
	assert.False(t, glass.IsSolid(direction.Up))
	assert.Equal(t, FaceTexture{X: 3, Y: 0, SubMesh: 1}, glass.Textures().Face(direction.North))

	slab, ok := reg.Get(ID{ID: 11, SubID: 2})
	require.True(t, ok)
	assert.True(t, slab.HasFace(direction.Up))
	assert.False(t, slab.HasFace(direction.East))
	assert.True(t, slab.IsSolid(direction.Down))
	assert.False(t, slab.IsSolid(direction.Up))
	assert.Equal(t, FaceTexture{X: 4, Y: 4}, slab.Textures().Face(direction.Up))
	assert.Equal(t, FaceTexture{X: 0, Y: 2}, slab.Textures().Face(direction.Down))

	assert.Equal(t, 2, reg.SubMeshCount())
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	reg := NewRegistry()
	n, err := LoadCatalog(path, reg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, reg.Len())
}

func TestCatalogErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := ParseCatalog([]byte("types:\n  - id: 1\n"), reg)
	assert.Error(t, err, "тип без имени")

	_, err = ParseCatalog([]byte("types:\n  - id: 1\n    name: X\n    faces: [sideways]\n"), reg)
	assert.Error(t, err, "неизвестное направление")

	_, err = ParseCatalog([]byte("types: [oops"), reg)
	assert.Error(t, err)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"), reg)
	assert.Error(t, err)
}

func TestCatalogDuplicate(t *testing.T) {
	reg := NewRegistry()
	_, err := ParseCatalog([]byte("types:\n  - id: 0\n    name: Air2\n"), reg)
	assert.ErrorIs(t, err, ErrDuplicateID)
}
