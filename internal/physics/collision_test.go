package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

type voxelSet map[vec.Vec3]bool

func (s voxelSet) IsBlocked(pos vec.Vec3) bool { return s[pos] }

func TestBoxColliderBounds(t *testing.T) {
	c := NewBoxCollider(2, 3, 2)
	pos := vec.Vec3{X: 5, Y: 1, Z: 5}

	assert.Equal(t, vec.Vec3{X: 4, Y: 1, Z: 4}, c.Min(pos))
	assert.Equal(t, vec.Vec3{X: 6, Y: 4, Z: 6}, c.Max(pos))
	assert.True(t, c.IsPointInside(pos, vec.Vec3{X: 4, Y: 3, Z: 5}))
	assert.False(t, c.IsPointInside(pos, vec.Vec3{X: 6, Y: 1, Z: 5}))
	assert.Len(t, GetCollisionPoints(pos, c), 12)
}

func TestCheckBoxCollision(t *testing.T) {
	a := NewBoxCollider(1, 2, 1)
	assert.True(t, CheckBoxCollision(vec.Vec3{}, a, vec.Vec3{Y: 1}, a))
	assert.False(t, CheckBoxCollision(vec.Vec3{}, a, vec.Vec3{Y: 2}, a), "касание не считается пересечением")
	assert.False(t, CheckBoxCollision(vec.Vec3{}, a, vec.Vec3{X: 1}, a))
}

func TestCanMoveToPosition(t *testing.T) {
	blocked := voxelSet{{X: 0, Y: 1, Z: 0}: true}
	c := NewBoxCollider(1, 2, 1)

	assert.False(t, CanMoveToPosition(vec.Vec3{}, c, blocked))
	assert.True(t, CanMoveToPosition(vec.Vec3{Y: 2}, c, blocked))
	assert.True(t, CanMoveToPosition(vec.Vec3{X: 1}, c, blocked))
}

func TestFindGroundOnGeneratedWorld(t *testing.T) {
	reg, err := implementations.NewDefaultRegistry()
	require.NoError(t, err)
	reg.Freeze()

	w, err := world.NewWorld(world.DefaultSettings(), reg, nil, 1,
		world.WithLogger(logging.NewWriterLogger("world", discard{}, logging.ERROR)))
	require.NoError(t, err)
	c := w.LoadChunk(vec.Vec3{})
	for y := 0; y < 5; y++ {
		c.SetCell(3, y, 3, world.NewCell(implementations.Stone))
	}
	c.SetCell(3, 8, 3, world.NewCell(implementations.Water))

	pos, ok := FindGround(w, NewBoxCollider(1, 2, 1), 3, 3, 14, 0)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 3, Y: 5, Z: 3}, pos, "вода не опора")

	_, ok = FindGround(w, NewBoxCollider(1, 2, 1), 10, 10, 14, 0)
	assert.False(t, ok, "пустая колонка без опоры")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
