package block

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/world/direction"
)

func TestNewRegistryHasNull(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, 1, reg.Len())
	got, ok := reg.Get(ID{})
	require.True(t, ok)
	assert.True(t, got.IsNull())
	assert.False(t, got.HasAnyFace(), "пустота не должна иметь граней")
	for _, dir := range direction.All {
		assert.False(t, got.IsSolid(dir))
	}
}

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	stone := NewType(ID{ID: 7}, "Stone")

	require.NoError(t, reg.Register(stone))

	got, err := reg.MustGet(ID{ID: 7})
	require.NoError(t, err)
	assert.Same(t, stone, got)

	byName, ok := reg.ByName("Stone")
	require.True(t, ok)
	assert.Same(t, stone, byName)
	assert.True(t, reg.IsValidID(ID{ID: 7}))
	assert.False(t, reg.IsValidID(ID{ID: 7, SubID: 1}))
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewType(ID{ID: 1}, "A")))

	err := reg.Register(NewType(ID{ID: 1}, "B"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = reg.Register(NewType(ID{}, "ещё одна пустота"))
	assert.ErrorIs(t, err, ErrDuplicateID, "ID пустоты занят всегда")
}

func TestFrozenRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Freeze()

	assert.True(t, reg.Frozen())
	err := reg.Register(NewType(ID{ID: 1}, "A"))
	assert.ErrorIs(t, err, ErrRegistryFrozen)
}

func TestMustGetUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.MustGet(ID{ID: 42})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypesSorted(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewType(ID{ID: 3}, "C")))
	require.NoError(t, reg.Register(NewType(ID{ID: 1, SubID: 2}, "B2")))
	require.NoError(t, reg.Register(NewType(ID{ID: 1}, "B")))

	var names []string
	for _, typ := range reg.Types() {
		names = append(names, typ.Name())
	}
	assert.Equal(t, []string{"NULL", "B", "B2", "C"}, names)
}

func TestConcurrentReads(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(NewType(ID{ID: 1}, "A")))
	reg.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_, ok := reg.Get(ID{ID: 1})
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}

func TestTypeOptions(t *testing.T) {
	faces := direction.MaskOf(direction.Up, direction.Down)
	typ := NewType(ID{ID: 9}, "Slab",
		WithFaces(faces),
		WithSolidity(direction.MaskOf(direction.Down)),
	)

	assert.True(t, typ.HasFace(direction.Up))
	assert.False(t, typ.HasFace(direction.North))
	assert.True(t, typ.IsSolid(direction.Down))
	assert.False(t, typ.IsSolid(direction.Up))
	assert.Equal(t, "Slab(9)", typ.String())
	assert.Equal(t, "9:3", ID{ID: 9, SubID: 3}.String())
}

func TestSubMeshCount(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 1, reg.SubMeshCount())

	tex := UniformTextures(0, 0, 0).WithSubMesh(direction.Up, 2)
	require.NoError(t, reg.Register(NewType(ID{ID: 1}, "A", WithTextures(tex))))
	assert.Equal(t, 3, reg.SubMeshCount())
}
