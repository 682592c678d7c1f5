package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

func TestDirtyTrackerDrain(t *testing.T) {
	bus := eventbus.NewMemoryBus(8)
	defer bus.Close()

	dt, err := NewDirtyTracker(context.Background(), bus)
	require.NoError(t, err)
	defer dt.Close()

	dt.Mark(vec.Vec3{X: 2})
	dt.Mark(vec.Vec3{X: -1, Z: 4})
	dt.Mark(vec.Vec3{X: 2})
	assert.Equal(t, 2, dt.Len())

	assert.Equal(t, []vec.Vec3{{X: -1, Z: 4}, {X: 2}}, dt.Drain())
	assert.Zero(t, dt.Len())
	assert.Empty(t, dt.Drain())
}

func TestRemeshAfterEdit(t *testing.T) {
	reg, err := implementations.NewDefaultRegistry()
	require.NoError(t, err)
	reg.Freeze()

	bus := eventbus.NewMemoryBus(64)
	defer bus.Close()
	w, err := world.NewWorld(world.DefaultSettings(), reg, nil, 1,
		world.WithLogger(quietLogger()), world.WithEventBus(bus))
	require.NoError(t, err)

	m := NewMesher(w, meshing.MeshOnly, WithLogger(quietLogger()))
	_, err = m.Run(context.Background(), []vec.Vec3{{}, {X: 1}})
	require.NoError(t, err)

	dt, err := NewDirtyTracker(context.Background(), bus)
	require.NoError(t, err)
	defer dt.Close()

	results, err := m.Remesh(context.Background(), dt)
	require.NoError(t, err)
	assert.Empty(t, results, "без изменений нечего перестраивать")

	w.SetCellAt(vec.Vec3{X: 15, Y: 4, Z: 4}, world.NewCell(implementations.Stone))
	require.Eventually(t, func() bool { return dt.Len() == 2 }, time.Second, 5*time.Millisecond,
		"изменение на границе задевает оба чанка")

	results, err = m.Remesh(context.Background(), dt)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, vec.Vec3{}, results[0].Coords)
	assert.Len(t, results[0].Mesh.Render.Vertices, 24)
	assert.Equal(t, vec.Vec3{X: 1}, results[1].Coords)
	assert.Empty(t, results[1].Mesh.Render.Vertices)
}
