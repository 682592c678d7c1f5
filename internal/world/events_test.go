package world

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

func TestAffectedChunks(t *testing.T) {
	w := newTestWorld(t, nil, DefaultSettings())
	w.LoadChunk(vec.Vec3{})

	assert.Equal(t, []vec.Vec3{{}}, w.AffectedChunks(vec.Vec3{X: 15}), "сосед не загружен")

	w.LoadChunk(vec.Vec3{X: 1})
	w.LoadChunk(vec.Vec3{Y: -1})
	assert.ElementsMatch(t, []vec.Vec3{{}, {X: 1}}, w.AffectedChunks(vec.Vec3{X: 15, Y: 3}))
	assert.ElementsMatch(t, []vec.Vec3{{}, {Y: -1}}, w.AffectedChunks(vec.Vec3{X: 3}))
	assert.Equal(t, []vec.Vec3{{}}, w.AffectedChunks(vec.Vec3{X: 7, Y: 7, Z: 7}))
	assert.Equal(t, []vec.Vec3{{X: 1}}, w.AffectedChunks(vec.Vec3{X: 32, Y: 3}), "только загруженные чанки")
}

func TestWorldPublishesEvents(t *testing.T) {
	reg, err := implementations.NewDefaultRegistry()
	require.NoError(t, err)
	reg.Freeze()

	bus := eventbus.NewMemoryBus(64)
	w, err := NewWorld(DefaultSettings(), reg, nil, 1,
		WithLogger(logging.NewWriterLogger("world", discard{}, logging.ERROR)),
		WithEventBus(bus))
	require.NoError(t, err)

	var mu sync.Mutex
	counts := make(map[string]int)
	var changed []vec.Vec3
	_, err = bus.Subscribe(context.Background(), eventbus.Filter{}, func(_ context.Context, ev *eventbus.Envelope) {
		mu.Lock()
		defer mu.Unlock()
		counts[ev.EventType]++
		if ev.EventType == eventbus.EventCellChanged {
			changed = append(changed, ev.Chunk)
			assert.Equal(t, vec.Vec3{X: 16}, ev.Position)
		}
	})
	require.NoError(t, err)

	w.LoadChunk(vec.Vec3{})
	w.SetCellAt(vec.Vec3{X: 16}, NewCell(implementations.Stone))
	c, _ := w.Chunk(vec.Vec3{X: 1})
	_, err = w.MeshChunk(c, meshing.MeshOnly)
	require.NoError(t, err)
	require.NoError(t, bus.Close())

	assert.Equal(t, 2, counts[eventbus.EventChunkLoaded])
	assert.Equal(t, 1, counts[eventbus.EventChunkMeshed])
	assert.ElementsMatch(t, []vec.Vec3{{X: 1}, {}}, changed)
}
