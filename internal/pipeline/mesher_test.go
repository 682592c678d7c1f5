package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/observability"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func quietLogger() *logging.Logger {
	return logging.NewWriterLogger("pipeline", discard{}, logging.ERROR)
}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	reg, err := implementations.NewDefaultRegistry()
	require.NoError(t, err)
	reg.Freeze()

	w, err := world.NewWorld(world.DefaultSettings(), reg, world.NewHeuristicTerrain(), 42,
		world.WithLogger(quietLogger()))
	require.NoError(t, err)
	return w
}

func TestSquare(t *testing.T) {
	coords := Square(vec.Vec3{Y: 2}, 1)
	require.Len(t, coords, 9)
	assert.Equal(t, vec.Vec3{X: -1, Y: 2, Z: -1}, coords[0])
	assert.Equal(t, vec.Vec3{X: 1, Y: 2, Z: 1}, coords[8])

	assert.Len(t, Square(vec.Vec3{}, 0), 1)
	assert.Empty(t, Square(vec.Vec3{}, -1))
}

func TestRunMeshesAllChunks(t *testing.T) {
	w := newTestWorld(t)
	metrics := observability.NewMetrics()
	m := NewMesher(w, meshing.MeshAndCollider, WithWorkers(3), WithLogger(quietLogger()), WithMetrics(metrics))
	assert.Equal(t, 3, m.Workers())

	coords := Square(vec.Vec3{}, 1)
	results, err := m.Run(context.Background(), coords)
	require.NoError(t, err)
	require.Len(t, results, len(coords))

	ids := make(map[string]bool)
	for i, r := range results {
		assert.Equal(t, coords[i], r.Coords, "результаты в порядке входных координат")
		assert.NoError(t, r.Err)
		require.NotNil(t, r.Mesh)
		assert.NotEmpty(t, r.Mesh.Render.Vertices)
		assert.False(t, ids[r.JobID], "идентификаторы задач уникальны")
		ids[r.JobID] = true
	}
	assert.Len(t, w.LoadedChunks(), len(coords))

	s := Summarize(results)
	assert.Equal(t, 9, s.Jobs)
	assert.Zero(t, s.Failed)
	assert.Zero(t, s.Skipped)
	assert.NotZero(t, s.Triangles)

	expected := `
# HELP voxel_pipeline_jobs_total Задачи конвейера построения сеток по результату.
# TYPE voxel_pipeline_jobs_total counter
voxel_pipeline_jobs_total{result="ok"} 9
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "voxel_pipeline_jobs_total"))
}

func TestRunMatchesSequentialMeshing(t *testing.T) {
	coords := Square(vec.Vec3{}, 1)

	parallel, err := NewMesher(newTestWorld(t), meshing.MeshOnly, WithWorkers(8), WithLogger(quietLogger())).
		Run(context.Background(), coords)
	require.NoError(t, err)

	sequential, err := NewMesher(newTestWorld(t), meshing.MeshOnly, WithWorkers(1), WithLogger(quietLogger())).
		Run(context.Background(), coords)
	require.NoError(t, err)

	for i := range coords {
		assert.Equal(t, sequential[i].Mesh.Stats, parallel[i].Mesh.Stats, "чанк %s", coords[i])
		assert.Equal(t, sequential[i].Mesh.Render.Vertices, parallel[i].Mesh.Render.Vertices)
	}
}

func TestRunCancelled(t *testing.T) {
	w := newTestWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	metrics := observability.NewMetrics()
	results, err := NewMesher(w, meshing.MeshOnly, WithLogger(quietLogger()), WithMetrics(metrics)).
		Run(ctx, Square(vec.Vec3{}, 1))
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 9)
	for _, r := range results {
		assert.True(t, r.Skipped())
		assert.Nil(t, r.Mesh)
	}
	assert.Equal(t, 9, Summarize(results).Skipped)
	assert.Empty(t, w.LoadedChunks(), "после отмены новые чанки не загружаются")
}

func TestRunKeepsPartialMesh(t *testing.T) {
	w := newTestWorld(t)
	c := w.LoadChunk(vec.Vec3{})
	c.SetCell(0, 15, 0, world.NewComplexCell(implementations.Stone, world.StyleInverseCorner))

	results, err := NewMesher(w, meshing.MeshOnly, WithLogger(quietLogger())).
		Run(context.Background(), []vec.Vec3{{}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, r.Warning())
	assert.ErrorIs(t, r.Err, meshing.ErrUnsupportedStyle)
	require.NotNil(t, r.Mesh)
	assert.Equal(t, 1, r.Mesh.Unsupported)
	assert.NotEmpty(t, r.Mesh.Render.Vertices)
	assert.Equal(t, 1, Summarize(results).Unsupported)
}

func TestRunSurvivesUnregisteredType(t *testing.T) {
	w, err := world.NewWorld(world.DefaultSettings(), block.NewRegistry(), nil, 0,
		world.WithLogger(quietLogger()))
	require.NoError(t, err)
	w.SetCellAt(vec.Vec3{X: 3}, world.NewCell(implementations.Water))

	results, err := NewMesher(w, meshing.MeshOnly, WithLogger(quietLogger())).
		Run(context.Background(), []vec.Vec3{{}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, 12, results[0].Mesh.Stats.Triangles)
}
