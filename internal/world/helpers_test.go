package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

// newTestWorld создаёт мир со встроенным каталогом
func newTestWorld(t *testing.T, generator TerrainGenerator, settings Settings) *World {
	t.Helper()

	reg, err := implementations.NewDefaultRegistry()
	require.NoError(t, err)
	reg.Freeze()

	w, err := NewWorld(settings, reg, generator, 12345,
		WithLogger(logging.NewWriterLogger("world", discard{}, logging.ERROR)))
	require.NoError(t, err)
	return w
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
