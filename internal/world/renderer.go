package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.opentelemetry.io/otel/attribute"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/vec"
)

// ChunkMesh результат построения сетки одного чанка
type ChunkMesh struct {
	Coords   vec.Vec3
	Mode     meshing.Mode
	Render   *meshing.RenderMesh   // nil в режиме ColliderOnly
	Collider *meshing.ColliderMesh // nil в режиме MeshOnly
	Stats    meshing.Stats
	// Unsupported количество ячеек, стиль которых не удалось построить
	Unsupported int
}

// Dump снимок для выгрузки в файл
func (m *ChunkMesh) Dump() meshing.Dump {
	return meshing.Dump{
		Chunk:    [3]int{m.Coords.X, m.Coords.Y, m.Coords.Z},
		Mode:     m.Mode.String(),
		Render:   m.Render,
		Collider: m.Collider,
	}
}

// AppendChunkMesh обходит все ячейки чанка и добавляет их геометрию в md.
// Буфер расширяется до сабмешей, которые реально используют ячейки чанка.
// Центр вокселя в сетке - локальные координаты, умноженные на размер вокселя.
// Ячейки неподдерживаемых стилей пропускаются; возвращается их количество
// и ошибка, оборачивающая meshing.ErrUnsupportedStyle.
func (w *World) AppendChunkMesh(md *meshing.MeshData, c *Chunk) (int, error) {
	md.EnsureSubMeshes(c.SubMeshesUsed())

	voxelSize := w.settings.VoxelSize
	var errs []error
	unsupported := 0

	c.ForEach(func(local vec.Vec3, cell Cell) {
		position := mgl32.Vec3{float32(local.X), float32(local.Y), float32(local.Z)}.Mul(voxelSize)
		if err := cell.AddMeshData(md, c, local, position, voxelSize); err != nil {
			if errors.Is(err, meshing.ErrUnsupportedStyle) {
				unsupported++
			}
			errs = append(errs, fmt.Errorf("ячейка %s (%s): %w", local, cell.Shape.Style, err))
		}
	})
	return unsupported, errors.Join(errs...)
}

// SubMeshCount число сабмешей в сетках чанков: максимум из настройки и требования каталога
func (w *World) SubMeshCount() int {
	return max(w.settings.SubMeshes, w.registry.SubMeshCount())
}

// MeshChunk строит сетки чанка в режиме mode.
// При ошибках отдельных ячеек сетка остальных всё равно возвращается вместе с ошибкой.
func (w *World) MeshChunk(c *Chunk, mode meshing.Mode) (*ChunkMesh, error) {
	return w.MeshChunkContext(context.Background(), c, mode)
}

// MeshChunkContext то же, что MeshChunk, со спаном трассировки в ctx
func (w *World) MeshChunkContext(ctx context.Context, c *Chunk, mode meshing.Mode) (*ChunkMesh, error) {
	ctx, span := w.tracer.Start(ctx, "world.MeshChunk")
	defer span.End()

	start := time.Now()
	md := meshing.NewMeshData(w.SubMeshCount())

	unsupported, cellErr := w.AppendChunkMesh(md, c)
	stats := md.Stats()

	render, collider, err := md.Build(mode)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("сборка сетки %s: %w", c, err)
	}
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.String("chunk", c.coords.String()),
		attribute.Int("mesh.vertices", stats.Vertices),
		attribute.Int("mesh.triangles", stats.Triangles),
		attribute.Int("mesh.unsupported", unsupported),
	)

	w.metrics.ObserveMesh(mode.String(), stats.Vertices, stats.Triangles, elapsed)
	w.metrics.AddUnsupportedStyles(unsupported)
	if unsupported > 0 {
		w.logger.Warn("Чанк %s: %d ячеек с неподдерживаемым стилем пропущено", c, unsupported)
	}

	w.publish(ctx, eventbus.NewEnvelope("world", eventbus.EventChunkMeshed, 0, c.coords))

	result := &ChunkMesh{
		Coords:      c.coords,
		Mode:        mode,
		Render:      render,
		Collider:    collider,
		Stats:       stats,
		Unsupported: unsupported,
	}
	if cellErr != nil {
		span.RecordError(cellErr)
		return result, cellErr
	}
	return result, nil
}
