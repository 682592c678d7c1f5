// Package world хранит воксельный мир: чанки, ячейки с формой и ориентацией,
// генерацию рельефа и обход чанка для построения сетки.
package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/observability"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// Settings параметры мира
type Settings struct {
	ChunkSize int     // длина ребра чанка в вокселях
	VoxelSize float32 // длина ребра вокселя в единицах сцены
	SubMeshes int     // минимальное число сабмешей; каталог может потребовать больше
}

// DefaultSettings 16 вокселей в чанке, воксель единичного размера
func DefaultSettings() Settings {
	return Settings{ChunkSize: DefaultChunkSize, VoxelSize: 1}
}

// HalfVoxelSize половина размера вокселя
func (s Settings) HalfVoxelSize() float32 {
	return s.VoxelSize / 2
}

// Validate проверяет настройки
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("размер чанка должен быть положительным: %d", s.ChunkSize)
	}
	if s.VoxelSize <= 0 {
		return fmt.Errorf("размер вокселя должен быть положительным: %v", s.VoxelSize)
	}
	if s.SubMeshes < 0 {
		return fmt.Errorf("число сабмешей не может быть отрицательным: %d", s.SubMeshes)
	}
	return nil
}

// World набор загруженных чанков.
// Карта чанков защищена RWMutex; чанк появляется в карте только полностью сгенерированным.
type World struct {
	settings  Settings
	registry  *block.Registry
	generator TerrainGenerator
	seed      int64
	positions PositionHelper

	mu     sync.RWMutex
	chunks map[vec.Vec3]*Chunk

	logger  *logging.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
	bus     eventbus.EventBus
}

// Option настраивает мир при создании
type Option func(*World)

// WithLogger задаёт логгер мира
func WithLogger(l *logging.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithMetrics подключает Prometheus-метрики
func WithMetrics(m *observability.Metrics) Option {
	return func(w *World) { w.metrics = m }
}

// WithTracer задаёт трассировщик
func WithTracer(t trace.Tracer) Option {
	return func(w *World) { w.tracer = t }
}

// WithEventBus публикует в bus загрузку чанков и изменения ячеек
func WithEventBus(bus eventbus.EventBus) Option {
	return func(w *World) { w.bus = bus }
}

// NewWorld создаёт пустой мир. generator может быть nil - тогда чанки остаются пустыми.
func NewWorld(settings Settings, registry *block.Registry, generator TerrainGenerator, seed int64, opts ...Option) (*World, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, errors.New("каталог типов вокселей не задан")
	}

	w := &World{
		settings:  settings,
		registry:  registry,
		generator: generator,
		seed:      seed,
		positions: NewPositionHelper(settings.ChunkSize),
		chunks:    make(map[vec.Vec3]*Chunk),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logging.GetWorldLogger()
	}
	if w.tracer == nil {
		w.tracer = observability.Tracer()
	}
	return w, nil
}

// Settings возвращает настройки мира
func (w *World) Settings() Settings { return w.settings }

// Registry возвращает каталог типов
func (w *World) Registry() *block.Registry { return w.registry }

// Seed возвращает сид мира
func (w *World) Seed() int64 { return w.seed }

// Positions возвращает помощник перевода координат
func (w *World) Positions() PositionHelper { return w.positions }

// ChunkSeed возвращает сид генерации чанка: один и тот же для одной пары (сид, координаты)
func (w *World) ChunkSeed(coords vec.Vec3) int64 {
	return w.seed + int64(coords.X)*73856093 + int64(coords.Y)*19349663 + int64(coords.Z)*83492791
}

// LoadChunk возвращает чанк, создавая и генерируя его при первом обращении
func (w *World) LoadChunk(coords vec.Vec3) *Chunk {
	return w.LoadChunkContext(context.Background(), coords)
}

// LoadChunkContext то же, что LoadChunk, со спаном трассировки в ctx
func (w *World) LoadChunkContext(ctx context.Context, coords vec.Vec3) *Chunk {
	if c, ok := w.Chunk(coords); ok {
		return c
	}

	_, span := w.tracer.Start(ctx, "world.LoadChunk", trace.WithAttributes(
		attribute.Int("chunk.x", coords.X),
		attribute.Int("chunk.y", coords.Y),
		attribute.Int("chunk.z", coords.Z),
	))
	defer span.End()

	// Генерируем вне блокировки: параллельные загрузки разных чанков не ждут друг друга
	start := time.Now()
	c := newChunk(w, coords, w.settings.ChunkSize)
	if w.generator != nil {
		w.generator.Generate(c, rand.New(rand.NewSource(w.ChunkSeed(coords))))
	}
	elapsed := time.Since(start)

	w.mu.Lock()
	if existing, ok := w.chunks[coords]; ok {
		w.mu.Unlock()
		span.SetAttributes(attribute.Bool("chunk.raced", true))
		return existing
	}
	w.chunks[coords] = c
	loaded := len(w.chunks)
	w.mu.Unlock()

	w.metrics.ObserveGenerate(elapsed)
	w.metrics.SetLoadedChunks(loaded)
	w.logger.Debug("Чанк %s сгенерирован за %v, непустых ячеек: %d", coords, elapsed, c.CountNonEmpty())
	w.publish(ctx, eventbus.NewEnvelope("world", eventbus.EventChunkLoaded, 0, coords))
	return c
}

func (w *World) publish(ctx context.Context, ev *eventbus.Envelope) {
	if w.bus == nil {
		return
	}
	if err := w.bus.Publish(ctx, ev); err != nil {
		w.logger.Warn("Событие %s для чанка %s не опубликовано: %v", ev.EventType, ev.Chunk, err)
	}
}

// IsChunkLoaded проверяет, загружен ли чанк
func (w *World) IsChunkLoaded(coords vec.Vec3) bool {
	_, ok := w.Chunk(coords)
	return ok
}

// Chunk возвращает загруженный чанк без генерации
func (w *World) Chunk(coords vec.Vec3) (*Chunk, bool) {
	w.mu.RLock()
	c, ok := w.chunks[coords]
	w.mu.RUnlock()
	return c, ok
}

// LoadedChunks возвращает загруженные чанки, отсортированные по координатам
func (w *World) LoadedChunks() []*Chunk {
	w.mu.RLock()
	chunks := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		chunks = append(chunks, c)
	}
	w.mu.RUnlock()

	sort.Slice(chunks, func(i, j int) bool {
		a, b := chunks[i].coords, chunks[j].coords
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return chunks
}

// IsInWorldBoundary проверяет, что мировые координаты внутри мира.
// Мир не ограничен, поэтому всегда true.
func (w *World) IsInWorldBoundary(worldPos vec.Vec3) bool {
	return true
}

// IsSolid проверяет непрозрачность грани dir вокселя worldPos.
// Воксели незагруженных чанков считаются пустыми, поэтому грани на границе
// с незагруженной областью видимы.
func (w *World) IsSolid(worldPos vec.Vec3, dir direction.Direction) bool {
	if !w.IsInWorldBoundary(worldPos) {
		return false
	}
	c, ok := w.Chunk(w.positions.WorldToChunk(worldPos))
	if !ok {
		return false
	}
	return c.IsSolid(w.positions.WorldToLocal(worldPos), dir)
}

// CellAt возвращает ячейку по мировым координатам, если её чанк загружен
func (w *World) CellAt(worldPos vec.Vec3) (Cell, bool) {
	c, ok := w.Chunk(w.positions.WorldToChunk(worldPos))
	if !ok {
		return NullCell, false
	}
	return c.CellAt(w.positions.WorldToLocal(worldPos)), true
}

// IsBlocked сообщает, что воксель worldPos загружен и твёрд хотя бы с одной стороны.
// Клинья и прочие сложные формы занимают воксель целиком.
func (w *World) IsBlocked(worldPos vec.Vec3) bool {
	cell, ok := w.CellAt(worldPos)
	if !ok || cell.IsEmpty() {
		return false
	}
	return cell.Type.Solidity().Any()
}

// SetCellAt записывает ячейку по мировым координатам, загружая чанк при необходимости.
// С шиной событий публикует CellChanged для чанка ячейки и для загруженных соседей,
// чьи грани на стыке могли открыться или закрыться.
func (w *World) SetCellAt(worldPos vec.Vec3, cell Cell) {
	c := w.LoadChunk(w.positions.WorldToChunk(worldPos))
	c.SetCellAt(w.positions.WorldToLocal(worldPos), cell)

	if w.bus == nil {
		return
	}
	for _, coords := range w.AffectedChunks(worldPos) {
		ev := eventbus.NewEnvelope("world", eventbus.EventCellChanged, eventbus.PriorityHigh, coords)
		ev.Position = worldPos
		w.publish(context.Background(), ev)
	}
}

// AffectedChunks возвращает загруженные чанки, сетка которых зависит от вокселя worldPos:
// его собственный и соседние по граням, если воксель лежит на границе
func (w *World) AffectedChunks(worldPos vec.Vec3) []vec.Vec3 {
	own := w.positions.WorldToChunk(worldPos)
	result := []vec.Vec3{own}
	for _, d := range direction.All {
		neighbour := w.positions.WorldToChunk(worldPos.Add(d.Offset()))
		if neighbour == own || !w.IsChunkLoaded(neighbour) {
			continue
		}
		result = append(result, neighbour)
	}
	if !w.IsChunkLoaded(own) {
		return result[1:]
	}
	return result
}
