// Package pipeline строит сетки набора чанков на ограниченном пуле воркеров.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/observability"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
)

// DefaultWorkers количество воркеров по умолчанию
const DefaultWorkers = 4

// Result итог задачи для одного чанка
type Result struct {
	JobID    string
	Coords   vec.Vec3
	Mesh     *world.ChunkMesh // nil, если задача не запускалась или сборка упала
	Err      error
	Duration time.Duration
}

// Skipped сообщает, что задача не запускалась из-за отмены контекста
func (r Result) Skipped() bool {
	return r.Mesh == nil && (errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded))
}

// Warning сообщает, что сетка построена, но часть ячеек пропущена
func (r Result) Warning() bool {
	return r.Mesh != nil && errors.Is(r.Err, meshing.ErrUnsupportedStyle)
}

// Summary сводка по результатам прогона
type Summary struct {
	Jobs        int
	Failed      int
	Skipped     int
	Unsupported int
	Vertices    int
	Triangles   int
}

// Summarize подсчитывает сводку
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Jobs++
		switch {
		case r.Skipped():
			s.Skipped++
			continue
		case r.Mesh == nil:
			s.Failed++
			continue
		}
		s.Unsupported += r.Mesh.Unsupported
		s.Vertices += r.Mesh.Stats.Vertices
		s.Triangles += r.Mesh.Stats.Triangles
	}
	return s
}

// Mesher загружает чанки и строит их сетки.
// Каждая задача пишет в собственный MeshData; результат виден только после её завершения.
type Mesher struct {
	world   *world.World
	mode    meshing.Mode
	workers int
	logger  *logging.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// Option настройка Mesher
type Option func(*Mesher)

// WithWorkers ограничивает число одновременно выполняемых задач
func WithWorkers(n int) Option {
	return func(m *Mesher) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithLogger задаёт логгер
func WithLogger(l *logging.Logger) Option {
	return func(m *Mesher) { m.logger = l }
}

// WithMetrics задаёт метрики
func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Mesher) { m.metrics = metrics }
}

// WithTracer задаёт трассировщик
func WithTracer(t trace.Tracer) Option {
	return func(m *Mesher) { m.tracer = t }
}

// NewMesher создаёт конвейер для мира w
func NewMesher(w *world.World, mode meshing.Mode, opts ...Option) *Mesher {
	m := &Mesher{
		world:   w,
		mode:    mode,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.GetPipelineLogger()
	}
	if m.tracer == nil {
		m.tracer = observability.Tracer()
	}
	return m
}

// Workers возвращает размер пула
func (m *Mesher) Workers() int { return m.workers }

// Run загружает все чанки coords, затем строит их сетки.
// Сетки строятся после загрузки всех чанков, поэтому отсечение граней на стыках
// не зависит от порядка выполнения задач. Результаты идут в порядке coords.
//
// Отмена ctx прекращает запуск новых задач; уже начатые доводятся до конца.
// Незапущенные задачи получают ошибку контекста, сам Run возвращает ctx.Err().
// Ошибки отдельных чанков остаются в Result.Err и не прерывают прогон.
func (m *Mesher) Run(ctx context.Context, coords []vec.Vec3) ([]Result, error) {
	ctx, span := m.tracer.Start(ctx, "pipeline.Run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("pipeline.jobs", len(coords)),
		attribute.Int("pipeline.workers", m.workers),
		attribute.String("pipeline.mode", m.mode.String()),
	)

	start := time.Now()
	results := make([]Result, len(coords))
	for i, c := range coords {
		results[i] = Result{JobID: uuid.NewString(), Coords: c}
	}

	if err := m.loadAll(ctx, coords); err != nil {
		m.skipFrom(results, 0, err)
		span.RecordError(err)
		return results, err
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := range results {
		if err := ctx.Err(); err != nil {
			g.Wait()
			m.skipFrom(results, i, err)
			span.RecordError(err)
			return results, err
		}
		r := &results[i]
		g.Go(func() error {
			m.meshOne(ctx, r)
			return nil
		})
	}
	g.Wait()

	s := Summarize(results)
	m.logger.Info("Построено %d сеток за %v: %d вершин, %d треугольников, ошибок %d, пропущено ячеек %d",
		s.Jobs-s.Failed, time.Since(start), s.Vertices, s.Triangles, s.Failed, s.Unsupported)
	return results, nil
}

// loadAll загружает чанки на том же пуле
func (m *Mesher) loadAll(ctx context.Context, coords []vec.Vec3) error {
	var g errgroup.Group
	g.SetLimit(m.workers)
	for _, c := range coords {
		if err := ctx.Err(); err != nil {
			g.Wait()
			return err
		}
		g.Go(func() error {
			m.world.LoadChunkContext(ctx, c)
			return nil
		})
	}
	g.Wait()
	return nil
}

func (m *Mesher) meshOne(ctx context.Context, r *Result) {
	start := time.Now()
	defer func() { r.Duration = time.Since(start) }()

	chunk, ok := m.world.Chunk(r.Coords)
	if !ok {
		r.Err = fmt.Errorf("чанк %s не загружен", r.Coords)
		m.logger.Error("Задание %s: %v", r.JobID, r.Err)
		m.metrics.ObserveJob(observability.JobFailed)
		return
	}

	mesh, err := m.world.MeshChunkContext(ctx, chunk, m.mode)
	r.Mesh = mesh
	r.Err = err

	switch {
	case err == nil:
		m.logger.Debug("Задание %s: чанк %s, %d вершин, %d треугольников",
			r.JobID, r.Coords, mesh.Stats.Vertices, mesh.Stats.Triangles)
		m.metrics.ObserveJob(observability.JobOK)
	case r.Warning():
		m.logger.Warn("Задание %s: чанк %s построен частично: %v", r.JobID, r.Coords, err)
		m.metrics.ObserveJob(observability.JobOK)
	default:
		m.logger.Error("Задание %s: чанк %s: %v", r.JobID, r.Coords, err)
		m.metrics.ObserveJob(observability.JobFailed)
	}
}

func (m *Mesher) skipFrom(results []Result, from int, err error) {
	for i := from; i < len(results); i++ {
		if results[i].Mesh != nil || results[i].Err != nil {
			continue
		}
		results[i].Err = err
		m.metrics.ObserveJob(observability.JobSkipped)
	}
	m.logger.Warn("Прогон прерван: %v", err)
}

// Square координаты квадрата (2r+1)×(2r+1) чанков вокруг центра на высоте center.Y
func Square(center vec.Vec3, radius int) []vec.Vec3 {
	if radius < 0 {
		return nil
	}
	coords := make([]vec.Vec3, 0, (2*radius+1)*(2*radius+1))
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			coords = append(coords, center.Add(vec.Vec3{X: x, Z: z}))
		}
	}
	return coords
}
