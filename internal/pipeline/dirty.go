package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/vec"
)

// DirtyTracker собирает чанки, сетки которых устарели после изменений ячеек
type DirtyTracker struct {
	mu    sync.Mutex
	dirty map[vec.Vec3]struct{}
	sub   eventbus.Subscription
}

// NewDirtyTracker подписывается на CellChanged в bus
func NewDirtyTracker(ctx context.Context, bus eventbus.EventBus) (*DirtyTracker, error) {
	dt := &DirtyTracker{dirty: make(map[vec.Vec3]struct{})}
	sub, err := bus.Subscribe(ctx, eventbus.Filter{Types: []string{eventbus.EventCellChanged}},
		func(_ context.Context, ev *eventbus.Envelope) {
			dt.Mark(ev.Chunk)
		})
	if err != nil {
		return nil, err
	}
	dt.sub = sub
	return dt, nil
}

// Mark помечает чанк
func (dt *DirtyTracker) Mark(coords vec.Vec3) {
	dt.mu.Lock()
	dt.dirty[coords] = struct{}{}
	dt.mu.Unlock()
}

// Len количество помеченных чанков
func (dt *DirtyTracker) Len() int {
	dt.mu.Lock()
	defer dt.mu.Unlock()
	return len(dt.dirty)
}

// Drain возвращает помеченные чанки в порядке (X, Y, Z) и сбрасывает отметки
func (dt *DirtyTracker) Drain() []vec.Vec3 {
	dt.mu.Lock()
	coords := make([]vec.Vec3, 0, len(dt.dirty))
	for c := range dt.dirty {
		coords = append(coords, c)
	}
	dt.dirty = make(map[vec.Vec3]struct{})
	dt.mu.Unlock()

	sort.Slice(coords, func(i, j int) bool {
		a, b := coords[i], coords[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return coords
}

// Close отписывается от шины
func (dt *DirtyTracker) Close() {
	if dt.sub != nil {
		dt.sub.Unsubscribe()
	}
}

// Remesh перестраивает сетки помеченных чанков.
// Вызывающий не должен менять ячейки этих чанков, пока Remesh не вернётся.
func (m *Mesher) Remesh(ctx context.Context, dt *DirtyTracker) ([]Result, error) {
	coords := dt.Drain()
	if len(coords) == 0 {
		return nil, nil
	}
	m.logger.Debug("Перестройка %d устаревших сеток", len(coords))
	return m.Run(ctx, coords)
}
