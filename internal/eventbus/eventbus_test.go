package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
)

type collector struct {
	mu     sync.Mutex
	events []*Envelope
}

func (c *collector) handle(_ context.Context, ev *Envelope) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestMemoryBusFilter(t *testing.T) {
	bus := NewMemoryBus(16)

	var all, cells collector
	_, err := bus.Subscribe(context.Background(), Filter{}, all.handle)
	require.NoError(t, err)
	_, err = bus.Subscribe(context.Background(), Filter{Types: []string{EventCellChanged}}, cells.handle)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventChunkLoaded, 0, vec.Vec3{})))
	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventCellChanged, PriorityHigh, vec.Vec3{X: 1})))
	require.NoError(t, bus.Close())

	assert.Equal(t, 2, all.len())
	require.Equal(t, 1, cells.len())
	assert.Equal(t, vec.Vec3{X: 1}, cells.events[0].Chunk)
	assert.NotEmpty(t, cells.events[0].ID)

	stats := bus.Metrics()
	assert.Equal(t, uint64(2), stats.Published)
	assert.Equal(t, uint64(3), stats.Consumed)
	assert.Zero(t, stats.InFlight)
}

func TestMemoryBusUnsubscribe(t *testing.T) {
	bus := NewMemoryBus(4)
	var c collector
	sub, err := bus.Subscribe(context.Background(), Filter{}, c.handle)
	require.NoError(t, err)
	sub.Unsubscribe()

	require.NoError(t, bus.Publish(context.Background(), NewEnvelope("world", EventChunkLoaded, 0, vec.Vec3{})))
	require.NoError(t, bus.Close())
	assert.Zero(t, c.len())
}

func TestMemoryBusClosed(t *testing.T) {
	bus := NewMemoryBus(1)
	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close(), "повторное закрытие допустимо")

	err := bus.Publish(context.Background(), NewEnvelope("world", EventChunkLoaded, 0, vec.Vec3{}))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = bus.Subscribe(context.Background(), Filter{}, func(context.Context, *Envelope) {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMemoryBusDropsLowPriority(t *testing.T) {
	bus := NewMemoryBus(1)
	block := make(chan struct{})
	var once sync.Once
	_, err := bus.Subscribe(context.Background(), Filter{}, func(context.Context, *Envelope) {
		once.Do(func() { <-block })
	})
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 50; i++ {
		require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventChunkMeshed, 0, vec.Vec3{})))
	}
	close(block)
	require.NoError(t, bus.Close())

	stats := bus.Metrics()
	assert.Equal(t, uint64(50), stats.Published+stats.Dropped)
}

func TestMetricsExporter(t *testing.T) {
	bus := NewMemoryBus(8)
	reg := prometheus.NewRegistry()
	me, err := NewMetricsExporter(bus, reg)
	require.NoError(t, err)
	me.Start(time.Hour)

	_, err = StartLoggingListener(bus, logging.NewWriterLogger("eventbus", discard{}, logging.TRACE))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(context.Background(), NewEnvelope("world", EventChunkLoaded, 0, vec.Vec3{})))
	}
	require.NoError(t, bus.Close())
	me.Stop()

	assert.Equal(t, 3.0, testutil.ToFloat64(me.published))
	assert.Equal(t, 3.0, testutil.ToFloat64(me.consumed))
	assert.Equal(t, 0.0, testutil.ToFloat64(me.inflight))

	_, err = NewMetricsExporter(bus, reg)
	assert.Error(t, err, "повторная регистрация в том же реестре")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
