package eventbus

import (
	"context"

	"github.com/annel0/voxel-world/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в лог уровня TRACE.
// Функция неблокирующая.
func StartLoggingListener(bus EventBus, logger *logging.Logger) (Subscription, error) {
	sub, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		logger.Trace("[EventBus] %s %s src=%s prio=%d chunk=%s", ev.ID, ev.EventType, ev.Source, ev.Priority, ev.Chunk)
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("🪵 LoggingListener: подписка на все события активирована")
	return sub, nil
}
