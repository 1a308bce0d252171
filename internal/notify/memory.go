package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryBus is the single-node Bus: a mutex-guarded handler table with
// synchronous fan-out. Handlers run outside the lock, so a handler may
// subscribe or unsubscribe freely; a subscriber cancelled after the
// publish snapshot was taken may still see one final delivery.
type MemoryBus struct {
	Log *zap.Logger

	mu       sync.Mutex
	nextId   uint64
	handlers map[string]map[uint64]Handler
}

func NewMemoryBus(log *zap.Logger) *MemoryBus {
	return &MemoryBus{
		Log:      log,
		handlers: make(map[string]map[uint64]Handler),
	}
}

func (bus *MemoryBus) Subscribe(topic string, handler Handler) *Subscription {
	bus.mu.Lock()
	bus.nextId++
	id := bus.nextId
	if bus.handlers[topic] == nil {
		bus.handlers[topic] = make(map[uint64]Handler)
	}
	bus.handlers[topic][id] = handler
	bus.mu.Unlock()

	return &Subscription{
		cancel: func() {
			bus.mu.Lock()
			delete(bus.handlers[topic], id)
			bus.mu.Unlock()
		},
	}
}

func (bus *MemoryBus) Publish(ctx context.Context, topic string, kind ChangeKind) {
	bus.mu.Lock()
	snapshot := make([]Handler, 0, len(bus.handlers[topic]))
	for _, handler := range bus.handlers[topic] {
		snapshot = append(snapshot, handler)
	}
	bus.mu.Unlock()

	bus.Log.Debug("publishing change notification",
		zap.String("topic", topic),
		zap.String("kind", string(kind)),
		zap.Int("subscribers", len(snapshot)))

	for _, handler := range snapshot {
		handler(topic, kind)
	}
}
