package eventbus

import (
	"context"
	"mamacare-service/internal/app/models"
	"sync"
)

// MemoryBus is an in-process fan-out used when no broker is wired and in
// tests. Slow subscribers lose events instead of blocking publishers.
type MemoryBus struct {
	mu          sync.RWMutex
	subscribers map[int]chan *models.AppointmentEvent
	nextID      int
	buffer      int
}

func NewMemoryBus(buffer int) *MemoryBus {
	if buffer <= 0 {
		buffer = 16
	}
	return &MemoryBus{
		subscribers: make(map[int]chan *models.AppointmentEvent),
		buffer:      buffer,
	}
}

func (b *MemoryBus) Publish(_ context.Context, event *models.AppointmentEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, subscriber := range b.subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
	return nil
}

func (b *MemoryBus) Subscribe(ctx context.Context) (<-chan *models.AppointmentEvent, error) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	events := make(chan *models.AppointmentEvent, b.buffer)
	b.subscribers[id] = events
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subscribers, id)
		close(events)
		b.mu.Unlock()
	}()
	return events, nil
}

func (b *MemoryBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
