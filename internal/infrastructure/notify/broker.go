// Package notify fans change events out to in-process subscribers. The UI
// surfaces (and anything else that wants live updates) subscribe here instead
// of polling the store.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/moharam/debtbook/internal/domain"
)

const defaultBuffer = 64

// Broker is an in-process change event fan-out. Slow subscribers lose events
// rather than block the publishing operation.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]chan domain.ChangeEvent
	nextID int
	closed bool
	logger zerolog.Logger
}

// NewBroker creates a new Broker.
func NewBroker(logger zerolog.Logger) *Broker {
	return &Broker{
		subs:   make(map[int]chan domain.ChangeEvent),
		logger: logger,
	}
}

// Publish delivers the event to every subscriber without blocking.
func (b *Broker) Publish(ctx context.Context, event domain.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn().
				Int("subscriber", id).
				Str("event_type", event.Type).
				Msg("subscriber buffer full, event dropped")
		}
	}

	return nil
}

// Subscribe registers a new subscriber. The returned cancel function must be
// called to release the subscription.
func (b *Broker) Subscribe() (<-chan domain.ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan domain.ChangeEvent, defaultBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Close drops all subscribers and closes their channels.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
