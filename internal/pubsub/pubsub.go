// Package pubsub implements the in-process broadcast channel used to notify
// UI regions about cart mutations. A single Bus instance is owned by the
// storage layer and injected into whichever components need change
// notifications, replacing ambient browser events.
package pubsub

import (
	"sync"

	"ecosnap/internal/models"
)

// subscriberBuffer bounds each subscriber channel; a slow consumer drops
// events instead of blocking the mutating handler.
const subscriberBuffer = 8

// Bus fans CartEvents out to all current subscribers.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan models.CartEvent
	next int
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan models.CartEvent)}
}

// Subscribe registers a new subscriber and returns its event channel along
// with a cancel function. The channel is closed on cancel.
func (b *Bus) Subscribe() (<-chan models.CartEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan models.CartEvent, subscriberBuffer)
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

// Publish delivers the event to every subscriber without blocking. Events
// for subscribers with a full buffer are dropped.
func (b *Bus) Publish(event models.CartEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
