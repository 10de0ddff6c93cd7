package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecosnap/internal/models"
)

func TestBus_FanOut(t *testing.T) {
	bus := NewBus()

	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	bus.Publish(models.CartEvent{Type: "cart-updated", Count: 3})

	assert.Equal(t, 3, (<-first).Count)
	assert.Equal(t, 3, (<-second).Count)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()

	events, cancel := bus.Subscribe()
	cancel()

	_, open := <-events
	assert.False(t, open)

	// Cancel is idempotent and publishing after cancel is harmless.
	cancel()
	bus.Publish(models.CartEvent{Type: "cart-updated", Count: 1})
}

func TestBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()

	events, cancel := bus.Subscribe()
	defer cancel()

	// Overfill the buffer; Publish must not block.
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(models.CartEvent{Type: "cart-updated", Count: i})
	}

	received := 0
	for {
		select {
		case <-events:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}
