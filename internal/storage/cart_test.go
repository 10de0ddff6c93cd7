package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosnap/internal/catalog"
	"ecosnap/internal/models"
	"ecosnap/internal/pkg/logger"
	"ecosnap/internal/pubsub"
)

func newTestCartStore(t *testing.T) (*CartStore, *Memory, *pubsub.Bus) {
	t.Helper()
	l, err := logger.CreateLogger("error")
	require.NoError(t, err)

	kv := NewMemory()
	bus := pubsub.NewBus()
	return NewCartStore(kv, bus, l), kv, bus
}

func TestCartStore_AddCreatesAndIncrements(t *testing.T) {
	store, _, _ := newTestCartStore(t)
	ctx := context.Background()

	product, ok := catalog.ProductByID(2)
	require.True(t, ok)

	lines, err := store.Add(ctx, product, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, product.Price, lines[0].Price)

	lines, err = store.Add(ctx, product, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartStore_InsertionOrderPreserved(t *testing.T) {
	store, _, _ := newTestCartStore(t)
	ctx := context.Background()

	for _, id := range []int{3, 1, 7} {
		product, ok := catalog.ProductByID(id)
		require.True(t, ok)
		_, err := store.Add(ctx, product, 1)
		require.NoError(t, err)
	}

	lines, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, 3, lines[0].ProductID)
	assert.Equal(t, 1, lines[1].ProductID)
	assert.Equal(t, 7, lines[2].ProductID)
}

func TestCartStore_UpdateQuantityClampsAndPrunes(t *testing.T) {
	store, _, _ := newTestCartStore(t)
	ctx := context.Background()

	product, ok := catalog.ProductByID(4)
	require.True(t, ok)
	_, err := store.Add(ctx, product, 2)
	require.NoError(t, err)

	lines, err := store.UpdateQuantity(ctx, 4, -1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	// Driving quantity to zero removes the line entirely.
	lines, err = store.UpdateQuantity(ctx, 4, -5)
	require.NoError(t, err)
	assert.Empty(t, lines)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCartStore_UpdateQuantityUnknownLine(t *testing.T) {
	store, _, _ := newTestCartStore(t)

	_, err := store.UpdateQuantity(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestCartStore_RemoveIsUnconditional(t *testing.T) {
	store, _, _ := newTestCartStore(t)
	ctx := context.Background()

	product, ok := catalog.ProductByID(5)
	require.True(t, ok)
	_, err := store.Add(ctx, product, 3)
	require.NoError(t, err)

	lines, err := store.Remove(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Removing a missing line is not an error.
	lines, err = store.Remove(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartStore_SurvivingQuantitiesStayPositive(t *testing.T) {
	store, _, _ := newTestCartStore(t)
	ctx := context.Background()

	product, ok := catalog.ProductByID(1)
	require.True(t, ok)

	ops := []struct {
		delta int
	}{{+1}, {-3}, {+2}, {-1}, {+1}, {-2}}

	_, err := store.Add(ctx, product, 1)
	require.NoError(t, err)
	for _, op := range ops {
		lines, err := store.UpdateQuantity(ctx, 1, op.delta)
		if err != nil {
			require.ErrorIs(t, err, ErrLineNotFound)
			_, err = store.Add(ctx, product, 1)
			require.NoError(t, err)
			continue
		}
		for _, line := range lines {
			assert.GreaterOrEqual(t, line.Quantity, 1)
		}
	}
}

func TestCartStore_RoundTrip(t *testing.T) {
	store, kv, _ := newTestCartStore(t)
	ctx := context.Background()

	product, ok := catalog.ProductByID(6)
	require.True(t, ok)
	written, err := store.Add(ctx, product, 2)
	require.NoError(t, err)

	reread, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, written, reread)

	_, ok, err = kv.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCartStore_MalformedDataDegradesToEmpty(t *testing.T) {
	store, kv, _ := newTestCartStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, CartKey, []byte("{not valid json")))

	lines, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// A non-array document is also treated as an empty cart.
	require.NoError(t, kv.Set(ctx, CartKey, []byte(`{"id":1}`)))
	lines, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartStore_PublishesBadgeCounts(t *testing.T) {
	store, _, bus := newTestCartStore(t)
	ctx := context.Background()

	events, cancel := bus.Subscribe()
	defer cancel()

	product, ok := catalog.ProductByID(8)
	require.True(t, ok)
	_, err := store.Add(ctx, product, 2)
	require.NoError(t, err)

	event := <-events
	assert.Equal(t, "cart-updated", event.Type)
	assert.Equal(t, 2, event.Count)

	_, err = store.UpdateQuantity(ctx, 8, -2)
	require.NoError(t, err)

	event = <-events
	assert.Equal(t, 0, event.Count)
}

func TestCount(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	}
	assert.Equal(t, 5, Count(lines))
	assert.Equal(t, 0, Count(nil))
}
