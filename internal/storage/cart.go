package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"ecosnap/internal/models"
	"ecosnap/internal/pkg/logger"
	"ecosnap/internal/pubsub"
)

// ErrLineNotFound indicates a quantity update for a product that has no
// cart line.
var ErrLineNotFound = errors.New("storage: cart line not found")

// CartStore owns the persisted ordered cart list. Every mutation
// re-serializes the full list and broadcasts a cart-updated event on the
// bus. Order is insertion order. Mutations are serialized by the store's
// mutex; concurrent processes writing the same key remain last-writer-wins.
type CartStore struct {
	mu  sync.Mutex
	kv  KV
	bus *pubsub.Bus
	log *logger.Logger
}

// NewCartStore returns a CartStore over the given KV and event bus.
func NewCartStore(kv KV, bus *pubsub.Bus, l *logger.Logger) *CartStore {
	return &CartStore{kv: kv, bus: bus, log: l}
}

// Load deserializes the persisted cart. Malformed or non-array content is
// treated as an empty cart and never surfaced to the caller.
func (s *CartStore) Load(ctx context.Context) ([]models.CartLine, error) {
	value, ok, err := s.kv.Get(ctx, CartKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.CartLine{}, nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal(value, &lines); err != nil {
		s.log.Sugar().Errorf("Malformed cart data, treating as empty: %s", err)
		return []models.CartLine{}, nil
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines, nil
}

// Add creates a line for the product or increments the existing one, then
// persists the list and notifies subscribers. A non-positive quantity adds
// a single unit.
func (s *CartStore) Add(ctx context.Context, product models.Product, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Credits:   product.Credits,
			WasteType: product.WasteType,
			Quantity:  quantity,
		})
	}

	if err := s.save(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity applies a signed delta to the product's line, clamping at
// zero and pruning the line when it reaches zero.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID, delta int) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	next := lines[:0]
	for _, line := range lines {
		if line.ProductID == productID {
			found = true
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		next = append(next, line)
	}
	if !found {
		return nil, ErrLineNotFound
	}

	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Remove deletes the product's line unconditionally.
func (s *CartStore) Remove(ctx context.Context, productID int) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	next := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			next = append(next, line)
		}
	}

	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Count sums the quantities across all lines, the number badge displays
// show.
func Count(lines []models.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

func (s *CartStore) save(ctx context.Context, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	value, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, CartKey, value); err != nil {
		return err
	}
	s.bus.Publish(models.CartEvent{Type: "cart-updated", Count: Count(lines)})
	return nil
}
