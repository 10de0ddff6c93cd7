package storage

import (
	"context"
	"encoding/json"
	"sync"

	"ecosnap/internal/models"
	"ecosnap/internal/pkg/logger"
)

// WishlistStore owns the persisted set of saved products. It uses its own
// persistence key and carries no cross-invariant with the cart: a product
// may live in both.
type WishlistStore struct {
	mu  sync.Mutex
	kv  KV
	log *logger.Logger
}

// NewWishlistStore returns a WishlistStore over the given KV.
func NewWishlistStore(kv KV, l *logger.Logger) *WishlistStore {
	return &WishlistStore{kv: kv, log: l}
}

// Load deserializes the persisted wishlist. Malformed content is treated as
// an empty list and never surfaced to the caller.
func (s *WishlistStore) Load(ctx context.Context) ([]models.WishlistEntry, error) {
	value, ok, err := s.kv.Get(ctx, WishlistKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.WishlistEntry{}, nil
	}

	var entries []models.WishlistEntry
	if err := json.Unmarshal(value, &entries); err != nil {
		s.log.Sugar().Errorf("Malformed wishlist data, treating as empty: %s", err)
		return []models.WishlistEntry{}, nil
	}
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	return entries, nil
}

// Toggle flips the product's membership: it adds a display snapshot when
// absent and removes the entry when present. It returns the resulting list
// and whether the product is now saved.
func (s *WishlistStore) Toggle(ctx context.Context, product models.Product) ([]models.WishlistEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	next := entries[:0]
	removed := false
	for _, entry := range entries {
		if entry.ProductID == product.ID {
			removed = true
			continue
		}
		next = append(next, entry)
	}

	saved := false
	if !removed {
		next = append(next, models.WishlistEntry{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
		})
		saved = true
	}

	value, err := json.Marshal(next)
	if err != nil {
		return nil, false, err
	}
	if err := s.kv.Set(ctx, WishlistKey, value); err != nil {
		return nil, false, err
	}
	return next, saved, nil
}
