// Package storage provides primitives for persisting the application state.
// It defines a small key/value document interface, the persistence analogue
// of the browser's local storage, along with in-memory, file-backed,
// PostgreSQL and Redis implementations, and typed stores for the cart,
// wishlist and avatar built on top of it.
package storage

import (
	"context"
	"encoding/json"
)

// Persistence keys. Each key holds one JSON document that is rewritten in
// full on every mutation; concurrent writers are last-writer-wins.
const (
	CartKey     = "cart"
	WishlistKey = "wishlist"
	AvatarKey   = "ecosnap_avatar"
)

// KV is the injected key/value store contract. Get reports whether the key
// existed; a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Close releases the backing resources.
	Close()
}

// GetAvatar returns the persisted avatar image, or an empty string when none
// was ever saved. The avatar survives across sessions independently of auth
// state; malformed content degrades to no avatar.
func GetAvatar(ctx context.Context, kv KV) (string, error) {
	value, ok, err := kv.Get(ctx, AvatarKey)
	if err != nil || !ok {
		return "", err
	}
	var avatar string
	if err := json.Unmarshal(value, &avatar); err != nil {
		return "", nil
	}
	return avatar, nil
}

// SetAvatar persists the avatar image. The data URL is stored as a JSON
// string so every key in the store holds plain JSON text.
func SetAvatar(ctx context.Context, kv KV, avatar string) error {
	value, err := json.Marshal(avatar)
	if err != nil {
		return err
	}
	return kv.Set(ctx, AvatarKey, value)
}
