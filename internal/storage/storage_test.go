package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosnap/internal/pkg/logger"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "key", []byte(`{"a":1}`)))
	value, ok, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(value))

	require.NoError(t, kv.Delete(ctx, "key"))
	_, ok, err = kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV(t *testing.T) {
	l, err := logger.CreateLogger("error")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	kv := NewFile(path, l)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, CartKey, []byte(`[{"id":1,"quantity":2}]`)))
	require.NoError(t, kv.Set(ctx, WishlistKey, []byte(`[]`)))

	// A second store over the same file sees the written state.
	other := NewFile(path, l)
	value, ok, err := other.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"quantity":2}]`, string(value))

	require.NoError(t, other.Delete(ctx, CartKey))
	_, ok, err = kv.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV_CorruptFileDegradesToEmpty(t *testing.T) {
	l, err := logger.CreateLogger("error")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	kv := NewFile(path, l)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, CartKey, []byte(`[]`)))

	// Clobber the file; the store restarts from an empty document map.
	writeGarbage(t, path)
	_, ok, err := kv.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// And it stays writable afterwards.
	require.NoError(t, kv.Set(ctx, CartKey, []byte(`[]`)))
}

func writeGarbage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o600))
}

func TestAvatarRoundTrip(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	avatar, err := GetAvatar(ctx, kv)
	require.NoError(t, err)
	assert.Empty(t, avatar)

	const dataURL = "data:image/png;base64,iVBORw0KGgo="
	require.NoError(t, SetAvatar(ctx, kv, dataURL))

	avatar, err = GetAvatar(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, dataURL, avatar)
}

func TestAvatarMalformedDegradesToEmpty(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, AvatarKey, []byte("not a json string")))

	avatar, err := GetAvatar(ctx, kv)
	require.NoError(t, err)
	assert.Empty(t, avatar)
}
