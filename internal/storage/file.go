package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"ecosnap/internal/pkg/logger"
)

// File is a KV backed by a single JSON file holding every key. The whole
// file is rewritten on each mutation, mirroring how the original
// persistence medium re-serializes full documents. A corrupt or missing
// file degrades to an empty store rather than failing.
type File struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

// NewFile returns a file-backed store at path. The file is created lazily
// on the first write.
func NewFile(path string, l *logger.Logger) *File {
	return &File{path: path, log: l}
}

// load reads the whole document map. Missing or malformed content yields an
// empty map.
func (f *File) load() map[string]json.RawMessage {
	data := make(map[string]json.RawMessage)

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		f.log.Sugar().Errorf("Malformed state file %s, starting empty: %s", f.path, err)
		return make(map[string]json.RawMessage)
	}
	return data
}

func (f *File) save(data map[string]json.RawMessage) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

// Get returns the stored value for key, reporting whether it existed.
func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.load()[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set stores value under key and rewrites the file.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := f.load()
	data[key] = json.RawMessage(value)
	return f.save(data)
}

// Delete removes key and rewrites the file.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := f.load()
	delete(data, key)
	return f.save(data)
}

// Close is a no-op; the file is not held open between operations.
func (f *File) Close() {}
