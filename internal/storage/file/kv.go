package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

var _ model.KV = (*KV)(nil)

// KV is a persistent key-value store backed by a single JSON file.
// Writes are synchronous and last-writer-wins; a single active client
// process is assumed.
type KV struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// New opens the store at path, loading existing contents if present.
func New(path string) (*KV, error) {
	kv := &KV{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &kv.data); err != nil {
			return nil, fmt.Errorf("failed to decode state file: %w", err)
		}
	}

	return kv, nil
}

// Get returns the value for key, or model.ErrNotFound.
func (kv *KV) Get(ctx context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	value, ok := kv.data[key]
	if !ok {
		return "", model.ErrNotFound
	}
	return value, nil
}

// Set stores the value and writes the file through.
func (kv *KV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = value
	return kv.flush()
}

// Delete removes key and writes the file through. Deleting an absent
// key still rewrites the file so logout always performs the same
// persistence writes.
func (kv *KV) Delete(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.data, key)
	return kv.flush()
}

// flush writes the map atomically via a temp file rename. Caller must
// hold the lock.
func (kv *KV) flush() error {
	encoded, err := json.Marshal(kv.data)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp := kv.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, kv.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
