package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

var _ model.KV = (*KV)(nil)

// KV is a persistent key-value store backed by redis, for setups where
// client state should survive the local filesystem (shared jump hosts,
// ephemeral containers). Keys are namespaced under a prefix.
type KV struct {
	client *redis.Client
	prefix string
}

// New creates a KV over an existing redis client.
func New(client *redis.Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

// Get returns the value for key, or model.ErrNotFound.
func (kv *KV) Get(ctx context.Context, key string) (string, error) {
	value, err := kv.client.Get(ctx, kv.namespaced(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set stores the value without expiry.
func (kv *KV) Set(ctx context.Context, key, value string) error {
	if err := kv.client.Set(ctx, kv.namespaced(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (kv *KV) Delete(ctx context.Context, key string) error {
	if err := kv.client.Del(ctx, kv.namespaced(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (kv *KV) namespaced(key string) string {
	return kv.prefix + ":" + key
}
