package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

func newTestKV(t *testing.T) (*KV, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, "feedbackctl"), server
}

func TestKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)

	require.NoError(t, kv.Set(ctx, model.KeyToken, "T1"))

	got, err := kv.Get(ctx, model.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T1", got)
}

func TestKV_KeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	kv, server := newTestKV(t)

	require.NoError(t, kv.Set(ctx, model.KeyToken, "T1"))

	raw, err := server.Get("feedbackctl:" + model.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T1", raw)
}

func TestKV_GetMissing(t *testing.T) {
	kv, _ := newTestKV(t)

	_, err := kv.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestKV_Delete(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)

	require.NoError(t, kv.Set(ctx, model.KeyToken, "T1"))
	require.NoError(t, kv.Delete(ctx, model.KeyToken))

	_, err := kv.Get(ctx, model.KeyToken)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestKV_DeleteAbsentKey(t *testing.T) {
	kv, _ := newTestKV(t)
	assert.NoError(t, kv.Delete(context.Background(), "never-set"))
}

func TestKV_ServerDown(t *testing.T) {
	ctx := context.Background()
	kv, server := newTestKV(t)
	server.Close()

	_, err := kv.Get(ctx, model.KeyToken)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}
