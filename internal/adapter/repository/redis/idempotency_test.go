package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_ReturnsExistingResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, store.prefix+"key", "cached", time.Minute).Err())

	exists, resp, err := store.CheckAndSet(ctx, "key", nil, time.Minute)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "cached", string(resp))
}

func TestIdempotencyStore_LocksNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "pending", nil, time.Minute)
	require.NoError(t, err)
	require.False(t, exists)
	require.Nil(t, resp)

	val, err := client.Get(ctx, store.prefix+"pending").Result()
	require.NoError(t, err)
	require.Equal(t, "processing", val)
}

func TestIdempotencyStore_ConcurrentCheckSeesLock(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "busy", nil, time.Minute)
	require.NoError(t, err)

	exists, resp, err := store.CheckAndSet(ctx, "busy", nil, time.Minute)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "processing", string(resp))
}

func TestIdempotencyStore_Update(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "complete", nil, time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, "complete", []byte(`{"id":"t1"}`), time.Minute))

	val, err := client.Get(ctx, store.prefix+"complete").Result()
	require.NoError(t, err)
	require.Equal(t, `{"id":"t1"}`, val)
}
