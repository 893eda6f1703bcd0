package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisClient {
	mr := miniredis.RunT(t)
	return NewRedisClientFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", time.Minute))

	got, err := client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, client.Delete(ctx, "key"))

	_, err = client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_GeoRadius(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.GeoAdd(ctx, "geo", 90.4130, 23.8110, "near"))
	require.NoError(t, client.GeoAdd(ctx, "geo", 90.4300, 23.8250, "far"))
	require.NoError(t, client.GeoAdd(ctx, "geo", 91.8000, 22.3500, "chittagong"))

	locations, err := client.GeoRadius(ctx, "geo", 90.4125, 23.8103, 5, "km")
	require.NoError(t, err)

	require.Len(t, locations, 2)
	assert.Equal(t, "near", locations[0].Name)
	assert.Equal(t, "far", locations[1].Name)
	assert.Less(t, locations[0].Dist, locations[1].Dist)
}

func TestRedisClient_GeoRemove(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.GeoAdd(ctx, "geo", 90.4130, 23.8110, "member"))
	require.NoError(t, client.GeoRemove(ctx, "geo", "member"))

	locations, err := client.GeoRadius(ctx, "geo", 90.4125, 23.8103, 5, "km")
	require.NoError(t, err)
	assert.Empty(t, locations)
}
