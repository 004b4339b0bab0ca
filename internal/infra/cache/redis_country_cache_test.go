package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"contacts/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redisCountryCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewRedisCountryCache(client, time.Minute, logger).(*redisCountryCache)

	return mr, c
}

func TestRedisCountryCache_MissWhenEmpty(t *testing.T) {
	_, c := setupTestRedis(t)

	countries, ok, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, countries)
}

func TestRedisCountryCache_SetThenGet(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	usa := &entity.Country{ID: uuid.New(), Name: "USA"}
	india := &entity.Country{ID: uuid.New(), Name: "India"}
	require.NoError(t, c.Set(ctx, []*entity.Country{usa, india}))

	countries, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, countries, 2)
	assert.Equal(t, usa.ID, countries[0].ID)
	assert.Equal(t, "India", countries[1].Name)

	assert.Equal(t, time.Minute, mr.TTL(countriesKey))
}

func TestRedisCountryCache_ExpiresAfterTTL(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []*entity.Country{{ID: uuid.New(), Name: "Canada"}}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCountryCache_Invalidate(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []*entity.Country{{ID: uuid.New(), Name: "UK"}}))
	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, mr.Exists(countriesKey))
}

func TestRedisCountryCache_CorruptEntryIsMiss(t *testing.T) {
	mr, c := setupTestRedis(t)
	require.NoError(t, mr.Set(countriesKey, "not-json"))

	_, ok, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists(countriesKey))
}

func TestRedisCountryCache_ServerDown(t *testing.T) {
	mr, c := setupTestRedis(t)
	mr.Close()

	_, ok, err := c.Get(context.Background())

	require.Error(t, err)
	assert.False(t, ok)
}

func TestNoopCountryCache(t *testing.T) {
	var c noopCountryCache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []*entity.Country{{Name: "USA"}}))
	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.Invalidate(ctx))
}
