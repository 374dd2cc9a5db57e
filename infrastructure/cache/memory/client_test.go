package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-search-api/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache(0)

	require.NotNil(t, cache)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "test-key", []byte("test-value"), time.Hour))

	got, err := cache.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", string(got))
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	got, err := cache.Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, interfaces.ErrCacheMiss))
	assert.Nil(t, got)
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte("v"), 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "forever", []byte("v"), 0))
	time.Sleep(30 * time.Millisecond)

	got, err := cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, cache.Set(ctx, "k", value, time.Hour))
	value[0] = 'X'

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	got[0] = 'Y'
	again, _ := cache.Get(ctx, "k")
	assert.Equal(t, "original", string(again))
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "never-set"))

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, cache.Set(ctx, "k", []byte("v"), time.Hour))
	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Error(t, cache.Delete(ctx, "k"))
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%26))
			_ = cache.Set(ctx, key, []byte{byte(n)}, time.Hour)
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 26)
}
