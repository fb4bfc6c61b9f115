package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRistrettoCacheSetGet(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	ctx := context.Background()

	ok := c.Set(ctx, "schema:duty-1", "payload", time.Minute)
	require.True(t, ok)

	// ristretto applies writes asynchronously
	time.Sleep(10 * time.Millisecond)

	value, found := c.Get(ctx, "schema:duty-1")
	assert.True(t, found)
	assert.Equal(t, "payload", value)
}

func TestRistrettoCacheGetMissing(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, found := c.Get(context.Background(), "absent")
	assert.False(t, found)
}

func TestRistrettoCacheDelete(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	ctx := context.Background()

	c.Set(ctx, "key", "value", time.Minute)
	time.Sleep(10 * time.Millisecond)
	c.Delete(ctx, "key")
	time.Sleep(10 * time.Millisecond)

	_, found := c.Get(ctx, "key")
	assert.False(t, found)
}

func TestRistrettoCacheGetOrSetLoadsOnce(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	ctx := context.Background()

	var loads atomic.Int32
	loader := func() (any, error) {
		loads.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := c.GetOrSet(ctx, "single", time.Minute, loader)
			assert.NoError(t, err)
			assert.Equal(t, "loaded", value)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
}

func TestRistrettoCacheGetOrSetLoaderError(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	wantErr := errors.New("load failed")
	_, err = c.GetOrSet(context.Background(), "failing", time.Minute, func() (any, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}
