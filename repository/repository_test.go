package repository

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-approval/domain"
)

func TestMockCache(t *testing.T) {
	ctx := context.Background()
	c := NewMockCache()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v"))
	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestDecisionRepositoryMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps insertion order", func(t *testing.T) {
		r := NewDecisionRepositoryMemory(10)
		for i := 0; i < 3; i++ {
			require.NoError(t, r.Save(ctx, domain.DecisionRecord{ID: fmt.Sprint(i)}))
		}

		got, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "0", got[0].ID)
		assert.Equal(t, "2", got[2].ID)
	})

	t.Run("drops oldest when full", func(t *testing.T) {
		r := NewDecisionRepositoryMemory(2)
		for i := 0; i < 5; i++ {
			require.NoError(t, r.Save(ctx, domain.DecisionRecord{ID: fmt.Sprint(i)}))
		}

		got, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "3", got[0].ID)
		assert.Equal(t, "4", got[1].ID)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		r := NewDecisionRepositoryMemory(0)
		require.NoError(t, r.Save(ctx, domain.DecisionRecord{ID: "a"}))

		got, _ := r.List(ctx)
		got[0].ID = "b"

		again, _ := r.List(ctx)
		assert.Equal(t, "a", again[0].ID)
	})
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("evicts least recently used past the cap", func(t *testing.T) {
		c := NewMemoryCache(2, 0)
		require.NoError(t, c.Set(ctx, "a", "1"))
		require.NoError(t, c.Set(ctx, "b", "2"))

		_, ok := c.Get(ctx, "a")
		require.True(t, ok)

		require.NoError(t, c.Set(ctx, "c", "3"))
		assert.Equal(t, 2, c.Len())

		_, ok = c.Get(ctx, "b")
		assert.False(t, ok, "b was least recently used")
		_, ok = c.Get(ctx, "a")
		assert.True(t, ok)
		_, ok = c.Get(ctx, "c")
		assert.True(t, ok)
	})

	t.Run("stays bounded under many distinct keys", func(t *testing.T) {
		c := NewMemoryCache(1000, 0)
		for i := 0; i < 50000; i++ {
			require.NoError(t, c.Set(ctx, fmt.Sprint(i), "v"))
		}
		assert.Equal(t, 1000, c.Len())
	})

	t.Run("overwrite does not grow", func(t *testing.T) {
		c := NewMemoryCache(2, 0)
		require.NoError(t, c.Set(ctx, "a", "1"))
		require.NoError(t, c.Set(ctx, "a", "2"))

		got, ok := c.Get(ctx, "a")
		assert.True(t, ok)
		assert.Equal(t, "2", got)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c := NewMemoryCache(10, time.Minute)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Set(ctx, "k", "v"))
		now = now.Add(59 * time.Second)
		_, ok := c.Get(ctx, "k")
		assert.True(t, ok)

		now = now.Add(time.Second)
		_, ok = c.Get(ctx, "k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		c := NewMemoryCache(0, 0)
		assert.Equal(t, DefaultMemoryCacheSize, c.maxSize)
	})
}

func TestRedisCache_GetLogsReadFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	c := NewRedisCache("127.0.0.1:1", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, ok := c.Get(ctx, "decision:x:1")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "redis get decision:x:1 failed")
}
