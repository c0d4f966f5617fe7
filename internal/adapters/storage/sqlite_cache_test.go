package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokit-dev/monokit/internal/domain"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestSQLiteCache_StoreAndLookup(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	_, err := cache.Lookup(ctx, "/repo", "pkg")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, cache.Store(ctx, "/repo", "pkg", filepath.Join("packages", "pkg")))
	got, err := cache.Lookup(ctx, "/repo", "pkg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("packages", "pkg"), got)

	// Upsert replaces the previous path
	require.NoError(t, cache.Store(ctx, "/repo", "pkg", filepath.Join("libs", "pkg")))
	got, err = cache.Lookup(ctx, "/repo", "pkg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("libs", "pkg"), got)

	// Entries are scoped by root
	_, err = cache.Lookup(ctx, "/other", "pkg")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestSQLiteCache_Delete(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	require.NoError(t, cache.Store(ctx, "/repo", "a", "packages/a"))
	require.NoError(t, cache.Store(ctx, "/repo", "b", "packages/b"))
	require.NoError(t, cache.Delete(ctx, "/repo", "a"))

	_, err := cache.Lookup(ctx, "/repo", "a")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.Lookup(ctx, "/repo", "b")
	assert.NoError(t, err)
}

func TestSQLiteCache_Clear(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	require.NoError(t, cache.Store(ctx, "/repo", "a", "packages/a"))
	require.NoError(t, cache.Store(ctx, "/other", "b", "packages/b"))

	removed, err := cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 2 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)
		assert.EqualError(t, err, "operation failed after 2 retries")
	})
}
