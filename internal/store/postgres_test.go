package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return url
}

func setupTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := getTestDatabaseURL(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, url)
	require.NoError(t, err)

	// Clean up preferences table for test isolation
	_, err = s.pool.Exec(ctx, "DELETE FROM preferences")
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestPostgresStore_SetAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "device-1", "username", "Alice"))

	v, ok, err := s.Get(ctx, "device-1", "username")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)
}

func TestPostgresStore_Get_NotFound(t *testing.T) {
	s := setupTestStore(t)

	v, ok, err := s.Get(context.Background(), "device-1", "username")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestPostgresStore_SetOverwrites(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "device-1", "username", "Alice"))
	require.NoError(t, s.Set(ctx, "device-1", "username", "Bob"))

	v, _, err := s.Get(ctx, "device-1", "username")
	require.NoError(t, err)
	assert.Equal(t, "Bob", v)
}

func TestPostgresStore_NamespacesAreIsolated(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "device-1", "username", "Alice"))

	_, ok, err := s.Get(ctx, "device-2", "username")
	require.NoError(t, err)
	assert.False(t, ok)
}
