package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmeet/kmeet-join/internal/store"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("unavailable")
}
func (failingStore) Set(context.Context, string, string, string) error { return errors.New("unavailable") }
func (failingStore) Close() error                                     { return nil }

func TestPreferences_StoreAndReadUsername(t *testing.T) {
	p := NewPreferences(store.NewMemoryStore())
	ctx := context.Background()

	_, ok := p.Username(ctx, "device-1")
	assert.False(t, ok)

	require.NoError(t, p.StoreUsername(ctx, "device-1", "Alice"))

	name, ok := p.Username(ctx, "device-1")
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestPreferences_UsesFixedKey(t *testing.T) {
	kv := store.NewMemoryStore()
	p := NewPreferences(kv)
	ctx := context.Background()

	require.NoError(t, p.StoreUsername(ctx, "device-1", "Alice"))

	v, ok, err := kv.Get(ctx, "device-1", UsernameKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)
}

func TestPreferences_ReadFailureMeansNoName(t *testing.T) {
	p := NewPreferences(failingStore{})

	name, ok := p.Username(context.Background(), "device-1")

	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Error(t, p.StoreUsername(context.Background(), "device-1", "Alice"))
}
