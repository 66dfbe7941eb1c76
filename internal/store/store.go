package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmeet/kmeet-join/internal/config"
)

// ErrUnknownBackend is returned by Open for an unsupported STORE_BACKEND.
var ErrUnknownBackend = errors.New("unknown store backend")

// KeyValueStore defines the interface for persistent per-device preferences.
type KeyValueStore interface {
	// Get returns the value under namespace/key and whether it exists.
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	// Set stores value under namespace/key, replacing any previous value.
	Set(ctx context.Context, namespace, key, value string) error
	// Close releases backend resources.
	Close() error
}

// Open connects the backend selected in cfg.
func Open(ctx context.Context, cfg *config.Config) (KeyValueStore, error) {
	switch cfg.StoreBackend {
	case "memory", "":
		return NewMemoryStore(), nil
	case "postgres":
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
	}
}
