package resolver

import (
	"context"
	"log/slog"
	"time"
)

// NameCache stores resolved room names by code.
type NameCache interface {
	GetRoomName(ctx context.Context, code string) (string, bool, error)
	SetRoomName(ctx context.Context, code, name string, ttl time.Duration) error
}

// CachedResolver serves repeated lookups from a NameCache.
// Only successful lookups are cached; cache errors fall through to the resolver.
type CachedResolver struct {
	next  Resolver
	cache NameCache
	ttl   time.Duration
}

// NewCachedResolver wraps next with cache.
func NewCachedResolver(next Resolver, cache NameCache, ttl time.Duration) *CachedResolver {
	return &CachedResolver{next: next, cache: cache, ttl: ttl}
}

// RoomNameFromCode implements Resolver.
func (c *CachedResolver) RoomNameFromCode(ctx context.Context, code string) (string, error) {
	name, ok, err := c.cache.GetRoomName(ctx, code)
	if err != nil {
		slog.Warn("room name cache read failed", "code", code, "error", err)
	} else if ok {
		return name, nil
	}

	name, err = c.next.RoomNameFromCode(ctx, code)
	if err != nil {
		return "", err
	}

	if err := c.cache.SetRoomName(ctx, code, name, c.ttl); err != nil {
		slog.Warn("room name cache write failed", "code", code, "error", err)
	}
	return name, nil
}
