package profile

import (
	"context"
	"log/slog"

	"github.com/kmeet/kmeet-join/internal/store"
)

// UsernameKey is the fixed preference name the display name is kept under.
const UsernameKey = "username"

// Preferences reads and writes the preferences of a device.
type Preferences struct {
	store store.KeyValueStore
}

// NewPreferences creates Preferences backed by kv.
func NewPreferences(kv store.KeyValueStore) *Preferences {
	return &Preferences{store: kv}
}

// Username returns the display name stored for deviceID.
// A read failure is logged and reported as no stored name.
func (p *Preferences) Username(ctx context.Context, deviceID string) (string, bool) {
	name, ok, err := p.store.Get(ctx, deviceID, UsernameKey)
	if err != nil {
		slog.Warn("failed to read stored username", "device", deviceID, "error", err)
		return "", false
	}
	return name, ok
}

// StoreUsername saves the display name for deviceID.
func (p *Preferences) StoreUsername(ctx context.Context, deviceID, name string) error {
	return p.store.Set(ctx, deviceID, UsernameKey, name)
}
