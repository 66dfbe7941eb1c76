package join

import (
	"log/slog"
	"sync"

	"github.com/kmeet/kmeet-join/internal/room"
)

// Screen is one open join or create screen.
type Screen struct {
	ClientID string
	DeviceID string
	Locale   string
	State    State
}

// Manager manages all open screens, one per client.
type Manager struct {
	screens map[string]*Screen // client ID -> screen
	newID   func() string
	mu      sync.RWMutex
}

// NewManager creates a new screen manager.
func NewManager() *Manager {
	return &Manager{
		screens: make(map[string]*Screen),
		newID:   room.NewRoomID,
	}
}

// NewManagerWithIDs creates a manager that draws room identifiers from newID.
func NewManagerWithIDs(newID func() string) *Manager {
	m := NewManager()
	m.newID = newID
	return m
}

// OpenParams describe a screen being opened by a client.
type OpenParams struct {
	ClientID       string
	DeviceID       string
	Locale         string
	Mode           Mode
	StoredUsername string
}

// OpenScreen creates the screen for a client, replacing any earlier one.
// Create screens get their room identifier here, once.
func (m *Manager) OpenScreen(p OpenParams) *Screen {
	var roomID string
	if p.Mode == ModeCreate {
		roomID = m.newID()
	}

	screen := &Screen{
		ClientID: p.ClientID,
		DeviceID: p.DeviceID,
		Locale:   p.Locale,
		State:    NewState(p.Mode, p.StoredUsername, roomID),
	}

	m.mu.Lock()
	m.screens[p.ClientID] = screen
	m.mu.Unlock()

	slog.Info("screen opened", "client", p.ClientID, "mode", p.Mode.String())
	return screen
}

// GetScreen returns the screen of a client, or nil.
func (m *Manager) GetScreen(clientID string) *Screen {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.screens[clientID]
}

// IsCurrent reports whether screen is still the open screen of its client.
func (m *Manager) IsCurrent(screen *Screen) bool {
	return screen != nil && m.GetScreen(screen.ClientID) == screen
}

// CloseScreen removes the screen of a client.
func (m *Manager) CloseScreen(clientID string) {
	m.mu.Lock()
	_, ok := m.screens[clientID]
	delete(m.screens, clientID)
	m.mu.Unlock()

	if ok {
		slog.Info("screen closed", "client", clientID)
	}
}

// ScreenCount returns the number of open screens.
func (m *Manager) ScreenCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.screens)
}
