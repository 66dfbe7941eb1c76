package handler

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/kmeet/kmeet-join/internal/join"
	"github.com/kmeet/kmeet-join/internal/locale"
	"github.com/kmeet/kmeet-join/internal/profile"
	"github.com/kmeet/kmeet-join/internal/resolver"
	"github.com/kmeet/kmeet-join/internal/room"
	"github.com/kmeet/kmeet-join/internal/ws"
)

// Services are the collaborators screen handling depends on.
type Services struct {
	Preferences *profile.Preferences
	Links       room.LinkParser
	Resolver    resolver.Resolver
	Localizer   *locale.Localizer
	// Post schedules a continuation on the event loop that owns screen state.
	Post           func(func())
	ResolveTimeout time.Duration
}

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	screens *ScreenHandler
}

// NewRouter creates a new message router.
func NewRouter(sm *join.Manager, svc Services) *Router {
	return &Router{
		screens: NewScreenHandler(sm, svc),
	}
}

// HandleMessage parses and routes an incoming client message.
// It must run on the event loop that svc.Post schedules onto.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	case ws.TypeOpenScreen:
		r.screens.HandleOpenScreen(cm.Client, msg)
	case ws.TypeUsernameChanged:
		r.screens.HandleUsernameChanged(cm.Client, msg)
	case ws.TypeRoomLinkChanged:
		r.screens.HandleRoomLinkChanged(cm.Client, msg)
	case ws.TypeSubmit:
		r.screens.HandleSubmit(cm.Client, msg)
	case ws.TypeInfoPressed:
		r.screens.HandleInfoPressed(cm.Client, msg)
	case ws.TypeCloseScreen:
		r.screens.HandleCloseScreen(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.screens.HandleDisconnect(client)
}
