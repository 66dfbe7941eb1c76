package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/kmeet/kmeet-join/internal/join"
	"github.com/kmeet/kmeet-join/internal/resolver"
	"github.com/kmeet/kmeet-join/internal/room"
	"github.com/kmeet/kmeet-join/internal/ws"
)

const (
	storeTimeout          = 5 * time.Second
	defaultResolveTimeout = 10 * time.Second
)

// ScreenHandler runs join and create screens for connected clients.
type ScreenHandler struct {
	sm  *join.Manager
	svc Services
}

// NewScreenHandler creates a new screen handler.
func NewScreenHandler(sm *join.Manager, svc Services) *ScreenHandler {
	if svc.ResolveTimeout <= 0 {
		svc.ResolveTimeout = defaultResolveTimeout
	}
	return &ScreenHandler{sm: sm, svc: svc}
}

type openScreenRequest struct {
	DeviceID      string  `json:"device_id"`
	Mode          string  `json:"mode"`
	Locale        string  `json:"locale,omitempty"`
	JoinURL       string  `json:"join_url,omitempty"`
	ClipboardURL  string  `json:"clipboard_url,omitempty"`
	ClipboardText *string `json:"clipboard_text,omitempty"`
}

type textChangedRequest struct {
	Text string `json:"text"`
}

type screenStateResponse struct {
	Mode            join.Mode     `json:"mode"`
	Title           string        `json:"title"`
	Button          string        `json:"button"`
	Username        string        `json:"username"`
	RoomLink        string        `json:"room_link"`
	RoomLinkVisible bool          `json:"room_link_visible"`
	UsernameError   string        `json:"username_error,omitempty"`
	RoomLinkError   string        `json:"room_link_error,omitempty"`
	InfoMode        join.InfoMode `json:"info_mode"`
	Loading         bool          `json:"loading"`
	Phase           join.Phase    `json:"phase"`
	CanStart        bool          `json:"can_start"`
}

type alertResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type navigateResponse struct {
	RoomName    string `json:"room_name"`
	DisplayName string `json:"display_name"`
}

// HandleOpenScreen opens a screen, pre-filling the username from the device's
// preferences and, on join screens, the room link from the deep link or clipboard.
func (h *ScreenHandler) HandleOpenScreen(client *ws.Client, msg ws.Message) {
	var req openScreenRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.DeviceID == "" {
		client.SendMessage(ws.NewErrorMessage("device_id is required"))
		return
	}

	mode, ok := join.ParseMode(req.Mode)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("invalid mode: " + req.Mode))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	stored, _ := h.svc.Preferences.Username(ctx, req.DeviceID)
	cancel()

	screen := h.sm.OpenScreen(join.OpenParams{
		ClientID:       client.ID,
		DeviceID:       req.DeviceID,
		Locale:         req.Locale,
		Mode:           mode,
		StoredUsername: stored,
	})

	var candidate room.Candidate
	if mode == join.ModeJoin {
		candidate = h.svc.Links.Extract(room.Inputs{
			DeepLink:      parseOptionalURL(req.JoinURL),
			ClipboardURL:  parseOptionalURL(req.ClipboardURL),
			ClipboardText: req.ClipboardText,
		})
	}

	state, intents := join.Open(screen.State, candidate)
	h.apply(client, screen, state, intents)
}

// HandleUsernameChanged records a username edit.
func (h *ScreenHandler) HandleUsernameChanged(client *ws.Client, msg ws.Message) {
	screen, req, ok := h.textEvent(client, msg)
	if !ok {
		return
	}
	state, intents := join.UsernameChanged(screen.State, req.Text)
	h.apply(client, screen, state, intents)
}

// HandleRoomLinkChanged records a room link edit.
func (h *ScreenHandler) HandleRoomLinkChanged(client *ws.Client, msg ws.Message) {
	screen, req, ok := h.textEvent(client, msg)
	if !ok {
		return
	}
	state, intents := join.RoomLinkChanged(screen.State, req.Text)
	h.apply(client, screen, state, intents)
}

// HandleSubmit validates the form and joins or starts resolving the room code.
func (h *ScreenHandler) HandleSubmit(client *ws.Client, _ ws.Message) {
	screen := h.openScreen(client)
	if screen == nil {
		return
	}
	state, intents := join.Submit(screen.State)
	h.apply(client, screen, state, intents)
}

// HandleInfoPressed explains the room link field.
func (h *ScreenHandler) HandleInfoPressed(client *ws.Client, _ ws.Message) {
	screen := h.openScreen(client)
	if screen == nil {
		return
	}
	state, intents := join.InfoPressed(screen.State)
	h.apply(client, screen, state, intents)
}

// HandleCloseScreen closes the client's screen.
func (h *ScreenHandler) HandleCloseScreen(client *ws.Client, _ ws.Message) {
	h.sm.CloseScreen(client.ID)
}

// HandleDisconnect handles client disconnection.
func (h *ScreenHandler) HandleDisconnect(client *ws.Client) {
	h.sm.CloseScreen(client.ID)
}

func (h *ScreenHandler) openScreen(client *ws.Client) *join.Screen {
	screen := h.sm.GetScreen(client.ID)
	if screen == nil {
		client.SendMessage(ws.NewErrorMessage("no open screen"))
	}
	return screen
}

func (h *ScreenHandler) textEvent(client *ws.Client, msg ws.Message) (*join.Screen, textChangedRequest, bool) {
	var req textChangedRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid text data"))
		return nil, req, false
	}
	screen := h.openScreen(client)
	return screen, req, screen != nil
}

// apply stores the new state, runs the intents and sends the resulting screen state.
func (h *ScreenHandler) apply(client *ws.Client, screen *join.Screen, state join.State, intents []join.Intent) {
	screen.State = state
	h.sendState(client, screen)

	for _, in := range intents {
		switch in := in.(type) {
		case join.IntentFieldErrors:
			// Carried by the screen state already sent.
		case join.IntentResolve:
			h.resolve(client, screen, in.Code)
		case join.IntentStoreUsername:
			h.storeUsername(screen, in.Username)
		case join.IntentNavigate:
			resp, _ := ws.NewMessage(ws.TypeNavigate, navigateResponse{
				RoomName:    in.RoomName,
				DisplayName: in.DisplayName,
			})
			client.SendMessage(resp)
			slog.Info("joining conference", "client", client.ID, "room", in.RoomName)
		case join.IntentAlert:
			resp, _ := ws.NewMessage(ws.TypeAlert, alertResponse{
				Message: h.svc.Localizer.Text(screen.Locale, in.MessageKey),
			})
			client.SendMessage(resp)
		}
	}
}

// resolve looks the code up off the event loop and applies the result back on it.
func (h *ScreenHandler) resolve(client *ws.Client, screen *join.Screen, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), h.svc.ResolveTimeout)
	f := resolver.Start(ctx, h.svc.Resolver, code)

	f.Then(h.svc.Post, func(name string, err error) {
		cancel()
		if !h.sm.IsCurrent(screen) {
			slog.Debug("dropping room code result for closed screen", "client", client.ID, "code", code)
			return
		}

		var state join.State
		var intents []join.Intent
		if err != nil {
			slog.Warn("room code lookup failed", "client", client.ID, "code", code, "error", err)
			state, intents = join.ResolveFailed(screen.State)
		} else {
			state, intents = join.Resolved(screen.State, name)
		}
		h.apply(client, screen, state, intents)
	})
}

func (h *ScreenHandler) storeUsername(screen *join.Screen, username string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := h.svc.Preferences.StoreUsername(ctx, screen.DeviceID, username); err != nil {
		slog.Error("failed to store username", "device", screen.DeviceID, "error", err)
	}
}

func (h *ScreenHandler) sendState(client *ws.Client, screen *join.Screen) {
	s := screen.State
	texts := h.svc.Localizer

	title, button := "titleJoin", "joinButton"
	if s.Mode == join.ModeCreate {
		title, button = "titleCreate", "createButton"
	}

	resp, _ := ws.NewMessage(ws.TypeScreenState, screenStateResponse{
		Mode:            s.Mode,
		Title:           texts.Text(screen.Locale, title),
		Button:          texts.Text(screen.Locale, button),
		Username:        s.Username,
		RoomLink:        s.RoomLink,
		RoomLinkVisible: s.Mode == join.ModeJoin,
		UsernameError:   texts.Text(screen.Locale, s.UsernameError),
		RoomLinkError:   texts.Text(screen.Locale, s.RoomLinkError),
		InfoMode:        s.Info,
		Loading:         s.Loading,
		Phase:           s.Phase,
		CanStart:        join.CanStart(s.Username, s.RoomLink, s.Mode == join.ModeJoin),
	})
	client.SendMessage(resp)
}

func parseOptionalURL(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		slog.Debug("ignoring unparsable url", "url", raw, "error", err)
		return nil
	}
	return u
}
