package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Screen events sent by the host
const (
	TypeOpenScreen      = "open_screen"
	TypeUsernameChanged = "username_changed"
	TypeRoomLinkChanged = "room_link_changed"
	TypeSubmit          = "submit"
	TypeInfoPressed     = "info_pressed"
	TypeCloseScreen     = "close_screen"
)

// Message types - Screen updates sent to the host
const (
	TypeScreenState = "screen_state"
	TypeAlert       = "alert"
	TypeNavigate    = "navigate"
)

// Message types - System
const (
	TypeError = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
