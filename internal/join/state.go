package join

import "encoding/json"

type Mode int

const (
	ModeJoin Mode = iota
	ModeCreate
)

func (m Mode) String() string {
	switch m {
	case ModeJoin:
		return "join"
	case ModeCreate:
		return "create"
	default:
		return "unknown"
	}
}

// ParseMode converts a wire value into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "join":
		return ModeJoin, true
	case "create":
		return ModeCreate, true
	default:
		return ModeJoin, false
	}
}

// MarshalJSON serializes Mode as a string.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Phase tracks a submission. Validation happens inside Submit and is never stored.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseResolving
	PhaseNavigating
	PhaseErrorDisplayed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseNavigating:
		return "navigating"
	case PhaseErrorDisplayed:
		return "error_displayed"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Phase as a string.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// InfoMode selects what the info affordance next to the room link explains.
type InfoMode int

const (
	InfoHelp InfoMode = iota
	InfoError
)

func (i InfoMode) String() string {
	if i == InfoError {
		return "error"
	}
	return "help"
}

// MarshalJSON serializes InfoMode as a string.
func (i InfoMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// Localization keys surfaced by the form.
const (
	KeyMandatoryUserName   = "mandatoryUserName"
	KeyMandatoryField      = "mandatoryField"
	KeyCodeDoesntExist     = "codeDoesntExistError"
	KeyCopyLinkExplanation = "copyLinkExplanation"
)

// State is the complete form state of one join screen.
// UsernameError and RoomLinkError hold localization keys; empty means no error.
type State struct {
	Mode          Mode
	Username      string
	RoomLink      string
	RoomID        string
	UsernameError string
	RoomLinkError string
	Info          InfoMode
	Phase         Phase
	Loading       bool
}

// NewState creates the initial form state. The stored username is shown as-is
// and only validated on submit.
func NewState(mode Mode, storedUsername, roomID string) State {
	return State{
		Mode:     mode,
		Username: storedUsername,
		RoomID:   roomID,
	}
}

func (s State) joining() bool {
	return s.Mode == ModeJoin
}
