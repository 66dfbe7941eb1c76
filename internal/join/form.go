package join

import (
	"github.com/rivo/uniseg"

	"github.com/kmeet/kmeet-join/internal/room"
)

// MinUsernameLength is the shortest display name accepted on submit.
const MinUsernameLength = 2

// CanStart reports whether the form may be submitted.
func CanStart(username, roomLink string, joining bool) bool {
	if joining {
		return uniseg.GraphemeClusterCount(username) >= MinUsernameLength && uniseg.GraphemeClusterCount(roomLink) > 0
	}
	return uniseg.GraphemeClusterCount(username) >= MinUsernameLength
}

// Open pre-fills the room link from the extracted candidate. Only join screens use it.
func Open(s State, c room.Candidate) (State, []Intent) {
	if !s.joining() || !c.Found {
		return s, nil
	}
	s.RoomLink = c.FieldText
	s.RoomID = c.RoomID
	return s, nil
}

// UsernameChanged records an edit of the username field.
func UsernameChanged(s State, text string) (State, []Intent) {
	s.Username = text
	if text == "" {
		return s, nil
	}
	if s.UsernameError == "" {
		return s, nil
	}
	s.UsernameError = ""
	return s, []Intent{s.fieldErrors()}
}

// RoomLinkChanged records an edit of the room link field. The edited text
// becomes the room identifier and the info affordance returns to help mode.
func RoomLinkChanged(s State, text string) (State, []Intent) {
	s.RoomLink = text
	s.RoomID = text
	s.Info = InfoHelp
	if s.Phase == PhaseErrorDisplayed {
		s.Phase = PhaseIdle
	}

	if text == "" || s.RoomLinkError == "" {
		return s, nil
	}
	s.RoomLinkError = ""
	return s, []Intent{s.fieldErrors()}
}

// Submit validates the form and either starts a room code lookup or navigates.
// A submit while a lookup is in flight or after navigation started is ignored.
func Submit(s State) (State, []Intent) {
	if s.Phase == PhaseResolving || s.Phase == PhaseNavigating {
		return s, nil
	}

	var intents []Intent
	flagged := false
	if uniseg.GraphemeClusterCount(s.Username) < MinUsernameLength {
		s.UsernameError = KeyMandatoryUserName
		flagged = true
	}
	if s.joining() && s.RoomLink == "" {
		s.RoomLinkError = KeyMandatoryField
		flagged = true
	}
	if flagged {
		intents = append(intents, s.fieldErrors())
	}

	if !CanStart(s.Username, s.RoomLink, s.joining()) {
		s.Loading = false
		return s, intents
	}

	if s.joining() && room.IsRoomCode(s.RoomLink) {
		s.Phase = PhaseResolving
		s.Loading = true
		return s, append(intents, IntentResolve{Code: room.NormalizeCode(s.RoomLink)})
	}

	return s.navigate(intents)
}

// Resolved applies a successful room code lookup.
func Resolved(s State, roomName string) (State, []Intent) {
	if s.Phase != PhaseResolving {
		return s, nil
	}
	s.RoomID = roomName
	return s.navigate(nil)
}

// ResolveFailed applies a failed room code lookup. Any failure reads as an unknown code.
func ResolveFailed(s State) (State, []Intent) {
	if s.Phase != PhaseResolving {
		return s, nil
	}
	s.Phase = PhaseErrorDisplayed
	s.Loading = false
	s.RoomLinkError = KeyCodeDoesntExist
	s.Info = InfoError
	return s, []Intent{s.fieldErrors()}
}

// InfoPressed explains the room link field, or the lookup failure after one.
func InfoPressed(s State) (State, []Intent) {
	key := KeyCopyLinkExplanation
	if s.Info == InfoError {
		key = KeyCodeDoesntExist
	}
	return s, []Intent{IntentAlert{MessageKey: key}}
}

func (s State) navigate(intents []Intent) (State, []Intent) {
	s.Phase = PhaseNavigating
	s.Loading = false
	return s, append(intents,
		IntentStoreUsername{Username: s.Username},
		IntentNavigate{RoomName: EncodeRoomName(s.RoomID), DisplayName: s.Username},
	)
}

func (s State) fieldErrors() IntentFieldErrors {
	return IntentFieldErrors{UsernameError: s.UsernameError, RoomLinkError: s.RoomLinkError}
}
