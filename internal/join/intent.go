package join

// Intent is a side effect requested by a form transition.
// The caller executes intents in order.
type Intent interface {
	intent()
}

// IntentFieldErrors asks the host to redraw the inline field errors.
type IntentFieldErrors struct {
	UsernameError string
	RoomLinkError string
}

// IntentResolve asks for a room code lookup. Code has no separators.
type IntentResolve struct {
	Code string
}

// IntentStoreUsername persists the display name for the next session.
type IntentStoreUsername struct {
	Username string
}

// IntentNavigate opens the conference screen.
type IntentNavigate struct {
	RoomName    string // percent-encoded for use as a URL host component
	DisplayName string
}

// IntentAlert shows a dismissable message.
type IntentAlert struct {
	MessageKey string
}

func (IntentFieldErrors) intent()   {}
func (IntentResolve) intent()       {}
func (IntentStoreUsername) intent() {}
func (IntentNavigate) intent()      {}
func (IntentAlert) intent()         {}
