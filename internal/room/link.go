package room

import (
	"net/url"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	// PublicOrigin is always accepted as a room link origin.
	PublicOrigin = "https://meet.infomaniak.com"
	// AppScheme prefixes deep links opened by the native apps.
	AppScheme = "kmeet://"
)

// LinkParser extracts room identifiers from shared room links.
type LinkParser struct {
	BaseOrigin string
}

// NewLinkParser creates a parser accepting links under baseOrigin and PublicOrigin.
func NewLinkParser(baseOrigin string) LinkParser {
	return LinkParser{BaseOrigin: baseOrigin}
}

// RoomIDFromURL returns the room identifier encoded in u.
// Web links carry it in the path, app links in everything after the scheme.
func (p LinkParser) RoomIDFromURL(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}

	s := u.String()
	switch {
	case p.hasWebOrigin(s):
		id := strings.ReplaceAll(u.Path, "/", "")
		return id, id != ""
	case strings.HasPrefix(s, AppScheme):
		id := strings.TrimPrefix(s, AppScheme)
		return id, id != ""
	default:
		return "", false
	}
}

func (p LinkParser) hasWebOrigin(s string) bool {
	if p.BaseOrigin != "" && strings.HasPrefix(s, p.BaseOrigin) {
		return true
	}
	return strings.HasPrefix(s, PublicOrigin)
}

// Inputs are the sources a join screen can be pre-filled from when it opens.
type Inputs struct {
	DeepLink      *url.URL
	ClipboardURL  *url.URL
	ClipboardText *string
}

// Candidate is the pre-filled content for the room link field.
// FieldText is what the user sees; RoomID is what a submit would join.
type Candidate struct {
	FieldText string
	RoomID    string
	Found     bool
}

// Extract picks the room link candidate from in.
// A deep link wins over the clipboard, and a clipboard URL wins over clipboard text.
func (p LinkParser) Extract(in Inputs) Candidate {
	if in.DeepLink != nil {
		if c := p.fromURL(in.DeepLink); c.Found {
			return c
		}
	}

	if in.ClipboardURL != nil {
		return p.fromURL(in.ClipboardURL)
	}

	if in.ClipboardText != nil {
		text := *in.ClipboardText
		if uniseg.GraphemeClusterCount(text) == RoomIDLength || IsRoomCode(text) {
			return Candidate{FieldText: text, RoomID: text, Found: true}
		}
		if u, err := url.Parse(text); err == nil {
			return p.fromURL(u)
		}
	}

	return Candidate{}
}

func (p LinkParser) fromURL(u *url.URL) Candidate {
	id, ok := p.RoomIDFromURL(u)
	if !ok {
		return Candidate{}
	}
	return Candidate{FieldText: u.String(), RoomID: id, Found: true}
}
