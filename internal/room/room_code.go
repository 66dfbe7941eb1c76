package room

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// RoomIDLength is the length of a locally generated room identifier.
const RoomIDLength = 16

var letters = []rune("abcdefghijklmnopqrstuvwxyz")

// roomCodePattern matches human-typed room codes: DDD-DDDD-DDD or ten bare digits.
var roomCodePattern = regexp.MustCompile(`^([0-9]{3}-[0-9]{4}-[0-9]{3}|[0-9]{10})$`)

// GenerateRoomID creates a random 16-letter lowercase room identifier.
// Each letter is drawn independently from src; a nil src uses the global generator.
func GenerateRoomID(src rand.Source) string {
	intN := rand.IntN
	if src != nil {
		intN = rand.New(src).IntN
	}

	b := make([]rune, RoomIDLength)
	for i := range b {
		b[i] = letters[intN(len(letters))]
	}
	return string(b)
}

// NewRoomID creates a room identifier from the global generator.
func NewRoomID() string {
	return GenerateRoomID(nil)
}

// IsRoomCode reports whether s is a room code that must be resolved server-side.
func IsRoomCode(s string) bool {
	return roomCodePattern.MatchString(s)
}

// NormalizeCode strips the group separators from a room code.
func NormalizeCode(code string) string {
	return strings.ReplaceAll(code, "-", "")
}
