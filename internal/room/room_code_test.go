package room

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoomID_ShapeAndAlphabet(t *testing.T) {
	for range 200 {
		id := NewRoomID()
		assert.Len(t, id, RoomIDLength)
		for _, c := range id {
			assert.True(t, c >= 'a' && c <= 'z', "unexpected character %q in %q", c, id)
		}
	}
}

func TestGenerateRoomID_DeterministicSource(t *testing.T) {
	a := GenerateRoomID(rand.NewPCG(1, 2))
	b := GenerateRoomID(rand.NewPCG(1, 2))
	c := GenerateRoomID(rand.NewPCG(3, 4))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateRoomID_IndependentCalls(t *testing.T) {
	src := rand.NewPCG(7, 7)
	first := GenerateRoomID(src)
	second := GenerateRoomID(src)

	assert.NotEqual(t, first, second, "a shared source must keep advancing")
}

func TestIsRoomCode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123-4567-890", true},
		{"1234567890", true},
		{"abcdefghij", false},
		{"123-456-789", false},
		{"123-4567-8901", false},
		{"123456789", false},
		{"12345678901", false},
		{" 1234567890", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRoomCode(tt.input))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "1234567890", NormalizeCode("123-4567-890"))
	assert.Equal(t, "1234567890", NormalizeCode("1234567890"))
}
