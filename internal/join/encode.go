package join

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeRoomName percent-encodes a room identifier so it can sit in the host
// component of a conference URL. Letters, digits and !$&'()*+,-.:;=[]_~ pass through.
func EncodeRoomName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if hostAllowed(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func hostAllowed(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!$&'()*+,-.:;=[]_~", c) >= 0
}
