package completion

import (
	"strings"
	"unicode/utf8"
)

// Position is a zero-based line and character in a document. Character
// counts UTF-16 code units, as in the Language Server Protocol.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Offset converts a position into a byte offset into text. Lines past the
// end clamp to the end of text; characters past the end of a line clamp to
// the end of that line.
func Offset(text string, pos Position) int {
	if pos.Line < 0 {
		return 0
	}

	offset := 0
	for line := 0; line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}

	units := 0
	for offset < len(text) && units < pos.Character {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if r == '\n' {
			break
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		offset += size
	}
	return offset
}

// PositionAt is the inverse of Offset
func PositionAt(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	var pos Position
	for i, r := range text {
		if i >= offset {
			break
		}
		switch {
		case r == '\n':
			pos.Line++
			pos.Character = 0
		case r >= 0x10000:
			pos.Character += 2
		default:
			pos.Character++
		}
	}
	return pos
}
