package completion

import "strings"

// SortKey returns a locale-independent sort key for a label. Each ASCII
// letter becomes "0"+letter when lowercase and "1"+lowercased letter when
// uppercase, so at any position a lowercase letter sorts before the
// uppercase form of any letter. Other bytes are kept as they are.
func SortKey(label string) string {
	var b strings.Builder
	b.Grow(len(label) * 2)
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte('0')
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte('1')
			b.WriteByte(c + ('a' - 'A'))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
