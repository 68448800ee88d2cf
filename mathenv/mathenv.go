// Package mathenv classifies the editing context at a cursor: plain
// pseudocode, inline math ($...$) or display math ($$...$$).
//
// The default classifier is a lexical heuristic, not a parser. It assumes
// math regions do not nest and that $$ pairs are balanced; malformed
// delimiters can misclassify.
package mathenv

import (
	"regexp"
	"strings"
)

// Context is the lexical context at a cursor
type Context int

const (
	// None is plain pseudocode/command context
	None Context = iota
	// Inline is inside $...$ on the current line
	Inline
	// Display is inside a $$...$$ region
	Display
)

func (c Context) String() string {
	switch c {
	case Inline:
		return "inline"
	case Display:
		return "display"
	default:
		return "none"
	}
}

// IsMath reports whether the context is any kind of math mode
func (c Context) IsMath() bool {
	return c == Inline || c == Display
}

// Classifier maps (text, offset) to a Context. Offset is a byte offset into
// text; implementations must be pure.
type Classifier interface {
	Classify(text string, offset int) Context
}

// inlineBefore matches a line prefix that opened inline math with a $ and
// ends in a command being typed.
var inlineBefore = regexp.MustCompile(`(?:^|[^$])\$(?:[^ $].*)??\\\w*$`)

const displayDelimiter = "$$"

// Heuristic is the regular-expression classifier
type Heuristic struct{}

// Classify implements Classifier
func (Heuristic) Classify(text string, offset int) Context {
	offset = clamp(offset, len(text))

	lineBefore, lineAfter := LineAround(text, offset)
	if inlineBefore.MatchString(lineBefore) && strings.Contains(lineAfter, "$") {
		return Inline
	}

	before, after := text[:offset], text[offset:]
	if n := strings.Count(before, displayDelimiter); n%2 != 0 && strings.Contains(after, displayDelimiter) {
		return Display
	}

	return None
}

// LineAround returns the text of the cursor's line strictly before and
// strictly after offset. A trailing carriage return is not part of the line.
func LineAround(text string, offset int) (before, after string) {
	offset = clamp(offset, len(text))

	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := len(text)
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		end = offset + i
	}

	before = strings.TrimSuffix(text[start:offset], "\r")
	after = strings.TrimSuffix(text[offset:end], "\r")
	return before, after
}

func clamp(offset, n int) int {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}
