package completion

import (
	"strconv"
	"strings"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/errors"
)

// environmentCommand is the command an environment group expands under
const environmentCommand = "begin"

// slots writes {$from}...{$to}
func slots(b *strings.Builder, from, to int) {
	for i := from; i <= to; i++ {
		b.WriteString("{$")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("}")
	}
}

// placeholder returns $n
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// endMarker is the closing command of a block: \END followed by the
// upper-cased command name.
func endMarker(name string) string {
	return catalog.EscapeChar + "END" + strings.ToUpper(name)
}

// Template returns the insertion template for a command of the given shape.
// Arity counts every placeholder, body slots included. For ShapeEnvironment
// the name is ignored and envs supplies the pick-list.
func Template(name string, shape catalog.Shape, arity int, envs []string) (string, error) {
	var b strings.Builder

	switch shape {
	case catalog.ShapeBare:
		b.WriteString(name)

	case catalog.ShapeArgs:
		b.WriteString(name)
		slots(&b, 1, arity)

	case catalog.ShapeBlock:
		if arity < 1 {
			return "", errors.Newf("block %s needs a body slot", name)
		}
		b.WriteString(name)
		slots(&b, 1, arity-1)
		b.WriteString("\n\t" + placeholder(arity) + "\n")
		b.WriteString(endMarker(name))

	case catalog.ShapeContinuation:
		b.WriteString(name)
		b.WriteString("{$1}\n\t$2")

	case catalog.ShapeRepeatUntil:
		b.WriteString(name)
		b.WriteString("\n\t$2\n" + catalog.EscapeChar + "UNTIL{$1}")

	case catalog.ShapeIfElse:
		cond := strings.TrimSuffix(name, "ELSE")
		b.WriteString(cond + "{$1}\n\t$2\n")
		b.WriteString(catalog.EscapeChar + "else\n\t$3\n")
		b.WriteString(endMarker(cond))

	case catalog.ShapeEnvironment:
		if len(envs) == 0 {
			return "", errors.New("environment template needs at least one environment name")
		}
		b.WriteString(environmentCommand)
		b.WriteString("{${1|" + strings.Join(envs, ",") + "|}}\n\t$2\n")
		b.WriteString(catalog.EscapeChar + "end{$1}")

	default:
		return "", errors.AssertionFailedf("unhandled shape %d", int(shape))
	}

	return b.String(), nil
}

// kindOf maps a shape to the entry kind shown by editors
func kindOf(shape catalog.Shape) Kind {
	if shape.Structural() {
		return KindSnippet
	}
	return KindFunction
}
