// Package catalog holds the static command tables offered by completion.
//
// Commands are grouped by editing mode (pseudocode structure vs. KaTeX math),
// by semantic category and by the structural shape of their insertion
// template. The tables are plain data: template generation lives in the
// completion package, which switches over Shape.
package catalog

import (
	"sort"
	"strings"

	"github.com/teranos/pseudocode/errors"
)

// EscapeChar introduces a command name.
const EscapeChar = `\`

// Mode selects which completion set a group belongs to
type Mode string

const (
	ModePseudocode Mode = "pseudocode"
	ModeMath       Mode = "math"
)

// Shape is the structural category that decides how a command's insertion
// template is built.
type Shape int

const (
	// ShapeBare inserts the command name only: \cmd
	ShapeBare Shape = iota
	// ShapeArgs appends Arity brace slots: \cmd{$1}{$2}
	ShapeArgs
	// ShapeBlock takes Arity-1 brace slots, an indented body slot and a
	// closing \ENDCMD marker.
	ShapeBlock
	// ShapeContinuation is a block branch with a condition and a body but no
	// closing marker of its own (\ELSEIF).
	ShapeContinuation
	// ShapeRepeatUntil places the body first and the condition after \UNTIL.
	ShapeRepeatUntil
	// ShapeIfElse expands to an IF block with an \else branch.
	ShapeIfElse
	// ShapeEnvironment is the \begin{..} \end{..} wrapper. Names of a group
	// with this shape are environment names offered as a pick-list.
	ShapeEnvironment
)

var shapeNames = map[Shape]string{
	ShapeBare:         "bare",
	ShapeArgs:         "args",
	ShapeBlock:        "block",
	ShapeContinuation: "continuation",
	ShapeRepeatUntil:  "repeat-until",
	ShapeIfElse:       "if-else",
	ShapeEnvironment:  "environment",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Structural reports whether templates of this shape span several lines
func (s Shape) Structural() bool {
	switch s {
	case ShapeBlock, ShapeContinuation, ShapeRepeatUntil, ShapeIfElse, ShapeEnvironment:
		return true
	}
	return false
}

// Group is a flat collection of command names sharing mode, category,
// shape and arity. Arity counts every insertable placeholder, body slots
// included.
type Group struct {
	Mode     Mode
	Category string
	Shape    Shape
	Arity    int
	Names    []string
}

// Symbol describes a single catalog command
type Symbol struct {
	Name     string `json:"name"`
	Mode     Mode   `json:"mode"`
	Category string `json:"category"`
	Shape    string `json:"shape"`
	Arity    int    `json:"arity"`
}

// Label returns the command as typed, escape character included
func (s Symbol) Label() string {
	return EscapeChar + s.Name
}

// Groups returns the groups of a mode in completion order.
// The returned slice is a copy; the name slices are shared and must not be modified.
func Groups(mode Mode) []Group {
	var src []Group
	switch mode {
	case ModePseudocode:
		src = pseudocodeGroups
	case ModeMath:
		src = mathGroups
	default:
		return nil
	}
	groups := make([]Group, len(src))
	copy(groups, src)
	return groups
}

// Modes lists every mode with a catalog
func Modes() []Mode {
	return []Mode{ModePseudocode, ModeMath}
}

// ParseMode maps a user supplied mode name to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pseudocode", "algorithm", "":
		return ModePseudocode, nil
	case "math", "katex":
		return ModeMath, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidRequest, "unknown catalog mode %q", s)
}

// Environments returns the environment names of a mode
func Environments(mode Mode) []string {
	for _, g := range Groups(mode) {
		if g.Shape == ShapeEnvironment {
			names := make([]string, len(g.Names))
			copy(names, g.Names)
			return names
		}
	}
	return nil
}

// index maps command name to symbols
var index map[string][]Symbol

func buildIndex() map[string][]Symbol {
	idx := make(map[string][]Symbol)
	for _, mode := range Modes() {
		for _, g := range Groups(mode) {
			if g.Shape == ShapeEnvironment {
				sym := Symbol{Name: "begin", Mode: mode, Category: g.Category, Shape: g.Shape.String(), Arity: g.Arity}
				idx[sym.Name] = appendUnique(idx[sym.Name], sym)
				continue
			}
			for _, name := range g.Names {
				sym := Symbol{Name: name, Mode: mode, Category: g.Category, Shape: g.Shape.String(), Arity: g.Arity}
				idx[name] = appendUnique(idx[name], sym)
			}
		}
	}
	return idx
}

// appendUnique keeps the first symbol per mode; a name repeated across
// categories of the same tier is one command.
func appendUnique(syms []Symbol, sym Symbol) []Symbol {
	for _, s := range syms {
		if s.Mode == sym.Mode {
			return syms
		}
	}
	return append(syms, sym)
}

func init() {
	index = buildIndex()
}

// Lookup returns the symbols for a command name, with or without the leading
// escape character. Results are ordered pseudocode first, then math.
func Lookup(name string) []Symbol {
	name = strings.TrimPrefix(name, EscapeChar)
	syms := index[name]
	out := make([]Symbol, len(syms))
	copy(out, syms)
	return out
}

// Count returns the number of distinct command names of a mode
func Count(mode Mode) int {
	seen := make(map[string]struct{})
	for _, g := range Groups(mode) {
		if g.Shape == ShapeEnvironment {
			seen["begin"] = struct{}{}
			continue
		}
		for _, name := range g.Names {
			seen[name] = struct{}{}
		}
	}
	return len(seen)
}

// Validate checks the catalog invariants: no empty names, and no command
// present in two groups of different arity within the same mode.
func Validate() error {
	var problems []string
	for _, mode := range Modes() {
		arities := make(map[string]int)
		for _, g := range Groups(mode) {
			if g.Shape == ShapeEnvironment {
				continue
			}
			for _, name := range g.Names {
				if strings.TrimSpace(name) == "" {
					problems = append(problems, string(mode)+"/"+g.Category+": empty command name")
					continue
				}
				if prev, ok := arities[name]; ok && prev != g.Arity {
					problems = append(problems, string(mode)+": "+EscapeChar+name+" declared with different arities")
					continue
				}
				arities[name] = g.Arity
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return errors.WithDetail(
		errors.Newf("catalog has %d invalid entries", len(problems)),
		strings.Join(problems, "\n"),
	)
}
