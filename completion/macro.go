package completion

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/errors"
)

// maxMacroArgs is the highest placeholder KaTeX accepts in a macro (#9)
const maxMacroArgs = 9

// MacroDefinition is a user KaTeX macro. Name carries no escape character.
type MacroDefinition struct {
	Name      string `json:"name"`
	Expansion string `json:"expansion"`
}

// Arity returns the number of arguments the macro takes
func (m MacroDefinition) Arity() int {
	return InferArity(m.Expansion)
}

// Label returns the macro as typed
func (m MacroDefinition) Label() string {
	return catalog.EscapeChar + m.Name
}

// Entry builds the completion entry for the macro: the name followed by one
// brace slot per argument.
func (m MacroDefinition) Entry() Entry {
	var b strings.Builder
	b.WriteString(m.Name)
	slots(&b, 1, m.Arity())
	return newEntry(m.Label(), b.String(), KindFunction)
}

// InferArity scans #1, #2, ... upward and returns the index before the first
// missing placeholder. "#1 + #3" has arity 1.
func InferArity(expansion string) int {
	for i := 1; i <= maxMacroArgs; i++ {
		if !strings.Contains(expansion, "#"+strconv.Itoa(i)) {
			return i - 1
		}
	}
	return maxMacroArgs
}

// ParseMacroTable converts a decoded configuration value into a macro
// table. nil is an empty table. Anything other than a mapping of string keys
// to string values fails as a whole with ErrInvalidMacro.
func ParseMacroTable(raw any) (map[string]string, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]string{}, nil

	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, nil

	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, errors.NewInvalidMacroError("value of %q is %s, not a string", k, describe(val))
			}
			out[k] = s
		}
		return out, nil

	case map[any]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, errors.NewInvalidMacroError("macro name %v is %s, not a string", k, describe(k))
			}
			s, ok := val.(string)
			if !ok {
				return nil, errors.NewInvalidMacroError("value of %q is %s, not a string", ks, describe(val))
			}
			out[ks] = s
		}
		return out, nil
	}

	return nil, errors.NewInvalidMacroError("macro table is %s, not a mapping", describe(raw))
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

// NormalizeMacros strips the escape character from macro names and returns
// the definitions sorted by name. Empty names, and two keys naming the same
// macro (\RR and RR), are rejected.
func NormalizeMacros(table map[string]string) ([]MacroDefinition, error) {
	defs := make([]MacroDefinition, 0, len(table))
	seen := make(map[string]string, len(table))

	for key, expansion := range table {
		name := strings.TrimPrefix(strings.TrimSpace(key), catalog.EscapeChar)
		if name == "" {
			return nil, errors.NewInvalidMacroError("macro name %q is empty", key)
		}
		if prev, dup := seen[name]; dup {
			first, second := prev, key
			if second < first {
				first, second = second, first
			}
			return nil, errors.NewInvalidMacroError("macro names %q and %q both define %s", first, second, catalog.EscapeChar+name)
		}
		seen[name] = key
		defs = append(defs, MacroDefinition{Name: name, Expansion: expansion})
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// ImportMacros merges macros into a set. A macro whose label matches an
// existing entry replaces it in place; others are appended in order.
// It returns the number of replaced entries.
func ImportMacros(set *Set, defs []MacroDefinition) int {
	replaced := 0
	for _, def := range defs {
		if set.put(def.Entry()) {
			replaced++
		}
	}
	return replaced
}
