package completion

import "github.com/teranos/pseudocode/catalog"

// Info describes the command under the cursor
type Info struct {
	Label string `json:"label"`
	// Start and End are byte offsets of the command, escape included
	Start int `json:"start"`
	End   int `json:"end"`
	// Mode is the set the command would complete from at this position
	Mode    catalog.Mode     `json:"mode"`
	Symbols []catalog.Symbol `json:"symbols,omitempty"`
	// Entry is the completion entry of the active set, if the command has one
	Entry *Entry           `json:"entry,omitempty"`
	Macro *MacroDefinition `json:"macro,omitempty"`
}

// CommandAt finds the \name token covering offset. Only ASCII letters form
// command names, matching the catalog.
func CommandAt(text string, offset int) (start, end int, ok bool) {
	if offset < 0 || offset > len(text) {
		return 0, 0, false
	}
	if offset < len(text) && text[offset] == '\\' {
		offset++
	}

	start = offset
	for start > 0 && isLetter(text[start-1]) {
		start--
	}
	end = offset
	for end < len(text) && isLetter(text[end]) {
		end++
	}
	if start == end || start == 0 || text[start-1] != '\\' {
		return 0, 0, false
	}
	if trailingBackslashes(text[:start])%2 == 0 {
		return 0, 0, false
	}
	return start - 1, end, true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Describe returns what is known about the command at offset: its catalog
// entries, the entry it completes to in the current context and, in math, a
// custom macro of that name.
func (p *Provider) Describe(text string, offset int) (Info, bool) {
	start, end, ok := CommandAt(text, offset)
	if !ok {
		return Info{}, false
	}

	info := Info{
		Label:   text[start:end],
		Start:   start,
		End:     end,
		Mode:    catalog.ModePseudocode,
		Symbols: catalog.Lookup(text[start:end]),
	}
	if p.classifier.Classify(text, end).IsMath() {
		info.Mode = catalog.ModeMath
	}

	bundle := p.Bundle()
	if e, found := bundle.Set(info.Mode).Get(info.Label); found {
		info.Entry = &e
	}
	if info.Mode == catalog.ModeMath {
		for i := range bundle.Macros {
			if bundle.Macros[i].Label() == info.Label {
				m := bundle.Macros[i]
				info.Macro = &m
				break
			}
		}
	}

	if len(info.Symbols) == 0 && info.Entry == nil && info.Macro == nil {
		return Info{}, false
	}
	return info, true
}
