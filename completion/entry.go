// Package completion turns the command catalog into completion entries and
// answers per-keystroke completion requests.
//
// Entries are built once into two frozen sets (pseudocode and math) held by a
// Bundle. A Provider selects the set for a request using a mathenv.Classifier
// and hands out an independent copy, so callers may modify what they receive.
package completion

// Kind distinguishes single-line commands from multi-line structural templates
type Kind string

const (
	KindFunction Kind = "function"
	KindSnippet  Kind = "snippet"
)

// Entry is one completion candidate as consumed by an editor.
// InsertText uses snippet placeholder syntax ($1, ${1|a,b|}).
type Entry struct {
	Label      string `json:"label"`
	InsertText string `json:"insertText"`
	Kind       Kind   `json:"kind"`
	SortText   string `json:"sortText"`
}

// newEntry fills in the sort key derived from the label
func newEntry(label, insertText string, kind Kind) Entry {
	return Entry{
		Label:      label,
		InsertText: insertText,
		Kind:       kind,
		SortText:   SortKey(label),
	}
}
