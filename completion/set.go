package completion

import "encoding/json"

// Set is an ordered collection of entries with unique labels. A Set is
// frozen once its Bundle is built; readers get copies through Entries.
type Set struct {
	entries []Entry
	index   map[string]int
}

func newSet(capacity int) *Set {
	return &Set{
		entries: make([]Entry, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// add appends e unless an entry with the same label exists
func (s *Set) add(e Entry) bool {
	if _, exists := s.index[e.Label]; exists {
		return false
	}
	s.index[e.Label] = len(s.entries)
	s.entries = append(s.entries, e)
	return true
}

// put replaces the entry carrying e's label in place, or appends e.
// It reports whether an existing entry was replaced.
func (s *Set) put(e Entry) bool {
	if i, exists := s.index[e.Label]; exists {
		s.entries[i] = e
		return true
	}
	s.add(e)
	return false
}

// Len returns the number of entries
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns an independent copy of the entries in order.
// Entry holds only strings, so a slice copy is a full structural clone.
func (s *Set) Entries() []Entry {
	if s == nil {
		return []Entry{}
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given label
func (s *Set) Get(label string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.index[label]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Labels returns the labels in order
func (s *Set) Labels() []string {
	labels := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		labels = append(labels, e.Label)
	}
	return labels
}

// MarshalJSON serializes the set as a JSON array of entries
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}
