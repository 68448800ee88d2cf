package completion

import (
	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/errors"
)

// BuildGroup expands one catalog group into entries, in name order.
// An environment group yields a single \begin entry listing its names.
func BuildGroup(g catalog.Group) ([]Entry, error) {
	kind := kindOf(g.Shape)

	if g.Shape == catalog.ShapeEnvironment {
		text, err := Template(environmentCommand, g.Shape, g.Arity, g.Names)
		if err != nil {
			return nil, errors.Wrapf(err, "%s/%s", g.Mode, g.Category)
		}
		return []Entry{newEntry(catalog.EscapeChar+environmentCommand, text, kind)}, nil
	}

	entries := make([]Entry, 0, len(g.Names))
	for _, name := range g.Names {
		text, err := Template(name, g.Shape, g.Arity, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "%s/%s", g.Mode, g.Category)
		}
		entries = append(entries, newEntry(catalog.EscapeChar+name, text, kind))
	}
	return entries, nil
}

// Build expands every group of a mode into a Set. Groups are taken in
// catalog order; when a label repeats, the first entry wins.
func Build(mode catalog.Mode) (*Set, error) {
	groups := catalog.Groups(mode)
	if groups == nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "no catalog for mode %q", mode)
	}

	set := newSet(catalog.Count(mode))
	for _, g := range groups {
		entries, err := BuildGroup(g)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			set.add(e)
		}
	}
	return set, nil
}
