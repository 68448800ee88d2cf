package completion

import (
	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/errors"
)

// Bundle holds the two frozen completion sets
type Bundle struct {
	Pseudocode *Set
	Math       *Set

	// Macros are the custom macros merged into Math, sorted by name
	Macros []MacroDefinition
}

// NewBundle builds both sets from the catalog and merges the macro table into
// the math set.
//
// A malformed macro table does not prevent a bundle: the returned bundle is
// always usable and, on ErrInvalidMacro, holds the builtin catalog only. The
// caller decides how to surface the error.
func NewBundle(macros map[string]string) (*Bundle, error) {
	base, err := baseBundle()
	if err != nil {
		return nil, err
	}

	defs, err := NormalizeMacros(macros)
	if err != nil {
		return base, errors.WithHint(
			errors.Wrap(err, "custom macros ignored"),
			"macros must map names like \\RR to expansion strings like \\mathbb{R}",
		)
	}
	if len(defs) == 0 {
		return base, nil
	}

	ImportMacros(base.Math, defs)
	base.Macros = defs
	return base, nil
}

// MustBundle is NewBundle without macros. It panics if the builtin catalog
// cannot be expanded.
func MustBundle() *Bundle {
	b, err := NewBundle(nil)
	if err != nil {
		panic(err)
	}
	return b
}

func baseBundle() (*Bundle, error) {
	pseudocode, err := Build(catalog.ModePseudocode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build pseudocode completions")
	}
	math, err := Build(catalog.ModeMath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build math completions")
	}
	return &Bundle{Pseudocode: pseudocode, Math: math}, nil
}

// Set returns the set for a mode, nil for an unknown mode
func (b *Bundle) Set(mode catalog.Mode) *Set {
	switch mode {
	case catalog.ModePseudocode:
		return b.Pseudocode
	case catalog.ModeMath:
		return b.Math
	}
	return nil
}
