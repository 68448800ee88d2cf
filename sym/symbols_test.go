package sym

import (
	"testing"
	"unicode/utf8"
)

func TestCommandMapsAreInverse(t *testing.T) {
	if len(SymbolToCommand) != len(CommandToSymbol) {
		t.Fatalf("SymbolToCommand has %d entries, CommandToSymbol has %d", len(SymbolToCommand), len(CommandToSymbol))
	}
	for glyph, cmd := range SymbolToCommand {
		if CommandToSymbol[cmd] != glyph {
			t.Errorf("SymbolToCommand[%q] = %q but CommandToSymbol[%q] = %q", glyph, cmd, cmd, CommandToSymbol[cmd])
		}
	}
}

func TestEveryCommandDescribed(t *testing.T) {
	for _, cmd := range Commands {
		if _, ok := CommandToSymbol[cmd]; !ok {
			t.Errorf("command %q has no glyph", cmd)
		}
		if CommandDescriptions[cmd] == "" {
			t.Errorf("command %q has no description", cmd)
		}
	}
	if len(CommandDescriptions) != len(Commands) {
		t.Errorf("CommandDescriptions has %d entries for %d commands", len(CommandDescriptions), len(Commands))
	}
}

func TestPaletteMatchesCommands(t *testing.T) {
	if len(PaletteOrder) != len(Commands) {
		t.Fatalf("PaletteOrder has %d glyphs for %d commands", len(PaletteOrder), len(Commands))
	}
	for i, glyph := range PaletteOrder {
		if SymbolToCommand[glyph] != Commands[i] {
			t.Errorf("PaletteOrder[%d] = %q maps to %q, want %q", i, glyph, SymbolToCommand[glyph], Commands[i])
		}
	}
}

func TestGlyphsAreSingleRunes(t *testing.T) {
	all := []string{AM, Catalog, Complete, Serve, MCP, Pseudocode, Math, Macro, Pulse, PulseOpen, PulseClose}
	seen := make(map[string]bool, len(all))
	for _, g := range all {
		if !utf8.ValidString(g) || utf8.RuneCountInString(g) != 1 {
			t.Errorf("glyph %q is not a single rune", g)
		}
		if seen[g] {
			t.Errorf("glyph %q used twice", g)
		}
		seen[g] = true
	}
}

func TestTag(t *testing.T) {
	if got := Tag("am", "config"); got != AM+" config" {
		t.Errorf("Tag(am) = %q", got)
	}
	if got := Tag("version", "v1"); got != "v1" {
		t.Errorf("Tag(version) = %q, want untagged", got)
	}
}

func TestModeGlyph(t *testing.T) {
	if ModeGlyph("math") != Math || ModeGlyph("pseudocode") != Pseudocode {
		t.Error("mode glyphs do not match the domain markers")
	}
	if ModeGlyph("latex") != "" {
		t.Error("unknown mode must have no glyph")
	}
}
