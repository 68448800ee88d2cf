// Package sym defines the glyphs used to tag log lines and CLI output.
// These symbols are stable across the CLI, logs and documentation.
package sym

// Primary command glyphs, one per top-level CLI command.
const (
	AM       = "≡" // am: configuration and render options
	Catalog  = "∷" // catalog: the static command tables
	Complete = "⇥" // complete: one-shot completion
	Serve    = "⇄" // serve: editor transport (LSP over WebSocket or stdio)
	MCP      = "⊶" // mcp: agent tool server
)

// Domain markers used in log fields.
const (
	Pseudocode = "§" // pseudocode mode (algorithm blocks)
	Math       = "∑" // math mode (KaTeX)
	Macro      = "♯" // custom macros
)

// System infrastructure symbols.
const (
	Pulse      = "꩜" // file watching and hot reload
	PulseOpen  = "✿" // graceful startup
	PulseClose = "❀" // graceful shutdown
)

// PaletteOrder is the canonical ordering of command glyphs in help output.
var PaletteOrder = []string{Complete, Catalog, Serve, MCP, AM}

// Commands lists the top-level commands in palette order.
var Commands = []string{"complete", "catalog", "serve", "mcp", "am"}

// SymbolToCommand maps glyph strings to their command names.
var SymbolToCommand = map[string]string{
	AM:       "am",
	Catalog:  "catalog",
	Complete: "complete",
	Serve:    "serve",
	MCP:      "mcp",
}

// CommandToSymbol maps command names to their glyphs.
var CommandToSymbol = map[string]string{
	"am":       AM,
	"catalog":  Catalog,
	"complete": Complete,
	"serve":    Serve,
	"mcp":      MCP,
}

// CommandDescriptions provides one-line explanations for help output.
var CommandDescriptions = map[string]string{
	"am":       "Configuration: server, editor and render options",
	"catalog":  "Catalog: list the commands offered in each mode",
	"complete": "Complete: suggestions for a document and cursor",
	"serve":    "Serve: language server for editors",
	"mcp":      "MCP: completion tools for agents",
}

// Tag prefixes s with the glyph of a command, if it has one.
func Tag(command, s string) string {
	if glyph, ok := CommandToSymbol[command]; ok {
		return glyph + " " + s
	}
	return s
}

// ModeGlyph returns the marker for a completion mode name.
func ModeGlyph(mode string) string {
	switch mode {
	case "math":
		return Math
	case "pseudocode":
		return Pseudocode
	}
	return ""
}
