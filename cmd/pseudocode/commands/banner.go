package commands

import (
	"fmt"
	"io"

	"github.com/teranos/pseudocode/am"
	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/sym"
	"github.com/teranos/pseudocode/version"
)

// printStartupBanner prints the serve banner
func printStartupBanner(out io.Writer, verbosity, port int, cfg *am.Config, bundle *completion.Bundle) {
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	magenta := "\033[35m"
	bold := "\033[1m"
	reset := "\033[0m"

	info := version.Get()
	frame := reset + cyan + bold

	fmt.Fprintf(out, "\n%s%s", cyan, bold)
	fmt.Fprintf(out, "   ╔═══════════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "   ║                                               ║\n")
	fmt.Fprintf(out, "   ║     \\begin{algorithmic}   pseudocode  %s       ║\n", sym.Serve)
	fmt.Fprintf(out, "   ║                                               ║\n")
	fmt.Fprintf(out, "   ║   %s%s%s Algorithms  %s%s%s Math  %s%s%s Macros  %s%s%s Reload     ║\n",
		blue, sym.Pseudocode, frame, yellow, sym.Math, frame, green, sym.Macro, frame, magenta, sym.Pulse, frame)
	fmt.Fprintf(out, "   ║                                               ║\n")
	fmt.Fprintf(out, "   ╚═══════════════════════════════════════════════╝%s\n\n", reset)

	fmt.Fprintf(out, "%s%s┌─ pseudocode ──────────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Fprintf(out, "%s│%s Version:   %s (commit %s)\n", green, reset, info.Version, info.Short())
	fmt.Fprintf(out, "%s│%s Built:     %s\n", green, reset, info.BuildTime)
	fmt.Fprintf(out, "%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Fprintf(out, "%s│%s LSP:       ws://localhost:%d/lsp\n", green, reset, port)
	fmt.Fprintf(out, "%s│%s Commands:  %d pseudocode, %d math\n", green, reset,
		catalog.Count(catalog.ModePseudocode), catalog.Count(catalog.ModeMath))
	if cfg.Render.MacrosFile != "" {
		fmt.Fprintf(out, "%s│%s Macros:    %d from %s\n", green, reset, len(bundle.Macros), cfg.Render.MacrosFile)
	}
	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		for _, origin := range cfg.GetServerAllowedOrigins() {
			fmt.Fprintf(out, "%s│%s Origin:    %s\n", green, reset, origin)
		}
	}
	fmt.Fprintf(out, "%s└───────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Fprintf(out, "\n%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
