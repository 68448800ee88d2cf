package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/am"
	"github.com/teranos/pseudocode/cmd/pseudocode/commands"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/sym"
)

var rootCmd = &cobra.Command{
	Use:   "pseudocode",
	Short: "pseudocode - LaTeX algorithm autocomplete",
	Long: `pseudocode - Autocomplete for LaTeX algorithms (pseudocode.js and KaTeX).

Suggests algorithmic block commands outside math and KaTeX commands inside
$...$ and $$...$$, including your own macros.

Commands:
` + commandPalette() + `
Examples:
  pseudocode complete algo.tex --line 3 --character 9
  pseudocode catalog math
  pseudocode serve                # LSP over WebSocket for the browser editor
  pseudocode lsp                  # LSP on stdio for desktop editors
  pseudocode am show`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		opts := logger.Options{Verbosity: verbosity, JSON: jsonLogs}
		if cmd.Name() == commands.ServeCmd.Name() && verbosity == 0 {
			opts.Verbosity = logger.VerbosityInfo
		}
		if commands.LogsToStderr(cmd) {
			opts.Output = os.Stderr
		}
		// A broken config is reported by the command itself
		if cfg, err := am.Load(); err == nil {
			opts.Theme = cfg.GetServerLogTheme()
		}
		if err := logger.InitializeWithOptions(opts); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON lines")

	rootCmd.AddCommand(commands.CompleteCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.LspCmd)
	rootCmd.AddCommand(commands.McpCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)

	// Each glyph is an alias of its command: pseudocode ⇥ algo.tex
	for _, name := range sym.Commands {
		if cmd, _, err := rootCmd.Find([]string{name}); err == nil && cmd != rootCmd {
			cmd.Aliases = append(cmd.Aliases, sym.CommandToSymbol[name])
		}
	}
}

// commandPalette lists the commands in glyph order
func commandPalette() string {
	var b strings.Builder
	for _, glyph := range sym.PaletteOrder {
		name := sym.SymbolToCommand[glyph]
		fmt.Fprintf(&b, "  %s\n", sym.Tag(name, fmt.Sprintf("%-9s %s", name, sym.CommandDescriptions[name])))
	}
	return b.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
