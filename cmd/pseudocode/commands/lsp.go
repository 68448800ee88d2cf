package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/server"
	"github.com/teranos/pseudocode/sym"
)

// LspCmd serves LSP on stdin/stdout for editors that spawn the server
var LspCmd = &cobra.Command{
	Use:   "lsp",
	Short: sym.Serve + " Run the language server on stdio",
	Long: sym.Serve + ` lsp — Run the language server on stdio

Speaks LSP on stdin/stdout. Logs go to stderr. The macros file is read once
at start.

Example (Neovim):
  vim.lsp.start({ name = "pseudocode", cmd = { "pseudocode", "lsp" } })`,
	Args:        cobra.NoArgs,
	Annotations: stderrLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, provider, err := loadProvider()
		if err != nil {
			return err
		}
		return server.RunStdio(cfg, provider)
	},
}
