package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/mcpserver"
	"github.com/teranos/pseudocode/sym"
)

// McpCmd serves the completion tools over MCP stdio
var McpCmd = &cobra.Command{
	Use:   "mcp",
	Short: sym.MCP + " Serve completion tools to agents over MCP",
	Long: sym.MCP + ` mcp — Serve completion tools to agents over MCP

Tools:
  pseudocode_complete   suggestions at a line/character
  pseudocode_classify   the context at a line/character
  pseudocode_hover      what the command at a position is
  pseudocode_lookup     catalog entry for one command

Documents are passed inline or as a file relative to --workspace.`,
	Args:        cobra.NoArgs,
	Annotations: stderrLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := mcpWorkspace
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to determine working directory")
			}
			root = wd
		}

		_, provider, err := loadProvider()
		if err != nil {
			return err
		}
		logger.Infow(sym.MCP+" MCP server starting", logger.FieldPath, root)
		return mcpserver.NewMCPServer(provider, root).Serve()
	},
}

var mcpWorkspace string

func init() {
	McpCmd.Flags().StringVar(&mcpWorkspace, "workspace", "", "Root for file arguments (default: current directory)")
}
