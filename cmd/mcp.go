package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projectparaiba/paraiba/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Paraiba MCP server",
	Long:  `Launch an MCP server that allows AI agents to score and rank candidates via standard tools.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// Positional args are not candidate files here.
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
