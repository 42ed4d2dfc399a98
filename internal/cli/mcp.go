// ABOUTME: MCP subcommand for running the journal MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harper/journal/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the journal MCP server",
	Long:  `Start the Model Context Protocol server for AI assistants to read and append journal entries over stdio.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}

		server := mcp.NewServer(e.journal, e.logger, Version)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
