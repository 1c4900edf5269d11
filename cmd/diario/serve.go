// Package main provides the entry point for the diario CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	diariomcp "github.com/entrelineas/diario/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run diario as a Model Context Protocol (MCP) server over stdio.

This exposes the journal as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "diario": {
        "command": "diario",
        "args": ["serve"]
      }
    }
  }

Available tools: show_entry, list_dates, write_entry, export_entry`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := resolveStorage(cmd, nil)
			if err != nil {
				return err
			}
			server := diariomcp.NewServer(buildVersion(), storage)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
