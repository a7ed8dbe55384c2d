// Package main provides the entry point for the symref CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/symref/internal/config"
	symrefmcp "github.com/gorewood/symref/internal/mcp"
	"github.com/gorewood/symref/internal/pytree"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run symref as a Model Context Protocol (MCP) server over stdio.

This exposes symbol-reference generation as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "symref": {
        "command": "symref",
        "args": ["serve"]
      }
    }
  }

Available tools: reference, modules`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			inspector := pytree.New(resolvePython("", settings))
			server := symrefmcp.NewServer(buildVersion(), inspector)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
