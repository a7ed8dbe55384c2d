// Package mcp provides a Model Context Protocol server for symref.
// It exposes symbol-reference generation as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/symref/internal/pytree"
)

// Inspector resolves a package name into its module tree. *pytree.Inspector
// satisfies it; tests substitute a fake.
type Inspector interface {
	Inspect(ctx context.Context, packageName string) (*pytree.Tree, error)
}

// NewServer creates an MCP server with all symref tools registered.
func NewServer(version string, inspector Inspector) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "symref",
		Version: version,
	}, nil)
	registerTools(server, inspector)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools. Every
// symref tool is read-only: generation never mutates the inspected
// package.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all symref tools to the server.
func registerTools(server *mcp.Server, inspector Inspector) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reference",
		Description: "Generate a markdown symbol reference for an installed Python package: one section per module, one bullet per public function or class.",
		Annotations: readOnlyAnnotations(),
	}, handleReference(inspector))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "modules",
		Description: "List the module tree of an installed Python package with public symbol counts per module.",
		Annotations: readOnlyAnnotations(),
	}, handleModules(inspector))
}
