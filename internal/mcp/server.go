// Package mcp provides a Model Context Protocol server for diario.
// It exposes journal operations as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entrelineas/diario/internal/journal"
)

// NewServer creates an MCP server with all diario tools registered.
func NewServer(version string, storage *journal.FileStorage) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "diario",
		Version: version,
	}, nil)
	registerTools(server, storage)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all diario tools to the server.
func registerTools(server *mcp.Server, storage *journal.FileStorage) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_entry",
		Description: "Read one journal entry by date. Returns the journal text, the poetry text, and the background color.",
		Annotations: readOnlyAnnotations(),
	}, handleShowEntry(storage))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dates",
		Description: "List journal dates, newest first. Supports since/until date bounds, a result limit, and a non-empty filter.",
		Annotations: readOnlyAnnotations(),
	}, handleListDates(storage))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write_entry",
		Description: "Write journal or poetry text for a date, replacing or appending. Creates the entry when the date is new.",
		Annotations: writeAnnotations(),
	}, handleWriteEntry(storage))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_entry",
		Description: "Export one entry to a txt, md, or pdf file. PDF output needs the pandoc binary on PATH.",
		Annotations: writeAnnotations(),
	}, handleExportEntry(storage))
}
